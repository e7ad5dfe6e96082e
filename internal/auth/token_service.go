// File: internal/auth/token_service.go
package auth

import (
	"fmt"
	"time"

	"campus_lostfound_backend/internal/config"
	"campus_lostfound_backend/internal/shared"

	"github.com/golang-jwt/jwt/v5"
)

// JWTTokenService implements shared.TokenService using HMAC-signed JWTs.
type JWTTokenService struct {
	secret        []byte
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

// NewJWTTokenService creates a new JWT token service.
func NewJWTTokenService(cfg *config.Config) *JWTTokenService {
	return &JWTTokenService{
		secret:        []byte(cfg.JWTSecret),
		accessExpiry:  cfg.JWTAccessTokenExpiry,
		refreshExpiry: cfg.JWTRefreshTokenExpiry,
	}
}

// GenerateAccessToken issues a signed access token for the given user.
func (s *JWTTokenService) GenerateAccessToken(userData shared.UserDataForToken) (string, time.Time, error) {
	return s.generate(userData, s.accessExpiry)
}

// GenerateRefreshToken issues a signed refresh token for the given user.
func (s *JWTTokenService) GenerateRefreshToken(userData shared.UserDataForToken) (string, time.Time, error) {
	return s.generate(userData, s.refreshExpiry)
}

func (s *JWTTokenService) generate(userData shared.UserDataForToken, expiry time.Duration) (string, time.Time, error) {
	expiresAt := time.Now().Add(expiry)
	claims := &shared.Claims{
		UserID:   userData.GetID(),
		Username: userData.GetUsername(),
		Role:     userData.GetRole(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userData.GetID().String(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// ValidateToken parses and validates a token string, returning its claims.
func (s *JWTTokenService) ValidateToken(tokenString string) (*shared.Claims, error) {
	claims := &shared.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// ParseRefreshToken validates a refresh token string, returning its claims.
func (s *JWTTokenService) ParseRefreshToken(refreshTokenString string) (*shared.Claims, error) {
	return s.ValidateToken(refreshTokenString)
}
