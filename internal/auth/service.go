// File: internal/auth/service.go
package auth

import (
	"context"
	"time"

	"campus_lostfound_backend/internal/common"
	"campus_lostfound_backend/internal/shared"
	"campus_lostfound_backend/internal/user"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Service defines the interface for authentication business logic.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)
	Refresh(ctx context.Context, req RefreshRequest) (*AuthResponse, error)
}

// ServiceImplementation implements the auth Service interface.
type ServiceImplementation struct {
	userRepo     user.Repository
	tokenService shared.TokenService
	logger       *zap.Logger
}

// NewService creates a new auth service.
func NewService(userRepo user.Repository, tokenService shared.TokenService, logger *zap.Logger) *ServiceImplementation {
	return &ServiceImplementation{
		userRepo:     userRepo,
		tokenService: tokenService,
		logger:       logger,
	}
}

// Register creates a new account and returns tokens for immediate sign-in.
func (s *ServiceImplementation) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	role := req.Role
	if role != common.RoleStudent && role != common.RoleAdmin {
		role = common.RoleStudent
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Failed to hash password", zap.Error(err))
		return nil, common.ErrInternalServer.WithDetails("Could not process registration.")
	}

	newUser := &user.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Phone:        req.Phone,
		Role:         role,
	}

	if err := s.userRepo.Create(ctx, newUser); err != nil {
		s.logger.Warn("User registration failed", zap.String("username", req.Username), zap.Error(err))
		return nil, err
	}

	s.logger.Info("User registered",
		zap.String("userID", newUser.ID.String()),
		zap.String("username", newUser.Username),
		zap.String("role", newUser.Role),
	)
	return s.issueTokens(newUser)
}

// Login verifies credentials and returns tokens on success.
func (s *ServiceImplementation) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	usr, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		// Do not reveal whether the username exists.
		return nil, common.ErrUnauthorized.WithDetails("Invalid username or password.")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Debug("Password mismatch on login", zap.String("username", req.Username))
		return nil, common.ErrUnauthorized.WithDetails("Invalid username or password.")
	}

	if err := s.userRepo.UpdateLastLogin(ctx, usr.ID, time.Now()); err != nil {
		// Login still succeeds; the stamp is best effort.
		s.logger.Warn("Failed to update last login", zap.String("userID", usr.ID.String()), zap.Error(err))
	}

	return s.issueTokens(usr)
}

// Refresh exchanges a valid refresh token for a fresh token pair.
func (s *ServiceImplementation) Refresh(ctx context.Context, req RefreshRequest) (*AuthResponse, error) {
	claims, err := s.tokenService.ParseRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, common.ErrUnauthorized.WithDetails("Invalid or expired refresh token.")
	}

	usr, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, common.ErrUnauthorized.WithDetails("User for this token no longer exists.")
	}

	return s.issueTokens(usr)
}

func (s *ServiceImplementation) issueTokens(usr *user.User) (*AuthResponse, error) {
	accessToken, expiresAt, err := s.tokenService.GenerateAccessToken(usr)
	if err != nil {
		s.logger.Error("Failed to generate access token", zap.Error(err))
		return nil, common.ErrInternalServer.WithDetails("Could not issue tokens.")
	}
	refreshToken, _, err := s.tokenService.GenerateRefreshToken(usr)
	if err != nil {
		s.logger.Error("Failed to generate refresh token", zap.Error(err))
		return nil, common.ErrInternalServer.WithDetails("Could not issue tokens.")
	}

	return &AuthResponse{
		User: user.ToUserResponse(usr),
		Tokens: shared.TokenResponse{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
			ExpiresAt:    expiresAt,
			TokenType:    "Bearer",
		},
	}, nil
}
