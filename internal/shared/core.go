// File: internal/shared/core.go
package shared

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ReportKind distinguishes the two sides of the lost-and-found pool.
type ReportKind string

const (
	ReportKindLost  ReportKind = "lost"
	ReportKindFound ReportKind = "found"
)

// OpposingReport is the slim view of the counterpart report carried in a
// reconciliation result. It deliberately avoids the full report model so the
// report package can depend on this package without a cycle.
type OpposingReport struct {
	ID       uuid.UUID  `json:"id"`
	Kind     ReportKind `json:"kind"`
	ItemName string     `json:"item_name"`
	Category string     `json:"category"`
	Location string     `json:"location"`
	OwnerID  uuid.UUID  `json:"owner_id"`
}

// MatchResult summarizes one accepted candidate pairing. The persisted match
// rows are authoritative; this is advisory feedback for the caller.
type MatchResult struct {
	MatchID        uuid.UUID      `json:"match_id"`
	Score          float64        `json:"score"`
	OpposingReport OpposingReport `json:"opposing_report"`
}

// Reconciler scores a newly created report against the opposing open pool,
// persisting matches and notifications as a side effect. Implemented by the
// matching service; consumed by the report service after each creation.
type Reconciler interface {
	Reconcile(ctx context.Context, reportID uuid.UUID, kind ReportKind) ([]MatchResult, error)
}

// TokenResponse represents the response containing JWT tokens.
type TokenResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
	TokenType    string    `json:"token_type"`
}

// UserDataForToken is an interface to abstract the user data needed for token generation.
type UserDataForToken interface {
	GetID() uuid.UUID
	GetUsername() string
	GetRole() string
}

// TokenService defines the interface for JWT operations.
type TokenService interface {
	GenerateAccessToken(userData UserDataForToken) (string, time.Time, error)
	GenerateRefreshToken(userData UserDataForToken) (string, time.Time, error)
	ValidateToken(tokenString string) (*Claims, error)
	ParseRefreshToken(refreshTokenString string) (*Claims, error)
}

// Claims represents the JWT claims structure
type Claims struct {
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	Role     string    `json:"role"`
	jwt.RegisteredClaims
}
