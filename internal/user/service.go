// File: internal/user/service.go
package user

import (
	"context"

	"campus_lostfound_backend/internal/common"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service defines the interface for user-related business logic.
type Service interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (*User, error)
	ListUsers(ctx context.Context, page, pageSize int) ([]UserResponse, *common.Pagination, error)
}

// ServiceImplementation implements the user Service interface.
type ServiceImplementation struct {
	repo   Repository
	logger *zap.Logger
}

// NewService creates a new user service.
func NewService(repo Repository, logger *zap.Logger) *ServiceImplementation {
	return &ServiceImplementation{
		repo:   repo,
		logger: logger,
	}
}

// GetUserByID returns the user with the given ID.
func (s *ServiceImplementation) GetUserByID(ctx context.Context, id uuid.UUID) (*User, error) {
	usr, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return usr, nil
}

// ListUsers returns a paginated list of all users. Admin use only.
func (s *ServiceImplementation) ListUsers(ctx context.Context, page, pageSize int) ([]UserResponse, *common.Pagination, error) {
	users, pagination, err := s.repo.ListAll(ctx, page, pageSize)
	if err != nil {
		s.logger.Error("Failed to list users", zap.Error(err))
		return nil, nil, common.ErrInternalServer.WithDetails("Could not retrieve users.")
	}

	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = ToUserResponse(&users[i])
	}
	return responses, pagination, nil
}
