// File: internal/stats/service.go
package stats

import (
	"context"

	"campus_lostfound_backend/internal/common"

	"go.uber.org/zap"
)

// Service defines the interface for statistics business logic.
type Service interface {
	Overview(ctx context.Context) (*Overview, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

// NewService creates a new statistics service.
func NewService(repo Repository, logger *zap.Logger) Service {
	return &service{repo: repo, logger: logger}
}

func (s *service) Overview(ctx context.Context) (*Overview, error) {
	overview, err := s.repo.Overview(ctx)
	if err != nil {
		s.logger.Error("Failed to compute statistics overview", zap.Error(err))
		return nil, common.ErrInternalServer.WithDetails("Could not compute statistics.")
	}
	return overview, nil
}
