// File: internal/notification/service.go
package notification

import (
	"context"
	"time"

	"campus_lostfound_backend/internal/common"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service defines the interface for notification-related business logic.
type Service interface {
	Notify(ctx context.Context, userID uuid.UUID, matchID *uuid.UUID, message string) error
	ListForUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, page, pageSize int) ([]Notification, *common.Pagination, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
	MarkAsRead(ctx context.Context, id, userID uuid.UUID) error
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) (int64, error)
	PurgeRead(ctx context.Context, retention time.Duration) (int64, error)
}

// ServiceImplementation implements the notification Service interface.
type ServiceImplementation struct {
	repo   Repository
	logger *zap.Logger
}

// NewService creates a new notification service.
func NewService(repo Repository, logger *zap.Logger) *ServiceImplementation {
	return &ServiceImplementation{
		repo:   repo,
		logger: logger,
	}
}

// Notify stores an in-app notification for the user.
func (s *ServiceImplementation) Notify(ctx context.Context, userID uuid.UUID, matchID *uuid.UUID, message string) error {
	n := &Notification{
		UserID:  userID,
		MatchID: matchID,
		Message: message,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		s.logger.Error("Failed to create notification",
			zap.String("userID", userID.String()),
			zap.Error(err))
		return err
	}
	return nil
}

func (s *ServiceImplementation) ListForUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, page, pageSize int) ([]Notification, *common.Pagination, error) {
	return s.repo.GetByUserID(ctx, userID, unreadOnly, page, pageSize)
}

func (s *ServiceImplementation) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.repo.CountUnread(ctx, userID)
}

func (s *ServiceImplementation) MarkAsRead(ctx context.Context, id, userID uuid.UUID) error {
	return s.repo.MarkAsRead(ctx, id, userID)
}

func (s *ServiceImplementation) MarkAllAsRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.repo.MarkAllAsRead(ctx, userID)
}

// PurgeRead deletes read notifications older than the retention window.
func (s *ServiceImplementation) PurgeRead(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)
	deleted, err := s.repo.DeleteReadOlderThan(ctx, cutoff)
	if err != nil {
		s.logger.Error("Failed to purge read notifications", zap.Error(err))
		return 0, err
	}
	if deleted > 0 {
		s.logger.Info("Purged read notifications",
			zap.Int64("deleted", deleted),
			zap.Time("cutoff", cutoff))
	}
	return deleted, nil
}
