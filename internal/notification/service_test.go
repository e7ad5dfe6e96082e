// File: internal/notification/service_test.go
package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"campus_lostfound_backend/internal/common"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// MockRepository is a mock type for notification.Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, notification *Notification) error {
	args := m.Called(ctx, notification)
	if args.Error(0) == nil && notification.ID == uuid.Nil {
		notification.ID = uuid.New() // Simulate DB generating an ID
	}
	return args.Error(0)
}

func (m *MockRepository) GetByUserID(ctx context.Context, userID uuid.UUID, unreadOnly bool, page, pageSize int) ([]Notification, *common.Pagination, error) {
	args := m.Called(ctx, userID, unreadOnly, page, pageSize)
	var notifications []Notification
	if args.Get(0) != nil {
		notifications = args.Get(0).([]Notification)
	}
	var pagination *common.Pagination
	if args.Get(1) != nil {
		pagination = args.Get(1).(*common.Pagination)
	}
	return notifications, pagination, args.Error(2)
}

func (m *MockRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) MarkAsRead(ctx context.Context, id, userID uuid.UUID) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *MockRepository) MarkAllAsRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) DeleteReadOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

// Test Suite Setup
type NotificationServiceTestSuite struct {
	service  Service
	mockRepo *MockRepository
}

func setupNotificationServiceTestSuite(t *testing.T) *NotificationServiceTestSuite {
	ts := &NotificationServiceTestSuite{}
	ts.mockRepo = new(MockRepository)
	ts.service = NewService(ts.mockRepo, zap.NewNop())
	return ts
}

// --- Test Cases ---

func TestNotificationService_Notify_Success(t *testing.T) {
	ts := setupNotificationServiceTestSuite(t)
	ctx := context.Background()
	userID := uuid.New()
	matchID := uuid.New()
	message := "Potential match found for your lost iPhone! Match score: 86.00%"

	ts.mockRepo.On("Create", ctx, mock.AnythingOfType("*notification.Notification")).Run(func(args mock.Arguments) {
		notifArg := args.Get(1).(*Notification)
		assert.Equal(t, userID, notifArg.UserID)
		assert.Equal(t, &matchID, notifArg.MatchID)
		assert.Equal(t, message, notifArg.Message)
		assert.False(t, notifArg.IsRead)
	}).Return(nil)

	err := ts.service.Notify(ctx, userID, &matchID, message)

	assert.NoError(t, err)
	ts.mockRepo.AssertExpectations(t)
}

func TestNotificationService_Notify_Error(t *testing.T) {
	ts := setupNotificationServiceTestSuite(t)
	ctx := context.Background()

	ts.mockRepo.On("Create", ctx, mock.AnythingOfType("*notification.Notification")).Return(errors.New("repo error"))

	err := ts.service.Notify(ctx, uuid.New(), nil, "test")

	assert.Error(t, err)
	ts.mockRepo.AssertExpectations(t)
}

func TestNotificationService_ListForUser_Success(t *testing.T) {
	ts := setupNotificationServiceTestSuite(t)
	ctx := context.Background()
	userID := uuid.New()
	page, pageSize := 1, 5

	mockNotifications := []Notification{
		{UserID: userID, Message: "Notif 1"},
		{UserID: userID, Message: "Notif 2"},
	}
	mockPagination := &common.Pagination{CurrentPage: page, PageSize: pageSize, TotalItems: 2, TotalPages: 1}

	ts.mockRepo.On("GetByUserID", ctx, userID, false, page, pageSize).Return(mockNotifications, mockPagination, nil)

	notifications, pagination, err := ts.service.ListForUser(ctx, userID, false, page, pageSize)

	assert.NoError(t, err)
	assert.Len(t, notifications, 2)
	assert.Equal(t, mockPagination, pagination)
	ts.mockRepo.AssertExpectations(t)
}

func TestNotificationService_MarkAsRead_NotFound(t *testing.T) {
	ts := setupNotificationServiceTestSuite(t)
	ctx := context.Background()
	userID := uuid.New()
	notificationID := uuid.New()
	expectedError := common.ErrNotFound.WithDetails("Notification not found.")

	ts.mockRepo.On("MarkAsRead", ctx, notificationID, userID).Return(expectedError)

	err := ts.service.MarkAsRead(ctx, notificationID, userID)

	assert.Error(t, err)
	apiErr, ok := common.IsAPIError(err)
	assert.True(t, ok)
	assert.Equal(t, expectedError.Code, apiErr.Code)
	ts.mockRepo.AssertExpectations(t)
}

func TestNotificationService_PurgeRead_UsesRetentionCutoff(t *testing.T) {
	ts := setupNotificationServiceTestSuite(t)
	ctx := context.Background()
	retention := 90 * 24 * time.Hour

	ts.mockRepo.On("DeleteReadOlderThan", ctx, mock.AnythingOfType("time.Time")).Run(func(args mock.Arguments) {
		cutoff := args.Get(1).(time.Time)
		expected := time.Now().Add(-retention)
		assert.WithinDuration(t, expected, cutoff, time.Minute)
	}).Return(int64(3), nil)

	deleted, err := ts.service.PurgeRead(ctx, retention)

	assert.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
	ts.mockRepo.AssertExpectations(t)
}

func TestNotificationService_PurgeRead_Error(t *testing.T) {
	ts := setupNotificationServiceTestSuite(t)
	ctx := context.Background()

	ts.mockRepo.On("DeleteReadOlderThan", ctx, mock.AnythingOfType("time.Time")).Return(int64(0), errors.New("repo error"))

	deleted, err := ts.service.PurgeRead(ctx, 24*time.Hour)

	assert.Error(t, err)
	assert.Zero(t, deleted)
	ts.mockRepo.AssertExpectations(t)
}
