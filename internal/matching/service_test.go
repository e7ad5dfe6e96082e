// File: internal/matching/service_test.go
package matching

import (
	"context"
	"errors"
	"testing"
	"time"

	"campus_lostfound_backend/internal/common"
	"campus_lostfound_backend/internal/notification"
	"campus_lostfound_backend/internal/report"
	"campus_lostfound_backend/internal/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// MockMatchRepository is a mock type for matching.Repository
type MockMatchRepository struct {
	mock.Mock
}

func (m *MockMatchRepository) Upsert(ctx context.Context, match *Match) error {
	args := m.Called(ctx, match)
	if args.Error(0) == nil && match.ID == uuid.Nil {
		match.ID = uuid.New() // Simulate DB generating an ID
	}
	return args.Error(0)
}

func (m *MockMatchRepository) FindByID(ctx context.Context, id uuid.UUID) (*Match, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Match), args.Error(1)
}

func (m *MockMatchRepository) FindForLostReport(ctx context.Context, lostID uuid.UUID) ([]Match, error) {
	args := m.Called(ctx, lostID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Match), args.Error(1)
}

func (m *MockMatchRepository) FindForFoundReport(ctx context.Context, foundID uuid.UUID) ([]Match, error) {
	args := m.Called(ctx, foundID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Match), args.Error(1)
}

func (m *MockMatchRepository) Verify(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockReportRepository is a mock type for report.Repository
type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) CreateLost(ctx context.Context, r *report.LostReport) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReportRepository) CreateFound(ctx context.Context, r *report.FoundReport) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReportRepository) FindLostByID(ctx context.Context, id uuid.UUID) (*report.LostReport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.LostReport), args.Error(1)
}

func (m *MockReportRepository) FindFoundByID(ctx context.Context, id uuid.UUID) (*report.FoundReport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.FoundReport), args.Error(1)
}

func (m *MockReportRepository) ListOpenLost(ctx context.Context) ([]report.LostReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]report.LostReport), args.Error(1)
}

func (m *MockReportRepository) ListOpenFound(ctx context.Context) ([]report.FoundReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]report.FoundReport), args.Error(1)
}

func (m *MockReportRepository) ListLostByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]report.LostReport, *common.Pagination, error) {
	args := m.Called(ctx, userID, page, pageSize)
	var reports []report.LostReport
	if args.Get(0) != nil {
		reports = args.Get(0).([]report.LostReport)
	}
	var pagination *common.Pagination
	if args.Get(1) != nil {
		pagination = args.Get(1).(*common.Pagination)
	}
	return reports, pagination, args.Error(2)
}

func (m *MockReportRepository) ListFoundByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]report.FoundReport, *common.Pagination, error) {
	args := m.Called(ctx, userID, page, pageSize)
	var reports []report.FoundReport
	if args.Get(0) != nil {
		reports = args.Get(0).([]report.FoundReport)
	}
	var pagination *common.Pagination
	if args.Get(1) != nil {
		pagination = args.Get(1).(*common.Pagination)
	}
	return reports, pagination, args.Error(2)
}

func (m *MockReportRepository) ListAllLost(ctx context.Context, status string, page, pageSize int) ([]report.LostReport, *common.Pagination, error) {
	args := m.Called(ctx, status, page, pageSize)
	var reports []report.LostReport
	if args.Get(0) != nil {
		reports = args.Get(0).([]report.LostReport)
	}
	var pagination *common.Pagination
	if args.Get(1) != nil {
		pagination = args.Get(1).(*common.Pagination)
	}
	return reports, pagination, args.Error(2)
}

func (m *MockReportRepository) ListAllFound(ctx context.Context, status string, page, pageSize int) ([]report.FoundReport, *common.Pagination, error) {
	args := m.Called(ctx, status, page, pageSize)
	var reports []report.FoundReport
	if args.Get(0) != nil {
		reports = args.Get(0).([]report.FoundReport)
	}
	var pagination *common.Pagination
	if args.Get(1) != nil {
		pagination = args.Get(1).(*common.Pagination)
	}
	return reports, pagination, args.Error(2)
}

func (m *MockReportRepository) UpdateLostStatus(ctx context.Context, id uuid.UUID, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockReportRepository) UpdateFoundStatus(ctx context.Context, id uuid.UUID, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// MockNotificationService is a mock type for notification.Service
type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) Notify(ctx context.Context, userID uuid.UUID, matchID *uuid.UUID, message string) error {
	args := m.Called(ctx, userID, matchID, message)
	return args.Error(0)
}

func (m *MockNotificationService) ListForUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, page, pageSize int) ([]notification.Notification, *common.Pagination, error) {
	args := m.Called(ctx, userID, unreadOnly, page, pageSize)
	var notifications []notification.Notification
	if args.Get(0) != nil {
		notifications = args.Get(0).([]notification.Notification)
	}
	var pagination *common.Pagination
	if args.Get(1) != nil {
		pagination = args.Get(1).(*common.Pagination)
	}
	return notifications, pagination, args.Error(2)
}

func (m *MockNotificationService) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationService) MarkAsRead(ctx context.Context, id, userID uuid.UUID) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *MockNotificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationService) PurgeRead(ctx context.Context, retention time.Duration) (int64, error) {
	args := m.Called(ctx, retention)
	return args.Get(0).(int64), args.Error(1)
}

// Test Suite Setup
type MatchingServiceTestSuite struct {
	service       *Service
	mockMatchRepo *MockMatchRepository
	mockReports   *MockReportRepository
	mockNotifSvc  *MockNotificationService
}

func setupMatchingServiceTestSuite(t *testing.T) *MatchingServiceTestSuite {
	ts := &MatchingServiceTestSuite{}
	ts.mockMatchRepo = new(MockMatchRepository)
	ts.mockReports = new(MockReportRepository)
	ts.mockNotifSvc = new(MockNotificationService)

	ts.service = NewService(
		ts.mockMatchRepo,
		ts.mockReports,
		ts.mockNotifSvc,
		zap.NewNop(),
	)
	return ts
}

func strongLostReport(userID uuid.UUID) *report.LostReport {
	r := &report.LostReport{
		UserID:      userID,
		ItemName:    "iPhone",
		Category:    "Electronics",
		Description: "black iphone with cracked screen",
		Location:    "Library",
		DateLost:    "2024-01-10",
		Status:      report.LostStatusUnfound,
	}
	r.ID = uuid.New()
	return r
}

func strongFoundReport(userID uuid.UUID) *report.FoundReport {
	r := &report.FoundReport{
		UserID:      userID,
		ItemName:    "iphone 13",
		Category:    "Electronics",
		Description: "black phone cracked screen found near library",
		Location:    "Main Library entrance",
		DateFound:   "2024-01-11",
		Status:      report.FoundStatusUnclaimed,
	}
	r.ID = uuid.New()
	return r
}

// --- Test Cases ---

func TestReconcile_LostReport_EmptyPool(t *testing.T) {
	ts := setupMatchingServiceTestSuite(t)
	ctx := context.Background()
	lostReport := strongLostReport(uuid.New())

	ts.mockReports.On("FindLostByID", ctx, lostReport.ID).Return(lostReport, nil)
	ts.mockReports.On("ListOpenFound", ctx).Return([]report.FoundReport{}, nil)

	results, err := ts.service.Reconcile(ctx, lostReport.ID, shared.ReportKindLost)

	assert.NoError(t, err)
	assert.Empty(t, results)
	ts.mockMatchRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	ts.mockNotifSvc.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	ts.mockReports.AssertExpectations(t)
}

func TestReconcile_LostReport_MissingReport(t *testing.T) {
	ts := setupMatchingServiceTestSuite(t)
	ctx := context.Background()
	missingID := uuid.New()

	ts.mockReports.On("FindLostByID", ctx, missingID).
		Return(nil, common.ErrNotFound.WithDetails("Lost report not found."))

	results, err := ts.service.Reconcile(ctx, missingID, shared.ReportKindLost)

	assert.NoError(t, err)
	assert.Empty(t, results)
	ts.mockReports.AssertNotCalled(t, "ListOpenFound", mock.Anything)
	ts.mockReports.AssertExpectations(t)
}

func TestReconcile_LostReport_ScoresAndNotifiesBothParties(t *testing.T) {
	ts := setupMatchingServiceTestSuite(t)
	ctx := context.Background()
	loserID := uuid.New()
	finderID := uuid.New()

	lostReport := strongLostReport(loserID)
	foundReport := strongFoundReport(finderID)

	// A second found report with nothing in common must be filtered out.
	weakFound := &report.FoundReport{
		UserID:    uuid.New(),
		ItemName:  "Calculator",
		Category:  "Other",
		Location:  "Gym",
		DateFound: "2023-06-01",
		Status:    report.FoundStatusUnclaimed,
	}
	weakFound.ID = uuid.New()

	ts.mockReports.On("FindLostByID", ctx, lostReport.ID).Return(lostReport, nil)
	ts.mockReports.On("ListOpenFound", ctx).Return([]report.FoundReport{*foundReport, *weakFound}, nil)

	ts.mockMatchRepo.On("Upsert", ctx, mock.AnythingOfType("*matching.Match")).Run(func(args mock.Arguments) {
		match := args.Get(1).(*Match)
		assert.Equal(t, lostReport.ID, match.LostID)
		assert.Equal(t, foundReport.ID, match.FoundID)
		assert.Equal(t, 86.00, match.Score)
	}).Return(nil).Once()

	ts.mockNotifSvc.On("Notify", ctx, loserID, mock.AnythingOfType("*uuid.UUID"),
		"Potential match found for your lost iPhone! Match score: 86.00%").Return(nil).Once()
	ts.mockNotifSvc.On("Notify", ctx, finderID, mock.AnythingOfType("*uuid.UUID"),
		"Your found iphone 13 may match a lost item! Match score: 86.00%").Return(nil).Once()

	results, err := ts.service.Reconcile(ctx, lostReport.ID, shared.ReportKindLost)

	assert.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, 86.00, results[0].Score)
	assert.Equal(t, foundReport.ID, results[0].OpposingReport.ID)
	assert.Equal(t, shared.ReportKindFound, results[0].OpposingReport.Kind)
	assert.Equal(t, finderID, results[0].OpposingReport.OwnerID)
	assert.NotEqual(t, uuid.Nil, results[0].MatchID)

	ts.mockMatchRepo.AssertExpectations(t)
	ts.mockNotifSvc.AssertExpectations(t)
	ts.mockReports.AssertExpectations(t)
}

func TestReconcile_FoundReport_ScoresAgainstOpenLostPool(t *testing.T) {
	ts := setupMatchingServiceTestSuite(t)
	ctx := context.Background()
	loserID := uuid.New()
	finderID := uuid.New()

	lostReport := strongLostReport(loserID)
	foundReport := strongFoundReport(finderID)

	ts.mockReports.On("FindFoundByID", ctx, foundReport.ID).Return(foundReport, nil)
	ts.mockReports.On("ListOpenLost", ctx).Return([]report.LostReport{*lostReport}, nil)

	ts.mockMatchRepo.On("Upsert", ctx, mock.AnythingOfType("*matching.Match")).Return(nil).Once()
	ts.mockNotifSvc.On("Notify", ctx, loserID, mock.AnythingOfType("*uuid.UUID"), mock.AnythingOfType("string")).Return(nil).Once()
	ts.mockNotifSvc.On("Notify", ctx, finderID, mock.AnythingOfType("*uuid.UUID"), mock.AnythingOfType("string")).Return(nil).Once()

	results, err := ts.service.Reconcile(ctx, foundReport.ID, shared.ReportKindFound)

	assert.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, lostReport.ID, results[0].OpposingReport.ID)
	assert.Equal(t, shared.ReportKindLost, results[0].OpposingReport.Kind)
	ts.mockMatchRepo.AssertExpectations(t)
	ts.mockNotifSvc.AssertExpectations(t)
}

func TestReconcile_UpsertFailurePropagates(t *testing.T) {
	ts := setupMatchingServiceTestSuite(t)
	ctx := context.Background()
	lostReport := strongLostReport(uuid.New())
	foundReport := strongFoundReport(uuid.New())
	repoErr := errors.New("connection reset")

	ts.mockReports.On("FindLostByID", ctx, lostReport.ID).Return(lostReport, nil)
	ts.mockReports.On("ListOpenFound", ctx).Return([]report.FoundReport{*foundReport}, nil)
	ts.mockMatchRepo.On("Upsert", ctx, mock.AnythingOfType("*matching.Match")).Return(repoErr)

	results, err := ts.service.Reconcile(ctx, lostReport.ID, shared.ReportKindLost)

	assert.Error(t, err)
	assert.ErrorIs(t, err, repoErr)
	assert.Nil(t, results)
	ts.mockNotifSvc.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReconcile_UnknownKind(t *testing.T) {
	ts := setupMatchingServiceTestSuite(t)

	results, err := ts.service.Reconcile(context.Background(), uuid.New(), shared.ReportKind("bogus"))

	assert.Error(t, err)
	assert.Nil(t, results)
}

func TestMatchesForLostReport_OwnerOnly(t *testing.T) {
	ts := setupMatchingServiceTestSuite(t)
	ctx := context.Background()
	ownerID := uuid.New()
	strangerID := uuid.New()
	lostReport := strongLostReport(ownerID)

	ts.mockReports.On("FindLostByID", ctx, lostReport.ID).Return(lostReport, nil)

	_, err := ts.service.MatchesForLostReport(ctx, lostReport.ID, strangerID, false)

	assert.Error(t, err)
	apiErr, ok := common.IsAPIError(err)
	assert.True(t, ok)
	assert.Equal(t, common.ErrForbidden.Code, apiErr.Code)
	ts.mockMatchRepo.AssertNotCalled(t, "FindForLostReport", mock.Anything, mock.Anything)
}

func TestMatchesForLostReport_AdminBypassesOwnership(t *testing.T) {
	ts := setupMatchingServiceTestSuite(t)
	ctx := context.Background()
	lostReport := strongLostReport(uuid.New())

	ts.mockReports.On("FindLostByID", ctx, lostReport.ID).Return(lostReport, nil)
	ts.mockMatchRepo.On("FindForLostReport", ctx, lostReport.ID).Return([]Match{}, nil)

	matches, err := ts.service.MatchesForLostReport(ctx, lostReport.ID, uuid.New(), true)

	assert.NoError(t, err)
	assert.Empty(t, matches)
	ts.mockMatchRepo.AssertExpectations(t)
}

func TestVerifyMatch_Success(t *testing.T) {
	ts := setupMatchingServiceTestSuite(t)
	ctx := context.Background()
	matchID := uuid.New()

	verified := &Match{Score: 86.00, Verified: true}
	verified.ID = matchID

	ts.mockMatchRepo.On("Verify", ctx, matchID).Return(nil)
	ts.mockMatchRepo.On("FindByID", ctx, matchID).Return(verified, nil)

	match, err := ts.service.VerifyMatch(ctx, matchID)

	assert.NoError(t, err)
	assert.True(t, match.Verified)
	ts.mockMatchRepo.AssertExpectations(t)
}

func TestVerifyMatch_NotFound(t *testing.T) {
	ts := setupMatchingServiceTestSuite(t)
	ctx := context.Background()
	matchID := uuid.New()

	ts.mockMatchRepo.On("Verify", ctx, matchID).
		Return(common.ErrNotFound.WithDetails("Match not found."))

	match, err := ts.service.VerifyMatch(ctx, matchID)

	assert.Error(t, err)
	assert.Nil(t, match)
	ts.mockMatchRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}
