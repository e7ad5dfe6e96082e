// File: internal/report/service_test.go
package report

import (
	"context"
	"errors"
	"testing"

	"campus_lostfound_backend/internal/common"
	"campus_lostfound_backend/internal/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// MockRepository is a mock type for report.Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateLost(ctx context.Context, r *LostReport) error {
	args := m.Called(ctx, r)
	if args.Error(0) == nil && r.ID == uuid.Nil {
		r.ID = uuid.New() // Simulate DB generating an ID
	}
	return args.Error(0)
}

func (m *MockRepository) CreateFound(ctx context.Context, r *FoundReport) error {
	args := m.Called(ctx, r)
	if args.Error(0) == nil && r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *MockRepository) FindLostByID(ctx context.Context, id uuid.UUID) (*LostReport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*LostReport), args.Error(1)
}

func (m *MockRepository) FindFoundByID(ctx context.Context, id uuid.UUID) (*FoundReport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*FoundReport), args.Error(1)
}

func (m *MockRepository) ListOpenLost(ctx context.Context) ([]LostReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]LostReport), args.Error(1)
}

func (m *MockRepository) ListOpenFound(ctx context.Context) ([]FoundReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]FoundReport), args.Error(1)
}

func (m *MockRepository) ListLostByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]LostReport, *common.Pagination, error) {
	args := m.Called(ctx, userID, page, pageSize)
	var reports []LostReport
	if args.Get(0) != nil {
		reports = args.Get(0).([]LostReport)
	}
	var pagination *common.Pagination
	if args.Get(1) != nil {
		pagination = args.Get(1).(*common.Pagination)
	}
	return reports, pagination, args.Error(2)
}

func (m *MockRepository) ListFoundByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]FoundReport, *common.Pagination, error) {
	args := m.Called(ctx, userID, page, pageSize)
	var reports []FoundReport
	if args.Get(0) != nil {
		reports = args.Get(0).([]FoundReport)
	}
	var pagination *common.Pagination
	if args.Get(1) != nil {
		pagination = args.Get(1).(*common.Pagination)
	}
	return reports, pagination, args.Error(2)
}

func (m *MockRepository) ListAllLost(ctx context.Context, status string, page, pageSize int) ([]LostReport, *common.Pagination, error) {
	args := m.Called(ctx, status, page, pageSize)
	var reports []LostReport
	if args.Get(0) != nil {
		reports = args.Get(0).([]LostReport)
	}
	var pagination *common.Pagination
	if args.Get(1) != nil {
		pagination = args.Get(1).(*common.Pagination)
	}
	return reports, pagination, args.Error(2)
}

func (m *MockRepository) ListAllFound(ctx context.Context, status string, page, pageSize int) ([]FoundReport, *common.Pagination, error) {
	args := m.Called(ctx, status, page, pageSize)
	var reports []FoundReport
	if args.Get(0) != nil {
		reports = args.Get(0).([]FoundReport)
	}
	var pagination *common.Pagination
	if args.Get(1) != nil {
		pagination = args.Get(1).(*common.Pagination)
	}
	return reports, pagination, args.Error(2)
}

func (m *MockRepository) UpdateLostStatus(ctx context.Context, id uuid.UUID, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockRepository) UpdateFoundStatus(ctx context.Context, id uuid.UUID, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// MockReconciler is a mock type for shared.Reconciler
type MockReconciler struct {
	mock.Mock
}

func (m *MockReconciler) Reconcile(ctx context.Context, reportID uuid.UUID, kind shared.ReportKind) ([]shared.MatchResult, error) {
	args := m.Called(ctx, reportID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]shared.MatchResult), args.Error(1)
}

// Test Suite Setup
type ReportServiceTestSuite struct {
	service        *ServiceImplementation
	mockRepo       *MockRepository
	mockReconciler *MockReconciler
}

func setupReportServiceTestSuite(t *testing.T) *ReportServiceTestSuite {
	ts := &ReportServiceTestSuite{}
	ts.mockRepo = new(MockRepository)
	ts.mockReconciler = new(MockReconciler)

	ts.service = NewService(
		ts.mockRepo,
		ts.mockReconciler,
		zap.NewNop(),
	)
	return ts
}

// --- Test Cases ---

func TestCreateLostReport_TriggersReconciliation(t *testing.T) {
	ts := setupReportServiceTestSuite(t)
	ctx := context.Background()
	userID := uuid.New()
	req := CreateLostReportRequest{
		ItemName: "iPhone",
		Category: "Electronics",
		Location: "Library",
		DateLost: "2024-01-10",
	}

	matchID := uuid.New()
	opposingID := uuid.New()
	results := []shared.MatchResult{
		{
			MatchID: matchID,
			Score:   86.00,
			OpposingReport: shared.OpposingReport{
				ID:       opposingID,
				Kind:     shared.ReportKindFound,
				ItemName: "iphone 13",
				Category: "Electronics",
				Location: "Main Library entrance",
			},
		},
	}

	ts.mockRepo.On("CreateLost", ctx, mock.AnythingOfType("*report.LostReport")).Run(func(args mock.Arguments) {
		r := args.Get(1).(*LostReport)
		assert.Equal(t, userID, r.UserID)
		assert.Equal(t, LostStatusUnfound, r.Status)
	}).Return(nil)
	ts.mockReconciler.On("Reconcile", ctx, mock.AnythingOfType("uuid.UUID"), shared.ReportKindLost).Return(results, nil)

	created, summaries, err := ts.service.CreateLostReport(ctx, userID, req)

	assert.NoError(t, err)
	assert.NotNil(t, created)
	assert.Len(t, summaries, 1)
	assert.Equal(t, matchID, summaries[0].MatchID)
	assert.Equal(t, opposingID, summaries[0].ReportID)
	assert.Equal(t, 86.00, summaries[0].Score)
	ts.mockRepo.AssertExpectations(t)
	ts.mockReconciler.AssertExpectations(t)
}

func TestCreateLostReport_ReconciliationFailureIsSwallowed(t *testing.T) {
	ts := setupReportServiceTestSuite(t)
	ctx := context.Background()
	userID := uuid.New()
	req := CreateLostReportRequest{
		ItemName: "Wallet",
		Category: "Accessories",
		DateLost: "2024-02-01",
	}

	ts.mockRepo.On("CreateLost", ctx, mock.AnythingOfType("*report.LostReport")).Return(nil)
	ts.mockReconciler.On("Reconcile", ctx, mock.AnythingOfType("uuid.UUID"), shared.ReportKindLost).
		Return(nil, errors.New("matching store unavailable"))

	created, summaries, err := ts.service.CreateLostReport(ctx, userID, req)

	assert.NoError(t, err, "a reconciliation failure must not fail the create")
	assert.NotNil(t, created)
	assert.Nil(t, summaries)
	ts.mockReconciler.AssertExpectations(t)
}

func TestCreateLostReport_PersistenceFailure(t *testing.T) {
	ts := setupReportServiceTestSuite(t)
	ctx := context.Background()

	ts.mockRepo.On("CreateLost", ctx, mock.AnythingOfType("*report.LostReport")).Return(errors.New("disk full"))

	created, summaries, err := ts.service.CreateLostReport(ctx, uuid.New(), CreateLostReportRequest{
		ItemName: "Wallet",
		Category: "Accessories",
		DateLost: "2024-02-01",
	})

	assert.Error(t, err)
	assert.Nil(t, created)
	assert.Nil(t, summaries)
	ts.mockReconciler.AssertNotCalled(t, "Reconcile", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateFoundReport_TriggersReconciliation(t *testing.T) {
	ts := setupReportServiceTestSuite(t)
	ctx := context.Background()
	userID := uuid.New()
	req := CreateFoundReportRequest{
		ItemName:  "iphone 13",
		Category:  "Electronics",
		DateFound: "2024-01-11",
	}

	ts.mockRepo.On("CreateFound", ctx, mock.AnythingOfType("*report.FoundReport")).Run(func(args mock.Arguments) {
		r := args.Get(1).(*FoundReport)
		assert.Equal(t, FoundStatusUnclaimed, r.Status)
	}).Return(nil)
	ts.mockReconciler.On("Reconcile", ctx, mock.AnythingOfType("uuid.UUID"), shared.ReportKindFound).
		Return([]shared.MatchResult{}, nil)

	created, summaries, err := ts.service.CreateFoundReport(ctx, userID, req)

	assert.NoError(t, err)
	assert.NotNil(t, created)
	assert.Nil(t, summaries, "no matches yields no summaries")
	ts.mockRepo.AssertExpectations(t)
	ts.mockReconciler.AssertExpectations(t)
}

func TestAdminUpdateLostStatus_RejectsFoundSideStatus(t *testing.T) {
	ts := setupReportServiceTestSuite(t)

	err := ts.service.AdminUpdateLostStatus(context.Background(), uuid.New(), "claimed")

	assert.Error(t, err)
	apiErr, ok := common.IsAPIError(err)
	assert.True(t, ok)
	assert.Equal(t, common.ErrBadRequest.Code, apiErr.Code)
	ts.mockRepo.AssertNotCalled(t, "UpdateLostStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdminUpdateFoundStatus_Success(t *testing.T) {
	ts := setupReportServiceTestSuite(t)
	ctx := context.Background()
	id := uuid.New()

	ts.mockRepo.On("UpdateFoundStatus", ctx, id, FoundStatusClaimed).Return(nil)

	err := ts.service.AdminUpdateFoundStatus(ctx, id, FoundStatusClaimed)

	assert.NoError(t, err)
	ts.mockRepo.AssertExpectations(t)
}

func TestAdminListLostReports_InvalidStatusFilter(t *testing.T) {
	ts := setupReportServiceTestSuite(t)

	_, _, err := ts.service.AdminListLostReports(context.Background(), "unclaimed", 1, 10)

	assert.Error(t, err)
	ts.mockRepo.AssertNotCalled(t, "ListAllLost", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
