// File: internal/report/service.go
package report

import (
	"context"

	"campus_lostfound_backend/internal/common"
	"campus_lostfound_backend/internal/shared"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service defines the interface for report-related business logic.
type Service interface {
	CreateLostReport(ctx context.Context, userID uuid.UUID, req CreateLostReportRequest) (*LostReport, []MatchSummary, error)
	CreateFoundReport(ctx context.Context, userID uuid.UUID, req CreateFoundReportRequest) (*FoundReport, []MatchSummary, error)

	GetLostReport(ctx context.Context, id uuid.UUID) (*LostReport, error)
	GetFoundReport(ctx context.Context, id uuid.UUID) (*FoundReport, error)

	ListMyLostReports(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]LostReport, *common.Pagination, error)
	ListMyFoundReports(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]FoundReport, *common.Pagination, error)

	AdminListLostReports(ctx context.Context, status string, page, pageSize int) ([]LostReport, *common.Pagination, error)
	AdminListFoundReports(ctx context.Context, status string, page, pageSize int) ([]FoundReport, *common.Pagination, error)

	AdminUpdateLostStatus(ctx context.Context, id uuid.UUID, status string) error
	AdminUpdateFoundStatus(ctx context.Context, id uuid.UUID, status string) error
}

// ServiceImplementation implements the report Service interface.
type ServiceImplementation struct {
	repo       Repository
	reconciler shared.Reconciler
	logger     *zap.Logger
}

// NewService creates a new report service.
func NewService(repo Repository, reconciler shared.Reconciler, logger *zap.Logger) *ServiceImplementation {
	return &ServiceImplementation{
		repo:       repo,
		reconciler: reconciler,
		logger:     logger,
	}
}

// CreateLostReport files a lost report and immediately reconciles it against
// the open found pool. A reconciliation failure never fails the create: the
// report is already persisted, so the error is logged and the caller simply
// gets no match summaries.
func (s *ServiceImplementation) CreateLostReport(ctx context.Context, userID uuid.UUID, req CreateLostReportRequest) (*LostReport, []MatchSummary, error) {
	lostReport := &LostReport{
		UserID:      userID,
		ItemName:    req.ItemName,
		Category:    req.Category,
		Description: req.Description,
		Location:    req.Location,
		DateLost:    req.DateLost,
		Status:      LostStatusUnfound,
	}

	if err := s.repo.CreateLost(ctx, lostReport); err != nil {
		s.logger.Error("Failed to create lost report", zap.Error(err), zap.String("userID", userID.String()))
		return nil, nil, common.ErrInternalServer.WithDetails("Could not save lost report.")
	}
	s.logger.Info("Lost report created",
		zap.String("reportID", lostReport.ID.String()),
		zap.String("itemName", lostReport.ItemName))

	summaries := s.reconcile(ctx, lostReport.ID, shared.ReportKindLost)
	return lostReport, summaries, nil
}

// CreateFoundReport files a found report and immediately reconciles it
// against the open lost pool.
func (s *ServiceImplementation) CreateFoundReport(ctx context.Context, userID uuid.UUID, req CreateFoundReportRequest) (*FoundReport, []MatchSummary, error) {
	foundReport := &FoundReport{
		UserID:      userID,
		ItemName:    req.ItemName,
		Category:    req.Category,
		Description: req.Description,
		Location:    req.Location,
		DateFound:   req.DateFound,
		Status:      FoundStatusUnclaimed,
	}

	if err := s.repo.CreateFound(ctx, foundReport); err != nil {
		s.logger.Error("Failed to create found report", zap.Error(err), zap.String("userID", userID.String()))
		return nil, nil, common.ErrInternalServer.WithDetails("Could not save found report.")
	}
	s.logger.Info("Found report created",
		zap.String("reportID", foundReport.ID.String()),
		zap.String("itemName", foundReport.ItemName))

	summaries := s.reconcile(ctx, foundReport.ID, shared.ReportKindFound)
	return foundReport, summaries, nil
}

func (s *ServiceImplementation) reconcile(ctx context.Context, reportID uuid.UUID, kind shared.ReportKind) []MatchSummary {
	results, err := s.reconciler.Reconcile(ctx, reportID, kind)
	if err != nil {
		s.logger.Error("Reconciliation failed after report creation",
			zap.String("reportID", reportID.String()),
			zap.String("kind", string(kind)),
			zap.Error(err))
		return nil
	}
	if len(results) == 0 {
		return nil
	}

	summaries := make([]MatchSummary, len(results))
	for i, res := range results {
		summaries[i] = MatchSummary{
			MatchID:  res.MatchID,
			Score:    res.Score,
			ReportID: res.OpposingReport.ID,
			ItemName: res.OpposingReport.ItemName,
			Category: res.OpposingReport.Category,
			Location: res.OpposingReport.Location,
		}
	}
	return summaries
}

func (s *ServiceImplementation) GetLostReport(ctx context.Context, id uuid.UUID) (*LostReport, error) {
	return s.repo.FindLostByID(ctx, id)
}

func (s *ServiceImplementation) GetFoundReport(ctx context.Context, id uuid.UUID) (*FoundReport, error) {
	return s.repo.FindFoundByID(ctx, id)
}

func (s *ServiceImplementation) ListMyLostReports(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]LostReport, *common.Pagination, error) {
	return s.repo.ListLostByUser(ctx, userID, page, pageSize)
}

func (s *ServiceImplementation) ListMyFoundReports(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]FoundReport, *common.Pagination, error) {
	return s.repo.ListFoundByUser(ctx, userID, page, pageSize)
}

func (s *ServiceImplementation) AdminListLostReports(ctx context.Context, status string, page, pageSize int) ([]LostReport, *common.Pagination, error) {
	if status != "" && status != LostStatusUnfound && status != LostStatusFound && status != LostStatusClosed {
		return nil, nil, common.ErrBadRequest.WithDetails("Invalid lost report status filter.")
	}
	return s.repo.ListAllLost(ctx, status, page, pageSize)
}

func (s *ServiceImplementation) AdminListFoundReports(ctx context.Context, status string, page, pageSize int) ([]FoundReport, *common.Pagination, error) {
	if status != "" && status != FoundStatusUnclaimed && status != FoundStatusClaimed && status != FoundStatusClosed {
		return nil, nil, common.ErrBadRequest.WithDetails("Invalid found report status filter.")
	}
	return s.repo.ListAllFound(ctx, status, page, pageSize)
}

func (s *ServiceImplementation) AdminUpdateLostStatus(ctx context.Context, id uuid.UUID, status string) error {
	if status != LostStatusUnfound && status != LostStatusFound && status != LostStatusClosed {
		return common.ErrBadRequest.WithDetails("Invalid status for a lost report.")
	}
	if err := s.repo.UpdateLostStatus(ctx, id, status); err != nil {
		return err
	}
	s.logger.Info("Lost report status updated", zap.String("reportID", id.String()), zap.String("status", status))
	return nil
}

func (s *ServiceImplementation) AdminUpdateFoundStatus(ctx context.Context, id uuid.UUID, status string) error {
	if status != FoundStatusUnclaimed && status != FoundStatusClaimed && status != FoundStatusClosed {
		return common.ErrBadRequest.WithDetails("Invalid status for a found report.")
	}
	if err := s.repo.UpdateFoundStatus(ctx, id, status); err != nil {
		return err
	}
	s.logger.Info("Found report status updated", zap.String("reportID", id.String()), zap.String("status", status))
	return nil
}
