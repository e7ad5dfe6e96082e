// File: internal/matching/service.go
package matching

import (
	"context"
	"fmt"
	"time"

	"campus_lostfound_backend/internal/common"
	"campus_lostfound_backend/internal/notification"
	"campus_lostfound_backend/internal/report"
	"campus_lostfound_backend/internal/shared"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service implements the match reconciler and the match query operations.
// It satisfies shared.Reconciler so the report service can trigger
// reconciliation without importing this package.
type Service struct {
	matchRepo       Repository
	reportRepo      report.Repository
	notificationSvc notification.Service
	logger          *zap.Logger
}

// NewService creates a new matching service.
func NewService(matchRepo Repository, reportRepo report.Repository, notificationSvc notification.Service, logger *zap.Logger) *Service {
	return &Service{
		matchRepo:       matchRepo,
		reportRepo:      reportRepo,
		notificationSvc: notificationSvc,
		logger:          logger,
	}
}

// Reconcile scores the given report against every open report on the opposing
// side, persists each pairing at or above the acceptance threshold, and
// notifies both parties. A report that no longer exists yields no matches and
// no error: it may have been closed between creation and reconciliation.
func (s *Service) Reconcile(ctx context.Context, reportID uuid.UUID, kind shared.ReportKind) ([]shared.MatchResult, error) {
	switch kind {
	case shared.ReportKindLost:
		return s.reconcileLost(ctx, reportID)
	case shared.ReportKindFound:
		return s.reconcileFound(ctx, reportID)
	default:
		return nil, common.ErrBadRequest.WithDetails(fmt.Sprintf("Unknown report kind %q.", kind))
	}
}

func (s *Service) reconcileLost(ctx context.Context, lostID uuid.UUID) ([]shared.MatchResult, error) {
	lostReport, err := s.reportRepo.FindLostByID(ctx, lostID)
	if err != nil {
		if apiErr, ok := common.IsAPIError(err); ok && apiErr.Code == common.ErrNotFound.Code {
			return []shared.MatchResult{}, nil
		}
		return nil, err
	}

	pool, err := s.reportRepo.ListOpenFound(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]shared.MatchResult, 0)
	for i := range pool {
		foundReport := &pool[i]
		score := Score(lostCandidate(lostReport), foundCandidate(foundReport))
		if score < AcceptanceThreshold {
			continue
		}

		match, err := s.recordMatch(ctx, lostReport, foundReport, score)
		if err != nil {
			return nil, err
		}

		results = append(results, shared.MatchResult{
			MatchID: match.ID,
			Score:   score,
			OpposingReport: shared.OpposingReport{
				ID:       foundReport.ID,
				Kind:     shared.ReportKindFound,
				ItemName: foundReport.ItemName,
				Category: foundReport.Category,
				Location: foundReport.Location,
				OwnerID:  foundReport.UserID,
			},
		})
	}

	s.logger.Info("Reconciled lost report",
		zap.String("lostID", lostID.String()),
		zap.Int("poolSize", len(pool)),
		zap.Int("matches", len(results)))
	return results, nil
}

func (s *Service) reconcileFound(ctx context.Context, foundID uuid.UUID) ([]shared.MatchResult, error) {
	foundReport, err := s.reportRepo.FindFoundByID(ctx, foundID)
	if err != nil {
		if apiErr, ok := common.IsAPIError(err); ok && apiErr.Code == common.ErrNotFound.Code {
			return []shared.MatchResult{}, nil
		}
		return nil, err
	}

	pool, err := s.reportRepo.ListOpenLost(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]shared.MatchResult, 0)
	for i := range pool {
		lostReport := &pool[i]
		score := Score(lostCandidate(lostReport), foundCandidate(foundReport))
		if score < AcceptanceThreshold {
			continue
		}

		match, err := s.recordMatch(ctx, lostReport, foundReport, score)
		if err != nil {
			return nil, err
		}

		results = append(results, shared.MatchResult{
			MatchID: match.ID,
			Score:   score,
			OpposingReport: shared.OpposingReport{
				ID:       lostReport.ID,
				Kind:     shared.ReportKindLost,
				ItemName: lostReport.ItemName,
				Category: lostReport.Category,
				Location: lostReport.Location,
				OwnerID:  lostReport.UserID,
			},
		})
	}

	s.logger.Info("Reconciled found report",
		zap.String("foundID", foundID.String()),
		zap.Int("poolSize", len(pool)),
		zap.Int("matches", len(results)))
	return results, nil
}

// recordMatch upserts the match row for the pair and notifies both parties.
func (s *Service) recordMatch(ctx context.Context, lostReport *report.LostReport, foundReport *report.FoundReport, score float64) (*Match, error) {
	match := &Match{
		LostID:    lostReport.ID,
		FoundID:   foundReport.ID,
		Score:     score,
		MatchedAt: time.Now(),
	}
	if err := s.matchRepo.Upsert(ctx, match); err != nil {
		s.logger.Error("Failed to persist match",
			zap.String("lostID", lostReport.ID.String()),
			zap.String("foundID", foundReport.ID.String()),
			zap.Error(err))
		return nil, err
	}

	lostMsg := fmt.Sprintf("Potential match found for your lost %s! Match score: %.2f%%", lostReport.ItemName, score)
	if err := s.notificationSvc.Notify(ctx, lostReport.UserID, &match.ID, lostMsg); err != nil {
		return nil, err
	}

	foundMsg := fmt.Sprintf("Your found %s may match a lost item! Match score: %.2f%%", foundReport.ItemName, score)
	if err := s.notificationSvc.Notify(ctx, foundReport.UserID, &match.ID, foundMsg); err != nil {
		return nil, err
	}

	return match, nil
}

func lostCandidate(r *report.LostReport) Candidate {
	return Candidate{
		ItemName:    r.ItemName,
		Category:    r.Category,
		Description: r.Description,
		Location:    r.Location,
		Date:        r.DateLost,
	}
}

func foundCandidate(r *report.FoundReport) Candidate {
	return Candidate{
		ItemName:    r.ItemName,
		Category:    r.Category,
		Description: r.Description,
		Location:    r.Location,
		Date:        r.DateFound,
	}
}

// --- Match queries ---

// MatchesForLostReport returns the stored matches for a lost report, best
// score first. Only the report owner or an admin may view them.
func (s *Service) MatchesForLostReport(ctx context.Context, lostID, requesterID uuid.UUID, isAdmin bool) ([]Match, error) {
	lostReport, err := s.reportRepo.FindLostByID(ctx, lostID)
	if err != nil {
		return nil, err
	}
	if !isAdmin && lostReport.UserID != requesterID {
		return nil, common.ErrForbidden.WithDetails("You may only view matches for your own reports.")
	}
	return s.matchRepo.FindForLostReport(ctx, lostID)
}

// MatchesForFoundReport returns the stored matches for a found report, best
// score first. Only the report owner or an admin may view them.
func (s *Service) MatchesForFoundReport(ctx context.Context, foundID, requesterID uuid.UUID, isAdmin bool) ([]Match, error) {
	foundReport, err := s.reportRepo.FindFoundByID(ctx, foundID)
	if err != nil {
		return nil, err
	}
	if !isAdmin && foundReport.UserID != requesterID {
		return nil, common.ErrForbidden.WithDetails("You may only view matches for your own reports.")
	}
	return s.matchRepo.FindForFoundReport(ctx, foundID)
}

// VerifyMatch marks a match as verified by an administrator.
func (s *Service) VerifyMatch(ctx context.Context, matchID uuid.UUID) (*Match, error) {
	if err := s.matchRepo.Verify(ctx, matchID); err != nil {
		return nil, err
	}
	match, err := s.matchRepo.FindByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Match verified",
		zap.String("matchID", matchID.String()),
		zap.Float64("score", match.Score))
	return match, nil
}
