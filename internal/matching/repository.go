// File: internal/matching/repository.go
package matching

import (
	"context"
	"errors"

	"campus_lostfound_backend/internal/common"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository defines the interface for match data operations.
type Repository interface {
	// Upsert stores a match for the (lost, found) pair, refreshing the
	// score if the pair was already recorded. The match ID of the stored
	// row is set on the passed struct.
	Upsert(ctx context.Context, match *Match) error

	FindByID(ctx context.Context, id uuid.UUID) (*Match, error)
	FindForLostReport(ctx context.Context, lostID uuid.UUID) ([]Match, error)
	FindForFoundReport(ctx context.Context, foundID uuid.UUID) ([]Match, error)

	Verify(ctx context.Context, id uuid.UUID) error
}

type gormRepository struct {
	db *gorm.DB
}

// NewGORMRepository creates a new GORM match repository.
func NewGORMRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

// Upsert updates the score for an existing pair, or inserts a new row when
// none exists. Done as update-then-insert inside a transaction so it behaves
// the same on PostgreSQL and SQLite; a concurrent insert of the same pair
// surfaces as a unique violation and is returned to the caller.
func (r *gormRepository) Upsert(ctx context.Context, match *Match) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing Match
		err := tx.Where("lost_id = ? AND found_id = ?", match.LostID, match.FoundID).First(&existing).Error
		if err == nil {
			updateErr := tx.Model(&existing).Update("score", match.Score).Error
			if updateErr != nil {
				return updateErr
			}
			match.ID = existing.ID
			match.Verified = existing.Verified
			match.MatchedAt = existing.MatchedAt
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Create(match).Error
	})
}

func (r *gormRepository) FindByID(ctx context.Context, id uuid.UUID) (*Match, error) {
	var match Match
	err := r.db.WithContext(ctx).
		Preload("LostReport").
		Preload("LostReport.User").
		Preload("FoundReport").
		Preload("FoundReport.User").
		First(&match, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("Match not found.")
		}
		return nil, err
	}
	return &match, nil
}

func (r *gormRepository) FindForLostReport(ctx context.Context, lostID uuid.UUID) ([]Match, error) {
	var matches []Match
	err := r.db.WithContext(ctx).
		Preload("LostReport").
		Preload("LostReport.User").
		Preload("FoundReport").
		Preload("FoundReport.User").
		Where("lost_id = ?", lostID).
		Order("score DESC, matched_at DESC").
		Find(&matches).Error
	return matches, err
}

func (r *gormRepository) FindForFoundReport(ctx context.Context, foundID uuid.UUID) ([]Match, error) {
	var matches []Match
	err := r.db.WithContext(ctx).
		Preload("LostReport").
		Preload("LostReport.User").
		Preload("FoundReport").
		Preload("FoundReport.User").
		Where("found_id = ?", foundID).
		Order("score DESC, matched_at DESC").
		Find(&matches).Error
	return matches, err
}

func (r *gormRepository) Verify(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&Match{}).Where("id = ?", id).Update("verified", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrNotFound.WithDetails("Match not found.")
	}
	return nil
}
