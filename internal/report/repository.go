// File: internal/report/repository.go
package report

import (
	"context"
	"errors"

	"campus_lostfound_backend/internal/common"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository defines the interface for lost/found report data operations.
type Repository interface {
	CreateLost(ctx context.Context, report *LostReport) error
	CreateFound(ctx context.Context, report *FoundReport) error

	FindLostByID(ctx context.Context, id uuid.UUID) (*LostReport, error)
	FindFoundByID(ctx context.Context, id uuid.UUID) (*FoundReport, error)

	// ListOpenLost returns lost reports still awaiting their item
	// (status 'unfound'), newest first, with the reporter preloaded.
	ListOpenLost(ctx context.Context) ([]LostReport, error)
	// ListOpenFound returns found reports nobody has claimed yet
	// (status 'unclaimed'), newest first, with the reporter preloaded.
	ListOpenFound(ctx context.Context) ([]FoundReport, error)

	ListLostByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]LostReport, *common.Pagination, error)
	ListFoundByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]FoundReport, *common.Pagination, error)

	ListAllLost(ctx context.Context, status string, page, pageSize int) ([]LostReport, *common.Pagination, error)
	ListAllFound(ctx context.Context, status string, page, pageSize int) ([]FoundReport, *common.Pagination, error)

	UpdateLostStatus(ctx context.Context, id uuid.UUID, status string) error
	UpdateFoundStatus(ctx context.Context, id uuid.UUID, status string) error
}

type gormRepository struct {
	db *gorm.DB
}

// NewGORMRepository creates a new GORM report repository.
func NewGORMRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) CreateLost(ctx context.Context, report *LostReport) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *gormRepository) CreateFound(ctx context.Context, report *FoundReport) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *gormRepository) FindLostByID(ctx context.Context, id uuid.UUID) (*LostReport, error) {
	var report LostReport
	err := r.db.WithContext(ctx).Preload("User").First(&report, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("Lost report not found.")
		}
		return nil, err
	}
	return &report, nil
}

func (r *gormRepository) FindFoundByID(ctx context.Context, id uuid.UUID) (*FoundReport, error) {
	var report FoundReport
	err := r.db.WithContext(ctx).Preload("User").First(&report, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("Found report not found.")
		}
		return nil, err
	}
	return &report, nil
}

func (r *gormRepository) ListOpenLost(ctx context.Context) ([]LostReport, error) {
	var reports []LostReport
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("status = ?", LostStatusUnfound).
		Order("created_at DESC").
		Find(&reports).Error
	return reports, err
}

func (r *gormRepository) ListOpenFound(ctx context.Context) ([]FoundReport, error) {
	var reports []FoundReport
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("status = ?", FoundStatusUnclaimed).
		Order("created_at DESC").
		Find(&reports).Error
	return reports, err
}

func (r *gormRepository) ListLostByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]LostReport, *common.Pagination, error) {
	var reports []LostReport
	var total int64

	query := r.db.WithContext(ctx).Model(&LostReport{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, nil, err
	}

	err := query.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&reports).Error
	if err != nil {
		return nil, nil, err
	}
	return reports, common.NewPagination(total, page, pageSize), nil
}

func (r *gormRepository) ListFoundByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]FoundReport, *common.Pagination, error) {
	var reports []FoundReport
	var total int64

	query := r.db.WithContext(ctx).Model(&FoundReport{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, nil, err
	}

	err := query.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&reports).Error
	if err != nil {
		return nil, nil, err
	}
	return reports, common.NewPagination(total, page, pageSize), nil
}

func (r *gormRepository) ListAllLost(ctx context.Context, status string, page, pageSize int) ([]LostReport, *common.Pagination, error) {
	var reports []LostReport
	var total int64

	query := r.db.WithContext(ctx).Model(&LostReport{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, nil, err
	}

	err := query.
		Preload("User").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&reports).Error
	if err != nil {
		return nil, nil, err
	}
	return reports, common.NewPagination(total, page, pageSize), nil
}

func (r *gormRepository) ListAllFound(ctx context.Context, status string, page, pageSize int) ([]FoundReport, *common.Pagination, error) {
	var reports []FoundReport
	var total int64

	query := r.db.WithContext(ctx).Model(&FoundReport{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, nil, err
	}

	err := query.
		Preload("User").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&reports).Error
	if err != nil {
		return nil, nil, err
	}
	return reports, common.NewPagination(total, page, pageSize), nil
}

func (r *gormRepository) UpdateLostStatus(ctx context.Context, id uuid.UUID, status string) error {
	result := r.db.WithContext(ctx).Model(&LostReport{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrNotFound.WithDetails("Lost report not found.")
	}
	return nil
}

func (r *gormRepository) UpdateFoundStatus(ctx context.Context, id uuid.UUID, status string) error {
	result := r.db.WithContext(ctx).Model(&FoundReport{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrNotFound.WithDetails("Found report not found.")
	}
	return nil
}
