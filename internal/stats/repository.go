// File: internal/stats/repository.go
package stats

import (
	"context"

	"campus_lostfound_backend/internal/common"
	"campus_lostfound_backend/internal/matching"
	"campus_lostfound_backend/internal/report"
	"campus_lostfound_backend/internal/user"

	"gorm.io/gorm"
)

// Overview is the admin dashboard snapshot of portal activity.
type Overview struct {
	TotalLost       int64 `json:"total_lost"`
	UnfoundLost     int64 `json:"unfound_lost"`
	TotalFound      int64 `json:"total_found"`
	UnclaimedFound  int64 `json:"unclaimed_found"`
	VerifiedMatches int64 `json:"verified_matches"`
	TotalStudents   int64 `json:"total_students"`
}

// Repository defines the interface for statistics queries.
type Repository interface {
	Overview(ctx context.Context) (*Overview, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewGORMRepository creates a new GORM statistics repository.
func NewGORMRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Overview(ctx context.Context) (*Overview, error) {
	db := r.db.WithContext(ctx)
	var o Overview

	if err := db.Model(&report.LostReport{}).Count(&o.TotalLost).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&report.LostReport{}).Where("status = ?", report.LostStatusUnfound).Count(&o.UnfoundLost).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&report.FoundReport{}).Count(&o.TotalFound).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&report.FoundReport{}).Where("status = ?", report.FoundStatusUnclaimed).Count(&o.UnclaimedFound).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&matching.Match{}).Where("verified = ?", true).Count(&o.VerifiedMatches).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&user.User{}).Where("role = ?", common.RoleStudent).Count(&o.TotalStudents).Error; err != nil {
		return nil, err
	}
	return &o, nil
}
