// File: internal/report/model.go
package report

import (
	"time"

	"campus_lostfound_backend/internal/common"
	"campus_lostfound_backend/internal/user"

	"github.com/google/uuid"
)

// Lost report status lifecycle.
const (
	LostStatusUnfound = "unfound"
	LostStatusFound   = "found"
	LostStatusClosed  = "closed"
)

// Found report status lifecycle.
const (
	FoundStatusUnclaimed = "unclaimed"
	FoundStatusClaimed   = "claimed"
	FoundStatusClosed    = "closed"
)

// DateLayout is the wire format for report dates. Dates are stored as
// plain text so that a malformed value degrades scoring instead of
// failing the whole report.
const DateLayout = "2006-01-02"

// LostReport is a student's record of an item they lost on campus.
type LostReport struct {
	common.BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	User        user.User `gorm:"foreignKey:UserID"`
	ItemName    string    `gorm:"type:varchar(255);not null"`
	Category    string    `gorm:"type:varchar(100);not null;index"`
	Description string    `gorm:"type:text"`
	Location    string    `gorm:"type:varchar(255)"`
	DateLost    string    `gorm:"type:varchar(32)"`
	Status      string    `gorm:"type:varchar(20);not null;default:'unfound';index"`
}

// TableName specifies the table name for the LostReport model.
func (LostReport) TableName() string {
	return "lost_reports"
}

// FoundReport is a record of an item somebody found and handed in.
type FoundReport struct {
	common.BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	User        user.User `gorm:"foreignKey:UserID"`
	ItemName    string    `gorm:"type:varchar(255);not null"`
	Category    string    `gorm:"type:varchar(100);not null;index"`
	Description string    `gorm:"type:text"`
	Location    string    `gorm:"type:varchar(255)"`
	DateFound   string    `gorm:"type:varchar(32)"`
	Status      string    `gorm:"type:varchar(20);not null;default:'unclaimed';index"`
}

// TableName specifies the table name for the FoundReport model.
func (FoundReport) TableName() string {
	return "found_reports"
}

// --- DTOs ---

// CreateLostReportRequest defines the payload for filing a lost report.
type CreateLostReportRequest struct {
	ItemName    string `json:"item_name" binding:"required,min=2,max=255"`
	Category    string `json:"category" binding:"required,max=100"`
	Description string `json:"description,omitempty" binding:"omitempty,max=5000"`
	Location    string `json:"location,omitempty" binding:"omitempty,max=255"`
	DateLost    string `json:"date_lost" binding:"required,datetime=2006-01-02"`
}

// CreateFoundReportRequest defines the payload for filing a found report.
type CreateFoundReportRequest struct {
	ItemName    string `json:"item_name" binding:"required,min=2,max=255"`
	Category    string `json:"category" binding:"required,max=100"`
	Description string `json:"description,omitempty" binding:"omitempty,max=5000"`
	Location    string `json:"location,omitempty" binding:"omitempty,max=255"`
	DateFound   string `json:"date_found" binding:"required,datetime=2006-01-02"`
}

// UpdateStatusRequest defines the admin payload for changing a report status.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=unfound found closed unclaimed claimed"`
}

// MatchSummary is the advisory payload attached to a create response when
// reconciliation produced matches above the acceptance threshold.
type MatchSummary struct {
	MatchID  uuid.UUID `json:"match_id"`
	Score    float64   `json:"score"`
	ReportID uuid.UUID `json:"report_id"`
	ItemName string    `json:"item_name"`
	Category string    `json:"category"`
	Location string    `json:"location,omitempty"`
}

// LostReportResponse defines the lost report data sent in API responses.
type LostReportResponse struct {
	ID          uuid.UUID          `json:"id"`
	UserID      uuid.UUID          `json:"user_id"`
	Username    string             `json:"username,omitempty"`
	ItemName    string             `json:"item_name"`
	Category    string             `json:"category"`
	Description string             `json:"description,omitempty"`
	Location    string             `json:"location,omitempty"`
	DateLost    string             `json:"date_lost"`
	Status      string             `json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
	Matches     []MatchSummary     `json:"matches,omitempty"`
	Owner       *user.UserResponse `json:"owner,omitempty"`
}

// FoundReportResponse defines the found report data sent in API responses.
type FoundReportResponse struct {
	ID          uuid.UUID          `json:"id"`
	UserID      uuid.UUID          `json:"user_id"`
	Username    string             `json:"username,omitempty"`
	ItemName    string             `json:"item_name"`
	Category    string             `json:"category"`
	Description string             `json:"description,omitempty"`
	Location    string             `json:"location,omitempty"`
	DateFound   string             `json:"date_found"`
	Status      string             `json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
	Matches     []MatchSummary     `json:"matches,omitempty"`
	Owner       *user.UserResponse `json:"owner,omitempty"`
}

// ToLostReportResponse converts a LostReport model to its response DTO.
// Owner contact details are attached only when includeOwner is true.
func ToLostReportResponse(r *LostReport, includeOwner bool) LostReportResponse {
	resp := LostReportResponse{
		ID:          r.ID,
		UserID:      r.UserID,
		ItemName:    r.ItemName,
		Category:    r.Category,
		Description: r.Description,
		Location:    r.Location,
		DateLost:    r.DateLost,
		Status:      r.Status,
		CreatedAt:   r.CreatedAt,
	}
	if r.User.ID != uuid.Nil {
		resp.Username = r.User.Username
		if includeOwner {
			ownerResp := user.ToUserResponse(&r.User)
			resp.Owner = &ownerResp
		}
	}
	return resp
}

// ToFoundReportResponse converts a FoundReport model to its response DTO.
func ToFoundReportResponse(r *FoundReport, includeOwner bool) FoundReportResponse {
	resp := FoundReportResponse{
		ID:          r.ID,
		UserID:      r.UserID,
		ItemName:    r.ItemName,
		Category:    r.Category,
		Description: r.Description,
		Location:    r.Location,
		DateFound:   r.DateFound,
		Status:      r.Status,
		CreatedAt:   r.CreatedAt,
	}
	if r.User.ID != uuid.Nil {
		resp.Username = r.User.Username
		if includeOwner {
			ownerResp := user.ToUserResponse(&r.User)
			resp.Owner = &ownerResp
		}
	}
	return resp
}
