// File: internal/matching/model.go
package matching

import (
	"time"

	"campus_lostfound_backend/internal/common"
	"campus_lostfound_backend/internal/report"

	"github.com/google/uuid"
)

// Match links a lost report to a found report with a similarity score. The
// (lost, found) pair is unique: re-running reconciliation refreshes the score
// of an existing row instead of duplicating it.
type Match struct {
	common.BaseModel
	LostID      uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex:idx_matches_pair,unique"`
	FoundID     uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex:idx_matches_pair,unique"`
	LostReport  report.LostReport  `gorm:"foreignKey:LostID"`
	FoundReport report.FoundReport `gorm:"foreignKey:FoundID"`
	Score       float64            `gorm:"not null"`
	Verified    bool               `gorm:"not null;default:false"`
	MatchedAt   time.Time          `gorm:"not null"`
}

// TableName specifies the table name for the Match model.
func (Match) TableName() string {
	return "matches"
}

// --- DTOs ---

// MatchReportView is the slim view of one side of a match in API responses.
type MatchReportView struct {
	ID       uuid.UUID `json:"id"`
	ItemName string    `json:"item_name"`
	Category string    `json:"category"`
	Location string    `json:"location,omitempty"`
	Date     string    `json:"date,omitempty"`
	Status   string    `json:"status"`
	Username string    `json:"username,omitempty"`
}

// MatchResponse defines the match data sent in API responses.
type MatchResponse struct {
	ID          uuid.UUID       `json:"id"`
	Score       float64         `json:"score"`
	Verified    bool            `json:"verified"`
	MatchedAt   time.Time       `json:"matched_at"`
	LostReport  MatchReportView `json:"lost_report"`
	FoundReport MatchReportView `json:"found_report"`
}

// ToMatchResponse converts a Match model (with both reports preloaded) to a
// MatchResponse DTO.
func ToMatchResponse(m *Match) MatchResponse {
	resp := MatchResponse{
		ID:        m.ID,
		Score:     m.Score,
		Verified:  m.Verified,
		MatchedAt: m.MatchedAt,
		LostReport: MatchReportView{
			ID:       m.LostID,
			ItemName: m.LostReport.ItemName,
			Category: m.LostReport.Category,
			Location: m.LostReport.Location,
			Date:     m.LostReport.DateLost,
			Status:   m.LostReport.Status,
		},
		FoundReport: MatchReportView{
			ID:       m.FoundID,
			ItemName: m.FoundReport.ItemName,
			Category: m.FoundReport.Category,
			Location: m.FoundReport.Location,
			Date:     m.FoundReport.DateFound,
			Status:   m.FoundReport.Status,
		},
	}
	if m.LostReport.User.ID != uuid.Nil {
		resp.LostReport.Username = m.LostReport.User.Username
	}
	if m.FoundReport.User.ID != uuid.Nil {
		resp.FoundReport.Username = m.FoundReport.User.Username
	}
	return resp
}
