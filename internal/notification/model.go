// File: internal/notification/model.go
package notification

import (
	"time"

	"campus_lostfound_backend/internal/common"

	"github.com/google/uuid"
)

// Notification is an in-app message for a user, typically announcing a
// potential match for one of their reports.
type Notification struct {
	common.BaseModel
	UserID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	MatchID *uuid.UUID `gorm:"type:uuid;index"`
	Message string     `gorm:"type:text;not null"`
	IsRead  bool       `gorm:"not null;default:false;index"`
}

// TableName specifies the table name for the Notification model.
func (Notification) TableName() string {
	return "notifications"
}

// --- DTOs ---

// NotificationResponse defines the notification data sent in API responses.
type NotificationResponse struct {
	ID        uuid.UUID  `json:"id"`
	MatchID   *uuid.UUID `json:"match_id,omitempty"`
	Message   string     `json:"message"`
	IsRead    bool       `json:"is_read"`
	CreatedAt time.Time  `json:"created_at"`
}

// ToNotificationResponse converts a Notification model to its response DTO.
func ToNotificationResponse(n *Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		MatchID:   n.MatchID,
		Message:   n.Message,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}
