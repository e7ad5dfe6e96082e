// File: internal/user/model.go
package user

import (
	"time"

	"campus_lostfound_backend/internal/common"

	"github.com/google/uuid"
)

// User represents the user model in the database.
type User struct {
	common.BaseModel         // Embeds ID, CreatedAt, UpdatedAt
	Username         string  `gorm:"type:varchar(100);not null;uniqueIndex"`
	Email            string  `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash     string  `gorm:"type:varchar(255);not null"`
	FullName         string  `gorm:"type:varchar(150);not null"`
	Phone            *string `gorm:"type:varchar(50)"`
	Role             string  `gorm:"type:varchar(50);not null;default:'student'"` // "student" or "admin"
	LastLoginAt      *time.Time
}

// TableName specifies the table name for the User model.
func (User) TableName() string {
	return "users"
}

// Sanitize removes sensitive information like the password hash.
func (u *User) Sanitize() {
	u.PasswordHash = ""
}

func (u *User) GetID() uuid.UUID {
	return u.ID
}

func (u *User) GetUsername() string {
	return u.Username
}

func (u *User) GetRole() string {
	return u.Role
}

// --- DTOs (Data Transfer Objects) for API requests/responses ---

// UserResponse defines the structure for user data sent in API responses.
type UserResponse struct {
	ID          uuid.UUID  `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	FullName    string     `json:"full_name"`
	Phone       *string    `json:"phone,omitempty"`
	Role        string     `json:"role"`
	CreatedAt   time.Time  `json:"created_at"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

// ToUserResponse converts a User model to a UserResponse DTO.
func ToUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		FullName:    u.FullName,
		Phone:       u.Phone,
		Role:        u.Role,
		CreatedAt:   u.CreatedAt,
		LastLoginAt: u.LastLoginAt,
	}
}
