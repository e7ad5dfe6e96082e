// File: internal/user/repository.go
package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"campus_lostfound_backend/internal/common"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository defines the interface for user data operations.
type Repository interface {
	Create(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
	ListAll(ctx context.Context, page, pageSize int) ([]User, *common.Pagination, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewGORMRepository creates a new GORM user repository.
func NewGORMRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

// Create inserts a new user record into the database.
func (r *gormRepository) Create(ctx context.Context, user *User) error {
	user.Username = strings.TrimSpace(user.Username)
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	err := r.db.WithContext(ctx).Create(user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) ||
			strings.Contains(err.Error(), "unique constraint") ||
			strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return common.ErrConflict.WithDetails("A user with this username or email already exists.")
		}
		return err
	}
	return nil
}

// FindByID retrieves a user by their primary key.
func (r *gormRepository) FindByID(ctx context.Context, id uuid.UUID) (*User, error) {
	var userModel User
	err := r.db.WithContext(ctx).First(&userModel, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("User not found.")
		}
		return nil, err
	}
	return &userModel, nil
}

// FindByUsername retrieves a user by their username.
func (r *gormRepository) FindByUsername(ctx context.Context, username string) (*User, error) {
	var userModel User
	err := r.db.WithContext(ctx).Where("username = ?", strings.TrimSpace(username)).First(&userModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("User not found with this username.")
		}
		return nil, err
	}
	return &userModel, nil
}

// FindByEmail retrieves a user by their email address.
func (r *gormRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var userModel User
	normalizedEmail := strings.ToLower(strings.TrimSpace(email))
	err := r.db.WithContext(ctx).Where("email = ?", normalizedEmail).First(&userModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("User not found with this email.")
		}
		return nil, err
	}
	return &userModel, nil
}

// UpdateLastLogin stamps the user's last successful login time.
func (r *gormRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	result := r.db.WithContext(ctx).Model(&User{}).Where("id = ?", id).Update("last_login_at", at)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrNotFound.WithDetails("User not found.")
	}
	return nil
}

// ListAll retrieves a paginated list of users, newest first. Admin use only.
func (r *gormRepository) ListAll(ctx context.Context, page, pageSize int) ([]User, *common.Pagination, error) {
	var users []User
	var total int64

	if err := r.db.WithContext(ctx).Model(&User{}).Count(&total).Error; err != nil {
		return nil, nil, err
	}

	pagination := common.NewPagination(total, page, pageSize)
	offset := (pagination.CurrentPage - 1) * pagination.PageSize

	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(pagination.PageSize).
		Offset(offset).
		Find(&users).Error
	if err != nil {
		return nil, nil, err
	}
	return users, pagination, nil
}
