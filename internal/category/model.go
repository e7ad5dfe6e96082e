// File: internal/category/model.go
package category

import (
	"time"

	"campus_lostfound_backend/internal/common"

	"github.com/google/uuid"
	"github.com/lib/pq" // For pq.StringArray
)

// Category represents one entry of the campus item taxonomy. Reports store the
// category name as plain text; these rows back the selection UI and admin tooling.
type Category struct {
	common.BaseModel
	Name        string         `gorm:"type:varchar(100);not null;uniqueIndex:idx_categories_name,unique"`
	Slug        string         `gorm:"type:varchar(100);not null;uniqueIndex:idx_categories_slug,unique"`
	Description *string        `gorm:"type:text"`
	Aliases     pq.StringArray `gorm:"type:text[]"` // Alternative names, e.g. "Phones" for Electronics
}

// TableName specifies the table name for the Category model.
func (Category) TableName() string {
	return "categories"
}

// --- DTOs ---

// AdminCreateCategoryRequest defines the payload for creating or updating a category.
type AdminCreateCategoryRequest struct {
	Name        string   `json:"name" binding:"required,min=2,max=100"`
	Slug        string   `json:"slug,omitempty" binding:"omitempty,max=100"`
	Description *string  `json:"description,omitempty"`
	Aliases     []string `json:"aliases,omitempty" binding:"omitempty,dive,max=100"`
}

// CategoryResponse defines the structure for category data sent in API responses.
type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description,omitempty"`
	Aliases     []string  `json:"aliases,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToCategoryResponse converts a Category model to a CategoryResponse DTO.
func ToCategoryResponse(category *Category) CategoryResponse {
	return CategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Slug:        category.Slug,
		Description: category.Description,
		Aliases:     category.Aliases,
		CreatedAt:   category.CreatedAt,
		UpdatedAt:   category.UpdatedAt,
	}
}
