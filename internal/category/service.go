// File: internal/category/service.go
package category

import (
	"context"
	"strings"

	"campus_lostfound_backend/internal/common"
	"campus_lostfound_backend/internal/config"

	"github.com/google/uuid"
	"github.com/gosimple/slug" // For robust slug generation
	"go.uber.org/zap"
)

// Service defines the interface for category-related business logic.
type Service interface {
	// Admin methods
	AdminCreateCategory(ctx context.Context, req AdminCreateCategoryRequest) (*Category, error)
	AdminUpdateCategory(ctx context.Context, id uuid.UUID, req AdminCreateCategoryRequest) (*Category, error)
	AdminDeleteCategory(ctx context.Context, id uuid.UUID) error

	// Public methods
	GetCategoryByID(ctx context.Context, id uuid.UUID) (*Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*Category, error)
	GetAllCategories(ctx context.Context) ([]Category, error)

	// Startup
	SeedDefaults(ctx context.Context) error
}

// defaultCategories is the canonical campus taxonomy seeded on first start.
var defaultCategories = []Category{
	{Name: "Electronics", Aliases: []string{"Phones", "Laptops", "Chargers"}},
	{Name: "Documents", Aliases: []string{"ID Cards", "Papers"}},
	{Name: "Clothing", Aliases: []string{"Jackets", "Apparel"}},
	{Name: "Accessories", Aliases: []string{"Bags", "Jewelry", "Watches"}},
	{Name: "Books", Aliases: []string{"Textbooks", "Notebooks"}},
	{Name: "Keys", Aliases: []string{"Key Chains"}},
	{Name: "Other", Aliases: nil},
}

type service struct {
	repo   Repository
	logger *zap.Logger
	config *config.Config
}

// NewService creates a new category service.
func NewService(repo Repository, logger *zap.Logger, cfg *config.Config) Service {
	return &service{
		repo:   repo,
		logger: logger,
		config: cfg,
	}
}

// --- Admin Methods ---

func (s *service) AdminCreateCategory(ctx context.Context, req AdminCreateCategoryRequest) (*Category, error) {
	finalSlug := strings.TrimSpace(req.Slug)
	if finalSlug == "" {
		finalSlug = slug.Make(req.Name)
	} else {
		finalSlug = slug.Make(finalSlug)
	}

	category := &Category{
		Name:        strings.TrimSpace(req.Name),
		Slug:        finalSlug,
		Description: req.Description,
		Aliases:     req.Aliases,
	}

	if err := s.repo.Create(ctx, category); err != nil {
		s.logger.Error("Failed to create category", zap.Error(err), zap.String("name", req.Name))
		return nil, err
	}
	s.logger.Info("Category created successfully", zap.String("id", category.ID.String()), zap.String("name", category.Name))
	return category, nil
}

func (s *service) AdminUpdateCategory(ctx context.Context, id uuid.UUID, req AdminCreateCategoryRequest) (*Category, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	category.Name = strings.TrimSpace(req.Name)
	if req.Slug != "" {
		category.Slug = slug.Make(req.Slug)
	} else {
		category.Slug = slug.Make(req.Name)
	}
	category.Description = req.Description
	category.Aliases = req.Aliases

	if err := s.repo.Update(ctx, category); err != nil {
		s.logger.Error("Failed to update category", zap.Error(err), zap.String("id", id.String()))
		return nil, common.ErrInternalServer.WithDetails("Could not update category.")
	}
	return category, nil
}

func (s *service) AdminDeleteCategory(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// --- Public Methods ---

func (s *service) GetCategoryByID(ctx context.Context, id uuid.UUID) (*Category, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) GetCategoryBySlug(ctx context.Context, categorySlug string) (*Category, error) {
	return s.repo.FindBySlug(ctx, categorySlug)
}

func (s *service) GetAllCategories(ctx context.Context) ([]Category, error) {
	return s.repo.FindAll(ctx)
}

// SeedDefaults inserts the canonical campus categories if the table is empty.
func (s *service) SeedDefaults(ctx context.Context) error {
	if !s.config.SeedDefaultCategories {
		s.logger.Info("Category seeding disabled by configuration.")
		return nil
	}

	existing, err := s.repo.FindAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	for i := range defaultCategories {
		cat := defaultCategories[i]
		cat.Slug = slug.Make(cat.Name)
		if err := s.repo.Create(ctx, &cat); err != nil {
			s.logger.Error("Failed to seed category", zap.String("name", cat.Name), zap.Error(err))
			return err
		}
	}
	s.logger.Info("Seeded default categories", zap.Int("count", len(defaultCategories)))
	return nil
}
