// File: internal/category/handler.go
package category

import (
	"errors"

	"campus_lostfound_backend/internal/common"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for category handlers.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler creates a new category handler.
func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes sets up the routes for category operations.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, authMW gin.HandlerFunc, adminRoleMW gin.HandlerFunc) {
	categoryGroup := router.Group("/categories")
	{
		categoryGroup.GET("", h.getAllCategories)
		categoryGroup.GET("/:slug", h.getCategoryBySlug)
	}

	adminCategoryGroup := router.Group("/admin/categories")
	adminCategoryGroup.Use(authMW)
	adminCategoryGroup.Use(adminRoleMW)
	{
		adminCategoryGroup.POST("", h.adminCreateCategory)
		adminCategoryGroup.PUT("/:id", h.adminUpdateCategory)
		adminCategoryGroup.DELETE("/:id", h.adminDeleteCategory)
	}
}

func (h *Handler) getAllCategories(c *gin.Context) {
	categories, err := h.service.GetAllCategories(c.Request.Context())
	if err != nil {
		common.RespondWithError(c, err)
		return
	}

	responses := make([]CategoryResponse, len(categories))
	for i := range categories {
		responses[i] = ToCategoryResponse(&categories[i])
	}
	common.RespondOK(c, "Categories retrieved successfully.", responses)
}

func (h *Handler) getCategoryBySlug(c *gin.Context) {
	category, err := h.service.GetCategoryBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Category retrieved successfully.", ToCategoryResponse(category))
}

func (h *Handler) adminCreateCategory(c *gin.Context) {
	var req AdminCreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			common.RespondWithError(c, common.NewValidationAPIError(common.FormatValidationErrors(ve)))
			return
		}
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Invalid request payload."))
		return
	}

	category, err := h.service.AdminCreateCategory(c.Request.Context(), req)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondCreated(c, "Category created successfully.", ToCategoryResponse(category))
}

func (h *Handler) adminUpdateCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Invalid category ID format."))
		return
	}

	var req AdminCreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			common.RespondWithError(c, common.NewValidationAPIError(common.FormatValidationErrors(ve)))
			return
		}
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Invalid request payload."))
		return
	}

	category, err := h.service.AdminUpdateCategory(c.Request.Context(), id, req)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Category updated successfully.", ToCategoryResponse(category))
}

func (h *Handler) adminDeleteCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Invalid category ID format."))
		return
	}

	if err := h.service.AdminDeleteCategory(c.Request.Context(), id); err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Category deleted successfully.", nil)
}
