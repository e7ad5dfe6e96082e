// File: internal/stats/handler.go
package stats

import (
	"campus_lostfound_backend/internal/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for statistics handlers.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler creates a new statistics handler.
func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes sets up the admin statistics route.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, authMW gin.HandlerFunc, adminRoleMW gin.HandlerFunc) {
	group := router.Group("/admin/stats")
	group.Use(authMW)
	group.Use(adminRoleMW)
	{
		group.GET("", h.overview)
	}
}

func (h *Handler) overview(c *gin.Context) {
	overview, err := h.service.Overview(c.Request.Context())
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Statistics retrieved successfully.", overview)
}
