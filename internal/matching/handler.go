// File: internal/matching/handler.go
package matching

import (
	"campus_lostfound_backend/internal/common"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for match handlers.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new match handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes sets up the routes for match operations.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, authMW gin.HandlerFunc, adminRoleMW gin.HandlerFunc) {
	reportGroup := router.Group("/reports")
	reportGroup.Use(authMW)
	{
		reportGroup.GET("/lost/:id/matches", h.matchesForLostReport)
		reportGroup.GET("/found/:id/matches", h.matchesForFoundReport)
	}

	adminGroup := router.Group("/admin/matches")
	adminGroup.Use(authMW)
	adminGroup.Use(adminRoleMW)
	{
		adminGroup.POST("/:id/verify", h.verifyMatch)
	}
}

func (h *Handler) matchesForLostReport(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Invalid report ID format."))
		return
	}

	requesterID := common.GetUserIDFromContext(c)
	isAdmin := common.GetUserRoleFromContext(c) == common.RoleAdmin

	matches, err := h.service.MatchesForLostReport(c.Request.Context(), id, requesterID, isAdmin)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}

	responses := make([]MatchResponse, len(matches))
	for i := range matches {
		responses[i] = ToMatchResponse(&matches[i])
	}
	common.RespondOK(c, "Matches retrieved successfully.", responses)
}

func (h *Handler) matchesForFoundReport(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Invalid report ID format."))
		return
	}

	requesterID := common.GetUserIDFromContext(c)
	isAdmin := common.GetUserRoleFromContext(c) == common.RoleAdmin

	matches, err := h.service.MatchesForFoundReport(c.Request.Context(), id, requesterID, isAdmin)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}

	responses := make([]MatchResponse, len(matches))
	for i := range matches {
		responses[i] = ToMatchResponse(&matches[i])
	}
	common.RespondOK(c, "Matches retrieved successfully.", responses)
}

func (h *Handler) verifyMatch(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Invalid match ID format."))
		return
	}

	match, err := h.service.VerifyMatch(c.Request.Context(), id)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Match verified successfully.", ToMatchResponse(match))
}
