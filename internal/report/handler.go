// File: internal/report/handler.go
package report

import (
	"errors"

	"campus_lostfound_backend/internal/common"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for report handlers.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler creates a new report handler.
func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes sets up the routes for report operations.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, authMW gin.HandlerFunc, adminRoleMW gin.HandlerFunc) {
	reportGroup := router.Group("/reports")
	reportGroup.Use(authMW)
	{
		reportGroup.POST("/lost", h.createLostReport)
		reportGroup.POST("/found", h.createFoundReport)
		reportGroup.GET("/lost/:id", h.getLostReport)
		reportGroup.GET("/found/:id", h.getFoundReport)
	}

	meGroup := router.Group("/me/reports")
	meGroup.Use(authMW)
	{
		meGroup.GET("/lost", h.listMyLostReports)
		meGroup.GET("/found", h.listMyFoundReports)
	}

	adminGroup := router.Group("/admin/reports")
	adminGroup.Use(authMW)
	adminGroup.Use(adminRoleMW)
	{
		adminGroup.GET("/lost", h.adminListLostReports)
		adminGroup.GET("/found", h.adminListFoundReports)
		adminGroup.PATCH("/lost/:id/status", h.adminUpdateLostStatus)
		adminGroup.PATCH("/found/:id/status", h.adminUpdateFoundStatus)
	}
}

func (h *Handler) createLostReport(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	if userID == uuid.Nil {
		common.RespondWithError(c, common.ErrUnauthorized)
		return
	}

	var req CreateLostReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			common.RespondWithError(c, common.NewValidationAPIError(common.FormatValidationErrors(ve)))
			return
		}
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Invalid request payload."))
		return
	}

	lostReport, matches, err := h.service.CreateLostReport(c.Request.Context(), userID, req)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}

	resp := ToLostReportResponse(lostReport, false)
	resp.Matches = matches
	common.RespondCreated(c, "Lost report filed successfully.", resp)
}

func (h *Handler) createFoundReport(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	if userID == uuid.Nil {
		common.RespondWithError(c, common.ErrUnauthorized)
		return
	}

	var req CreateFoundReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			common.RespondWithError(c, common.NewValidationAPIError(common.FormatValidationErrors(ve)))
			return
		}
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Invalid request payload."))
		return
	}

	foundReport, matches, err := h.service.CreateFoundReport(c.Request.Context(), userID, req)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}

	resp := ToFoundReportResponse(foundReport, false)
	resp.Matches = matches
	common.RespondCreated(c, "Found report filed successfully.", resp)
}

func (h *Handler) getLostReport(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Invalid report ID format."))
		return
	}

	lostReport, err := h.service.GetLostReport(c.Request.Context(), id)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}

	isAdmin := common.GetUserRoleFromContext(c) == common.RoleAdmin
	common.RespondOK(c, "Lost report retrieved successfully.", ToLostReportResponse(lostReport, isAdmin))
}

func (h *Handler) getFoundReport(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Invalid report ID format."))
		return
	}

	foundReport, err := h.service.GetFoundReport(c.Request.Context(), id)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}

	isAdmin := common.GetUserRoleFromContext(c) == common.RoleAdmin
	common.RespondOK(c, "Found report retrieved successfully.", ToFoundReportResponse(foundReport, isAdmin))
}

func (h *Handler) listMyLostReports(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	if userID == uuid.Nil {
		common.RespondWithError(c, common.ErrUnauthorized)
		return
	}

	page, pageSize := common.GetPaginationParams(c)
	reports, pagination, err := h.service.ListMyLostReports(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}

	responses := make([]LostReportResponse, len(reports))
	for i := range reports {
		responses[i] = ToLostReportResponse(&reports[i], false)
	}
	common.RespondPaginated(c, "Lost reports retrieved successfully.", responses, pagination)
}

func (h *Handler) listMyFoundReports(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	if userID == uuid.Nil {
		common.RespondWithError(c, common.ErrUnauthorized)
		return
	}

	page, pageSize := common.GetPaginationParams(c)
	reports, pagination, err := h.service.ListMyFoundReports(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}

	responses := make([]FoundReportResponse, len(reports))
	for i := range reports {
		responses[i] = ToFoundReportResponse(&reports[i], false)
	}
	common.RespondPaginated(c, "Found reports retrieved successfully.", responses, pagination)
}

func (h *Handler) adminListLostReports(c *gin.Context) {
	page, pageSize := common.GetPaginationParams(c)
	reports, pagination, err := h.service.AdminListLostReports(c.Request.Context(), c.Query("status"), page, pageSize)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}

	responses := make([]LostReportResponse, len(reports))
	for i := range reports {
		responses[i] = ToLostReportResponse(&reports[i], true)
	}
	common.RespondPaginated(c, "Lost reports retrieved successfully.", responses, pagination)
}

func (h *Handler) adminListFoundReports(c *gin.Context) {
	page, pageSize := common.GetPaginationParams(c)
	reports, pagination, err := h.service.AdminListFoundReports(c.Request.Context(), c.Query("status"), page, pageSize)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}

	responses := make([]FoundReportResponse, len(reports))
	for i := range reports {
		responses[i] = ToFoundReportResponse(&reports[i], true)
	}
	common.RespondPaginated(c, "Found reports retrieved successfully.", responses, pagination)
}

func (h *Handler) adminUpdateLostStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Invalid report ID format."))
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("A valid status is required."))
		return
	}

	if err := h.service.AdminUpdateLostStatus(c.Request.Context(), id, req.Status); err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Lost report status updated.", gin.H{"id": id, "status": req.Status})
}

func (h *Handler) adminUpdateFoundStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Invalid report ID format."))
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("A valid status is required."))
		return
	}

	if err := h.service.AdminUpdateFoundStatus(c.Request.Context(), id, req.Status); err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Found report status updated.", gin.H{"id": id, "status": req.Status})
}
