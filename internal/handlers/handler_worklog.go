package handlers

import (
	"net/http"

	"github.com/TrenchWorks/workforce_payroll_app/internal/core/domain"
	portssvc "github.com/TrenchWorks/workforce_payroll_app/internal/core/ports/services"
	"github.com/TrenchWorks/workforce_payroll_app/internal/dto"
	"github.com/TrenchWorks/workforce_payroll_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type workLogHandler struct {
	workLogService portssvc.WorkLogSvcFacade
}

func registerWorkLogRoutes(rg *gin.RouterGroup, workLogService portssvc.WorkLogSvcFacade) {
	h := &workLogHandler{workLogService: workLogService}

	logs := rg.Group("/work-logs")
	{
		logs.POST("", middleware.RequireRoles(domain.RoleSupervisor), h.createWorkLog)
		logs.PUT("/:workLogID", middleware.RequireRoles(domain.RoleSupervisor), h.updateWorkLog)
		logs.GET("", middleware.RequireRoles(domain.RoleSupervisor), h.listWorkLogs)
		logs.GET("/labourer/:labourerID", h.listWorkLogsByLabourer)
	}
}

// createWorkLog godoc
// @Summary Record today's work for a labourer
// @Description The work date must be today; historical entries go through correction requests. Earnings are computed from the rates in force.
// @Tags work-logs
// @Accept json
// @Produce json
// @Param workLog body dto.CreateWorkLogRequest true "Work log details"
// @Success 201 {object} dto.WorkLogResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /work-logs [post]
func (h *workLogHandler) createWorkLog(c *gin.Context) {
	var req dto.CreateWorkLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	recorderUserID, _ := middleware.GetUserIDFromContext(c)
	log, err := h.workLogService.CreateWorkLog(c.Request.Context(), req, recorderUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to create work log")
		return
	}
	c.JSON(http.StatusCreated, dto.ToWorkLogResponse(log))
}

// updateWorkLog godoc
// @Summary Adjust today's work log
// @Description Only logs dated today may be edited; earnings are recomputed.
// @Tags work-logs
// @Accept json
// @Produce json
// @Param workLogID path string true "Work log ID"
// @Param workLog body dto.UpdateWorkLogRequest true "Metres to adjust"
// @Success 200 {object} dto.WorkLogResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /work-logs/{workLogID} [put]
func (h *workLogHandler) updateWorkLog(c *gin.Context) {
	var req dto.UpdateWorkLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, _ := middleware.GetUserIDFromContext(c)
	log, err := h.workLogService.UpdateWorkLog(c.Request.Context(), c.Param("workLogID"), req, updaterUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to update work log")
		return
	}
	c.JSON(http.StatusOK, dto.ToWorkLogResponse(log))
}

// listWorkLogs godoc
// @Summary List a project's work logs in a date range
// @Tags work-logs
// @Produce json
// @Param projectID query string true "Project ID"
// @Param startDate query string true "Range start (YYYY-MM-DD)"
// @Param endDate query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} dto.ListWorkLogsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /work-logs [get]
func (h *workLogHandler) listWorkLogs(c *gin.Context) {
	logs, err := h.workLogService.ListWorkLogs(c.Request.Context(), c.Query("projectID"), c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		respondServiceError(c, err, "Failed to list work logs")
		return
	}
	c.JSON(http.StatusOK, toWorkLogList(logs))
}

// listWorkLogsByLabourer godoc
// @Summary List a labourer's work logs in a date range
// @Description Labourers can review their own recorded work through this route.
// @Tags work-logs
// @Produce json
// @Param labourerID path string true "Labourer ID"
// @Param startDate query string true "Range start (YYYY-MM-DD)"
// @Param endDate query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} dto.ListWorkLogsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /work-logs/labourer/{labourerID} [get]
func (h *workLogHandler) listWorkLogsByLabourer(c *gin.Context) {
	logs, err := h.workLogService.ListWorkLogsByLabourer(c.Request.Context(), c.Param("labourerID"), c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		respondServiceError(c, err, "Failed to list work logs")
		return
	}
	c.JSON(http.StatusOK, toWorkLogList(logs))
}

func toWorkLogList(logs []domain.WorkLog) dto.ListWorkLogsResponse {
	resp := dto.ListWorkLogsResponse{WorkLogs: make([]dto.WorkLogResponse, 0, len(logs))}
	for i := range logs {
		resp.WorkLogs = append(resp.WorkLogs, dto.ToWorkLogResponse(&logs[i]))
	}
	return resp
}
