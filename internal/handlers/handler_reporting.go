package handlers

import (
	"fmt"
	"net/http"

	"github.com/TrenchWorks/workforce_payroll_app/internal/apperrors"
	"github.com/TrenchWorks/workforce_payroll_app/internal/core/domain"
	portssvc "github.com/TrenchWorks/workforce_payroll_app/internal/core/ports/services"
	"github.com/TrenchWorks/workforce_payroll_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := &reportingHandler{reportingService: reportingService}

	reports := rg.Group("/reports", middleware.RequireRoles(domain.RoleSupervisor))
	{
		reports.GET("/payroll", h.payrollSummary)
		reports.GET("/activity", h.workerActivity)
	}
}

// payrollSummary godoc
// @Summary Payroll summary report
// @Description Per-labourer totals for a project and date range. format=csv or format=pdf downloads an export; the default is JSON.
// @Tags reports
// @Produce json
// @Param projectID query string true "Project ID"
// @Param startDate query string true "Range start (YYYY-MM-DD)"
// @Param endDate query string true "Range end (YYYY-MM-DD)"
// @Param format query string false "Output format" Enums(json, csv, pdf)
// @Success 200 {object} domain.PayrollReport
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/payroll [get]
func (h *reportingHandler) payrollSummary(c *gin.Context) {
	report, err := h.reportingService.PayrollSummary(c.Request.Context(), c.Query("projectID"), c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		respondServiceError(c, err, "Failed to build payroll report")
		return
	}

	switch c.DefaultQuery("format", "json") {
	case "json":
		c.JSON(http.StatusOK, report)
	case "csv":
		data, err := h.reportingService.RenderPayrollCSV(report)
		if err != nil {
			respondServiceError(c, err, "Failed to render payroll CSV")
			return
		}
		sendExport(c, data, "text/csv", fmt.Sprintf("payroll_%s_%s.csv", report.StartDate, report.EndDate))
	case "pdf":
		data, err := h.reportingService.RenderPayrollPDF(report)
		if err != nil {
			respondServiceError(c, err, "Failed to render payroll PDF")
			return
		}
		sendExport(c, data, "application/pdf", fmt.Sprintf("payroll_%s_%s.pdf", report.StartDate, report.EndDate))
	default:
		respondServiceError(c, fmt.Errorf("%w: unknown format", apperrors.ErrValidation), "")
	}
}

// workerActivity godoc
// @Summary Worker activity report
// @Description Work-log aggregation grouped by day, week or month, optionally narrowed to one labourer. format=csv downloads an export.
// @Tags reports
// @Produce json
// @Param projectID query string true "Project ID"
// @Param startDate query string true "Range start (YYYY-MM-DD)"
// @Param endDate query string true "Range end (YYYY-MM-DD)"
// @Param groupBy query string false "Bucketing" Enums(none, daily, weekly, monthly)
// @Param labourerID query string false "Narrow to one labourer"
// @Param format query string false "Output format" Enums(json, csv)
// @Success 200 {object} domain.ActivityReport
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/activity [get]
func (h *reportingHandler) workerActivity(c *gin.Context) {
	report, err := h.reportingService.WorkerActivity(
		c.Request.Context(),
		c.Query("projectID"),
		c.Query("startDate"),
		c.Query("endDate"),
		domain.GroupBy(c.Query("groupBy")),
		c.Query("labourerID"),
	)
	if err != nil {
		respondServiceError(c, err, "Failed to build activity report")
		return
	}

	switch c.DefaultQuery("format", "json") {
	case "json":
		c.JSON(http.StatusOK, report)
	case "csv":
		data, err := h.reportingService.RenderActivityCSV(report)
		if err != nil {
			respondServiceError(c, err, "Failed to render activity CSV")
			return
		}
		sendExport(c, data, "text/csv", fmt.Sprintf("activity_%s_%s.csv", report.StartDate, report.EndDate))
	default:
		respondServiceError(c, fmt.Errorf("%w: unknown format", apperrors.ErrValidation), "")
	}
}

func sendExport(c *gin.Context, data []byte, contentType, filename string) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, data)
}
