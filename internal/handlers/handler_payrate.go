package handlers

import (
	"net/http"

	"github.com/TrenchWorks/workforce_payroll_app/internal/core/domain"
	portssvc "github.com/TrenchWorks/workforce_payroll_app/internal/core/ports/services"
	"github.com/TrenchWorks/workforce_payroll_app/internal/dto"
	"github.com/TrenchWorks/workforce_payroll_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type payRateHandler struct {
	payRateService portssvc.PayRateSvcFacade
}

func registerPayRateRoutes(rg *gin.RouterGroup, payRateService portssvc.PayRateSvcFacade) {
	h := &payRateHandler{payRateService: payRateService}

	rates := rg.Group("/pay-rates")
	{
		rates.POST("", middleware.RequireRoles(domain.RoleAdmin), h.createPayRate)
		rates.GET("", middleware.RequireRoles(domain.RoleSupervisor), h.listPayRates)
		rates.GET("/resolve", middleware.RequireRoles(domain.RoleSupervisor), h.resolveRate)
	}
}

// createPayRate godoc
// @Summary Append a pay rate
// @Description Appends a new rate to the history; earlier rates are never edited.
// @Tags pay-rates
// @Accept json
// @Produce json
// @Param payRate body dto.CreatePayRateRequest true "Pay rate details"
// @Success 201 {object} dto.PayRateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /pay-rates [post]
func (h *payRateHandler) createPayRate(c *gin.Context) {
	var req dto.CreatePayRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, _ := middleware.GetUserIDFromContext(c)
	rate, err := h.payRateService.CreatePayRate(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to create pay rate")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPayRateResponse(rate))
}

// listPayRates godoc
// @Summary List a project's pay rate history
// @Tags pay-rates
// @Produce json
// @Param projectID query string true "Project ID"
// @Success 200 {array} dto.PayRateResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /pay-rates [get]
func (h *payRateHandler) listPayRates(c *gin.Context) {
	rates, err := h.payRateService.ListPayRates(c.Request.Context(), c.Query("projectID"))
	if err != nil {
		respondServiceError(c, err, "Failed to list pay rates")
		return
	}

	resp := make([]dto.PayRateResponse, 0, len(rates))
	for i := range rates {
		resp = append(resp, dto.ToPayRateResponse(&rates[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// resolveRate godoc
// @Summary Resolve the effective rate for a date
// @Description Returns the rate with the latest effective date on or before asOfDate.
// @Tags pay-rates
// @Produce json
// @Param projectID query string true "Project ID"
// @Param employeeTypeID query string true "Employee type ID"
// @Param category query string true "Rate category" Enums(open_trenching, close_trenching, custom)
// @Param asOfDate query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} dto.PayRateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /pay-rates/resolve [get]
func (h *payRateHandler) resolveRate(c *gin.Context) {
	rate, err := h.payRateService.ResolveRate(
		c.Request.Context(),
		c.Query("projectID"),
		c.Query("employeeTypeID"),
		domain.RateCategory(c.Query("category")),
		c.Query("asOfDate"),
	)
	if err != nil {
		respondServiceError(c, err, "Failed to resolve pay rate")
		return
	}
	c.JSON(http.StatusOK, dto.ToPayRateResponse(rate))
}
