package handlers

import (
	"net/http"

	"github.com/TrenchWorks/workforce_payroll_app/internal/core/domain"
	portssvc "github.com/TrenchWorks/workforce_payroll_app/internal/core/ports/services"
	"github.com/TrenchWorks/workforce_payroll_app/internal/dto"
	"github.com/TrenchWorks/workforce_payroll_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// paymentPeriodHandler handles the period lifecycle. Creation and listing
// live under /projects/{projectID}/payment-periods.
type paymentPeriodHandler struct {
	periodService portssvc.PaymentPeriodSvcFacade
}

func registerPaymentPeriodRoutes(rg *gin.RouterGroup, periodService portssvc.PaymentPeriodSvcFacade) {
	h := &paymentPeriodHandler{periodService: periodService}

	periods := rg.Group("/payment-periods")
	{
		periods.GET("/:periodID", h.getPaymentPeriod)
		periods.POST("/:periodID/submit", middleware.RequireRoles(domain.RoleProjectManager), h.submitPaymentPeriod)
		periods.POST("/:periodID/approve", middleware.RequireRoles(domain.RoleAdmin), h.approvePaymentPeriod)
		periods.POST("/:periodID/pay", middleware.RequireRoles(domain.RoleAdmin), h.markPaid)
	}
}

// getPaymentPeriod godoc
// @Summary Get a payment period with its entries
// @Tags payment-periods
// @Produce json
// @Param periodID path string true "Payment period ID"
// @Success 200 {object} dto.PaymentPeriodResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /payment-periods/{periodID} [get]
func (h *paymentPeriodHandler) getPaymentPeriod(c *gin.Context) {
	period, entries, err := h.periodService.GetPaymentPeriod(c.Request.Context(), c.Param("periodID"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve payment period")
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentPeriodResponse(period, entries))
}

// submitPaymentPeriod godoc
// @Summary Submit a payment period
// @Description Materializes one entry per labourer from the period's work logs. Re-submission keeps existing entries and recomputes the total.
// @Tags payment-periods
// @Produce json
// @Param periodID path string true "Payment period ID"
// @Success 200 {object} dto.PaymentPeriodResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /payment-periods/{periodID}/submit [post]
func (h *paymentPeriodHandler) submitPaymentPeriod(c *gin.Context) {
	actorUserID, _ := middleware.GetUserIDFromContext(c)
	period, err := h.periodService.SubmitPaymentPeriod(c.Request.Context(), c.Param("periodID"), actorUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to submit payment period")
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentPeriodResponse(period, nil))
}

// approvePaymentPeriod godoc
// @Summary Approve a submitted payment period
// @Tags payment-periods
// @Produce json
// @Param periodID path string true "Payment period ID"
// @Success 200 {object} dto.PaymentPeriodResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /payment-periods/{periodID}/approve [post]
func (h *paymentPeriodHandler) approvePaymentPeriod(c *gin.Context) {
	actorUserID, _ := middleware.GetUserIDFromContext(c)
	period, err := h.periodService.ApprovePaymentPeriod(c.Request.Context(), c.Param("periodID"), actorUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to approve payment period")
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentPeriodResponse(period, nil))
}

// markPaid godoc
// @Summary Mark a payment period as paid
// @Tags payment-periods
// @Produce json
// @Param periodID path string true "Payment period ID"
// @Success 200 {object} dto.PaymentPeriodResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /payment-periods/{periodID}/pay [post]
func (h *paymentPeriodHandler) markPaid(c *gin.Context) {
	actorUserID, _ := middleware.GetUserIDFromContext(c)
	period, err := h.periodService.MarkPaymentPeriodPaid(c.Request.Context(), c.Param("periodID"), actorUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to mark payment period paid")
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentPeriodResponse(period, nil))
}
