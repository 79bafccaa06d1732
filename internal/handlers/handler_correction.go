package handlers

import (
	"net/http"

	"github.com/TrenchWorks/workforce_payroll_app/internal/core/domain"
	portssvc "github.com/TrenchWorks/workforce_payroll_app/internal/core/ports/services"
	"github.com/TrenchWorks/workforce_payroll_app/internal/dto"
	"github.com/TrenchWorks/workforce_payroll_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type correctionHandler struct {
	correctionService portssvc.CorrectionSvcFacade
}

func registerCorrectionRoutes(rg *gin.RouterGroup, correctionService portssvc.CorrectionSvcFacade) {
	h := &correctionHandler{correctionService: correctionService}

	corrections := rg.Group("/correction-requests")
	{
		corrections.POST("", h.createCorrectionRequest)
		corrections.GET("", middleware.RequireRoles(domain.RoleSupervisor), h.listCorrectionRequests)
		corrections.POST("/:requestID/review", middleware.RequireRoles(domain.RoleAdmin), h.reviewCorrectionRequest)
	}
}

// createCorrectionRequest godoc
// @Summary File a correction request
// @Description Proposes an edit to a historical record. Any authenticated user may file one.
// @Tags corrections
// @Accept json
// @Produce json
// @Param correction body dto.CreateCorrectionRequest true "Proposed correction"
// @Success 201 {object} dto.CorrectionResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /correction-requests [post]
func (h *correctionHandler) createCorrectionRequest(c *gin.Context) {
	var req dto.CreateCorrectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	requesterUserID, _ := middleware.GetUserIDFromContext(c)
	request, err := h.correctionService.CreateCorrectionRequest(c.Request.Context(), req, requesterUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to create correction request")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCorrectionResponse(request))
}

// listCorrectionRequests godoc
// @Summary List correction requests
// @Tags corrections
// @Produce json
// @Param status query string false "Filter by status" Enums(pending, approved, rejected)
// @Success 200 {object} dto.ListCorrectionsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /correction-requests [get]
func (h *correctionHandler) listCorrectionRequests(c *gin.Context) {
	requests, err := h.correctionService.ListCorrectionRequests(c.Request.Context(), domain.CorrectionStatus(c.Query("status")))
	if err != nil {
		respondServiceError(c, err, "Failed to list correction requests")
		return
	}

	resp := dto.ListCorrectionsResponse{Requests: make([]dto.CorrectionResponse, 0, len(requests))}
	for i := range requests {
		resp.Requests = append(resp.Requests, dto.ToCorrectionResponse(&requests[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// reviewCorrectionRequest godoc
// @Summary Review a correction request
// @Description Records the approve/reject decision. The referenced entity is not modified; the decision and the audit trail document what should change.
// @Tags corrections
// @Accept json
// @Produce json
// @Param requestID path string true "Correction request ID"
// @Param review body dto.ReviewCorrectionRequest true "Decision"
// @Success 200 {object} dto.CorrectionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /correction-requests/{requestID}/review [post]
func (h *correctionHandler) reviewCorrectionRequest(c *gin.Context) {
	var req dto.ReviewCorrectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	reviewerUserID, _ := middleware.GetUserIDFromContext(c)
	reviewerRole, _ := middleware.GetUserRoleFromContext(c)

	request, err := h.correctionService.ReviewCorrectionRequest(c.Request.Context(), c.Param("requestID"), *req.Approve, req.Notes, reviewerUserID, reviewerRole)
	if err != nil {
		respondServiceError(c, err, "Failed to review correction request")
		return
	}
	c.JSON(http.StatusOK, dto.ToCorrectionResponse(request))
}
