package handlers

import (
	"net/http"

	"github.com/TrenchWorks/workforce_payroll_app/internal/core/domain"
	portssvc "github.com/TrenchWorks/workforce_payroll_app/internal/core/ports/services"
	"github.com/TrenchWorks/workforce_payroll_app/internal/dto"
	"github.com/TrenchWorks/workforce_payroll_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type labourerHandler struct {
	labourerService portssvc.LabourerSvcFacade
}

func registerLabourerRoutes(rg *gin.RouterGroup, labourerService portssvc.LabourerSvcFacade) {
	h := &labourerHandler{labourerService: labourerService}

	labourers := rg.Group("/labourers")
	{
		labourers.POST("", middleware.RequireRoles(domain.RoleSupervisor), h.createLabourer)
		labourers.GET("", middleware.RequireRoles(domain.RoleSupervisor), h.listLabourers)
		labourers.GET("/available", middleware.RequireRoles(domain.RoleSupervisor), h.listAvailableLabourers)
		labourers.GET("/:labourerID", middleware.RequireRoles(domain.RoleSupervisor), h.getLabourer)
		labourers.PUT("/:labourerID", middleware.RequireRoles(domain.RoleSupervisor), h.updateLabourer)
		labourers.POST("/:labourerID/assign", middleware.RequireRoles(domain.RoleProjectManager), h.assignLabourer)
		labourers.POST("/import", middleware.RequireRoles(domain.RoleAdmin), h.bulkImport)
	}
}

// createLabourer godoc
// @Summary Onboard a labourer
// @Description Validates the South African ID number (or passport) before creating the record.
// @Tags labourers
// @Accept json
// @Produce json
// @Param labourer body dto.CreateLabourerRequest true "Labourer details"
// @Success 201 {object} dto.LabourerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /labourers [post]
func (h *labourerHandler) createLabourer(c *gin.Context) {
	var req dto.CreateLabourerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, _ := middleware.GetUserIDFromContext(c)
	labourer, err := h.labourerService.CreateLabourer(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to create labourer")
		return
	}
	c.JSON(http.StatusCreated, dto.ToLabourerResponse(labourer))
}

// listLabourers godoc
// @Summary List labourers
// @Description Lists labourers, optionally filtered by project.
// @Tags labourers
// @Produce json
// @Param projectID query string false "Filter by project"
// @Success 200 {object} dto.ListLabourersResponse
// @Security BearerAuth
// @Router /labourers [get]
func (h *labourerHandler) listLabourers(c *gin.Context) {
	labourers, err := h.labourerService.ListLabourers(c.Request.Context(), c.Query("projectID"))
	if err != nil {
		respondServiceError(c, err, "Failed to list labourers")
		return
	}
	c.JSON(http.StatusOK, toLabourerList(labourers))
}

// listAvailableLabourers godoc
// @Summary List the available labourer pool
// @Description Labourers not currently assigned to any project.
// @Tags labourers
// @Produce json
// @Success 200 {object} dto.ListLabourersResponse
// @Security BearerAuth
// @Router /labourers/available [get]
func (h *labourerHandler) listAvailableLabourers(c *gin.Context) {
	labourers, err := h.labourerService.ListAvailableLabourers(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to list available labourers")
		return
	}
	c.JSON(http.StatusOK, toLabourerList(labourers))
}

// getLabourer godoc
// @Summary Get a labourer
// @Tags labourers
// @Produce json
// @Param labourerID path string true "Labourer ID"
// @Success 200 {object} dto.LabourerResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /labourers/{labourerID} [get]
func (h *labourerHandler) getLabourer(c *gin.Context) {
	labourer, err := h.labourerService.GetLabourerByID(c.Request.Context(), c.Param("labourerID"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve labourer")
		return
	}
	c.JSON(http.StatusOK, dto.ToLabourerResponse(labourer))
}

// updateLabourer godoc
// @Summary Update a labourer
// @Tags labourers
// @Accept json
// @Produce json
// @Param labourerID path string true "Labourer ID"
// @Param labourer body dto.UpdateLabourerRequest true "Fields to update"
// @Success 200 {object} dto.LabourerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /labourers/{labourerID} [put]
func (h *labourerHandler) updateLabourer(c *gin.Context) {
	var req dto.UpdateLabourerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, _ := middleware.GetUserIDFromContext(c)
	labourer, err := h.labourerService.UpdateLabourer(c.Request.Context(), c.Param("labourerID"), req, updaterUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to update labourer")
		return
	}
	c.JSON(http.StatusOK, dto.ToLabourerResponse(labourer))
}

// assignLabourer godoc
// @Summary Move a labourer between projects
// @Description An empty projectID returns the labourer to the available pool.
// @Tags labourers
// @Accept json
// @Produce json
// @Param labourerID path string true "Labourer ID"
// @Param assignment body dto.AssignLabourerRequest true "Target project"
// @Success 200 {object} dto.LabourerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /labourers/{labourerID}/assign [post]
func (h *labourerHandler) assignLabourer(c *gin.Context) {
	var req dto.AssignLabourerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actorUserID, _ := middleware.GetUserIDFromContext(c)
	labourer, err := h.labourerService.AssignToProject(c.Request.Context(), c.Param("labourerID"), req.ProjectID, actorUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to move labourer")
		return
	}
	c.JSON(http.StatusOK, dto.ToLabourerResponse(labourer))
}

// bulkImport godoc
// @Summary Bulk import labourers
// @Description Imports rows that pass validation and reports the skipped rest.
// @Tags labourers
// @Accept json
// @Produce json
// @Param import body dto.BulkImportRequest true "Rows to import"
// @Success 200 {object} dto.BulkImportResult
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /labourers/import [post]
func (h *labourerHandler) bulkImport(c *gin.Context) {
	var req dto.BulkImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actorUserID, _ := middleware.GetUserIDFromContext(c)
	result, err := h.labourerService.BulkImport(c.Request.Context(), req, actorUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to import labourers")
		return
	}
	c.JSON(http.StatusOK, result)
}

func toLabourerList(labourers []domain.Labourer) dto.ListLabourersResponse {
	resp := dto.ListLabourersResponse{Labourers: make([]dto.LabourerResponse, 0, len(labourers))}
	for i := range labourers {
		resp.Labourers = append(resp.Labourers, dto.ToLabourerResponse(&labourers[i]))
	}
	return resp
}
