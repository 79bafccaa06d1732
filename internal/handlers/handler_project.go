package handlers

import (
	"net/http"

	"github.com/TrenchWorks/workforce_payroll_app/internal/core/domain"
	portssvc "github.com/TrenchWorks/workforce_payroll_app/internal/core/ports/services"
	"github.com/TrenchWorks/workforce_payroll_app/internal/dto"
	"github.com/TrenchWorks/workforce_payroll_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// projectHandler handles project and staff assignment requests, plus the
// project-scoped labourer and payment period listings.
type projectHandler struct {
	projectService  portssvc.ProjectSvcFacade
	labourerService portssvc.LabourerSvcFacade
	periodService   portssvc.PaymentPeriodSvcFacade
}

func registerProjectRoutes(rg *gin.RouterGroup, projectService portssvc.ProjectSvcFacade, labourerService portssvc.LabourerSvcFacade, periodService portssvc.PaymentPeriodSvcFacade) {
	h := &projectHandler{
		projectService:  projectService,
		labourerService: labourerService,
		periodService:   periodService,
	}

	projects := rg.Group("/projects")
	{
		projects.POST("", middleware.RequireRoles(domain.RoleAdmin), h.createProject)
		projects.GET("", h.listProjects)
		projects.GET("/:projectID", h.getProject)
		projects.PUT("/:projectID", middleware.RequireRoles(domain.RoleProjectManager), h.updateProject)
		projects.POST("/:projectID/assign-staff", middleware.RequireRoles(domain.RoleAdmin), h.assignStaff)
		projects.GET("/:projectID/labourers", h.listProjectLabourers)
		projects.POST("/:projectID/payment-periods", middleware.RequireRoles(domain.RoleProjectManager), h.createPaymentPeriod)
		projects.GET("/:projectID/payment-periods", h.listPaymentPeriods)
	}
}

// createProject godoc
// @Summary Create a project
// @Tags projects
// @Accept json
// @Produce json
// @Param project body dto.CreateProjectRequest true "Project details"
// @Success 201 {object} dto.ProjectResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects [post]
func (h *projectHandler) createProject(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, _ := middleware.GetUserIDFromContext(c)
	project, err := h.projectService.CreateProject(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to create project")
		return
	}
	c.JSON(http.StatusCreated, dto.ToProjectResponse(project))
}

// listProjects godoc
// @Summary List projects
// @Tags projects
// @Produce json
// @Success 200 {object} dto.ListProjectsResponse
// @Security BearerAuth
// @Router /projects [get]
func (h *projectHandler) listProjects(c *gin.Context) {
	projects, err := h.projectService.ListProjects(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to list projects")
		return
	}

	resp := dto.ListProjectsResponse{Projects: make([]dto.ProjectResponse, 0, len(projects))}
	for i := range projects {
		resp.Projects = append(resp.Projects, dto.ToProjectResponse(&projects[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// getProject godoc
// @Summary Get a project
// @Tags projects
// @Produce json
// @Param projectID path string true "Project ID"
// @Success 200 {object} dto.ProjectResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{projectID} [get]
func (h *projectHandler) getProject(c *gin.Context) {
	project, err := h.projectService.GetProjectByID(c.Request.Context(), c.Param("projectID"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve project")
		return
	}
	c.JSON(http.StatusOK, dto.ToProjectResponse(project))
}

// updateProject godoc
// @Summary Update a project
// @Tags projects
// @Accept json
// @Produce json
// @Param projectID path string true "Project ID"
// @Param project body dto.UpdateProjectRequest true "Fields to update"
// @Success 200 {object} dto.ProjectResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{projectID} [put]
func (h *projectHandler) updateProject(c *gin.Context) {
	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, _ := middleware.GetUserIDFromContext(c)
	project, err := h.projectService.UpdateProject(c.Request.Context(), c.Param("projectID"), req, updaterUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to update project")
		return
	}
	c.JSON(http.StatusOK, dto.ToProjectResponse(project))
}

// assignStaff godoc
// @Summary Assign a manager or supervisor to a project
// @Description Idempotent: assigning an already-assigned user succeeds.
// @Tags projects
// @Accept json
// @Produce json
// @Param projectID path string true "Project ID"
// @Param assignment body dto.AssignStaffRequest true "User to assign"
// @Param role query string true "Assignment role" Enums(project_manager, supervisor)
// @Success 204 "Assigned"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{projectID}/assign-staff [post]
func (h *projectHandler) assignStaff(c *gin.Context) {
	var req dto.AssignStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actorUserID, _ := middleware.GetUserIDFromContext(c)
	role := domain.UserRole(c.DefaultQuery("role", string(domain.RoleSupervisor)))

	if err := h.projectService.AssignStaff(c.Request.Context(), c.Param("projectID"), req.UserID, role, actorUserID); err != nil {
		respondServiceError(c, err, "Failed to assign staff")
		return
	}
	c.Status(http.StatusNoContent)
}

// listProjectLabourers godoc
// @Summary List a project's labourers
// @Tags projects
// @Produce json
// @Param projectID path string true "Project ID"
// @Success 200 {object} dto.ListLabourersResponse
// @Security BearerAuth
// @Router /projects/{projectID}/labourers [get]
func (h *projectHandler) listProjectLabourers(c *gin.Context) {
	labourers, err := h.labourerService.ListLabourers(c.Request.Context(), c.Param("projectID"))
	if err != nil {
		respondServiceError(c, err, "Failed to list labourers")
		return
	}

	resp := dto.ListLabourersResponse{Labourers: make([]dto.LabourerResponse, 0, len(labourers))}
	for i := range labourers {
		resp.Labourers = append(resp.Labourers, dto.ToLabourerResponse(&labourers[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// createPaymentPeriod godoc
// @Summary Open a payment period for a project
// @Tags payment-periods
// @Accept json
// @Produce json
// @Param projectID path string true "Project ID"
// @Param period body dto.CreatePaymentPeriodRequest true "Period boundaries"
// @Success 201 {object} dto.PaymentPeriodResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{projectID}/payment-periods [post]
func (h *projectHandler) createPaymentPeriod(c *gin.Context) {
	var req dto.CreatePaymentPeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, _ := middleware.GetUserIDFromContext(c)
	period, err := h.periodService.CreatePaymentPeriod(c.Request.Context(), c.Param("projectID"), req, creatorUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to create payment period")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPaymentPeriodResponse(period, nil))
}

// listPaymentPeriods godoc
// @Summary List a project's payment periods
// @Tags payment-periods
// @Produce json
// @Param projectID path string true "Project ID"
// @Success 200 {object} dto.ListPaymentPeriodsResponse
// @Security BearerAuth
// @Router /projects/{projectID}/payment-periods [get]
func (h *projectHandler) listPaymentPeriods(c *gin.Context) {
	periods, err := h.periodService.ListPaymentPeriods(c.Request.Context(), c.Param("projectID"))
	if err != nil {
		respondServiceError(c, err, "Failed to list payment periods")
		return
	}

	resp := dto.ListPaymentPeriodsResponse{Periods: make([]dto.PaymentPeriodResponse, 0, len(periods))}
	for i := range periods {
		resp.Periods = append(resp.Periods, dto.ToPaymentPeriodResponse(&periods[i], nil))
	}
	c.JSON(http.StatusOK, resp)
}
