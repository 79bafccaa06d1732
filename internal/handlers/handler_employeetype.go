package handlers

import (
	"net/http"

	"github.com/TrenchWorks/workforce_payroll_app/internal/core/domain"
	portssvc "github.com/TrenchWorks/workforce_payroll_app/internal/core/ports/services"
	"github.com/TrenchWorks/workforce_payroll_app/internal/dto"
	"github.com/TrenchWorks/workforce_payroll_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type employeeTypeHandler struct {
	employeeTypeService portssvc.EmployeeTypeSvcFacade
}

func registerEmployeeTypeRoutes(rg *gin.RouterGroup, employeeTypeService portssvc.EmployeeTypeSvcFacade) {
	h := &employeeTypeHandler{employeeTypeService: employeeTypeService}

	types := rg.Group("/employee-types")
	{
		types.POST("", middleware.RequireRoles(domain.RoleAdmin), h.createEmployeeType)
		types.GET("", h.listEmployeeTypes)
		types.PUT("/:employeeTypeID", middleware.RequireRoles(domain.RoleAdmin), h.updateEmployeeType)
	}
}

// createEmployeeType godoc
// @Summary Create an employee type
// @Tags employee-types
// @Accept json
// @Produce json
// @Param employeeType body dto.CreateEmployeeTypeRequest true "Employee type details"
// @Success 201 {object} dto.EmployeeTypeResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /employee-types [post]
func (h *employeeTypeHandler) createEmployeeType(c *gin.Context) {
	var req dto.CreateEmployeeTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, _ := middleware.GetUserIDFromContext(c)
	et, err := h.employeeTypeService.CreateEmployeeType(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to create employee type")
		return
	}
	c.JSON(http.StatusCreated, dto.ToEmployeeTypeResponse(et))
}

// listEmployeeTypes godoc
// @Summary List employee types
// @Tags employee-types
// @Produce json
// @Param includeInactive query bool false "Include deactivated types"
// @Success 200 {array} dto.EmployeeTypeResponse
// @Security BearerAuth
// @Router /employee-types [get]
func (h *employeeTypeHandler) listEmployeeTypes(c *gin.Context) {
	includeInactive := c.Query("includeInactive") == "true"

	types, err := h.employeeTypeService.ListEmployeeTypes(c.Request.Context(), includeInactive)
	if err != nil {
		respondServiceError(c, err, "Failed to list employee types")
		return
	}

	resp := make([]dto.EmployeeTypeResponse, 0, len(types))
	for i := range types {
		resp = append(resp, dto.ToEmployeeTypeResponse(&types[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// updateEmployeeType godoc
// @Summary Update an employee type
// @Description Partial update; setting isActive false soft-deactivates the type.
// @Tags employee-types
// @Accept json
// @Produce json
// @Param employeeTypeID path string true "Employee type ID"
// @Param employeeType body dto.UpdateEmployeeTypeRequest true "Fields to update"
// @Success 200 {object} dto.EmployeeTypeResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /employee-types/{employeeTypeID} [put]
func (h *employeeTypeHandler) updateEmployeeType(c *gin.Context) {
	var req dto.UpdateEmployeeTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, _ := middleware.GetUserIDFromContext(c)
	et, err := h.employeeTypeService.UpdateEmployeeType(c.Request.Context(), c.Param("employeeTypeID"), req, updaterUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to update employee type")
		return
	}
	c.JSON(http.StatusOK, dto.ToEmployeeTypeResponse(et))
}
