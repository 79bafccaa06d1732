package dto

import "github.com/TrenchWorks/workforce_payroll_app/internal/core/domain"

// CreateEmployeeTypeRequest creates a worker category.
type CreateEmployeeTypeRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// UpdateEmployeeTypeRequest applies a partial update; setting IsActive to
// false soft-deactivates the type.
type UpdateEmployeeTypeRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
}

// EmployeeTypeResponse is the wire representation of an employee type.
type EmployeeTypeResponse struct {
	EmployeeTypeID string `json:"employeeTypeID"`
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	IsActive       bool   `json:"isActive"`
}

// ToEmployeeTypeResponse maps a domain employee type to its response shape.
func ToEmployeeTypeResponse(et *domain.EmployeeType) EmployeeTypeResponse {
	return EmployeeTypeResponse{
		EmployeeTypeID: et.EmployeeTypeID,
		Name:           et.Name,
		Description:    et.Description,
		IsActive:       et.IsActive,
	}
}
