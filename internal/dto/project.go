package dto

import (
	"github.com/TrenchWorks/workforce_payroll_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProjectRequest creates a project.
type CreateProjectRequest struct {
	Name             string           `json:"name" binding:"required"`
	Location         string           `json:"location"`
	Budget           *decimal.Decimal `json:"budget"`
	PaymentCadence   string           `json:"paymentCadence" binding:"required,oneof=fortnightly monthly"`
	DefaultOpenRate  *decimal.Decimal `json:"defaultOpenRate"`
	DefaultCloseRate *decimal.Decimal `json:"defaultCloseRate"`
}

// UpdateProjectRequest applies a partial update; nil fields are left unchanged.
type UpdateProjectRequest struct {
	Name             *string          `json:"name"`
	Location         *string          `json:"location"`
	Budget           *decimal.Decimal `json:"budget"`
	Status           *string          `json:"status" binding:"omitempty,oneof=active completed on_hold"`
	PaymentCadence   *string          `json:"paymentCadence" binding:"omitempty,oneof=fortnightly monthly"`
	DefaultOpenRate  *decimal.Decimal `json:"defaultOpenRate"`
	DefaultCloseRate *decimal.Decimal `json:"defaultCloseRate"`
}

// AssignStaffRequest assigns a manager or supervisor to a project.
type AssignStaffRequest struct {
	UserID string `json:"userID" binding:"required"`
}

// ProjectResponse is the wire representation of a project.
type ProjectResponse struct {
	ProjectID        string           `json:"projectID"`
	Name             string           `json:"name"`
	Location         string           `json:"location"`
	Budget           *decimal.Decimal `json:"budget,omitempty"`
	Status           string           `json:"status"`
	PaymentCadence   string           `json:"paymentCadence"`
	DefaultOpenRate  *decimal.Decimal `json:"defaultOpenRate,omitempty"`
	DefaultCloseRate *decimal.Decimal `json:"defaultCloseRate,omitempty"`
}

// ToProjectResponse maps a domain project to its response shape.
func ToProjectResponse(p *domain.Project) ProjectResponse {
	return ProjectResponse{
		ProjectID:        p.ProjectID,
		Name:             p.Name,
		Location:         p.Location,
		Budget:           p.Budget,
		Status:           string(p.Status),
		PaymentCadence:   string(p.PaymentCadence),
		DefaultOpenRate:  p.DefaultOpenRate,
		DefaultCloseRate: p.DefaultCloseRate,
	}
}

// ListProjectsResponse wraps the project list.
type ListProjectsResponse struct {
	Projects []ProjectResponse `json:"projects"`
}
