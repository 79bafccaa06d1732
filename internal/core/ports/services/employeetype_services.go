package services

import (
	"context"

	"github.com/TrenchWorks/workforce_payroll_app/internal/core/domain"
	"github.com/TrenchWorks/workforce_payroll_app/internal/dto"
)

// EmployeeTypeSvcFacade manages worker categories.
type EmployeeTypeSvcFacade interface {
	CreateEmployeeType(ctx context.Context, req dto.CreateEmployeeTypeRequest, creatorUserID string) (*domain.EmployeeType, error)
	ListEmployeeTypes(ctx context.Context, includeInactive bool) ([]domain.EmployeeType, error)
	UpdateEmployeeType(ctx context.Context, employeeTypeID string, req dto.UpdateEmployeeTypeRequest, updaterUserID string) (*domain.EmployeeType, error)
}
