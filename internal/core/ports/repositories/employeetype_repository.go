package repositories

import (
	"context"

	"github.com/TrenchWorks/workforce_payroll_app/internal/core/domain"
)

// EmployeeTypeRepository persists employee type categories.
type EmployeeTypeRepository interface {
	SaveEmployeeType(ctx context.Context, et domain.EmployeeType) error
	FindEmployeeTypeByID(ctx context.Context, employeeTypeID string) (*domain.EmployeeType, error)
	ListEmployeeTypes(ctx context.Context, includeInactive bool) ([]domain.EmployeeType, error)
	UpdateEmployeeType(ctx context.Context, et domain.EmployeeType) error
}
