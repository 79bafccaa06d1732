package repositories

import (
	"context"

	"github.com/TrenchWorks/workforce_payroll_app/internal/core/domain"
)

// LabourerRepository persists labourer records.
type LabourerRepository interface {
	SaveLabourer(ctx context.Context, labourer domain.Labourer) error
	FindLabourerByID(ctx context.Context, labourerID string) (*domain.Labourer, error)
	FindLabourerByIDNumber(ctx context.Context, idNumber string) (*domain.Labourer, error)
	// ListLabourers returns the labourers assigned to a project.
	ListLabourers(ctx context.Context, projectID string) ([]domain.Labourer, error)
	// ListAvailableLabourers returns the unassigned pool.
	ListAvailableLabourers(ctx context.Context) ([]domain.Labourer, error)
	UpdateLabourer(ctx context.Context, labourer domain.Labourer) error
}
