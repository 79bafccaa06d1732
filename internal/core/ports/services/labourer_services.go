package services

import (
	"context"

	"github.com/TrenchWorks/workforce_payroll_app/internal/core/domain"
	"github.com/TrenchWorks/workforce_payroll_app/internal/dto"
)

// LabourerSvcFacade manages labourer records and the available pool.
type LabourerSvcFacade interface {
	CreateLabourer(ctx context.Context, req dto.CreateLabourerRequest, creatorUserID string) (*domain.Labourer, error)
	GetLabourerByID(ctx context.Context, labourerID string) (*domain.Labourer, error)
	ListLabourers(ctx context.Context, projectID string) ([]domain.Labourer, error)
	ListAvailableLabourers(ctx context.Context) ([]domain.Labourer, error)
	UpdateLabourer(ctx context.Context, labourerID string, req dto.UpdateLabourerRequest, updaterUserID string) (*domain.Labourer, error)
	// AssignToProject moves the labourer; an empty projectID unassigns.
	AssignToProject(ctx context.Context, labourerID, projectID, actorUserID string) (*domain.Labourer, error)
	BulkImport(ctx context.Context, req dto.BulkImportRequest, actorUserID string) (*dto.BulkImportResult, error)
}
