package services

import (
	"context"

	"github.com/TrenchWorks/workforce_payroll_app/internal/core/domain"
	"github.com/TrenchWorks/workforce_payroll_app/internal/dto"
)

// WorkLogSvcFacade manages daily work logs. Create and update enforce the
// today-only rule; historical edits go through correction requests.
type WorkLogSvcFacade interface {
	CreateWorkLog(ctx context.Context, req dto.CreateWorkLogRequest, recorderUserID string) (*domain.WorkLog, error)
	UpdateWorkLog(ctx context.Context, workLogID string, req dto.UpdateWorkLogRequest, updaterUserID string) (*domain.WorkLog, error)
	ListWorkLogs(ctx context.Context, projectID, startDate, endDate string) ([]domain.WorkLog, error)
	ListWorkLogsByLabourer(ctx context.Context, labourerID, startDate, endDate string) ([]domain.WorkLog, error)
}
