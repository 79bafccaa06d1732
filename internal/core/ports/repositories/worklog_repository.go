package repositories

import (
	"context"

	"github.com/TrenchWorks/workforce_payroll_app/internal/core/domain"
)

// WorkLogRepository persists daily work logs.
type WorkLogRepository interface {
	SaveWorkLog(ctx context.Context, log domain.WorkLog) error
	FindWorkLogByID(ctx context.Context, workLogID string) (*domain.WorkLog, error)
	UpdateWorkLog(ctx context.Context, log domain.WorkLog) error
	// ListWorkLogsByDateRange returns a project's logs with work dates inside
	// [startDate, endDate] inclusive.
	ListWorkLogsByDateRange(ctx context.Context, projectID, startDate, endDate string) ([]domain.WorkLog, error)
	ListWorkLogsByLabourer(ctx context.Context, labourerID, startDate, endDate string) ([]domain.WorkLog, error)
}
