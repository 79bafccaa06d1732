package services

import (
	"context"

	"github.com/TrenchWorks/workforce_payroll_app/internal/core/domain"
)

// ReportingSvcFacade builds payroll and worker activity reports and renders
// their CSV/PDF export forms.
type ReportingSvcFacade interface {
	PayrollSummary(ctx context.Context, projectID, startDate, endDate string) (*domain.PayrollReport, error)
	WorkerActivity(ctx context.Context, projectID, startDate, endDate string, groupBy domain.GroupBy, labourerID string) (*domain.ActivityReport, error)
	RenderPayrollCSV(report *domain.PayrollReport) ([]byte, error)
	RenderActivityCSV(report *domain.ActivityReport) ([]byte, error)
	RenderPayrollPDF(report *domain.PayrollReport) ([]byte, error)
}
