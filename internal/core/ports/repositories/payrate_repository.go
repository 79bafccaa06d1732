package repositories

import (
	"context"

	"github.com/TrenchWorks/workforce_payroll_app/internal/core/domain"
)

// PayRateRepository persists the append-only pay rate history.
type PayRateRepository interface {
	SavePayRate(ctx context.Context, rate domain.PayRate) error
	ListPayRatesByProject(ctx context.Context, projectID string) ([]domain.PayRate, error)
	// FindEffectiveRate returns the rate with the greatest effective date that
	// is on or before asOfDate, or apperrors.ErrNotFound when none exists.
	FindEffectiveRate(ctx context.Context, projectID, employeeTypeID string, category domain.RateCategory, asOfDate string) (*domain.PayRate, error)
	// FindProjectEffectiveRate resolves the latest rate for a project and
	// category across all employee types, used for informational report
	// headers. Returns apperrors.ErrNotFound when the project has no rate in
	// that category on or before asOfDate.
	FindProjectEffectiveRate(ctx context.Context, projectID string, category domain.RateCategory, asOfDate string) (*domain.PayRate, error)
}
