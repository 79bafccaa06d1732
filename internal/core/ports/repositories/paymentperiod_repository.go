package repositories

import (
	"context"

	"github.com/TrenchWorks/workforce_payroll_app/internal/core/domain"
)

// PaymentPeriodRepository persists payment periods and their materialized
// entries.
type PaymentPeriodRepository interface {
	SavePaymentPeriod(ctx context.Context, period domain.PaymentPeriod) error
	FindPaymentPeriodByID(ctx context.Context, periodID string) (*domain.PaymentPeriod, error)
	ListPaymentPeriodsByProject(ctx context.Context, projectID string) ([]domain.PaymentPeriod, error)
	ListPaymentPeriodEntries(ctx context.Context, periodID string) ([]domain.PaymentPeriodEntry, error)
	// SubmitPaymentPeriod atomically inserts the materialized entries (which
	// may be empty on a re-submission) and writes the period's new status,
	// total and submission metadata in a single database transaction.
	SubmitPaymentPeriod(ctx context.Context, period domain.PaymentPeriod, entries []domain.PaymentPeriodEntry) error
	// UpdatePaymentPeriod writes status/total/approval metadata changes.
	UpdatePaymentPeriod(ctx context.Context, period domain.PaymentPeriod) error
}
