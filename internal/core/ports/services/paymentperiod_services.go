package services

import (
	"context"

	"github.com/TrenchWorks/workforce_payroll_app/internal/core/domain"
	"github.com/TrenchWorks/workforce_payroll_app/internal/dto"
)

// PaymentPeriodSvcFacade owns the payment period lifecycle.
type PaymentPeriodSvcFacade interface {
	CreatePaymentPeriod(ctx context.Context, projectID string, req dto.CreatePaymentPeriodRequest, creatorUserID string) (*domain.PaymentPeriod, error)
	GetPaymentPeriod(ctx context.Context, periodID string) (*domain.PaymentPeriod, []domain.PaymentPeriodEntry, error)
	ListPaymentPeriods(ctx context.Context, projectID string) ([]domain.PaymentPeriod, error)
	// SubmitPaymentPeriod materializes per-labourer entries from work logs.
	// Re-submission is idempotent: existing entries are kept and only the
	// total is recomputed from them.
	SubmitPaymentPeriod(ctx context.Context, periodID, actorUserID string) (*domain.PaymentPeriod, error)
	ApprovePaymentPeriod(ctx context.Context, periodID, actorUserID string) (*domain.PaymentPeriod, error)
	MarkPaymentPeriodPaid(ctx context.Context, periodID, actorUserID string) (*domain.PaymentPeriod, error)
}
