package services

import (
	"context"

	"github.com/TrenchWorks/workforce_payroll_app/internal/core/domain"
	"github.com/TrenchWorks/workforce_payroll_app/internal/dto"
)

// PayRateSvcFacade manages the append-only pay rate history.
type PayRateSvcFacade interface {
	CreatePayRate(ctx context.Context, req dto.CreatePayRateRequest, creatorUserID string) (*domain.PayRate, error)
	ListPayRates(ctx context.Context, projectID string) ([]domain.PayRate, error)
	// ResolveRate returns the rate effective on asOfDate, or ErrNotFound when
	// no rate has an effective date on or before it.
	ResolveRate(ctx context.Context, projectID, employeeTypeID string, category domain.RateCategory, asOfDate string) (*domain.PayRate, error)
}
