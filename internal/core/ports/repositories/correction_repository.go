package repositories

import (
	"context"

	"github.com/TrenchWorks/workforce_payroll_app/internal/core/domain"
)

// CorrectionRepository persists correction requests.
type CorrectionRepository interface {
	SaveCorrectionRequest(ctx context.Context, req domain.CorrectionRequest) error
	FindCorrectionRequestByID(ctx context.Context, requestID string) (*domain.CorrectionRequest, error)
	// ListCorrectionRequests filters by status when status is non-empty.
	ListCorrectionRequests(ctx context.Context, status domain.CorrectionStatus) ([]domain.CorrectionRequest, error)
	UpdateCorrectionRequest(ctx context.Context, req domain.CorrectionRequest) error
}
