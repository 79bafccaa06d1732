package services

import (
	"context"

	"github.com/TrenchWorks/workforce_payroll_app/internal/core/domain"
	"github.com/TrenchWorks/workforce_payroll_app/internal/dto"
)

// CorrectionSvcFacade manages the correction request workflow. Any
// authenticated user may file a request; only admins review them. Approval
// records the decision only -- the referenced entity is not mutated.
type CorrectionSvcFacade interface {
	CreateCorrectionRequest(ctx context.Context, req dto.CreateCorrectionRequest, requesterUserID string) (*domain.CorrectionRequest, error)
	ListCorrectionRequests(ctx context.Context, status domain.CorrectionStatus) ([]domain.CorrectionRequest, error)
	ReviewCorrectionRequest(ctx context.Context, requestID string, approve bool, notes, reviewerUserID string, reviewerRole domain.UserRole) (*domain.CorrectionRequest, error)
}
