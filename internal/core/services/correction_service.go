package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/TrenchWorks/workforce_payroll_app/internal/apperrors"
	"github.com/TrenchWorks/workforce_payroll_app/internal/core/domain"
	portsrepo "github.com/TrenchWorks/workforce_payroll_app/internal/core/ports/repositories"
	portssvc "github.com/TrenchWorks/workforce_payroll_app/internal/core/ports/services"
	"github.com/TrenchWorks/workforce_payroll_app/internal/dto"
	"github.com/google/uuid"
)

type correctionService struct {
	BaseService
	correctionRepo portsrepo.CorrectionRepository
	audit          portssvc.AuditSvcFacade
}

// NewCorrectionService creates a new correction request service.
func NewCorrectionService(correctionRepo portsrepo.CorrectionRepository, audit portssvc.AuditSvcFacade) portssvc.CorrectionSvcFacade {
	return &correctionService{correctionRepo: correctionRepo, audit: audit}
}

func (s *correctionService) CreateCorrectionRequest(ctx context.Context, req dto.CreateCorrectionRequest, requesterUserID string) (*domain.CorrectionRequest, error) {
	now := time.Now()
	request := domain.CorrectionRequest{
		RequestID:   uuid.NewString(),
		EntityType:  domain.CorrectionEntityType(req.EntityType),
		EntityID:    req.EntityID,
		FieldName:   req.FieldName,
		OldValue:    req.OldValue,
		NewValue:    req.NewValue,
		Reason:      req.Reason,
		RequestedBy: requesterUserID,
		Status:      domain.CorrectionPending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requesterUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requesterUserID,
		},
	}

	if err := s.correctionRepo.SaveCorrectionRequest(ctx, request); err != nil {
		s.LogError(ctx, err, "Failed to create correction request",
			slog.String("entity_type", req.EntityType), slog.String("entity_id", req.EntityID))
		return nil, fmt.Errorf("failed to create correction request: %w", err)
	}

	s.audit.Record(ctx, requesterUserID, domain.AuditCreate, "correction_request", request.RequestID, nil,
		map[string]any{"entityType": req.EntityType, "entityID": req.EntityID, "fieldName": req.FieldName})

	return &request, nil
}

func (s *correctionService) ListCorrectionRequests(ctx context.Context, status domain.CorrectionStatus) ([]domain.CorrectionRequest, error) {
	switch status {
	case "", domain.CorrectionPending, domain.CorrectionApproved, domain.CorrectionRejected:
	default:
		return nil, fmt.Errorf("%w: status must be one of pending, approved, rejected", apperrors.ErrValidation)
	}
	requests, err := s.correctionRepo.ListCorrectionRequests(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list correction requests: %w", err)
	}
	return requests, nil
}

// ReviewCorrectionRequest records an admin's approve/reject decision. The
// decision is a record only: the referenced entity is not mutated, and the
// operator applies the approved change manually.
func (s *correctionService) ReviewCorrectionRequest(ctx context.Context, requestID string, approve bool, notes, reviewerUserID string, reviewerRole domain.UserRole) (*domain.CorrectionRequest, error) {
	if !reviewerRole.AtLeast(domain.RoleAdmin) {
		return nil, fmt.Errorf("%w: only admins may review correction requests", apperrors.ErrForbidden)
	}

	request, err := s.correctionRepo.FindCorrectionRequestByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to find correction request %s: %w", requestID, err)
	}

	if request.Status != domain.CorrectionPending {
		return nil, fmt.Errorf("%w: correction request has already been reviewed", apperrors.ErrValidation)
	}

	now := time.Now()
	if approve {
		request.Status = domain.CorrectionApproved
	} else {
		request.Status = domain.CorrectionRejected
	}
	request.ReviewedBy = reviewerUserID
	request.ReviewedAt = &now
	request.ReviewNotes = notes
	request.LastUpdatedAt = now
	request.LastUpdatedBy = reviewerUserID

	if err := s.correctionRepo.UpdateCorrectionRequest(ctx, *request); err != nil {
		s.LogError(ctx, err, "Failed to review correction request", slog.String("request_id", requestID))
		return nil, fmt.Errorf("failed to review correction request: %w", err)
	}

	action := domain.AuditApprove
	if !approve {
		action = domain.AuditReject
	}
	s.audit.Record(ctx, reviewerUserID, action, "correction_request", requestID, nil,
		map[string]any{"notes": notes})

	return request, nil
}
