package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/TrenchWorks/workforce_payroll_app/internal/apperrors"
	"github.com/TrenchWorks/workforce_payroll_app/internal/core/domain"
	portsrepo "github.com/TrenchWorks/workforce_payroll_app/internal/core/ports/repositories"
	portssvc "github.com/TrenchWorks/workforce_payroll_app/internal/core/ports/services"
	"github.com/TrenchWorks/workforce_payroll_app/internal/dto"
	"github.com/TrenchWorks/workforce_payroll_app/internal/utils/dateutil"
	"github.com/google/uuid"
)

type payRateService struct {
	BaseService
	payRateRepo      portsrepo.PayRateRepository
	projectRepo      portsrepo.ProjectRepository
	employeeTypeRepo portsrepo.EmployeeTypeRepository
	audit            portssvc.AuditSvcFacade
}

// NewPayRateService creates a new pay rate service.
func NewPayRateService(payRateRepo portsrepo.PayRateRepository, projectRepo portsrepo.ProjectRepository, employeeTypeRepo portsrepo.EmployeeTypeRepository, audit portssvc.AuditSvcFacade) portssvc.PayRateSvcFacade {
	return &payRateService{
		payRateRepo:      payRateRepo,
		projectRepo:      projectRepo,
		employeeTypeRepo: employeeTypeRepo,
		audit:            audit,
	}
}

func (s *payRateService) CreatePayRate(ctx context.Context, req dto.CreatePayRateRequest, creatorUserID string) (*domain.PayRate, error) {
	effectiveDate := dateutil.Normalize(req.EffectiveDate)
	if !dateutil.IsValid(effectiveDate) {
		return nil, fmt.Errorf("%w: effectiveDate must be a valid YYYY-MM-DD date", apperrors.ErrValidation)
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
	}

	if _, err := s.projectRepo.FindProjectByID(ctx, req.ProjectID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: project %s does not exist", apperrors.ErrValidation, req.ProjectID)
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	if _, err := s.employeeTypeRepo.FindEmployeeTypeByID(ctx, req.EmployeeTypeID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: employee type %s does not exist", apperrors.ErrValidation, req.EmployeeTypeID)
		}
		return nil, fmt.Errorf("failed to find employee type: %w", err)
	}

	now := time.Now()
	rate := domain.PayRate{
		PayRateID:      uuid.NewString(),
		ProjectID:      req.ProjectID,
		EmployeeTypeID: req.EmployeeTypeID,
		Category:       domain.RateCategory(req.Category),
		Amount:         req.Amount,
		Unit:           domain.RateUnit(req.Unit),
		EffectiveDate:  effectiveDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	// Rates are append-only. A price change appends a new row with a later
	// effective date; earnings already stored on work logs are untouched.
	if err := s.payRateRepo.SavePayRate(ctx, rate); err != nil {
		s.LogError(ctx, err, "Failed to create pay rate", slog.String("project_id", req.ProjectID))
		return nil, fmt.Errorf("failed to create pay rate: %w", err)
	}

	s.audit.Record(ctx, creatorUserID, domain.AuditCreate, "pay_rate", rate.PayRateID, nil,
		map[string]any{
			"projectID":     rate.ProjectID,
			"category":      string(rate.Category),
			"amount":        rate.Amount.String(),
			"effectiveDate": rate.EffectiveDate,
		})

	return &rate, nil
}

func (s *payRateService) ListPayRates(ctx context.Context, projectID string) ([]domain.PayRate, error) {
	rates, err := s.payRateRepo.ListPayRatesByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pay rates: %w", err)
	}
	return rates, nil
}

func (s *payRateService) ResolveRate(ctx context.Context, projectID, employeeTypeID string, category domain.RateCategory, asOfDate string) (*domain.PayRate, error) {
	asOf := dateutil.Normalize(asOfDate)
	if !dateutil.IsValid(asOf) {
		return nil, fmt.Errorf("%w: asOfDate must be a valid YYYY-MM-DD date", apperrors.ErrValidation)
	}
	rate, err := s.payRateRepo.FindEffectiveRate(ctx, projectID, employeeTypeID, category, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s rate: %w", category, err)
	}
	return rate, nil
}
