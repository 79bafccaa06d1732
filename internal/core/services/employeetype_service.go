package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/TrenchWorks/workforce_payroll_app/internal/core/domain"
	portsrepo "github.com/TrenchWorks/workforce_payroll_app/internal/core/ports/repositories"
	portssvc "github.com/TrenchWorks/workforce_payroll_app/internal/core/ports/services"
	"github.com/TrenchWorks/workforce_payroll_app/internal/dto"
	"github.com/google/uuid"
)

type employeeTypeService struct {
	BaseService
	employeeTypeRepo portsrepo.EmployeeTypeRepository
	audit            portssvc.AuditSvcFacade
}

// NewEmployeeTypeService creates a new employee type service.
func NewEmployeeTypeService(employeeTypeRepo portsrepo.EmployeeTypeRepository, audit portssvc.AuditSvcFacade) portssvc.EmployeeTypeSvcFacade {
	return &employeeTypeService{employeeTypeRepo: employeeTypeRepo, audit: audit}
}

func (s *employeeTypeService) CreateEmployeeType(ctx context.Context, req dto.CreateEmployeeTypeRequest, creatorUserID string) (*domain.EmployeeType, error) {
	now := time.Now()
	et := domain.EmployeeType{
		EmployeeTypeID: uuid.NewString(),
		Name:           req.Name,
		Description:    req.Description,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.employeeTypeRepo.SaveEmployeeType(ctx, et); err != nil {
		s.LogError(ctx, err, "Failed to create employee type", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to create employee type: %w", err)
	}

	s.audit.Record(ctx, creatorUserID, domain.AuditCreate, "employee_type", et.EmployeeTypeID, nil,
		map[string]any{"name": et.Name})

	return &et, nil
}

func (s *employeeTypeService) ListEmployeeTypes(ctx context.Context, includeInactive bool) ([]domain.EmployeeType, error) {
	types, err := s.employeeTypeRepo.ListEmployeeTypes(ctx, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee types: %w", err)
	}
	return types, nil
}

func (s *employeeTypeService) UpdateEmployeeType(ctx context.Context, employeeTypeID string, req dto.UpdateEmployeeTypeRequest, updaterUserID string) (*domain.EmployeeType, error) {
	et, err := s.employeeTypeRepo.FindEmployeeTypeByID(ctx, employeeTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to find employee type %s: %w", employeeTypeID, err)
	}

	before := map[string]any{"name": et.Name, "description": et.Description, "isActive": et.IsActive}

	if req.Name != nil {
		et.Name = *req.Name
	}
	if req.Description != nil {
		et.Description = *req.Description
	}
	if req.IsActive != nil {
		// Deactivation is the soft-delete path; labourer rows keep their
		// reference and historical earnings are unaffected.
		et.IsActive = *req.IsActive
	}
	et.LastUpdatedAt = time.Now()
	et.LastUpdatedBy = updaterUserID

	if err := s.employeeTypeRepo.UpdateEmployeeType(ctx, *et); err != nil {
		s.LogError(ctx, err, "Failed to update employee type", slog.String("employee_type_id", employeeTypeID))
		return nil, fmt.Errorf("failed to update employee type: %w", err)
	}

	after := map[string]any{"name": et.Name, "description": et.Description, "isActive": et.IsActive}
	s.audit.Record(ctx, updaterUserID, domain.AuditUpdate, "employee_type", employeeTypeID, diffChanges(before, after), nil)

	return et, nil
}
