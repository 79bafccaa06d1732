package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/TrenchWorks/workforce_payroll_app/internal/apperrors"
	"github.com/TrenchWorks/workforce_payroll_app/internal/core/domain"
	portsrepo "github.com/TrenchWorks/workforce_payroll_app/internal/core/ports/repositories"
	portssvc "github.com/TrenchWorks/workforce_payroll_app/internal/core/ports/services"
	"github.com/TrenchWorks/workforce_payroll_app/internal/dto"
	"github.com/TrenchWorks/workforce_payroll_app/internal/utils/saidnum"
	"github.com/google/uuid"
)

type labourerService struct {
	BaseService
	labourerRepo     portsrepo.LabourerRepository
	projectRepo      portsrepo.ProjectRepository
	employeeTypeRepo portsrepo.EmployeeTypeRepository
	audit            portssvc.AuditSvcFacade
}

// NewLabourerService creates a new labourer service.
func NewLabourerService(labourerRepo portsrepo.LabourerRepository, projectRepo portsrepo.ProjectRepository, employeeTypeRepo portsrepo.EmployeeTypeRepository, audit portssvc.AuditSvcFacade) portssvc.LabourerSvcFacade {
	return &labourerService{
		labourerRepo:     labourerRepo,
		projectRepo:      projectRepo,
		employeeTypeRepo: employeeTypeRepo,
		audit:            audit,
	}
}

func (s *labourerService) CreateLabourer(ctx context.Context, req dto.CreateLabourerRequest, creatorUserID string) (*domain.Labourer, error) {
	idNumber := strings.TrimSpace(req.IDNumber)
	if res := saidnum.Validate(idNumber); !res.Valid {
		return nil, fmt.Errorf("%w: invalid ID number: %v", apperrors.ErrValidation, res.Err)
	}

	et, err := s.employeeTypeRepo.FindEmployeeTypeByID(ctx, req.EmployeeTypeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: employee type %s does not exist", apperrors.ErrValidation, req.EmployeeTypeID)
		}
		return nil, fmt.Errorf("failed to find employee type: %w", err)
	}
	if !et.IsActive {
		return nil, fmt.Errorf("%w: employee type %s is inactive", apperrors.ErrValidation, req.EmployeeTypeID)
	}

	if req.ProjectID != "" {
		if _, err := s.projectRepo.FindProjectByID(ctx, req.ProjectID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: project %s does not exist", apperrors.ErrValidation, req.ProjectID)
			}
			return nil, fmt.Errorf("failed to find project: %w", err)
		}
	}

	existing, err := s.labourerRepo.FindLabourerByIDNumber(ctx, idNumber)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing labourer: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: a labourer with this ID number already exists", apperrors.ErrDuplicate)
	}

	now := time.Now()
	labourer := domain.Labourer{
		LabourerID:     uuid.NewString(),
		FirstName:      req.FirstName,
		Surname:        req.Surname,
		IDNumber:       idNumber,
		PhoneNumber:    req.PhoneNumber,
		BankName:       req.BankName,
		AccountNumber:  req.AccountNumber,
		BranchCode:     req.BranchCode,
		EmployeeTypeID: req.EmployeeTypeID,
		ProjectID:      req.ProjectID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.labourerRepo.SaveLabourer(ctx, labourer); err != nil {
		s.LogError(ctx, err, "Failed to create labourer", slog.String("id_number", idNumber))
		return nil, fmt.Errorf("failed to create labourer: %w", err)
	}

	s.audit.Record(ctx, creatorUserID, domain.AuditCreate, "labourer", labourer.LabourerID, nil,
		map[string]any{"name": labourer.FullName()})

	return &labourer, nil
}

func (s *labourerService) GetLabourerByID(ctx context.Context, labourerID string) (*domain.Labourer, error) {
	labourer, err := s.labourerRepo.FindLabourerByID(ctx, labourerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get labourer %s: %w", labourerID, err)
	}
	return labourer, nil
}

func (s *labourerService) ListLabourers(ctx context.Context, projectID string) ([]domain.Labourer, error) {
	labourers, err := s.labourerRepo.ListLabourers(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list labourers: %w", err)
	}
	return labourers, nil
}

func (s *labourerService) ListAvailableLabourers(ctx context.Context) ([]domain.Labourer, error) {
	labourers, err := s.labourerRepo.ListAvailableLabourers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list available labourers: %w", err)
	}
	return labourers, nil
}

func (s *labourerService) UpdateLabourer(ctx context.Context, labourerID string, req dto.UpdateLabourerRequest, updaterUserID string) (*domain.Labourer, error) {
	labourer, err := s.labourerRepo.FindLabourerByID(ctx, labourerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find labourer %s: %w", labourerID, err)
	}

	before := map[string]any{
		"firstName":      labourer.FirstName,
		"surname":        labourer.Surname,
		"phoneNumber":    labourer.PhoneNumber,
		"bankName":       labourer.BankName,
		"accountNumber":  labourer.AccountNumber,
		"branchCode":     labourer.BranchCode,
		"employeeTypeID": labourer.EmployeeTypeID,
	}

	if req.FirstName != nil {
		labourer.FirstName = *req.FirstName
	}
	if req.Surname != nil {
		labourer.Surname = *req.Surname
	}
	if req.PhoneNumber != nil {
		labourer.PhoneNumber = *req.PhoneNumber
	}
	if req.BankName != nil {
		labourer.BankName = *req.BankName
	}
	if req.AccountNumber != nil {
		labourer.AccountNumber = *req.AccountNumber
	}
	if req.BranchCode != nil {
		labourer.BranchCode = *req.BranchCode
	}
	if req.EmployeeTypeID != nil {
		et, err := s.employeeTypeRepo.FindEmployeeTypeByID(ctx, *req.EmployeeTypeID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: employee type %s does not exist", apperrors.ErrValidation, *req.EmployeeTypeID)
			}
			return nil, fmt.Errorf("failed to find employee type: %w", err)
		}
		if !et.IsActive {
			return nil, fmt.Errorf("%w: employee type %s is inactive", apperrors.ErrValidation, *req.EmployeeTypeID)
		}
		labourer.EmployeeTypeID = *req.EmployeeTypeID
	}
	labourer.LastUpdatedAt = time.Now()
	labourer.LastUpdatedBy = updaterUserID

	if err := s.labourerRepo.UpdateLabourer(ctx, *labourer); err != nil {
		s.LogError(ctx, err, "Failed to update labourer", slog.String("labourer_id", labourerID))
		return nil, fmt.Errorf("failed to update labourer: %w", err)
	}

	after := map[string]any{
		"firstName":      labourer.FirstName,
		"surname":        labourer.Surname,
		"phoneNumber":    labourer.PhoneNumber,
		"bankName":       labourer.BankName,
		"accountNumber":  labourer.AccountNumber,
		"branchCode":     labourer.BranchCode,
		"employeeTypeID": labourer.EmployeeTypeID,
	}
	s.audit.Record(ctx, updaterUserID, domain.AuditUpdate, "labourer", labourerID, diffChanges(before, after), nil)

	return labourer, nil
}

func (s *labourerService) AssignToProject(ctx context.Context, labourerID, projectID, actorUserID string) (*domain.Labourer, error) {
	labourer, err := s.labourerRepo.FindLabourerByID(ctx, labourerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find labourer %s: %w", labourerID, err)
	}

	if projectID != "" {
		if _, err := s.projectRepo.FindProjectByID(ctx, projectID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: project %s does not exist", apperrors.ErrValidation, projectID)
			}
			return nil, fmt.Errorf("failed to find project: %w", err)
		}
	}

	previousProjectID := labourer.ProjectID
	labourer.ProjectID = projectID
	labourer.LastUpdatedAt = time.Now()
	labourer.LastUpdatedBy = actorUserID

	if err := s.labourerRepo.UpdateLabourer(ctx, *labourer); err != nil {
		s.LogError(ctx, err, "Failed to move labourer", slog.String("labourer_id", labourerID))
		return nil, fmt.Errorf("failed to move labourer: %w", err)
	}

	s.audit.Record(ctx, actorUserID, domain.AuditAssign, "labourer", labourerID,
		map[string]domain.FieldChange{"projectID": {Old: previousProjectID, New: projectID}}, nil)

	return labourer, nil
}

func (s *labourerService) BulkImport(ctx context.Context, req dto.BulkImportRequest, actorUserID string) (*dto.BulkImportResult, error) {
	result := &dto.BulkImportResult{}
	seen := make(map[string]bool)

	for i, row := range req.Rows {
		rowNumber := i + 1
		skip := func(reason string) {
			result.Skipped = append(result.Skipped, dto.SkippedImportRow{RowNumber: rowNumber, Reason: reason})
		}

		if row.FirstName == "" || row.Surname == "" || row.IDNumber == "" || row.EmployeeTypeID == "" {
			skip("firstName, surname, idNumber and employeeTypeID are required")
			continue
		}
		idNumber := strings.TrimSpace(row.IDNumber)
		if seen[idNumber] {
			skip("duplicate ID number within the import")
			continue
		}
		seen[idNumber] = true

		_, err := s.CreateLabourer(ctx, dto.CreateLabourerRequest{
			FirstName:      row.FirstName,
			Surname:        row.Surname,
			IDNumber:       idNumber,
			PhoneNumber:    row.PhoneNumber,
			EmployeeTypeID: row.EmployeeTypeID,
			ProjectID:      row.ProjectID,
		}, actorUserID)
		if err != nil {
			if errors.Is(err, apperrors.ErrValidation) || errors.Is(err, apperrors.ErrDuplicate) {
				skip(err.Error())
				continue
			}
			// Storage failure aborts the whole import rather than silently
			// dropping the remaining rows.
			return nil, fmt.Errorf("bulk import failed at row %d: %w", rowNumber, err)
		}
		result.Imported++
	}

	s.LogInfo(ctx, "Bulk labourer import completed",
		slog.Int("imported", result.Imported), slog.Int("skipped", len(result.Skipped)))

	return result, nil
}
