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
	"github.com/shopspring/decimal"
)

type workLogService struct {
	BaseService
	workLogRepo  portsrepo.WorkLogRepository
	labourerRepo portsrepo.LabourerRepository
	projectRepo  portsrepo.ProjectRepository
	payRateRepo  portsrepo.PayRateRepository
	audit        portssvc.AuditSvcFacade
}

// NewWorkLogService creates a new work log service.
func NewWorkLogService(workLogRepo portsrepo.WorkLogRepository, labourerRepo portsrepo.LabourerRepository, projectRepo portsrepo.ProjectRepository, payRateRepo portsrepo.PayRateRepository, audit portssvc.AuditSvcFacade) portssvc.WorkLogSvcFacade {
	return &workLogService{
		workLogRepo:  workLogRepo,
		labourerRepo: labourerRepo,
		projectRepo:  projectRepo,
		payRateRepo:  payRateRepo,
		audit:        audit,
	}
}

func (s *workLogService) CreateWorkLog(ctx context.Context, req dto.CreateWorkLogRequest, recorderUserID string) (*domain.WorkLog, error) {
	workDate := dateutil.Normalize(req.WorkDate)
	if !dateutil.IsValid(workDate) {
		return nil, fmt.Errorf("%w: workDate must be a valid YYYY-MM-DD date", apperrors.ErrValidation)
	}
	// Work is captured on the day it happens. Anything older goes through a
	// correction request so the change is reviewed and audited.
	if workDate != dateutil.Today() {
		return nil, fmt.Errorf("%w: work logs can only be recorded for today; file a correction request for other dates", apperrors.ErrValidation)
	}
	if req.OpenTrenchingMeters.IsNegative() || req.CloseTrenchingMeters.IsNegative() {
		return nil, fmt.Errorf("%w: metres cannot be negative", apperrors.ErrValidation)
	}

	labourer, err := s.labourerRepo.FindLabourerByID(ctx, req.LabourerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find labourer %s: %w", req.LabourerID, err)
	}
	if labourer.ProjectID != req.ProjectID {
		return nil, fmt.Errorf("%w: labourer is not assigned to this project", apperrors.ErrValidation)
	}

	project, err := s.projectRepo.FindProjectByID(ctx, req.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to find project %s: %w", req.ProjectID, err)
	}

	earnings, err := s.computeEarnings(ctx, project, labourer, workDate, req.OpenTrenchingMeters, req.CloseTrenchingMeters)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	log := domain.WorkLog{
		WorkLogID:            uuid.NewString(),
		LabourerID:           req.LabourerID,
		ProjectID:            req.ProjectID,
		WorkDate:             workDate,
		OpenTrenchingMeters:  req.OpenTrenchingMeters,
		CloseTrenchingMeters: req.CloseTrenchingMeters,
		TotalEarnings:        earnings,
		RecordedBy:           recorderUserID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     recorderUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: recorderUserID,
		},
	}

	if err := s.workLogRepo.SaveWorkLog(ctx, log); err != nil {
		s.LogError(ctx, err, "Failed to save work log",
			slog.String("labourer_id", req.LabourerID), slog.String("work_date", workDate))
		return nil, fmt.Errorf("failed to save work log: %w", err)
	}

	s.audit.Record(ctx, recorderUserID, domain.AuditCreate, "work_log", log.WorkLogID, nil,
		map[string]any{
			"labourerID": log.LabourerID,
			"workDate":   log.WorkDate,
			"earnings":   log.TotalEarnings.String(),
		})

	return &log, nil
}

func (s *workLogService) UpdateWorkLog(ctx context.Context, workLogID string, req dto.UpdateWorkLogRequest, updaterUserID string) (*domain.WorkLog, error) {
	log, err := s.workLogRepo.FindWorkLogByID(ctx, workLogID)
	if err != nil {
		return nil, fmt.Errorf("failed to find work log %s: %w", workLogID, err)
	}

	// Same-day edits only; the log is frozen once the day has passed.
	if log.WorkDate != dateutil.Today() {
		return nil, fmt.Errorf("%w: work logs can only be edited on their work date; file a correction request instead", apperrors.ErrValidation)
	}

	before := map[string]any{
		"openTrenchingMeters":  log.OpenTrenchingMeters.String(),
		"closeTrenchingMeters": log.CloseTrenchingMeters.String(),
		"totalEarnings":        log.TotalEarnings.String(),
	}

	if req.OpenTrenchingMeters != nil {
		if req.OpenTrenchingMeters.IsNegative() {
			return nil, fmt.Errorf("%w: metres cannot be negative", apperrors.ErrValidation)
		}
		log.OpenTrenchingMeters = *req.OpenTrenchingMeters
	}
	if req.CloseTrenchingMeters != nil {
		if req.CloseTrenchingMeters.IsNegative() {
			return nil, fmt.Errorf("%w: metres cannot be negative", apperrors.ErrValidation)
		}
		log.CloseTrenchingMeters = *req.CloseTrenchingMeters
	}

	labourer, err := s.labourerRepo.FindLabourerByID(ctx, log.LabourerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find labourer %s: %w", log.LabourerID, err)
	}
	project, err := s.projectRepo.FindProjectByID(ctx, log.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to find project %s: %w", log.ProjectID, err)
	}

	earnings, err := s.computeEarnings(ctx, project, labourer, log.WorkDate, log.OpenTrenchingMeters, log.CloseTrenchingMeters)
	if err != nil {
		return nil, err
	}
	log.TotalEarnings = earnings
	log.LastUpdatedAt = time.Now()
	log.LastUpdatedBy = updaterUserID

	if err := s.workLogRepo.UpdateWorkLog(ctx, *log); err != nil {
		s.LogError(ctx, err, "Failed to update work log", slog.String("work_log_id", workLogID))
		return nil, fmt.Errorf("failed to update work log: %w", err)
	}

	after := map[string]any{
		"openTrenchingMeters":  log.OpenTrenchingMeters.String(),
		"closeTrenchingMeters": log.CloseTrenchingMeters.String(),
		"totalEarnings":        log.TotalEarnings.String(),
	}
	s.audit.Record(ctx, updaterUserID, domain.AuditUpdate, "work_log", workLogID, diffChanges(before, after), nil)

	return log, nil
}

func (s *workLogService) ListWorkLogs(ctx context.Context, projectID, startDate, endDate string) ([]domain.WorkLog, error) {
	start, end, err := normalizeRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	logs, err := s.workLogRepo.ListWorkLogsByDateRange(ctx, projectID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list work logs: %w", err)
	}
	return logs, nil
}

func (s *workLogService) ListWorkLogsByLabourer(ctx context.Context, labourerID, startDate, endDate string) ([]domain.WorkLog, error) {
	start, end, err := normalizeRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	logs, err := s.workLogRepo.ListWorkLogsByLabourer(ctx, labourerID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list work logs: %w", err)
	}
	return logs, nil
}

// computeEarnings prices the day's metres using the rates in force on the
// work date. Rate resolution order per category: the configured rate for the
// labourer's employee type, then the project's default rate, then zero. The
// result is stored on the log and never recomputed by reports.
func (s *workLogService) computeEarnings(ctx context.Context, project *domain.Project, labourer *domain.Labourer, workDate string, openMeters, closeMeters decimal.Decimal) (decimal.Decimal, error) {
	open, err := s.categoryEarnings(ctx, project, labourer, domain.RateOpenTrenching, workDate, openMeters, project.DefaultOpenRate)
	if err != nil {
		return decimal.Zero, err
	}
	close, err := s.categoryEarnings(ctx, project, labourer, domain.RateCloseTrenching, workDate, closeMeters, project.DefaultCloseRate)
	if err != nil {
		return decimal.Zero, err
	}
	return open.Add(close), nil
}

func (s *workLogService) categoryEarnings(ctx context.Context, project *domain.Project, labourer *domain.Labourer, category domain.RateCategory, workDate string, meters decimal.Decimal, defaultRate *decimal.Decimal) (decimal.Decimal, error) {
	rate, err := s.payRateRepo.FindEffectiveRate(ctx, project.ProjectID, labourer.EmployeeTypeID, category, workDate)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return decimal.Zero, fmt.Errorf("failed to resolve %s rate: %w", category, err)
		}
		if defaultRate != nil {
			return meters.Mul(*defaultRate), nil
		}
		// No configured or default rate: the metres are recorded unpaid and
		// can be repriced later through the correction workflow.
		s.LogDebug(ctx, "No rate in force, earnings default to zero",
			slog.String("project_id", project.ProjectID),
			slog.String("category", string(category)))
		return decimal.Zero, nil
	}

	switch rate.Unit {
	case domain.UnitPerMeter:
		return meters.Mul(rate.Amount), nil
	case domain.UnitPerDay, domain.UnitFixed:
		// Flat amounts accrue once per log, only when work was recorded.
		if meters.IsPositive() {
			return rate.Amount, nil
		}
		return decimal.Zero, nil
	default:
		return decimal.Zero, fmt.Errorf("%w: unknown rate unit %q", apperrors.ErrInternal, rate.Unit)
	}
}

// normalizeRange validates a mandatory inclusive date range.
func normalizeRange(startDate, endDate string) (string, string, error) {
	start := dateutil.Normalize(startDate)
	end := dateutil.Normalize(endDate)
	if !dateutil.IsValid(start) || !dateutil.IsValid(end) {
		return "", "", fmt.Errorf("%w: startDate and endDate must be valid YYYY-MM-DD dates", apperrors.ErrValidation)
	}
	if start > end {
		return "", "", fmt.Errorf("%w: startDate must not be after endDate", apperrors.ErrValidation)
	}
	return start, end, nil
}
