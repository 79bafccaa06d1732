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
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type paymentPeriodService struct {
	BaseService
	periodRepo   portsrepo.PaymentPeriodRepository
	workLogRepo  portsrepo.WorkLogRepository
	labourerRepo portsrepo.LabourerRepository
	projectRepo  portsrepo.ProjectRepository
	audit        portssvc.AuditSvcFacade
}

// NewPaymentPeriodService creates a new payment period service.
func NewPaymentPeriodService(periodRepo portsrepo.PaymentPeriodRepository, workLogRepo portsrepo.WorkLogRepository, labourerRepo portsrepo.LabourerRepository, projectRepo portsrepo.ProjectRepository, audit portssvc.AuditSvcFacade) portssvc.PaymentPeriodSvcFacade {
	return &paymentPeriodService{
		periodRepo:   periodRepo,
		workLogRepo:  workLogRepo,
		labourerRepo: labourerRepo,
		projectRepo:  projectRepo,
		audit:        audit,
	}
}

func (s *paymentPeriodService) CreatePaymentPeriod(ctx context.Context, projectID string, req dto.CreatePaymentPeriodRequest, creatorUserID string) (*domain.PaymentPeriod, error) {
	start, end, err := normalizeRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	if _, err := s.projectRepo.FindProjectByID(ctx, projectID); err != nil {
		return nil, fmt.Errorf("failed to find project %s: %w", projectID, err)
	}

	// The creation-time total is informational only: a running sum of the
	// work-log earnings currently in the range. It becomes authoritative when
	// entries are materialized at submission.
	logs, err := s.workLogRepo.ListWorkLogsByDateRange(ctx, projectID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to total work logs for period: %w", err)
	}
	total := decimal.Zero
	for _, log := range logs {
		total = total.Add(log.TotalEarnings)
	}

	now := time.Now()
	period := domain.PaymentPeriod{
		PeriodID:    uuid.NewString(),
		ProjectID:   projectID,
		StartDate:   start,
		EndDate:     end,
		Status:      domain.PeriodOpen,
		TotalAmount: total,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.periodRepo.SavePaymentPeriod(ctx, period); err != nil {
		s.LogError(ctx, err, "Failed to create payment period", slog.String("project_id", projectID))
		return nil, fmt.Errorf("failed to create payment period: %w", err)
	}

	s.audit.Record(ctx, creatorUserID, domain.AuditCreate, "payment_period", period.PeriodID, nil,
		map[string]any{"projectID": projectID, "startDate": start, "endDate": end})

	return &period, nil
}

func (s *paymentPeriodService) GetPaymentPeriod(ctx context.Context, periodID string) (*domain.PaymentPeriod, []domain.PaymentPeriodEntry, error) {
	period, err := s.periodRepo.FindPaymentPeriodByID(ctx, periodID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to find payment period %s: %w", periodID, err)
	}
	entries, err := s.periodRepo.ListPaymentPeriodEntries(ctx, periodID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list payment period entries: %w", err)
	}
	return period, entries, nil
}

func (s *paymentPeriodService) ListPaymentPeriods(ctx context.Context, projectID string) ([]domain.PaymentPeriod, error) {
	periods, err := s.periodRepo.ListPaymentPeriodsByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment periods: %w", err)
	}
	return periods, nil
}

// SubmitPaymentPeriod moves the period to submitted and materializes one
// entry per labourer from the work logs in range. Submission is idempotent on
// the entries: if a previous submit already wrote them, they are kept exactly
// as stored and only the total is recomputed from them, so labourers are
// never double-counted and late work-log edits do not silently change an
// already-submitted period.
func (s *paymentPeriodService) SubmitPaymentPeriod(ctx context.Context, periodID, actorUserID string) (*domain.PaymentPeriod, error) {
	period, err := s.periodRepo.FindPaymentPeriodByID(ctx, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to find payment period %s: %w", periodID, err)
	}

	existing, err := s.periodRepo.ListPaymentPeriodEntries(ctx, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment period entries: %w", err)
	}

	now := time.Now()
	period.Status = domain.PeriodSubmitted
	period.SubmittedBy = actorUserID
	period.SubmittedAt = &now
	period.LastUpdatedAt = now
	period.LastUpdatedBy = actorUserID

	var newEntries []domain.PaymentPeriodEntry
	if len(existing) > 0 {
		total := decimal.Zero
		for _, entry := range existing {
			total = total.Add(entry.TotalEarnings)
		}
		period.TotalAmount = total
	} else {
		newEntries, err = s.materializeEntries(ctx, period, now, actorUserID)
		if err != nil {
			return nil, err
		}
		total := decimal.Zero
		for _, entry := range newEntries {
			total = total.Add(entry.TotalEarnings)
		}
		period.TotalAmount = total
	}

	// Entries and the period update land in one transaction; a failure rolls
	// both back so a retry starts from a clean slate.
	if err := s.periodRepo.SubmitPaymentPeriod(ctx, *period, newEntries); err != nil {
		s.LogError(ctx, err, "Failed to submit payment period", slog.String("period_id", periodID))
		return nil, fmt.Errorf("failed to submit payment period: %w", err)
	}

	s.audit.Record(ctx, actorUserID, domain.AuditSubmit, "payment_period", periodID, nil,
		map[string]any{
			"entries":     len(existing) + len(newEntries),
			"totalAmount": period.TotalAmount.String(),
		})

	return period, nil
}

func (s *paymentPeriodService) materializeEntries(ctx context.Context, period *domain.PaymentPeriod, now time.Time, actorUserID string) ([]domain.PaymentPeriodEntry, error) {
	logs, err := s.workLogRepo.ListWorkLogsByDateRange(ctx, period.ProjectID, period.StartDate, period.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list work logs for period: %w", err)
	}

	labourers, err := s.labourerRepo.ListLabourers(ctx, period.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list labourers for period: %w", err)
	}
	byID := make(map[string]domain.Labourer, len(labourers))
	for _, lab := range labourers {
		byID[lab.LabourerID] = lab
	}

	entries := make([]domain.PaymentPeriodEntry, 0)
	for _, summary := range summarizeByLabourer(logs) {
		entry := domain.PaymentPeriodEntry{
			EntryID:       uuid.NewString(),
			PeriodID:      period.PeriodID,
			LabourerID:    summary.labourerID,
			DaysWorked:    summary.daysWorked,
			OpenMeters:    summary.openMeters,
			CloseMeters:   summary.closeMeters,
			TotalMeters:   summary.openMeters.Add(summary.closeMeters),
			TotalEarnings: summary.earnings,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     actorUserID,
				LastUpdatedAt: now,
				LastUpdatedBy: actorUserID,
			},
		}

		// Snapshot identity at submission. Labourers who have since moved off
		// the project are fetched individually so their earnings still land.
		lab, ok := byID[summary.labourerID]
		if !ok {
			found, err := s.labourerRepo.FindLabourerByID(ctx, summary.labourerID)
			if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("failed to find labourer %s: %w", summary.labourerID, err)
			}
			if found != nil {
				lab = *found
				ok = true
			}
		}
		if ok {
			entry.LabourerName = lab.FullName()
			entry.IDNumber = lab.IDNumber
		}

		entries = append(entries, entry)
	}
	return entries, nil
}

func (s *paymentPeriodService) ApprovePaymentPeriod(ctx context.Context, periodID, actorUserID string) (*domain.PaymentPeriod, error) {
	period, err := s.periodRepo.FindPaymentPeriodByID(ctx, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to find payment period %s: %w", periodID, err)
	}

	now := time.Now()
	period.Status = domain.PeriodApproved
	period.ApprovedBy = actorUserID
	period.ApprovedAt = &now
	period.LastUpdatedAt = now
	period.LastUpdatedBy = actorUserID

	if err := s.periodRepo.UpdatePaymentPeriod(ctx, *period); err != nil {
		s.LogError(ctx, err, "Failed to approve payment period", slog.String("period_id", periodID))
		return nil, fmt.Errorf("failed to approve payment period: %w", err)
	}

	s.audit.Record(ctx, actorUserID, domain.AuditApprove, "payment_period", periodID, nil,
		map[string]any{"totalAmount": period.TotalAmount.String()})

	return period, nil
}

func (s *paymentPeriodService) MarkPaymentPeriodPaid(ctx context.Context, periodID, actorUserID string) (*domain.PaymentPeriod, error) {
	period, err := s.periodRepo.FindPaymentPeriodByID(ctx, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to find payment period %s: %w", periodID, err)
	}

	now := time.Now()
	period.Status = domain.PeriodPaid
	period.LastUpdatedAt = now
	period.LastUpdatedBy = actorUserID

	if err := s.periodRepo.UpdatePaymentPeriod(ctx, *period); err != nil {
		s.LogError(ctx, err, "Failed to mark payment period paid", slog.String("period_id", periodID))
		return nil, fmt.Errorf("failed to mark payment period paid: %w", err)
	}

	s.audit.Record(ctx, actorUserID, domain.AuditUpdate, "payment_period", periodID, nil,
		map[string]any{"status": string(domain.PeriodPaid)})

	return period, nil
}
