package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"

	"github.com/TrenchWorks/workforce_payroll_app/internal/apperrors"
	"github.com/TrenchWorks/workforce_payroll_app/internal/core/domain"
	portsrepo "github.com/TrenchWorks/workforce_payroll_app/internal/core/ports/repositories"
	portssvc "github.com/TrenchWorks/workforce_payroll_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

type reportingService struct {
	BaseService
	workLogRepo  portsrepo.WorkLogRepository
	labourerRepo portsrepo.LabourerRepository
	projectRepo  portsrepo.ProjectRepository
	payRateRepo  portsrepo.PayRateRepository
}

// NewReportingService creates a new reporting service.
func NewReportingService(workLogRepo portsrepo.WorkLogRepository, labourerRepo portsrepo.LabourerRepository, projectRepo portsrepo.ProjectRepository, payRateRepo portsrepo.PayRateRepository) portssvc.ReportingSvcFacade {
	return &reportingService{
		workLogRepo:  workLogRepo,
		labourerRepo: labourerRepo,
		projectRepo:  projectRepo,
		payRateRepo:  payRateRepo,
	}
}

// PayrollSummary totals each labourer's stored work-log earnings over the
// range. Earnings are summed as stored, never repriced, so the report agrees
// with what was computed when the work was recorded.
func (s *reportingService) PayrollSummary(ctx context.Context, projectID, startDate, endDate string) (*domain.PayrollReport, error) {
	if projectID == "" {
		return nil, fmt.Errorf("%w: projectID is required", apperrors.ErrValidation)
	}
	start, end, err := normalizeRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to find project %s: %w", projectID, err)
	}

	logs, err := s.workLogRepo.ListWorkLogsByDateRange(ctx, projectID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list work logs: %w", err)
	}

	labourers, err := s.labourerMap(ctx, projectID, logs)
	if err != nil {
		return nil, err
	}

	report := &domain.PayrollReport{
		ProjectID:     projectID,
		ProjectName:   project.Name,
		StartDate:     start,
		EndDate:       end,
		PaymentPeriod: project.PaymentCadence,
		OpenRate:      s.headerRate(ctx, project, domain.RateOpenTrenching, end, project.DefaultOpenRate),
		CloseRate:     s.headerRate(ctx, project, domain.RateCloseTrenching, end, project.DefaultCloseRate),
		Entries:       []domain.PayrollEntry{},
		GrandTotal:    decimal.Zero,
	}

	for _, summary := range summarizeByLabourer(logs) {
		entry := domain.PayrollEntry{
			LabourerID:    summary.labourerID,
			DaysWorked:    summary.daysWorked,
			OpenMeters:    summary.openMeters,
			CloseMeters:   summary.closeMeters,
			TotalMeters:   summary.openMeters.Add(summary.closeMeters),
			TotalEarnings: summary.earnings,
		}
		if lab, ok := labourers[summary.labourerID]; ok {
			entry.LabourerName = lab.FullName()
			entry.IDNumber = lab.IDNumber
		}
		report.Entries = append(report.Entries, entry)
		report.GrandTotal = report.GrandTotal.Add(entry.TotalEarnings)
	}

	return report, nil
}

func (s *reportingService) WorkerActivity(ctx context.Context, projectID, startDate, endDate string, groupBy domain.GroupBy, labourerID string) (*domain.ActivityReport, error) {
	if projectID == "" {
		return nil, fmt.Errorf("%w: projectID is required", apperrors.ErrValidation)
	}
	start, end, err := normalizeRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	switch groupBy {
	case "", domain.GroupNone, domain.GroupDaily, domain.GroupWeekly, domain.GroupMonthly:
	default:
		return nil, fmt.Errorf("%w: groupBy must be one of none, daily, weekly, monthly", apperrors.ErrValidation)
	}

	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to find project %s: %w", projectID, err)
	}

	var logs []domain.WorkLog
	if labourerID != "" {
		all, err := s.workLogRepo.ListWorkLogsByLabourer(ctx, labourerID, start, end)
		if err != nil {
			return nil, fmt.Errorf("failed to list work logs: %w", err)
		}
		for _, log := range all {
			if log.ProjectID == projectID {
				logs = append(logs, log)
			}
		}
	} else {
		logs, err = s.workLogRepo.ListWorkLogsByDateRange(ctx, projectID, start, end)
		if err != nil {
			return nil, fmt.Errorf("failed to list work logs: %w", err)
		}
	}

	labourers, err := s.labourerMap(ctx, projectID, logs)
	if err != nil {
		return nil, err
	}

	if groupBy == "" {
		groupBy = domain.GroupNone
	}
	rows, totals, err := aggregateWorkLogs(logs, labourers, groupBy)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate work logs: %w", err)
	}

	return &domain.ActivityReport{
		ProjectID:   projectID,
		ProjectName: project.Name,
		StartDate:   start,
		EndDate:     end,
		GroupBy:     groupBy,
		Data:        rows,
		Totals:      totals,
	}, nil
}

// labourerMap indexes the project's labourers by ID, individually fetching
// any labourer who appears in the logs but has since left the project.
func (s *reportingService) labourerMap(ctx context.Context, projectID string, logs []domain.WorkLog) (map[string]domain.Labourer, error) {
	labourers, err := s.labourerRepo.ListLabourers(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list labourers: %w", err)
	}
	byID := make(map[string]domain.Labourer, len(labourers))
	for _, lab := range labourers {
		byID[lab.LabourerID] = lab
	}
	for _, log := range logs {
		if _, ok := byID[log.LabourerID]; ok {
			continue
		}
		found, err := s.labourerRepo.FindLabourerByID(ctx, log.LabourerID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("failed to find labourer %s: %w", log.LabourerID, err)
		}
		byID[found.LabourerID] = *found
	}
	return byID, nil
}

// headerRate resolves the informational rate shown in the payroll header:
// the latest configured rate for the category as of the end date, falling
// back to the project default. Nil when neither exists.
func (s *reportingService) headerRate(ctx context.Context, project *domain.Project, category domain.RateCategory, asOfDate string, defaultRate *decimal.Decimal) *decimal.Decimal {
	rate, err := s.payRateRepo.FindProjectEffectiveRate(ctx, project.ProjectID, category, asOfDate)
	if err == nil {
		amount := rate.Amount
		return &amount
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to resolve header rate")
	}
	return defaultRate
}

// RenderPayrollCSV renders a payroll report with a header row, one row per
// labourer and a trailing TOTAL row. Numbers use plain fixed two-decimal
// formatting with no locale separators.
func (s *reportingService) RenderPayrollCSV(report *domain.PayrollReport) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	rows := [][]string{{"Labourer Name", "ID Number", "Days Worked", "Open Meters", "Close Meters", "Total Meters", "Total Earnings"}}
	for _, e := range report.Entries {
		rows = append(rows, []string{
			e.LabourerName,
			e.IDNumber,
			strconv.Itoa(e.DaysWorked),
			e.OpenMeters.StringFixed(2),
			e.CloseMeters.StringFixed(2),
			e.TotalMeters.StringFixed(2),
			e.TotalEarnings.StringFixed(2),
		})
	}
	totals := payrollTotals(report)
	rows = append(rows, []string{
		"TOTAL",
		"",
		strconv.Itoa(totals.DaysWorked),
		totals.OpenMeters.StringFixed(2),
		totals.CloseMeters.StringFixed(2),
		totals.TotalMeters.StringFixed(2),
		report.GrandTotal.StringFixed(2),
	})

	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("failed to render payroll csv: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderActivityCSV renders an activity report in the same shape as the
// payroll CSV with an extra Period column.
func (s *reportingService) RenderActivityCSV(report *domain.ActivityReport) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	rows := [][]string{{"Labourer Name", "ID Number", "Period", "Days Worked", "Open Meters", "Close Meters", "Total Meters", "Total Earnings"}}
	for _, r := range report.Data {
		rows = append(rows, []string{
			r.LabourerName,
			r.IDNumber,
			r.Period,
			strconv.Itoa(r.DaysWorked),
			r.OpenMeters.StringFixed(2),
			r.CloseMeters.StringFixed(2),
			r.TotalMeters.StringFixed(2),
			r.TotalEarnings.StringFixed(2),
		})
	}
	rows = append(rows, []string{
		"TOTAL",
		"",
		"",
		strconv.Itoa(report.Totals.DaysWorked),
		report.Totals.OpenMeters.StringFixed(2),
		report.Totals.CloseMeters.StringFixed(2),
		report.Totals.TotalMeters.StringFixed(2),
		report.Totals.TotalEarnings.StringFixed(2),
	})

	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("failed to render activity csv: %w", err)
	}
	return buf.Bytes(), nil
}

func payrollTotals(report *domain.PayrollReport) domain.ActivityTotals {
	totals := domain.ActivityTotals{
		OpenMeters:    decimal.Zero,
		CloseMeters:   decimal.Zero,
		TotalMeters:   decimal.Zero,
		TotalEarnings: decimal.Zero,
	}
	for _, e := range report.Entries {
		totals.DaysWorked += e.DaysWorked
		totals.OpenMeters = totals.OpenMeters.Add(e.OpenMeters)
		totals.CloseMeters = totals.CloseMeters.Add(e.CloseMeters)
		totals.TotalMeters = totals.TotalMeters.Add(e.TotalMeters)
		totals.TotalEarnings = totals.TotalEarnings.Add(e.TotalEarnings)
	}
	return totals
}
