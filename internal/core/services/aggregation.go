package services

import (
	"fmt"
	"sort"

	"github.com/TrenchWorks/workforce_payroll_app/internal/core/domain"
	"github.com/TrenchWorks/workforce_payroll_app/internal/utils/dateutil"
	"github.com/shopspring/decimal"
)

// rowAccumulator collects one output row's sums while grouping. Distinct work
// dates are tracked so daysWorked counts days, not log rows.
type rowAccumulator struct {
	labourerID string
	bucket     string
	openMeters decimal.Decimal
	closeMeters decimal.Decimal
	earnings   decimal.Decimal
	workDates  map[string]struct{}
}

// aggregateWorkLogs groups work logs by (labourer, bucket) and sums metres
// and stored earnings. The labourers map supplies denormalized identity
// fields; unknown labourers still aggregate, with blank identity.
// Empty input yields an empty row list and zero totals.
func aggregateWorkLogs(logs []domain.WorkLog, labourers map[string]domain.Labourer, groupBy domain.GroupBy) ([]domain.ActivityRow, domain.ActivityTotals, error) {
	accums := make(map[string]*rowAccumulator)

	for _, log := range logs {
		bucket, err := bucketFor(log.WorkDate, groupBy)
		if err != nil {
			return nil, domain.ActivityTotals{}, fmt.Errorf("bucketing work log %s: %w", log.WorkLogID, err)
		}

		key := log.LabourerID + "|" + bucket
		acc, ok := accums[key]
		if !ok {
			acc = &rowAccumulator{
				labourerID:  log.LabourerID,
				bucket:      bucket,
				openMeters:  decimal.Zero,
				closeMeters: decimal.Zero,
				earnings:    decimal.Zero,
				workDates:   make(map[string]struct{}),
			}
			accums[key] = acc
		}

		acc.openMeters = acc.openMeters.Add(log.OpenTrenchingMeters)
		acc.closeMeters = acc.closeMeters.Add(log.CloseTrenchingMeters)
		acc.earnings = acc.earnings.Add(log.TotalEarnings)
		acc.workDates[dateutil.Normalize(log.WorkDate)] = struct{}{}
	}

	rows := make([]domain.ActivityRow, 0, len(accums))
	totals := domain.ActivityTotals{
		OpenMeters:    decimal.Zero,
		CloseMeters:   decimal.Zero,
		TotalMeters:   decimal.Zero,
		TotalEarnings: decimal.Zero,
	}

	for _, acc := range accums {
		row := domain.ActivityRow{
			LabourerID:    acc.labourerID,
			Period:        acc.bucket,
			DaysWorked:    len(acc.workDates),
			OpenMeters:    acc.openMeters,
			CloseMeters:   acc.closeMeters,
			TotalMeters:   acc.openMeters.Add(acc.closeMeters),
			TotalEarnings: acc.earnings,
		}
		if lab, ok := labourers[acc.labourerID]; ok {
			row.LabourerName = lab.FullName()
			row.IDNumber = lab.IDNumber
		}
		rows = append(rows, row)

		totals.DaysWorked += row.DaysWorked
		totals.OpenMeters = totals.OpenMeters.Add(row.OpenMeters)
		totals.CloseMeters = totals.CloseMeters.Add(row.CloseMeters)
		totals.TotalMeters = totals.TotalMeters.Add(row.TotalMeters)
		totals.TotalEarnings = totals.TotalEarnings.Add(row.TotalEarnings)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].LabourerName != rows[j].LabourerName {
			return rows[i].LabourerName < rows[j].LabourerName
		}
		if rows[i].LabourerID != rows[j].LabourerID {
			return rows[i].LabourerID < rows[j].LabourerID
		}
		return rows[i].Period < rows[j].Period
	})

	return rows, totals, nil
}

// bucketFor maps a work date onto its grouping bucket.
func bucketFor(workDate string, groupBy domain.GroupBy) (string, error) {
	date := dateutil.Normalize(workDate)
	switch groupBy {
	case domain.GroupNone, domain.GroupDaily, "":
		return date, nil
	case domain.GroupWeekly:
		return dateutil.WeekStart(date)
	case domain.GroupMonthly:
		return dateutil.MonthKey(date)
	default:
		return "", fmt.Errorf("unknown groupBy %q", groupBy)
	}
}

// labourerSummary is one labourer's totals over a whole date range, used by
// payment period materialization and the payroll summary.
type labourerSummary struct {
	labourerID string
	daysWorked int
	openMeters decimal.Decimal
	closeMeters decimal.Decimal
	earnings   decimal.Decimal
}

// summarizeByLabourer collapses work logs into one summary per labourer,
// ordered by labourer ID for deterministic output.
func summarizeByLabourer(logs []domain.WorkLog) []labourerSummary {
	type acc struct {
		open, close, earnings decimal.Decimal
		dates                 map[string]struct{}
	}
	accums := make(map[string]*acc)

	for _, log := range logs {
		a, ok := accums[log.LabourerID]
		if !ok {
			a = &acc{open: decimal.Zero, close: decimal.Zero, earnings: decimal.Zero, dates: make(map[string]struct{})}
			accums[log.LabourerID] = a
		}
		a.open = a.open.Add(log.OpenTrenchingMeters)
		a.close = a.close.Add(log.CloseTrenchingMeters)
		a.earnings = a.earnings.Add(log.TotalEarnings)
		a.dates[dateutil.Normalize(log.WorkDate)] = struct{}{}
	}

	ids := make([]string, 0, len(accums))
	for id := range accums {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	summaries := make([]labourerSummary, 0, len(ids))
	for _, id := range ids {
		a := accums[id]
		summaries = append(summaries, labourerSummary{
			labourerID:  id,
			daysWorked:  len(a.dates),
			openMeters:  a.open,
			closeMeters: a.close,
			earnings:    a.earnings,
		})
	}
	return summaries
}
