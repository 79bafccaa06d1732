package domain

import "github.com/shopspring/decimal"

// GroupBy selects the bucketing applied by the work-log aggregator.
type GroupBy string

const (
	GroupNone    GroupBy = "none"
	GroupDaily   GroupBy = "daily"
	GroupWeekly  GroupBy = "weekly"
	GroupMonthly GroupBy = "monthly"
)

// ActivityRow is one aggregated output row: a labourer's work within one
// bucket (a single day for none/daily, a Sunday-aligned week, or a month).
type ActivityRow struct {
	LabourerID    string          `json:"labourerID"`
	LabourerName  string          `json:"labourerName"`
	IDNumber      string          `json:"idNumber"`
	Period        string          `json:"period"` // work date, week start or YYYY-MM
	DaysWorked    int             `json:"daysWorked"`
	OpenMeters    decimal.Decimal `json:"openMeters"`
	CloseMeters   decimal.Decimal `json:"closeMeters"`
	TotalMeters   decimal.Decimal `json:"totalMeters"`
	TotalEarnings decimal.Decimal `json:"totalEarnings"`
}

// ActivityTotals sums every numeric column across a row set.
type ActivityTotals struct {
	DaysWorked    int             `json:"daysWorked"`
	OpenMeters    decimal.Decimal `json:"openMeters"`
	CloseMeters   decimal.Decimal `json:"closeMeters"`
	TotalMeters   decimal.Decimal `json:"totalMeters"`
	TotalEarnings decimal.Decimal `json:"totalEarnings"`
}

// PayrollEntry is one labourer's line in the payroll summary.
type PayrollEntry struct {
	LabourerID    string          `json:"labourerID"`
	LabourerName  string          `json:"labourerName"`
	IDNumber      string          `json:"idNumber"`
	DaysWorked    int             `json:"daysWorked"`
	OpenMeters    decimal.Decimal `json:"openMeters"`
	CloseMeters   decimal.Decimal `json:"closeMeters"`
	TotalMeters   decimal.Decimal `json:"totalMeters"`
	TotalEarnings decimal.Decimal `json:"totalEarnings"`
}

// PayrollReport is the payroll summary for a project and date range. OpenRate
// and CloseRate are informational headers resolved as of the end date; the
// authoritative figure is the sum of stored work-log earnings.
type PayrollReport struct {
	ProjectID     string           `json:"projectID"`
	ProjectName   string           `json:"projectName"`
	StartDate     string           `json:"startDate"`
	EndDate       string           `json:"endDate"`
	PaymentPeriod PaymentCadence   `json:"paymentPeriod"`
	OpenRate      *decimal.Decimal `json:"openRate,omitempty"`
	CloseRate     *decimal.Decimal `json:"closeRate,omitempty"`
	Entries       []PayrollEntry   `json:"entries"`
	GrandTotal    decimal.Decimal  `json:"grandTotal"`
}

// ActivityReport is the worker activity report for a project and date range.
type ActivityReport struct {
	ProjectID   string         `json:"projectID"`
	ProjectName string         `json:"projectName"`
	StartDate   string         `json:"startDate"`
	EndDate     string         `json:"endDate"`
	GroupBy     GroupBy        `json:"groupBy"`
	Data        []ActivityRow  `json:"data"`
	Totals      ActivityTotals `json:"totals"`
}
