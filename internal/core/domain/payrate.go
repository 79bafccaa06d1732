package domain

import "github.com/shopspring/decimal"

// RateCategory is the kind of work a rate prices.
type RateCategory string

const (
	RateOpenTrenching  RateCategory = "open_trenching"
	RateCloseTrenching RateCategory = "close_trenching"
	RateCustom         RateCategory = "custom"
)

// RateUnit is the unit the rate amount applies to.
type RateUnit string

const (
	UnitPerMeter RateUnit = "per_meter"
	UnitPerDay   RateUnit = "per_day"
	UnitFixed    RateUnit = "fixed"
)

// PayRate is one entry in the time-versioned rate history for a
// (project, employee type, category). Rates are immutable; pricing changes
// by appending a rate with a later effective date, which leaves historical
// work-log earnings untouched.
type PayRate struct {
	PayRateID      string          `json:"payRateID"`
	ProjectID      string          `json:"projectID"`
	EmployeeTypeID string          `json:"employeeTypeID"`
	Category       RateCategory    `json:"category"`
	Amount         decimal.Decimal `json:"amount"`
	Unit           RateUnit        `json:"unit"`
	EffectiveDate  string          `json:"effectiveDate"` // YYYY-MM-DD
	AuditFields
}
