package dto

import (
	"github.com/TrenchWorks/workforce_payroll_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePayRateRequest appends a new rate to the history for a
// (project, employee type, category). Existing rates are never edited.
type CreatePayRateRequest struct {
	ProjectID      string          `json:"projectID" binding:"required"`
	EmployeeTypeID string          `json:"employeeTypeID" binding:"required"`
	Category       string          `json:"category" binding:"required,oneof=open_trenching close_trenching custom"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	Unit           string          `json:"unit" binding:"required,oneof=per_meter per_day fixed"`
	EffectiveDate  string          `json:"effectiveDate" binding:"required"`
}

// PayRateResponse is the wire representation of a pay rate.
type PayRateResponse struct {
	PayRateID      string          `json:"payRateID"`
	ProjectID      string          `json:"projectID"`
	EmployeeTypeID string          `json:"employeeTypeID"`
	Category       string          `json:"category"`
	Amount         decimal.Decimal `json:"amount"`
	Unit           string          `json:"unit"`
	EffectiveDate  string          `json:"effectiveDate"`
}

// ToPayRateResponse maps a domain pay rate to its response shape.
func ToPayRateResponse(r *domain.PayRate) PayRateResponse {
	return PayRateResponse{
		PayRateID:      r.PayRateID,
		ProjectID:      r.ProjectID,
		EmployeeTypeID: r.EmployeeTypeID,
		Category:       string(r.Category),
		Amount:         r.Amount,
		Unit:           string(r.Unit),
		EffectiveDate:  r.EffectiveDate,
	}
}
