package dto

import (
	"time"

	"github.com/TrenchWorks/workforce_payroll_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePaymentPeriodRequest opens a new payment period for a project.
type CreatePaymentPeriodRequest struct {
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
}

// PaymentPeriodEntryResponse is one materialized labourer snapshot.
type PaymentPeriodEntryResponse struct {
	EntryID       string          `json:"entryID"`
	LabourerID    string          `json:"labourerID"`
	LabourerName  string          `json:"labourerName"`
	IDNumber      string          `json:"idNumber"`
	DaysWorked    int             `json:"daysWorked"`
	OpenMeters    decimal.Decimal `json:"openMeters"`
	CloseMeters   decimal.Decimal `json:"closeMeters"`
	TotalMeters   decimal.Decimal `json:"totalMeters"`
	TotalEarnings decimal.Decimal `json:"totalEarnings"`
}

// PaymentPeriodResponse is the wire representation of a payment period.
// Entries are populated on single-period fetches once materialized.
type PaymentPeriodResponse struct {
	PeriodID    string                       `json:"periodID"`
	ProjectID   string                       `json:"projectID"`
	StartDate   string                       `json:"startDate"`
	EndDate     string                       `json:"endDate"`
	Status      string                       `json:"status"`
	TotalAmount decimal.Decimal              `json:"totalAmount"`
	SubmittedBy string                       `json:"submittedBy,omitempty"`
	SubmittedAt *time.Time                   `json:"submittedAt,omitempty"`
	ApprovedBy  string                       `json:"approvedBy,omitempty"`
	ApprovedAt  *time.Time                   `json:"approvedAt,omitempty"`
	Entries     []PaymentPeriodEntryResponse `json:"entries,omitempty"`
}

// ToPaymentPeriodResponse maps a domain period and optional entries to the
// response shape.
func ToPaymentPeriodResponse(p *domain.PaymentPeriod, entries []domain.PaymentPeriodEntry) PaymentPeriodResponse {
	resp := PaymentPeriodResponse{
		PeriodID:    p.PeriodID,
		ProjectID:   p.ProjectID,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		Status:      string(p.Status),
		TotalAmount: p.TotalAmount,
		SubmittedBy: p.SubmittedBy,
		SubmittedAt: p.SubmittedAt,
		ApprovedBy:  p.ApprovedBy,
		ApprovedAt:  p.ApprovedAt,
	}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, PaymentPeriodEntryResponse{
			EntryID:       e.EntryID,
			LabourerID:    e.LabourerID,
			LabourerName:  e.LabourerName,
			IDNumber:      e.IDNumber,
			DaysWorked:    e.DaysWorked,
			OpenMeters:    e.OpenMeters,
			CloseMeters:   e.CloseMeters,
			TotalMeters:   e.TotalMeters,
			TotalEarnings: e.TotalEarnings,
		})
	}
	return resp
}

// ListPaymentPeriodsResponse wraps a payment period list.
type ListPaymentPeriodsResponse struct {
	Periods []PaymentPeriodResponse `json:"periods"`
}
