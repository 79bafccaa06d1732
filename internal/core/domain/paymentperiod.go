package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PeriodStatus is the payment period lifecycle state. Transitions only move
// forward: open -> submitted -> approved -> paid.
type PeriodStatus string

const (
	PeriodOpen      PeriodStatus = "open"
	PeriodSubmitted PeriodStatus = "submitted"
	PeriodApproved  PeriodStatus = "approved"
	PeriodPaid      PeriodStatus = "paid"
)

// PaymentPeriod batches a project's labourer earnings over a fixed date range
// for approval and payment. TotalAmount is informational while the period is
// open (sum of work-log earnings at creation time) and becomes authoritative
// once entries are materialized on submission.
type PaymentPeriod struct {
	PeriodID    string          `json:"periodID"`
	ProjectID   string          `json:"projectID"`
	StartDate   string          `json:"startDate"` // YYYY-MM-DD
	EndDate     string          `json:"endDate"`   // YYYY-MM-DD
	Status      PeriodStatus    `json:"status"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	SubmittedBy string          `json:"submittedBy,omitempty"`
	SubmittedAt *time.Time      `json:"submittedAt,omitempty"`
	ApprovedBy  string          `json:"approvedBy,omitempty"`
	ApprovedAt  *time.Time      `json:"approvedAt,omitempty"`
	AuditFields
}

// PaymentPeriodEntry is the per-labourer snapshot materialized when a period
// is submitted. Entries are never recomputed afterwards; re-submission finds
// them and leaves them untouched.
type PaymentPeriodEntry struct {
	EntryID       string          `json:"entryID"`
	PeriodID      string          `json:"periodID"`
	LabourerID    string          `json:"labourerID"`
	LabourerName  string          `json:"labourerName"`
	IDNumber      string          `json:"idNumber"`
	DaysWorked    int             `json:"daysWorked"`
	OpenMeters    decimal.Decimal `json:"openMeters"`
	CloseMeters   decimal.Decimal `json:"closeMeters"`
	TotalMeters   decimal.Decimal `json:"totalMeters"`
	TotalEarnings decimal.Decimal `json:"totalEarnings"`
	AuditFields
}
