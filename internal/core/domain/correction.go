package domain

import "time"

// CorrectionEntityType names the kinds of records a correction request may target.
type CorrectionEntityType string

const (
	CorrectionWorkLog       CorrectionEntityType = "work_log"
	CorrectionLabourer      CorrectionEntityType = "labourer"
	CorrectionProject       CorrectionEntityType = "project"
	CorrectionPaymentPeriod CorrectionEntityType = "payment_period"
)

// CorrectionStatus is the review state of a correction request.
type CorrectionStatus string

const (
	CorrectionPending  CorrectionStatus = "pending"
	CorrectionApproved CorrectionStatus = "approved"
	CorrectionRejected CorrectionStatus = "rejected"
)

// CorrectionRequest is a proposed edit to a historical record. Work logs can
// only be written for the current day, so any change to an older record is
// routed through this workflow instead of a direct mutation. Approval records
// the reviewer's decision; it does not apply the proposed change to the
// underlying entity -- that remains a manual, out-of-band step.
type CorrectionRequest struct {
	RequestID   string               `json:"requestID"`
	EntityType  CorrectionEntityType `json:"entityType"`
	EntityID    string               `json:"entityID"`
	FieldName   string               `json:"fieldName"`
	OldValue    string               `json:"oldValue"`
	NewValue    string               `json:"newValue"`
	Reason      string               `json:"reason"`
	RequestedBy string               `json:"requestedBy"`
	Status      CorrectionStatus     `json:"status"`
	ReviewedBy  string               `json:"reviewedBy,omitempty"`
	ReviewedAt  *time.Time           `json:"reviewedAt,omitempty"`
	ReviewNotes string               `json:"reviewNotes,omitempty"`
	AuditFields
}
