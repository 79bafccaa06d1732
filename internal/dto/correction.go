package dto

import (
	"time"

	"github.com/TrenchWorks/workforce_payroll_app/internal/core/domain"
)

// CreateCorrectionRequest proposes an edit to a historical record.
type CreateCorrectionRequest struct {
	EntityType string `json:"entityType" binding:"required,oneof=work_log labourer project payment_period"`
	EntityID   string `json:"entityID" binding:"required"`
	FieldName  string `json:"fieldName" binding:"required"`
	OldValue   string `json:"oldValue"`
	NewValue   string `json:"newValue" binding:"required"`
	Reason     string `json:"reason" binding:"required"`
}

// ReviewCorrectionRequest records an approve/reject decision.
type ReviewCorrectionRequest struct {
	Approve *bool  `json:"approve" binding:"required"`
	Notes   string `json:"notes"`
}

// CorrectionResponse is the wire representation of a correction request.
type CorrectionResponse struct {
	RequestID   string     `json:"requestID"`
	EntityType  string     `json:"entityType"`
	EntityID    string     `json:"entityID"`
	FieldName   string     `json:"fieldName"`
	OldValue    string     `json:"oldValue"`
	NewValue    string     `json:"newValue"`
	Reason      string     `json:"reason"`
	RequestedBy string     `json:"requestedBy"`
	Status      string     `json:"status"`
	ReviewedBy  string     `json:"reviewedBy,omitempty"`
	ReviewedAt  *time.Time `json:"reviewedAt,omitempty"`
	ReviewNotes string     `json:"reviewNotes,omitempty"`
}

// ToCorrectionResponse maps a domain correction request to its response shape.
func ToCorrectionResponse(r *domain.CorrectionRequest) CorrectionResponse {
	return CorrectionResponse{
		RequestID:   r.RequestID,
		EntityType:  string(r.EntityType),
		EntityID:    r.EntityID,
		FieldName:   r.FieldName,
		OldValue:    r.OldValue,
		NewValue:    r.NewValue,
		Reason:      r.Reason,
		RequestedBy: r.RequestedBy,
		Status:      string(r.Status),
		ReviewedBy:  r.ReviewedBy,
		ReviewedAt:  r.ReviewedAt,
		ReviewNotes: r.ReviewNotes,
	}
}

// ListCorrectionsResponse wraps a correction request list.
type ListCorrectionsResponse struct {
	Requests []CorrectionResponse `json:"requests"`
}
