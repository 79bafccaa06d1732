package dto

import (
	"github.com/TrenchWorks/workforce_payroll_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateWorkLogRequest records a labourer's output for today. The work date
// must be the server's current local date; historical corrections go through
// the correction request workflow.
type CreateWorkLogRequest struct {
	LabourerID           string          `json:"labourerID" binding:"required"`
	ProjectID            string          `json:"projectID" binding:"required"`
	WorkDate             string          `json:"workDate" binding:"required"`
	OpenTrenchingMeters  decimal.Decimal `json:"openTrenchingMeters"`
	CloseTrenchingMeters decimal.Decimal `json:"closeTrenchingMeters"`
}

// UpdateWorkLogRequest adjusts today's metres; nil fields are unchanged.
// Earnings are recomputed from the rates in force on the work date.
type UpdateWorkLogRequest struct {
	OpenTrenchingMeters  *decimal.Decimal `json:"openTrenchingMeters"`
	CloseTrenchingMeters *decimal.Decimal `json:"closeTrenchingMeters"`
}

// WorkLogResponse is the wire representation of a work log.
type WorkLogResponse struct {
	WorkLogID            string          `json:"workLogID"`
	LabourerID           string          `json:"labourerID"`
	ProjectID            string          `json:"projectID"`
	WorkDate             string          `json:"workDate"`
	OpenTrenchingMeters  decimal.Decimal `json:"openTrenchingMeters"`
	CloseTrenchingMeters decimal.Decimal `json:"closeTrenchingMeters"`
	TotalEarnings        decimal.Decimal `json:"totalEarnings"`
	RecordedBy           string          `json:"recordedBy"`
}

// ToWorkLogResponse maps a domain work log to its response shape.
func ToWorkLogResponse(w *domain.WorkLog) WorkLogResponse {
	return WorkLogResponse{
		WorkLogID:            w.WorkLogID,
		LabourerID:           w.LabourerID,
		ProjectID:            w.ProjectID,
		WorkDate:             w.WorkDate,
		OpenTrenchingMeters:  w.OpenTrenchingMeters,
		CloseTrenchingMeters: w.CloseTrenchingMeters,
		TotalEarnings:        w.TotalEarnings,
		RecordedBy:           w.RecordedBy,
	}
}

// ListWorkLogsResponse wraps a work log list.
type ListWorkLogsResponse struct {
	WorkLogs []WorkLogResponse `json:"workLogs"`
}
