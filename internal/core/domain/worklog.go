package domain

import "github.com/shopspring/decimal"

// WorkLog records one labourer's trenching output for one calendar day on one
// project. TotalEarnings is computed from the rates in force at write time and
// stored; reports sum the stored figure and never recompute it.
type WorkLog struct {
	WorkLogID           string          `json:"workLogID"`
	LabourerID          string          `json:"labourerID"`
	ProjectID           string          `json:"projectID"`
	WorkDate            string          `json:"workDate"` // YYYY-MM-DD, server-local
	OpenTrenchingMeters decimal.Decimal `json:"openTrenchingMeters"`
	CloseTrenchingMeters decimal.Decimal `json:"closeTrenchingMeters"`
	TotalEarnings       decimal.Decimal `json:"totalEarnings"`
	RecordedBy          string          `json:"recordedBy"` // UserID reference
	AuditFields
}
