package dto

import (
	"time"

	"github.com/TrenchWorks/workforce_payroll_app/internal/core/domain"
)

// CreateLabourerRequest onboards a labourer. The ID number is validated
// before any store mutation.
type CreateLabourerRequest struct {
	FirstName      string `json:"firstName" binding:"required"`
	Surname        string `json:"surname" binding:"required"`
	IDNumber       string `json:"idNumber" binding:"required"`
	PhoneNumber    string `json:"phoneNumber"`
	BankName       string `json:"bankName"`
	AccountNumber  string `json:"accountNumber"`
	BranchCode     string `json:"branchCode"`
	EmployeeTypeID string `json:"employeeTypeID" binding:"required"`
	ProjectID      string `json:"projectID"`
}

// UpdateLabourerRequest applies a partial update; nil fields are unchanged.
type UpdateLabourerRequest struct {
	FirstName     *string `json:"firstName"`
	Surname       *string `json:"surname"`
	PhoneNumber   *string `json:"phoneNumber"`
	BankName      *string `json:"bankName"`
	AccountNumber *string `json:"accountNumber"`
	BranchCode    *string `json:"branchCode"`
	EmployeeTypeID *string `json:"employeeTypeID"`
}

// AssignLabourerRequest moves a labourer onto a project; an empty ProjectID
// returns them to the available pool.
type AssignLabourerRequest struct {
	ProjectID string `json:"projectID"`
}

// ImportLabourerRow is one row of a bulk import.
type ImportLabourerRow struct {
	FirstName      string `json:"firstName"`
	Surname        string `json:"surname"`
	IDNumber       string `json:"idNumber"`
	PhoneNumber    string `json:"phoneNumber"`
	EmployeeTypeID string `json:"employeeTypeID"`
	ProjectID      string `json:"projectID"`
}

// BulkImportRequest imports many labourers at once.
type BulkImportRequest struct {
	Rows []ImportLabourerRow `json:"rows" binding:"required,min=1"`
}

// SkippedImportRow explains why a bulk-import row was not imported.
type SkippedImportRow struct {
	RowNumber int    `json:"rowNumber"` // 1-based position in the request
	Reason    string `json:"reason"`
}

// BulkImportResult summarizes a bulk import: rows that failed validation are
// skipped with a reason, rows that passed are created.
type BulkImportResult struct {
	Imported int                `json:"imported"`
	Skipped  []SkippedImportRow `json:"skipped"`
}

// LabourerResponse is the wire representation of a labourer.
type LabourerResponse struct {
	LabourerID     string     `json:"labourerID"`
	FirstName      string     `json:"firstName"`
	Surname        string     `json:"surname"`
	IDNumber       string     `json:"idNumber"`
	PhoneNumber    string     `json:"phoneNumber"`
	BankName       string     `json:"bankName,omitempty"`
	AccountNumber  string     `json:"accountNumber,omitempty"`
	BranchCode     string     `json:"branchCode,omitempty"`
	EmployeeTypeID string     `json:"employeeTypeID"`
	ProjectID      string     `json:"projectID,omitempty"`
	DateOfBirth    *time.Time `json:"dateOfBirth,omitempty"`
	Gender         string     `json:"gender,omitempty"`
}

// ToLabourerResponse maps a domain labourer to its response shape.
func ToLabourerResponse(l *domain.Labourer) LabourerResponse {
	return LabourerResponse{
		LabourerID:     l.LabourerID,
		FirstName:      l.FirstName,
		Surname:        l.Surname,
		IDNumber:       l.IDNumber,
		PhoneNumber:    l.PhoneNumber,
		BankName:       l.BankName,
		AccountNumber:  l.AccountNumber,
		BranchCode:     l.BranchCode,
		EmployeeTypeID: l.EmployeeTypeID,
		ProjectID:      l.ProjectID,
	}
}

// ListLabourersResponse wraps a labourer list.
type ListLabourersResponse struct {
	Labourers []LabourerResponse `json:"labourers"`
}
