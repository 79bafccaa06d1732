package domain

// EmployeeType categorizes workers (e.g. "Trencher"). Types are soft-
// deactivated rather than deleted while labourers still reference them.
type EmployeeType struct {
	EmployeeTypeID string `json:"employeeTypeID"`
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	IsActive       bool   `json:"isActive"`
	AuditFields
}
