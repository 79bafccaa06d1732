package domain

// Labourer is a worker on a fibre deployment project. Labourers are never
// hard-deleted; leaving a project clears ProjectID, returning them to the
// available pool.
type Labourer struct {
	LabourerID     string `json:"labourerID"`
	FirstName      string `json:"firstName"`
	Surname        string `json:"surname"`
	IDNumber       string `json:"idNumber"` // SA ID number or passport number
	PhoneNumber    string `json:"phoneNumber"`
	BankName       string `json:"bankName,omitempty"`
	AccountNumber  string `json:"accountNumber,omitempty"`
	BranchCode     string `json:"branchCode,omitempty"`
	EmployeeTypeID string `json:"employeeTypeID"`
	// ProjectID is empty while the labourer is unassigned ("available").
	ProjectID string `json:"projectID,omitempty"`
	AuditFields
}

// FullName is the denormalized display name used in reports and audit rows.
func (l Labourer) FullName() string {
	return l.FirstName + " " + l.Surname
}
