package domain

import "github.com/shopspring/decimal"

// ProjectStatus tracks a project's lifecycle.
type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectCompleted ProjectStatus = "completed"
	ProjectOnHold    ProjectStatus = "on_hold"
)

// PaymentCadence is how often payment periods are cut for a project.
type PaymentCadence string

const (
	CadenceFortnightly PaymentCadence = "fortnightly"
	CadenceMonthly     PaymentCadence = "monthly"
)

// Project is a fibre deployment project. Default trenching rates are the
// fallback used when no pay rate is configured for a labourer's employee type.
type Project struct {
	ProjectID        string           `json:"projectID"`
	Name             string           `json:"name"`
	Location         string           `json:"location"`
	Budget           *decimal.Decimal `json:"budget,omitempty"`
	Status           ProjectStatus    `json:"status"`
	PaymentCadence   PaymentCadence   `json:"paymentCadence"`
	DefaultOpenRate  *decimal.Decimal `json:"defaultOpenRate,omitempty"`
	DefaultCloseRate *decimal.Decimal `json:"defaultCloseRate,omitempty"`
	AuditFields
}

// ProjectAssignment links a manager or supervisor to a project.
type ProjectAssignment struct {
	ProjectID string   `json:"projectID"`
	UserID    string   `json:"userID"`
	Role      UserRole `json:"role"` // project_manager or supervisor
	AuditFields
}
