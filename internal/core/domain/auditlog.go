package domain

import "time"

// AuditAction is the kind of mutation an audit row records.
type AuditAction string

const (
	AuditCreate  AuditAction = "CREATE"
	AuditUpdate  AuditAction = "UPDATE"
	AuditDelete  AuditAction = "DELETE"
	AuditAssign  AuditAction = "ASSIGN"
	AuditSubmit  AuditAction = "SUBMIT"
	AuditApprove AuditAction = "APPROVE"
	AuditReject  AuditAction = "REJECT"
)

// FieldChange is one before/after pair in an UPDATE diff.
type FieldChange struct {
	Old any `json:"old"`
	New any `json:"new"`
}

// AuditLog is an immutable append-only record of a mutation. The acting
// user's name and email are snapshotted at write time so historical rows keep
// the identity the user had when the change was made.
type AuditLog struct {
	AuditLogID string                 `json:"auditLogID"`
	Action     AuditAction            `json:"action"`
	EntityType string                 `json:"entityType"`
	EntityID   string                 `json:"entityID"`
	UserID     string                 `json:"userID"`
	UserName   string                 `json:"userName"`
	UserEmail  string                 `json:"userEmail"`
	Changes    map[string]FieldChange `json:"changes,omitempty"`
	Metadata   map[string]any         `json:"metadata,omitempty"`
	Timestamp  time.Time              `json:"timestamp"`
}
