package repositories

import (
	"context"

	"github.com/TrenchWorks/workforce_payroll_app/internal/core/domain"
)

// AuditLogFilter narrows audit log queries.
type AuditLogFilter struct {
	EntityType string
	EntityID   string
	UserID     string
}

// AuditLogRepository persists the append-only audit trail.
type AuditLogRepository interface {
	SaveAuditLog(ctx context.Context, log domain.AuditLog) error
	ListAuditLogs(ctx context.Context, filter AuditLogFilter, limit, offset int) ([]domain.AuditLog, error)
}
