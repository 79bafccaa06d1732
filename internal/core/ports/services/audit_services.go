package services

import (
	"context"

	"github.com/TrenchWorks/workforce_payroll_app/internal/core/domain"
	portsrepo "github.com/TrenchWorks/workforce_payroll_app/internal/core/ports/repositories"
)

// AuditSvcFacade is the best-effort audit sink. Record never returns an
// error: failures are logged and swallowed so the primary operation is
// unaffected.
type AuditSvcFacade interface {
	Record(ctx context.Context, actorUserID string, action domain.AuditAction, entityType, entityID string, changes map[string]domain.FieldChange, metadata map[string]any)
	ListAuditLogs(ctx context.Context, filter portsrepo.AuditLogFilter, limit, offset int) ([]domain.AuditLog, error)
}
