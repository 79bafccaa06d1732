package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/TrenchWorks/workforce_payroll_app/internal/core/domain"
	portsrepo "github.com/TrenchWorks/workforce_payroll_app/internal/core/ports/repositories"
	portssvc "github.com/TrenchWorks/workforce_payroll_app/internal/core/ports/services"
	"github.com/google/uuid"
)

// auditService is the best-effort audit sink. A failed audit write is logged
// and swallowed so it can never fail the operation being audited.
type auditService struct {
	BaseService
	auditRepo portsrepo.AuditLogRepository
	userRepo  portsrepo.UserRepository
}

// NewAuditService creates the audit sink.
func NewAuditService(auditRepo portsrepo.AuditLogRepository, userRepo portsrepo.UserRepository) portssvc.AuditSvcFacade {
	return &auditService{auditRepo: auditRepo, userRepo: userRepo}
}

func (s *auditService) Record(ctx context.Context, actorUserID string, action domain.AuditAction, entityType, entityID string, changes map[string]domain.FieldChange, metadata map[string]any) {
	entry := domain.AuditLog{
		AuditLogID: uuid.NewString(),
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		UserID:     actorUserID,
		Changes:    changes,
		Metadata:   metadata,
		Timestamp:  time.Now(),
	}

	// Snapshot the actor's identity so the row stays readable after the
	// account changes. Labourer logins have no staff user row; skip quietly.
	if actorUserID != "" {
		if user, err := s.userRepo.FindUserByID(ctx, actorUserID); err == nil && user != nil {
			entry.UserName = user.Name
			entry.UserEmail = user.Email
		}
	}

	if err := s.auditRepo.SaveAuditLog(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to write audit log",
			slog.String("action", string(action)),
			slog.String("entity_type", entityType),
			slog.String("entity_id", entityID))
	}
}

func (s *auditService) ListAuditLogs(ctx context.Context, filter portsrepo.AuditLogFilter, limit, offset int) ([]domain.AuditLog, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	logs, err := s.auditRepo.ListAuditLogs(ctx, filter, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit logs: %w", err)
	}
	return logs, nil
}

// diffChanges builds an UPDATE diff from before/after field values, keeping
// only the fields whose rendered value actually changed.
func diffChanges(before, after map[string]any) map[string]domain.FieldChange {
	changes := make(map[string]domain.FieldChange)
	for field, oldVal := range before {
		newVal, ok := after[field]
		if !ok {
			continue
		}
		if fmt.Sprint(oldVal) != fmt.Sprint(newVal) {
			changes[field] = domain.FieldChange{Old: oldVal, New: newVal}
		}
	}
	if len(changes) == 0 {
		return nil
	}
	return changes
}
