package pgsql

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/TrenchWorks/workforce_payroll_app/internal/core/domain"
	portsrepo "github.com/TrenchWorks/workforce_payroll_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAuditLogRepository struct {
	BaseRepository
}

func newPgxAuditLogRepository(pool *pgxpool.Pool) portsrepo.AuditLogRepository {
	return &PgxAuditLogRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.AuditLogRepository = (*PgxAuditLogRepository)(nil)

// SaveAuditLog appends one audit row. Changes and metadata are stored as
// JSONB documents.
func (r *PgxAuditLogRepository) SaveAuditLog(ctx context.Context, log domain.AuditLog) error {
	changes, err := marshalJSONB(log.Changes)
	if err != nil {
		return fmt.Errorf("failed to encode audit changes: %w", err)
	}
	metadata, err := marshalJSONB(log.Metadata)
	if err != nil {
		return fmt.Errorf("failed to encode audit metadata: %w", err)
	}

	query := `
		INSERT INTO audit_logs (audit_log_id, action, entity_type, entity_id, user_id, user_name, user_email, changes, metadata, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = r.Pool.Exec(ctx, query,
		log.AuditLogID,
		log.Action,
		log.EntityType,
		log.EntityID,
		nullString(log.UserID),
		nullString(log.UserName),
		nullString(log.UserEmail),
		changes,
		metadata,
		log.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to save audit log %s: %w", log.AuditLogID, err)
	}
	return nil
}

// ListAuditLogs returns rows newest first, filtered by any combination of
// entity type, entity ID and acting user.
func (r *PgxAuditLogRepository) ListAuditLogs(ctx context.Context, filter portsrepo.AuditLogFilter, limit, offset int) ([]domain.AuditLog, error) {
	query := `
		SELECT audit_log_id, action, entity_type, entity_id, user_id, user_name, user_email, changes, metadata, timestamp
		FROM audit_logs
		WHERE ($1 = '' OR entity_type = $1)
		  AND ($2 = '' OR entity_id = $2)
		  AND ($3 = '' OR user_id = $3)
		ORDER BY timestamp DESC
		LIMIT $4 OFFSET $5;
	`
	rows, err := r.Pool.Query(ctx, query, filter.EntityType, filter.EntityID, filter.UserID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit logs: %w", err)
	}
	defer rows.Close()

	logs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AuditLog, error) {
		var log domain.AuditLog
		var userID, userName, userEmail sql.NullString
		var changes, metadata []byte
		err := row.Scan(
			&log.AuditLogID,
			&log.Action,
			&log.EntityType,
			&log.EntityID,
			&userID,
			&userName,
			&userEmail,
			&changes,
			&metadata,
			&log.Timestamp,
		)
		if err != nil {
			return log, err
		}
		log.UserID = userID.String
		log.UserName = userName.String
		log.UserEmail = userEmail.String
		if len(changes) > 0 {
			if err := json.Unmarshal(changes, &log.Changes); err != nil {
				return log, fmt.Errorf("failed to decode audit changes: %w", err)
			}
		}
		if len(metadata) > 0 {
			if err := json.Unmarshal(metadata, &log.Metadata); err != nil {
				return log, fmt.Errorf("failed to decode audit metadata: %w", err)
			}
		}
		return log, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan audit logs: %w", err)
	}
	return logs, nil
}

// marshalJSONB encodes a map for a JSONB column, writing NULL for empty maps.
func marshalJSONB[M ~map[string]V, V any](m M) ([]byte, error) {
	if len(m) == 0 {
		return nil, nil
	}
	return json.Marshal(m)
}
