package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/TrenchWorks/workforce_payroll_app/internal/apperrors"
	"github.com/TrenchWorks/workforce_payroll_app/internal/core/domain"
	portsrepo "github.com/TrenchWorks/workforce_payroll_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCorrectionRepository struct {
	BaseRepository
}

func newPgxCorrectionRepository(pool *pgxpool.Pool) portsrepo.CorrectionRepository {
	return &PgxCorrectionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CorrectionRepository = (*PgxCorrectionRepository)(nil)

const correctionColumns = `request_id, entity_type, entity_id, field_name, old_value, new_value, reason, requested_by, status, reviewed_by, reviewed_at, review_notes, created_at, created_by, last_updated_at, last_updated_by`

func scanCorrection(row pgx.Row) (domain.CorrectionRequest, error) {
	var c domain.CorrectionRequest
	var reviewedBy, reviewNotes sql.NullString
	var reviewedAt sql.NullTime
	err := row.Scan(
		&c.RequestID,
		&c.EntityType,
		&c.EntityID,
		&c.FieldName,
		&c.OldValue,
		&c.NewValue,
		&c.Reason,
		&c.RequestedBy,
		&c.Status,
		&reviewedBy,
		&reviewedAt,
		&reviewNotes,
		&c.CreatedAt,
		&c.CreatedBy,
		&c.LastUpdatedAt,
		&c.LastUpdatedBy,
	)
	c.ReviewedBy = reviewedBy.String
	c.ReviewNotes = reviewNotes.String
	if reviewedAt.Valid {
		t := reviewedAt.Time
		c.ReviewedAt = &t
	}
	return c, err
}

func (r *PgxCorrectionRepository) SaveCorrectionRequest(ctx context.Context, req domain.CorrectionRequest) error {
	query := `
		INSERT INTO correction_requests (` + correctionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := r.Pool.Exec(ctx, query,
		req.RequestID,
		req.EntityType,
		req.EntityID,
		req.FieldName,
		req.OldValue,
		req.NewValue,
		req.Reason,
		req.RequestedBy,
		req.Status,
		nullString(req.ReviewedBy),
		req.ReviewedAt,
		nullString(req.ReviewNotes),
		req.CreatedAt,
		req.CreatedBy,
		req.LastUpdatedAt,
		req.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save correction request %s: %w", req.RequestID, err)
	}
	return nil
}

func (r *PgxCorrectionRepository) FindCorrectionRequestByID(ctx context.Context, requestID string) (*domain.CorrectionRequest, error) {
	query := `SELECT ` + correctionColumns + ` FROM correction_requests WHERE request_id = $1;`
	c, err := scanCorrection(r.Pool.QueryRow(ctx, query, requestID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find correction request by ID %s: %w", requestID, err)
	}
	return &c, nil
}

func (r *PgxCorrectionRepository) ListCorrectionRequests(ctx context.Context, status domain.CorrectionStatus) ([]domain.CorrectionRequest, error) {
	query := `SELECT ` + correctionColumns + ` FROM correction_requests`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query correction requests: %w", err)
	}
	defer rows.Close()

	requests, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CorrectionRequest, error) {
		return scanCorrection(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan correction requests: %w", err)
	}
	return requests, nil
}

func (r *PgxCorrectionRepository) UpdateCorrectionRequest(ctx context.Context, req domain.CorrectionRequest) error {
	query := `
		UPDATE correction_requests
		SET status = $2, reviewed_by = $3, reviewed_at = $4, review_notes = $5,
			last_updated_at = $6, last_updated_by = $7
		WHERE request_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		req.RequestID,
		req.Status,
		nullString(req.ReviewedBy),
		req.ReviewedAt,
		nullString(req.ReviewNotes),
		req.LastUpdatedAt,
		req.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update correction request %s: %w", req.RequestID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
