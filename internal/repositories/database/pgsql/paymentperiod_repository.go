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
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPaymentPeriodRepository struct {
	BaseRepository
}

func newPgxPaymentPeriodRepository(pool *pgxpool.Pool) portsrepo.PaymentPeriodRepository {
	return &PgxPaymentPeriodRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PaymentPeriodRepository = (*PgxPaymentPeriodRepository)(nil)

const periodColumns = `period_id, project_id, start_date, end_date, status, total_amount, submitted_by, submitted_at, approved_by, approved_at, created_at, created_by, last_updated_at, last_updated_by`

func scanPaymentPeriod(row pgx.Row) (domain.PaymentPeriod, error) {
	var p domain.PaymentPeriod
	var submittedBy, approvedBy sql.NullString
	var submittedAt, approvedAt sql.NullTime
	err := row.Scan(
		&p.PeriodID,
		&p.ProjectID,
		&p.StartDate,
		&p.EndDate,
		&p.Status,
		&p.TotalAmount,
		&submittedBy,
		&submittedAt,
		&approvedBy,
		&approvedAt,
		&p.CreatedAt,
		&p.CreatedBy,
		&p.LastUpdatedAt,
		&p.LastUpdatedBy,
	)
	p.SubmittedBy = submittedBy.String
	p.ApprovedBy = approvedBy.String
	if submittedAt.Valid {
		t := submittedAt.Time
		p.SubmittedAt = &t
	}
	if approvedAt.Valid {
		t := approvedAt.Time
		p.ApprovedAt = &t
	}
	return p, err
}

func (r *PgxPaymentPeriodRepository) SavePaymentPeriod(ctx context.Context, period domain.PaymentPeriod) error {
	query := `
		INSERT INTO payment_periods (` + periodColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		period.PeriodID,
		period.ProjectID,
		period.StartDate,
		period.EndDate,
		period.Status,
		period.TotalAmount,
		nullString(period.SubmittedBy),
		period.SubmittedAt,
		nullString(period.ApprovedBy),
		period.ApprovedAt,
		period.CreatedAt,
		period.CreatedBy,
		period.LastUpdatedAt,
		period.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save payment period %s: %w", period.PeriodID, err)
	}
	return nil
}

func (r *PgxPaymentPeriodRepository) FindPaymentPeriodByID(ctx context.Context, periodID string) (*domain.PaymentPeriod, error) {
	query := `SELECT ` + periodColumns + ` FROM payment_periods WHERE period_id = $1;`
	p, err := scanPaymentPeriod(r.Pool.QueryRow(ctx, query, periodID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payment period by ID %s: %w", periodID, err)
	}
	return &p, nil
}

func (r *PgxPaymentPeriodRepository) ListPaymentPeriodsByProject(ctx context.Context, projectID string) ([]domain.PaymentPeriod, error) {
	query := `
		SELECT ` + periodColumns + `
		FROM payment_periods
		WHERE project_id = $1
		ORDER BY start_date DESC;
	`
	rows, err := r.Pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payment periods for project %s: %w", projectID, err)
	}
	defer rows.Close()

	periods, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.PaymentPeriod, error) {
		return scanPaymentPeriod(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan payment periods: %w", err)
	}
	return periods, nil
}

const entryColumns = `entry_id, period_id, labourer_id, labourer_name, id_number, days_worked, open_meters, close_meters, total_meters, total_earnings, created_at, created_by, last_updated_at, last_updated_by`

func (r *PgxPaymentPeriodRepository) ListPaymentPeriodEntries(ctx context.Context, periodID string) ([]domain.PaymentPeriodEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM payment_period_entries
		WHERE period_id = $1
		ORDER BY labourer_name, labourer_id;
	`
	rows, err := r.Pool.Query(ctx, query, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries for period %s: %w", periodID, err)
	}
	defer rows.Close()

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.PaymentPeriodEntry, error) {
		var e domain.PaymentPeriodEntry
		err := row.Scan(
			&e.EntryID,
			&e.PeriodID,
			&e.LabourerID,
			&e.LabourerName,
			&e.IDNumber,
			&e.DaysWorked,
			&e.OpenMeters,
			&e.CloseMeters,
			&e.TotalMeters,
			&e.TotalEarnings,
			&e.CreatedAt,
			&e.CreatedBy,
			&e.LastUpdatedAt,
			&e.LastUpdatedBy,
		)
		return e, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan payment period entries: %w", err)
	}
	return entries, nil
}

// SubmitPaymentPeriod writes the period's new status and total and inserts
// the materialized entries in one database transaction. A re-submission
// passes no entries and only the period row is touched.
func (r *PgxPaymentPeriodRepository) SubmitPaymentPeriod(ctx context.Context, period domain.PaymentPeriod, entries []domain.PaymentPeriodEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := updatePeriodRow(ctx, tx, period); err != nil {
		return err
	}

	if len(entries) > 0 {
		batch := &pgx.Batch{}
		entryQuery := `
			INSERT INTO payment_period_entries (` + entryColumns + `)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
		`
		for _, e := range entries {
			batch.Queue(entryQuery,
				e.EntryID,
				e.PeriodID,
				e.LabourerID,
				e.LabourerName,
				e.IDNumber,
				e.DaysWorked,
				e.OpenMeters,
				e.CloseMeters,
				e.TotalMeters,
				e.TotalEarnings,
				e.CreatedAt,
				e.CreatedBy,
				e.LastUpdatedAt,
				e.LastUpdatedBy,
			)
		}
		br := tx.SendBatch(ctx, batch)
		for range entries {
			if _, err := br.Exec(); err != nil {
				br.Close()
				return fmt.Errorf("failed to insert payment period entry: %w", err)
			}
		}
		if err := br.Close(); err != nil {
			return fmt.Errorf("failed to close entry batch: %w", err)
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxPaymentPeriodRepository) UpdatePaymentPeriod(ctx context.Context, period domain.PaymentPeriod) error {
	return updatePeriodRow(ctx, r.Pool, period)
}

// execer is satisfied by both *pgxpool.Pool and pgx.Tx.
type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// updatePeriodRow writes status/total/approval metadata against either the
// pool or an open transaction.
func updatePeriodRow(ctx context.Context, q execer, period domain.PaymentPeriod) error {
	query := `
		UPDATE payment_periods
		SET status = $2, total_amount = $3, submitted_by = $4, submitted_at = $5,
			approved_by = $6, approved_at = $7, last_updated_at = $8, last_updated_by = $9
		WHERE period_id = $1;
	`
	tag, err := q.Exec(ctx, query,
		period.PeriodID,
		period.Status,
		period.TotalAmount,
		nullString(period.SubmittedBy),
		period.SubmittedAt,
		nullString(period.ApprovedBy),
		period.ApprovedAt,
		period.LastUpdatedAt,
		period.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update payment period %s: %w", period.PeriodID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
