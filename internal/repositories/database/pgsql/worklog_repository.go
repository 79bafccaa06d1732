package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/TrenchWorks/workforce_payroll_app/internal/apperrors"
	"github.com/TrenchWorks/workforce_payroll_app/internal/core/domain"
	portsrepo "github.com/TrenchWorks/workforce_payroll_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxWorkLogRepository struct {
	BaseRepository
}

func newPgxWorkLogRepository(pool *pgxpool.Pool) portsrepo.WorkLogRepository {
	return &PgxWorkLogRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.WorkLogRepository = (*PgxWorkLogRepository)(nil)

const workLogColumns = `work_log_id, labourer_id, project_id, work_date, open_trenching_meters, close_trenching_meters, total_earnings, recorded_by, created_at, created_by, last_updated_at, last_updated_by`

func scanWorkLog(row pgx.Row) (domain.WorkLog, error) {
	var w domain.WorkLog
	err := row.Scan(
		&w.WorkLogID,
		&w.LabourerID,
		&w.ProjectID,
		&w.WorkDate,
		&w.OpenTrenchingMeters,
		&w.CloseTrenchingMeters,
		&w.TotalEarnings,
		&w.RecordedBy,
		&w.CreatedAt,
		&w.CreatedBy,
		&w.LastUpdatedAt,
		&w.LastUpdatedBy,
	)
	return w, err
}

func (r *PgxWorkLogRepository) SaveWorkLog(ctx context.Context, log domain.WorkLog) error {
	query := `
		INSERT INTO work_logs (` + workLogColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		log.WorkLogID,
		log.LabourerID,
		log.ProjectID,
		log.WorkDate,
		log.OpenTrenchingMeters,
		log.CloseTrenchingMeters,
		log.TotalEarnings,
		log.RecordedBy,
		log.CreatedAt,
		log.CreatedBy,
		log.LastUpdatedAt,
		log.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save work log %s: %w", log.WorkLogID, err)
	}
	return nil
}

func (r *PgxWorkLogRepository) FindWorkLogByID(ctx context.Context, workLogID string) (*domain.WorkLog, error) {
	query := `SELECT ` + workLogColumns + ` FROM work_logs WHERE work_log_id = $1;`
	w, err := scanWorkLog(r.Pool.QueryRow(ctx, query, workLogID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find work log by ID %s: %w", workLogID, err)
	}
	return &w, nil
}

func (r *PgxWorkLogRepository) UpdateWorkLog(ctx context.Context, log domain.WorkLog) error {
	query := `
		UPDATE work_logs
		SET open_trenching_meters = $2, close_trenching_meters = $3, total_earnings = $4,
			last_updated_at = $5, last_updated_by = $6
		WHERE work_log_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		log.WorkLogID,
		log.OpenTrenchingMeters,
		log.CloseTrenchingMeters,
		log.TotalEarnings,
		log.LastUpdatedAt,
		log.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update work log %s: %w", log.WorkLogID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ListWorkLogsByDateRange returns a project's logs inside [startDate, endDate]
// inclusive. YYYY-MM-DD text compares chronologically.
func (r *PgxWorkLogRepository) ListWorkLogsByDateRange(ctx context.Context, projectID, startDate, endDate string) ([]domain.WorkLog, error) {
	query := `
		SELECT ` + workLogColumns + `
		FROM work_logs
		WHERE project_id = $1 AND work_date >= $2 AND work_date <= $3
		ORDER BY work_date, labourer_id;
	`
	rows, err := r.Pool.Query(ctx, query, projectID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query work logs for project %s: %w", projectID, err)
	}
	defer rows.Close()

	logs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.WorkLog, error) {
		return scanWorkLog(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan work logs: %w", err)
	}
	return logs, nil
}

func (r *PgxWorkLogRepository) ListWorkLogsByLabourer(ctx context.Context, labourerID, startDate, endDate string) ([]domain.WorkLog, error) {
	query := `
		SELECT ` + workLogColumns + `
		FROM work_logs
		WHERE labourer_id = $1 AND work_date >= $2 AND work_date <= $3
		ORDER BY work_date;
	`
	rows, err := r.Pool.Query(ctx, query, labourerID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query work logs for labourer %s: %w", labourerID, err)
	}
	defer rows.Close()

	logs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.WorkLog, error) {
		return scanWorkLog(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan work logs: %w", err)
	}
	return logs, nil
}
