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

type PgxPayRateRepository struct {
	BaseRepository
}

func newPgxPayRateRepository(pool *pgxpool.Pool) portsrepo.PayRateRepository {
	return &PgxPayRateRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PayRateRepository = (*PgxPayRateRepository)(nil)

const payRateColumns = `pay_rate_id, project_id, employee_type_id, category, amount, unit, effective_date, created_at, created_by, last_updated_at, last_updated_by`

func scanPayRate(row pgx.Row) (domain.PayRate, error) {
	var rate domain.PayRate
	err := row.Scan(
		&rate.PayRateID,
		&rate.ProjectID,
		&rate.EmployeeTypeID,
		&rate.Category,
		&rate.Amount,
		&rate.Unit,
		&rate.EffectiveDate,
		&rate.CreatedAt,
		&rate.CreatedBy,
		&rate.LastUpdatedAt,
		&rate.LastUpdatedBy,
	)
	return rate, err
}

// SavePayRate appends a rate to the history. Rows are never updated or
// deleted afterwards.
func (r *PgxPayRateRepository) SavePayRate(ctx context.Context, rate domain.PayRate) error {
	query := `
		INSERT INTO pay_rates (` + payRateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		rate.PayRateID,
		rate.ProjectID,
		rate.EmployeeTypeID,
		rate.Category,
		rate.Amount,
		rate.Unit,
		rate.EffectiveDate,
		rate.CreatedAt,
		rate.CreatedBy,
		rate.LastUpdatedAt,
		rate.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save pay rate %s: %w", rate.PayRateID, err)
	}
	return nil
}

func (r *PgxPayRateRepository) ListPayRatesByProject(ctx context.Context, projectID string) ([]domain.PayRate, error) {
	query := `
		SELECT ` + payRateColumns + `
		FROM pay_rates
		WHERE project_id = $1
		ORDER BY employee_type_id, category, effective_date DESC;
	`
	rows, err := r.Pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query pay rates for project %s: %w", projectID, err)
	}
	defer rows.Close()

	rates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.PayRate, error) {
		return scanPayRate(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan pay rates: %w", err)
	}
	return rates, nil
}

// FindEffectiveRate picks the rate with the greatest effective date on or
// before asOfDate. Dates are stored as YYYY-MM-DD text, so lexicographic
// comparison is chronological.
func (r *PgxPayRateRepository) FindEffectiveRate(ctx context.Context, projectID, employeeTypeID string, category domain.RateCategory, asOfDate string) (*domain.PayRate, error) {
	query := `
		SELECT ` + payRateColumns + `
		FROM pay_rates
		WHERE project_id = $1 AND employee_type_id = $2 AND category = $3 AND effective_date <= $4
		ORDER BY effective_date DESC
		LIMIT 1;
	`
	rate, err := scanPayRate(r.Pool.QueryRow(ctx, query, projectID, employeeTypeID, category, asOfDate))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find effective rate: %w", err)
	}
	return &rate, nil
}

func (r *PgxPayRateRepository) FindProjectEffectiveRate(ctx context.Context, projectID string, category domain.RateCategory, asOfDate string) (*domain.PayRate, error) {
	query := `
		SELECT ` + payRateColumns + `
		FROM pay_rates
		WHERE project_id = $1 AND category = $2 AND effective_date <= $3
		ORDER BY effective_date DESC
		LIMIT 1;
	`
	rate, err := scanPayRate(r.Pool.QueryRow(ctx, query, projectID, category, asOfDate))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find project effective rate: %w", err)
	}
	return &rate, nil
}
