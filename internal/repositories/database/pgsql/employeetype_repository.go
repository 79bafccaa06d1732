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

type PgxEmployeeTypeRepository struct {
	BaseRepository
}

func newPgxEmployeeTypeRepository(pool *pgxpool.Pool) portsrepo.EmployeeTypeRepository {
	return &PgxEmployeeTypeRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.EmployeeTypeRepository = (*PgxEmployeeTypeRepository)(nil)

const employeeTypeColumns = `employee_type_id, name, description, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanEmployeeType(row pgx.Row) (domain.EmployeeType, error) {
	var et domain.EmployeeType
	var description sql.NullString
	err := row.Scan(
		&et.EmployeeTypeID,
		&et.Name,
		&description,
		&et.IsActive,
		&et.CreatedAt,
		&et.CreatedBy,
		&et.LastUpdatedAt,
		&et.LastUpdatedBy,
	)
	et.Description = description.String
	return et, err
}

func (r *PgxEmployeeTypeRepository) SaveEmployeeType(ctx context.Context, et domain.EmployeeType) error {
	query := `
		INSERT INTO employee_types (` + employeeTypeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		et.EmployeeTypeID,
		et.Name,
		nullString(et.Description),
		et.IsActive,
		et.CreatedAt,
		et.CreatedBy,
		et.LastUpdatedAt,
		et.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: employee type %q already exists", apperrors.ErrDuplicate, et.Name)
		}
		return fmt.Errorf("failed to save employee type %s: %w", et.EmployeeTypeID, err)
	}
	return nil
}

func (r *PgxEmployeeTypeRepository) FindEmployeeTypeByID(ctx context.Context, employeeTypeID string) (*domain.EmployeeType, error) {
	query := `SELECT ` + employeeTypeColumns + ` FROM employee_types WHERE employee_type_id = $1;`
	et, err := scanEmployeeType(r.Pool.QueryRow(ctx, query, employeeTypeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find employee type by ID %s: %w", employeeTypeID, err)
	}
	return &et, nil
}

func (r *PgxEmployeeTypeRepository) ListEmployeeTypes(ctx context.Context, includeInactive bool) ([]domain.EmployeeType, error) {
	query := `SELECT ` + employeeTypeColumns + ` FROM employee_types`
	if !includeInactive {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query employee types: %w", err)
	}
	defer rows.Close()

	types, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.EmployeeType, error) {
		return scanEmployeeType(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan employee types: %w", err)
	}
	return types, nil
}

func (r *PgxEmployeeTypeRepository) UpdateEmployeeType(ctx context.Context, et domain.EmployeeType) error {
	query := `
		UPDATE employee_types
		SET name = $2, description = $3, is_active = $4, last_updated_at = $5, last_updated_by = $6
		WHERE employee_type_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		et.EmployeeTypeID,
		et.Name,
		nullString(et.Description),
		et.IsActive,
		et.LastUpdatedAt,
		et.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee type %s: %w", et.EmployeeTypeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
