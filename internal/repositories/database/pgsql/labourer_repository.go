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

type PgxLabourerRepository struct {
	BaseRepository
}

func newPgxLabourerRepository(pool *pgxpool.Pool) portsrepo.LabourerRepository {
	return &PgxLabourerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.LabourerRepository = (*PgxLabourerRepository)(nil)

const labourerColumns = `labourer_id, first_name, surname, id_number, phone_number, bank_name, account_number, branch_code, employee_type_id, project_id, created_at, created_by, last_updated_at, last_updated_by`

func scanLabourer(row pgx.Row) (domain.Labourer, error) {
	var l domain.Labourer
	var bankName, accountNumber, branchCode, projectID sql.NullString
	err := row.Scan(
		&l.LabourerID,
		&l.FirstName,
		&l.Surname,
		&l.IDNumber,
		&l.PhoneNumber,
		&bankName,
		&accountNumber,
		&branchCode,
		&l.EmployeeTypeID,
		&projectID,
		&l.CreatedAt,
		&l.CreatedBy,
		&l.LastUpdatedAt,
		&l.LastUpdatedBy,
	)
	l.BankName = bankName.String
	l.AccountNumber = accountNumber.String
	l.BranchCode = branchCode.String
	l.ProjectID = projectID.String
	return l, err
}

// SaveLabourer inserts a new labourer. A duplicate ID number surfaces as
// apperrors.ErrDuplicate.
func (r *PgxLabourerRepository) SaveLabourer(ctx context.Context, labourer domain.Labourer) error {
	query := `
		INSERT INTO labourers (` + labourerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		labourer.LabourerID,
		labourer.FirstName,
		labourer.Surname,
		labourer.IDNumber,
		labourer.PhoneNumber,
		nullString(labourer.BankName),
		nullString(labourer.AccountNumber),
		nullString(labourer.BranchCode),
		labourer.EmployeeTypeID,
		nullString(labourer.ProjectID),
		labourer.CreatedAt,
		labourer.CreatedBy,
		labourer.LastUpdatedAt,
		labourer.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: labourer with ID number %s already exists", apperrors.ErrDuplicate, labourer.IDNumber)
		}
		return fmt.Errorf("failed to save labourer %s: %w", labourer.LabourerID, err)
	}
	return nil
}

func (r *PgxLabourerRepository) FindLabourerByID(ctx context.Context, labourerID string) (*domain.Labourer, error) {
	query := `SELECT ` + labourerColumns + ` FROM labourers WHERE labourer_id = $1;`
	l, err := scanLabourer(r.Pool.QueryRow(ctx, query, labourerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find labourer by ID %s: %w", labourerID, err)
	}
	return &l, nil
}

func (r *PgxLabourerRepository) FindLabourerByIDNumber(ctx context.Context, idNumber string) (*domain.Labourer, error) {
	query := `SELECT ` + labourerColumns + ` FROM labourers WHERE id_number = $1;`
	l, err := scanLabourer(r.Pool.QueryRow(ctx, query, idNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find labourer by ID number: %w", err)
	}
	return &l, nil
}

func (r *PgxLabourerRepository) ListLabourers(ctx context.Context, projectID string) ([]domain.Labourer, error) {
	query := `SELECT ` + labourerColumns + ` FROM labourers WHERE project_id = $1 ORDER BY surname, first_name;`
	rows, err := r.Pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query labourers for project %s: %w", projectID, err)
	}
	defer rows.Close()

	labourers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Labourer, error) {
		return scanLabourer(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan labourers: %w", err)
	}
	return labourers, nil
}

func (r *PgxLabourerRepository) ListAvailableLabourers(ctx context.Context) ([]domain.Labourer, error) {
	query := `SELECT ` + labourerColumns + ` FROM labourers WHERE project_id IS NULL ORDER BY surname, first_name;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query available labourers: %w", err)
	}
	defer rows.Close()

	labourers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Labourer, error) {
		return scanLabourer(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan labourers: %w", err)
	}
	return labourers, nil
}

func (r *PgxLabourerRepository) UpdateLabourer(ctx context.Context, labourer domain.Labourer) error {
	query := `
		UPDATE labourers
		SET first_name = $2, surname = $3, id_number = $4, phone_number = $5,
			bank_name = $6, account_number = $7, branch_code = $8,
			employee_type_id = $9, project_id = $10,
			last_updated_at = $11, last_updated_by = $12
		WHERE labourer_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		labourer.LabourerID,
		labourer.FirstName,
		labourer.Surname,
		labourer.IDNumber,
		labourer.PhoneNumber,
		nullString(labourer.BankName),
		nullString(labourer.AccountNumber),
		nullString(labourer.BranchCode),
		labourer.EmployeeTypeID,
		nullString(labourer.ProjectID),
		labourer.LastUpdatedAt,
		labourer.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: labourer with ID number %s already exists", apperrors.ErrDuplicate, labourer.IDNumber)
		}
		return fmt.Errorf("failed to update labourer %s: %w", labourer.LabourerID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
