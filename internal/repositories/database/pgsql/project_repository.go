package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/TrenchWorks/workforce_payroll_app/internal/apperrors"
	"github.com/TrenchWorks/workforce_payroll_app/internal/core/domain"
	portsrepo "github.com/TrenchWorks/workforce_payroll_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxProjectRepository struct {
	BaseRepository
}

func newPgxProjectRepository(pool *pgxpool.Pool) portsrepo.ProjectRepository {
	return &PgxProjectRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ProjectRepository = (*PgxProjectRepository)(nil)

const projectColumns = `project_id, name, location, budget, status, payment_cadence, default_open_rate, default_close_rate, created_at, created_by, last_updated_at, last_updated_by`

func scanProject(row pgx.Row) (domain.Project, error) {
	var p domain.Project
	var budget, openRate, closeRate decimal.NullDecimal
	err := row.Scan(
		&p.ProjectID,
		&p.Name,
		&p.Location,
		&budget,
		&p.Status,
		&p.PaymentCadence,
		&openRate,
		&closeRate,
		&p.CreatedAt,
		&p.CreatedBy,
		&p.LastUpdatedAt,
		&p.LastUpdatedBy,
	)
	if budget.Valid {
		p.Budget = &budget.Decimal
	}
	if openRate.Valid {
		p.DefaultOpenRate = &openRate.Decimal
	}
	if closeRate.Valid {
		p.DefaultCloseRate = &closeRate.Decimal
	}
	return p, err
}

func (r *PgxProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	query := `
		INSERT INTO projects (` + projectColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		project.ProjectID,
		project.Name,
		project.Location,
		nullDecimal(project.Budget),
		project.Status,
		project.PaymentCadence,
		nullDecimal(project.DefaultOpenRate),
		nullDecimal(project.DefaultCloseRate),
		project.CreatedAt,
		project.CreatedBy,
		project.LastUpdatedAt,
		project.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save project %s: %w", project.ProjectID, err)
	}
	return nil
}

func (r *PgxProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE project_id = $1;`
	p, err := scanProject(r.Pool.QueryRow(ctx, query, projectID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find project by ID %s: %w", projectID, err)
	}
	return &p, nil
}

func (r *PgxProjectRepository) ListProjects(ctx context.Context) ([]domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY name;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	projects, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Project, error) {
		return scanProject(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan projects: %w", err)
	}
	return projects, nil
}

func (r *PgxProjectRepository) UpdateProject(ctx context.Context, project domain.Project) error {
	query := `
		UPDATE projects
		SET name = $2, location = $3, budget = $4, status = $5, payment_cadence = $6,
			default_open_rate = $7, default_close_rate = $8,
			last_updated_at = $9, last_updated_by = $10
		WHERE project_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		project.ProjectID,
		project.Name,
		project.Location,
		nullDecimal(project.Budget),
		project.Status,
		project.PaymentCadence,
		nullDecimal(project.DefaultOpenRate),
		nullDecimal(project.DefaultCloseRate),
		project.LastUpdatedAt,
		project.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update project %s: %w", project.ProjectID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// AssignStaff inserts a (project, user, role) assignment. A unique violation
// means a concurrent or earlier insert already created the row, which the
// caller treats as success.
func (r *PgxProjectRepository) AssignStaff(ctx context.Context, assignment domain.ProjectAssignment) (portsrepo.AssignmentOutcome, error) {
	query := `
		INSERT INTO project_assignments (project_id, user_id, role, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		assignment.ProjectID,
		assignment.UserID,
		assignment.Role,
		assignment.CreatedAt,
		assignment.CreatedBy,
		assignment.LastUpdatedAt,
		assignment.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return portsrepo.AssignmentOutcome{AlreadyAssigned: true}, nil
		}
		return portsrepo.AssignmentOutcome{}, fmt.Errorf("failed to assign staff to project %s: %w", assignment.ProjectID, err)
	}
	return portsrepo.AssignmentOutcome{Created: true}, nil
}

func (r *PgxProjectRepository) ListAssignments(ctx context.Context, projectID string) ([]domain.ProjectAssignment, error) {
	query := `
		SELECT project_id, user_id, role, created_at, created_by, last_updated_at, last_updated_by
		FROM project_assignments
		WHERE project_id = $1
		ORDER BY role, user_id;
	`
	rows, err := r.Pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments for project %s: %w", projectID, err)
	}
	defer rows.Close()

	assignments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ProjectAssignment, error) {
		var a domain.ProjectAssignment
		err := row.Scan(&a.ProjectID, &a.UserID, &a.Role, &a.CreatedAt, &a.CreatedBy, &a.LastUpdatedAt, &a.LastUpdatedBy)
		return a, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan assignments: %w", err)
	}
	return assignments, nil
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}
