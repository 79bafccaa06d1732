package repositories

import (
	"context"

	"github.com/TrenchWorks/workforce_payroll_app/internal/core/domain"
)

// AssignmentOutcome is the tagged result of an insert-or-detect-conflict
// staff assignment. A concurrent duplicate insert surfaces as AlreadyAssigned
// with no error, so both racing callers observe success.
type AssignmentOutcome struct {
	Created         bool
	AlreadyAssigned bool
}

// ProjectRepository persists projects and their staff assignments.
type ProjectRepository interface {
	SaveProject(ctx context.Context, project domain.Project) error
	FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error)
	ListProjects(ctx context.Context) ([]domain.Project, error)
	UpdateProject(ctx context.Context, project domain.Project) error
	// AssignStaff inserts a (project, user, role) assignment, translating the
	// store's duplicate-key signal into AlreadyAssigned rather than an error.
	AssignStaff(ctx context.Context, assignment domain.ProjectAssignment) (AssignmentOutcome, error)
	ListAssignments(ctx context.Context, projectID string) ([]domain.ProjectAssignment, error)
}
