package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/TrenchWorks/workforce_payroll_app/internal/apperrors"
	"github.com/TrenchWorks/workforce_payroll_app/internal/core/domain"
	portsrepo "github.com/TrenchWorks/workforce_payroll_app/internal/core/ports/repositories"
	portssvc "github.com/TrenchWorks/workforce_payroll_app/internal/core/ports/services"
	"github.com/TrenchWorks/workforce_payroll_app/internal/dto"
	"github.com/google/uuid"
)

type projectService struct {
	BaseService
	projectRepo portsrepo.ProjectRepository
	userRepo    portsrepo.UserRepository
	audit       portssvc.AuditSvcFacade
}

// NewProjectService creates a new project service.
func NewProjectService(projectRepo portsrepo.ProjectRepository, userRepo portsrepo.UserRepository, audit portssvc.AuditSvcFacade) portssvc.ProjectSvcFacade {
	return &projectService{projectRepo: projectRepo, userRepo: userRepo, audit: audit}
}

func (s *projectService) CreateProject(ctx context.Context, req dto.CreateProjectRequest, creatorUserID string) (*domain.Project, error) {
	now := time.Now()
	project := domain.Project{
		ProjectID:        uuid.NewString(),
		Name:             req.Name,
		Location:         req.Location,
		Budget:           req.Budget,
		Status:           domain.ProjectActive,
		PaymentCadence:   domain.PaymentCadence(req.PaymentCadence),
		DefaultOpenRate:  req.DefaultOpenRate,
		DefaultCloseRate: req.DefaultCloseRate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.projectRepo.SaveProject(ctx, project); err != nil {
		s.LogError(ctx, err, "Failed to create project", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	s.audit.Record(ctx, creatorUserID, domain.AuditCreate, "project", project.ProjectID, nil,
		map[string]any{"name": project.Name})

	return &project, nil
}

func (s *projectService) GetProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project %s: %w", projectID, err)
	}
	return project, nil
}

func (s *projectService) ListProjects(ctx context.Context) ([]domain.Project, error) {
	projects, err := s.projectRepo.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

func (s *projectService) UpdateProject(ctx context.Context, projectID string, req dto.UpdateProjectRequest, updaterUserID string) (*domain.Project, error) {
	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to find project %s: %w", projectID, err)
	}

	before := map[string]any{
		"name":           project.Name,
		"location":       project.Location,
		"status":         string(project.Status),
		"paymentCadence": string(project.PaymentCadence),
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Location != nil {
		project.Location = *req.Location
	}
	if req.Budget != nil {
		project.Budget = req.Budget
	}
	if req.Status != nil {
		project.Status = domain.ProjectStatus(*req.Status)
	}
	if req.PaymentCadence != nil {
		project.PaymentCadence = domain.PaymentCadence(*req.PaymentCadence)
	}
	if req.DefaultOpenRate != nil {
		project.DefaultOpenRate = req.DefaultOpenRate
	}
	if req.DefaultCloseRate != nil {
		project.DefaultCloseRate = req.DefaultCloseRate
	}
	project.LastUpdatedAt = time.Now()
	project.LastUpdatedBy = updaterUserID

	if err := s.projectRepo.UpdateProject(ctx, *project); err != nil {
		s.LogError(ctx, err, "Failed to update project", slog.String("project_id", projectID))
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	after := map[string]any{
		"name":           project.Name,
		"location":       project.Location,
		"status":         string(project.Status),
		"paymentCadence": string(project.PaymentCadence),
	}
	s.audit.Record(ctx, updaterUserID, domain.AuditUpdate, "project", projectID, diffChanges(before, after), nil)

	return project, nil
}

func (s *projectService) AssignStaff(ctx context.Context, projectID, userID string, role domain.UserRole, actorUserID string) error {
	if role != domain.RoleProjectManager && role != domain.RoleSupervisor {
		return fmt.Errorf("%w: assignment role must be project_manager or supervisor", apperrors.ErrValidation)
	}

	if _, err := s.projectRepo.FindProjectByID(ctx, projectID); err != nil {
		return fmt.Errorf("failed to find project %s: %w", projectID, err)
	}
	if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
		return fmt.Errorf("failed to find user %s: %w", userID, err)
	}

	now := time.Now()
	outcome, err := s.projectRepo.AssignStaff(ctx, domain.ProjectAssignment{
		ProjectID: projectID,
		UserID:    userID,
		Role:      role,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorUserID,
		},
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to assign staff",
			slog.String("project_id", projectID), slog.String("user_id", userID))
		return fmt.Errorf("failed to assign staff: %w", err)
	}

	// Re-assigning an already-assigned user is a success, not a conflict;
	// concurrent duplicate requests both land here.
	if outcome.AlreadyAssigned {
		s.LogInfo(ctx, "Staff member already assigned to project",
			slog.String("project_id", projectID), slog.String("user_id", userID))
		return nil
	}

	s.audit.Record(ctx, actorUserID, domain.AuditAssign, "project", projectID, nil,
		map[string]any{"userID": userID, "role": string(role)})

	return nil
}
