package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/elynrose/gpt-cells-app-sub001/internal/db"
	"github.com/elynrose/gpt-cells-app-sub001/internal/models"
)

// Custom errors for the ProjectService
var (
	ErrProjectNotFound = errors.New("project not found")
)

// projectService implements the ProjectService interface.
type projectService struct {
	projectRepo db.ProjectRepository
	userRepo    db.UserRepository
}

// NewProjectService creates a new ProjectService instance.
func NewProjectService(projectRepo db.ProjectRepository, userRepo db.UserRepository) ProjectService {
	return &projectService{projectRepo: projectRepo, userRepo: userRepo}
}

func (s *projectService) Create(ctx context.Context, ownerID string, req models.CreateProjectRequest) (*models.Project, error) {
	project := &models.Project{
		OwnerID:     ownerID,
		Name:        req.Name,
		Description: req.Description,
		Status:      models.ProjectStatusActive,
	}
	id, err := s.projectRepo.Create(ctx, project)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	project.ID = id
	return project, nil
}

func (s *projectService) Get(ctx context.Context, ownerID, projectID string) (*models.Project, error) {
	project, err := s.projectRepo.Get(ctx, ownerID, projectID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, projectID)
		}
		return nil, fmt.Errorf("failed to load project: %w", err)
	}
	return project, nil
}

func (s *projectService) ListByOwner(ctx context.Context, ownerID string) ([]*models.Project, error) {
	projects, err := s.projectRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

func (s *projectService) ListAll(ctx context.Context) ([]*models.Project, error) {
	projects, err := s.projectRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list all projects: %w", err)
	}
	return projects, nil
}

func (s *projectService) Update(ctx context.Context, ownerID, projectID string, req models.UpdateProjectRequest) (*models.Project, error) {
	project, err := s.Get(ctx, ownerID, projectID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.Status != nil {
		project.Status = *req.Status
	}

	project.UpdatedAt = time.Time{}
	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return project, nil
}

func (s *projectService) Delete(ctx context.Context, ownerID, projectID string) error {
	if _, err := s.Get(ctx, ownerID, projectID); err != nil {
		return err
	}
	if err := s.projectRepo.Delete(ctx, ownerID, projectID); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

func (s *projectService) AddSheet(ctx context.Context, ownerID, projectID, name string) (*models.Project, error) {
	project, err := s.Get(ctx, ownerID, projectID)
	if err != nil {
		return nil, err
	}

	project.Sheets = append(project.Sheets, models.Sheet{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	})
	project.UpdatedAt = time.Time{}
	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to add sheet: %w", err)
	}

	// The usage counter is informational; a failed bump does not undo the
	// sheet.
	if err := s.userRepo.IncrementSheetsCreated(ctx, ownerID); err != nil && !errors.Is(err, db.ErrNotFound) {
		return project, fmt.Errorf("sheet added but usage counter not bumped: %w", err)
	}
	return project, nil
}
