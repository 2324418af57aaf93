package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/patrickmn/go-cache"

	"github.com/jmartel/portfolio-api/internal/apperror"
	"github.com/jmartel/portfolio-api/internal/model"
	"github.com/jmartel/portfolio-api/internal/repository"
)

const projectsCacheKey = "projects"

// ProjectService implements the project CRUD and reorder rules.
type ProjectService struct {
	repo   repository.ProjectRepository
	cache  *cache.Cache
	logger *slog.Logger
}

func NewProjectService(repo repository.ProjectRepository, c *cache.Cache, logger *slog.Logger) *ProjectService {
	return &ProjectService{repo: repo, cache: c, logger: logger}
}

func (s *ProjectService) List(ctx context.Context) ([]model.Project, error) {
	if cached, found := s.cache.Get(projectsCacheKey); found {
		return cached.([]model.Project), nil
	}

	projects, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	s.cache.Set(projectsCacheKey, projects, cache.DefaultExpiration)
	return projects, nil
}

// Create validates and stores a new project. Omitted list fields become
// empty lists and an omitted status gets the default.
func (s *ProjectService) Create(ctx context.Context, project *model.Project) (*model.Project, error) {
	project.Title = strings.TrimSpace(project.Title)
	if project.Title == "" {
		return nil, apperror.ValidationFailed("title", "project title is required")
	}

	if project.Technologies == nil {
		project.Technologies = model.StringList{}
	}
	if project.Features == nil {
		project.Features = model.StringList{}
	}
	if project.Status == "" {
		project.Status = model.DefaultProjectStatus
	}

	if err := s.repo.Create(ctx, project); err != nil {
		s.logger.Error("failed to create project",
			slog.String("title", project.Title),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating project: %w", err)
	}

	s.cache.Delete(projectsCacheKey)
	s.logger.Info("project created", slog.String("id", project.ID), slog.String("title", project.Title))

	return project, nil
}

func (s *ProjectService) Update(ctx context.Context, id string, update *model.ProjectUpdate) (*model.Project, error) {
	project, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	update.Apply(project)

	if err := s.repo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("updating project: %w", err)
	}

	s.cache.Delete(projectsCacheKey)
	s.logger.Info("project updated", slog.String("id", id))

	return project, nil
}

func (s *ProjectService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.cache.Delete(projectsCacheKey)
	s.logger.Info("project deleted", slog.String("id", id))
	return nil
}

func (s *ProjectService) Reorder(ctx context.Context, ids []string) error {
	if err := s.repo.Reorder(ctx, ids); err != nil {
		return fmt.Errorf("reordering projects: %w", err)
	}

	s.cache.Delete(projectsCacheKey)
	s.logger.Info("projects reordered", slog.Int("count", len(ids)))
	return nil
}
