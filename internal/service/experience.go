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

const experiencesCacheKey = "experiences"

// ExperienceService implements the work-experience CRUD and reorder rules.
type ExperienceService struct {
	repo   repository.ExperienceRepository
	cache  *cache.Cache
	logger *slog.Logger
}

func NewExperienceService(repo repository.ExperienceRepository, c *cache.Cache, logger *slog.Logger) *ExperienceService {
	return &ExperienceService{repo: repo, cache: c, logger: logger}
}

func (s *ExperienceService) List(ctx context.Context) ([]model.Experience, error) {
	if cached, found := s.cache.Get(experiencesCacheKey); found {
		return cached.([]model.Experience), nil
	}

	experiences, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing experiences: %w", err)
	}

	s.cache.Set(experiencesCacheKey, experiences, cache.DefaultExpiration)
	return experiences, nil
}

func (s *ExperienceService) Create(ctx context.Context, exp *model.Experience) (*model.Experience, error) {
	exp.Title = strings.TrimSpace(exp.Title)
	if exp.Title == "" {
		return nil, apperror.ValidationFailed("title", "experience title is required")
	}
	if exp.Company = strings.TrimSpace(exp.Company); exp.Company == "" {
		return nil, apperror.ValidationFailed("company", "company is required")
	}

	if exp.Achievements == nil {
		exp.Achievements = model.StringList{}
	}
	if exp.Technologies == nil {
		exp.Technologies = model.StringList{}
	}

	if err := s.repo.Create(ctx, exp); err != nil {
		s.logger.Error("failed to create experience",
			slog.String("title", exp.Title),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating experience: %w", err)
	}

	s.cache.Delete(experiencesCacheKey)
	s.logger.Info("experience created", slog.String("id", exp.ID), slog.String("title", exp.Title))

	return exp, nil
}

func (s *ExperienceService) Update(ctx context.Context, id string, update *model.ExperienceUpdate) (*model.Experience, error) {
	exp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	update.Apply(exp)

	if err := s.repo.Update(ctx, exp); err != nil {
		return nil, fmt.Errorf("updating experience: %w", err)
	}

	s.cache.Delete(experiencesCacheKey)
	s.logger.Info("experience updated", slog.String("id", id))

	return exp, nil
}

func (s *ExperienceService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.cache.Delete(experiencesCacheKey)
	s.logger.Info("experience deleted", slog.String("id", id))
	return nil
}

func (s *ExperienceService) Reorder(ctx context.Context, ids []string) error {
	if err := s.repo.Reorder(ctx, ids); err != nil {
		return fmt.Errorf("reordering experiences: %w", err)
	}

	s.cache.Delete(experiencesCacheKey)
	s.logger.Info("experiences reordered", slog.Int("count", len(ids)))
	return nil
}
