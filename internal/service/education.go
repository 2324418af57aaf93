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

const educationCacheKey = "education"

// EducationService implements the education CRUD and reorder rules.
type EducationService struct {
	repo   repository.EducationRepository
	cache  *cache.Cache
	logger *slog.Logger
}

func NewEducationService(repo repository.EducationRepository, c *cache.Cache, logger *slog.Logger) *EducationService {
	return &EducationService{repo: repo, cache: c, logger: logger}
}

func (s *EducationService) List(ctx context.Context) ([]model.Education, error) {
	if cached, found := s.cache.Get(educationCacheKey); found {
		return cached.([]model.Education), nil
	}

	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing education: %w", err)
	}

	s.cache.Set(educationCacheKey, entries, cache.DefaultExpiration)
	return entries, nil
}

func (s *EducationService) Create(ctx context.Context, edu *model.Education) (*model.Education, error) {
	edu.Degree = strings.TrimSpace(edu.Degree)
	if edu.Degree == "" {
		return nil, apperror.ValidationFailed("degree", "degree is required")
	}
	if edu.School = strings.TrimSpace(edu.School); edu.School == "" {
		return nil, apperror.ValidationFailed("school", "school is required")
	}

	if err := s.repo.Create(ctx, edu); err != nil {
		s.logger.Error("failed to create education entry",
			slog.String("degree", edu.Degree),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating education entry: %w", err)
	}

	s.cache.Delete(educationCacheKey)
	s.logger.Info("education entry created", slog.String("id", edu.ID))

	return edu, nil
}

func (s *EducationService) Update(ctx context.Context, id string, update *model.EducationUpdate) (*model.Education, error) {
	edu, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	update.Apply(edu)

	if err := s.repo.Update(ctx, edu); err != nil {
		return nil, fmt.Errorf("updating education entry: %w", err)
	}

	s.cache.Delete(educationCacheKey)
	s.logger.Info("education entry updated", slog.String("id", id))

	return edu, nil
}

func (s *EducationService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.cache.Delete(educationCacheKey)
	s.logger.Info("education entry deleted", slog.String("id", id))
	return nil
}

func (s *EducationService) Reorder(ctx context.Context, ids []string) error {
	if err := s.repo.Reorder(ctx, ids); err != nil {
		return fmt.Errorf("reordering education: %w", err)
	}

	s.cache.Delete(educationCacheKey)
	s.logger.Info("education reordered", slog.Int("count", len(ids)))
	return nil
}
