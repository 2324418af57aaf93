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

const skillsCacheKey = "skills"

// SkillService implements the skill CRUD and reorder rules.
type SkillService struct {
	repo   repository.SkillRepository
	cache  *cache.Cache
	logger *slog.Logger
}

func NewSkillService(repo repository.SkillRepository, c *cache.Cache, logger *slog.Logger) *SkillService {
	return &SkillService{repo: repo, cache: c, logger: logger}
}

// List returns every skill in display order. The public site polls this on
// each page view, so results are served from cache between mutations.
func (s *SkillService) List(ctx context.Context) ([]model.Skill, error) {
	if cached, found := s.cache.Get(skillsCacheKey); found {
		return cached.([]model.Skill), nil
	}

	skills, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing skills: %w", err)
	}

	s.cache.Set(skillsCacheKey, skills, cache.DefaultExpiration)
	return skills, nil
}

// Create validates and stores a new skill. Level defaults to 0 and is
// clamped to the 0-100 scale the frontend renders.
func (s *SkillService) Create(ctx context.Context, skill *model.Skill) (*model.Skill, error) {
	skill.Name = strings.TrimSpace(skill.Name)
	if skill.Name == "" {
		return nil, apperror.ValidationFailed("name", "skill name is required")
	}
	if skill.Category = strings.TrimSpace(skill.Category); skill.Category == "" {
		return nil, apperror.ValidationFailed("category", "skill category is required")
	}
	if skill.Level < 0 || skill.Level > 100 {
		return nil, apperror.ValidationFailed("level", "level must be between 0 and 100")
	}

	if err := s.repo.Create(ctx, skill); err != nil {
		s.logger.Error("failed to create skill",
			slog.String("name", skill.Name),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating skill: %w", err)
	}

	s.cache.Delete(skillsCacheKey)
	s.logger.Info("skill created", slog.String("id", skill.ID), slog.String("name", skill.Name))

	return skill, nil
}

// Update applies the present fields to an existing skill.
func (s *SkillService) Update(ctx context.Context, id string, update *model.SkillUpdate) (*model.Skill, error) {
	skill, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	update.Apply(skill)
	if skill.Level < 0 || skill.Level > 100 {
		return nil, apperror.ValidationFailed("level", "level must be between 0 and 100")
	}

	if err := s.repo.Update(ctx, skill); err != nil {
		return nil, fmt.Errorf("updating skill: %w", err)
	}

	s.cache.Delete(skillsCacheKey)
	s.logger.Info("skill updated", slog.String("id", id))

	return skill, nil
}

func (s *SkillService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.cache.Delete(skillsCacheKey)
	s.logger.Info("skill deleted", slog.String("id", id))
	return nil
}

// Reorder assigns each id's order_index to its position in ids. Unknown ids
// are skipped without error; validating that ids belong to this entity is
// the caller's responsibility.
func (s *SkillService) Reorder(ctx context.Context, ids []string) error {
	if err := s.repo.Reorder(ctx, ids); err != nil {
		return fmt.Errorf("reordering skills: %w", err)
	}

	s.cache.Delete(skillsCacheKey)
	s.logger.Info("skills reordered", slog.Int("count", len(ids)))
	return nil
}
