package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/patrickmn/go-cache"

	"github.com/jmartel/portfolio-api/internal/apperror"
	"github.com/jmartel/portfolio-api/internal/model"
	"github.com/jmartel/portfolio-api/internal/repository"
)

const personalInfoCacheKey = "personal-info"

// PersonalInfoService reads and upserts the singleton profile.
type PersonalInfoService struct {
	repo   repository.PersonalInfoRepository
	cache  *cache.Cache
	logger *slog.Logger
}

func NewPersonalInfoService(repo repository.PersonalInfoRepository, c *cache.Cache, logger *slog.Logger) *PersonalInfoService {
	return &PersonalInfoService{repo: repo, cache: c, logger: logger}
}

// Get returns the profile, serving repeated public reads from cache.
func (s *PersonalInfoService) Get(ctx context.Context) (*model.PersonalInfo, error) {
	if cached, found := s.cache.Get(personalInfoCacheKey); found {
		return cached.(*model.PersonalInfo), nil
	}

	info, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	s.cache.Set(personalInfoCacheKey, info, cache.DefaultExpiration)
	return info, nil
}

// Upsert applies the present fields to the profile, creating the row on
// first write. Absent fields are left untouched.
func (s *PersonalInfoService) Upsert(ctx context.Context, update *model.PersonalInfoUpdate) (*model.PersonalInfo, error) {
	info, err := s.repo.Get(ctx)
	switch {
	case err == nil:
		update.Apply(info)
		if err := s.repo.Update(ctx, info); err != nil {
			return nil, fmt.Errorf("updating personal info: %w", err)
		}
	case errors.Is(err, apperror.ErrNotFound):
		info = &model.PersonalInfo{}
		update.Apply(info)
		if err := s.repo.Create(ctx, info); err != nil {
			return nil, fmt.Errorf("creating personal info: %w", err)
		}
	default:
		return nil, fmt.Errorf("loading personal info: %w", err)
	}

	s.cache.Delete(personalInfoCacheKey)
	s.logger.Info("personal info saved", slog.String("id", info.ID))

	return info, nil
}
