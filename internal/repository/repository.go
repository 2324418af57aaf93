// Package repository defines the storage interfaces the service layer
// depends on. The sqlite subpackage provides the concrete implementation;
// tests substitute in-memory mocks.
package repository

import (
	"context"
	"time"

	"github.com/jmartel/portfolio-api/internal/model"
)

// PersonalInfoRepository stores the singleton profile row.
type PersonalInfoRepository interface {
	// Get returns the profile, or a NotFound error when none has been
	// created yet.
	Get(ctx context.Context) (*model.PersonalInfo, error)
	Create(ctx context.Context, info *model.PersonalInfo) error
	Update(ctx context.Context, info *model.PersonalInfo) error
}

// SkillRepository stores skills, listed by (order_index, category, name).
type SkillRepository interface {
	List(ctx context.Context) ([]model.Skill, error)
	GetByID(ctx context.Context, id string) (*model.Skill, error)
	Create(ctx context.Context, skill *model.Skill) error
	Update(ctx context.Context, skill *model.Skill) error
	Delete(ctx context.Context, id string) error
	// Reorder assigns each id's order_index to its 0-based position in ids,
	// silently skipping ids that do not exist.
	Reorder(ctx context.Context, ids []string) error
}

// ProjectRepository stores projects, listed by (order_index, created_at DESC).
type ProjectRepository interface {
	List(ctx context.Context) ([]model.Project, error)
	GetByID(ctx context.Context, id string) (*model.Project, error)
	Create(ctx context.Context, project *model.Project) error
	Update(ctx context.Context, project *model.Project) error
	Delete(ctx context.Context, id string) error
	Reorder(ctx context.Context, ids []string) error
}

// ExperienceRepository stores work experiences, listed by
// (order_index, created_at DESC).
type ExperienceRepository interface {
	List(ctx context.Context) ([]model.Experience, error)
	GetByID(ctx context.Context, id string) (*model.Experience, error)
	Create(ctx context.Context, exp *model.Experience) error
	Update(ctx context.Context, exp *model.Experience) error
	Delete(ctx context.Context, id string) error
	Reorder(ctx context.Context, ids []string) error
}

// EducationRepository stores education entries, listed by
// (order_index, created_at DESC).
type EducationRepository interface {
	List(ctx context.Context) ([]model.Education, error)
	GetByID(ctx context.Context, id string) (*model.Education, error)
	Create(ctx context.Context, edu *model.Education) error
	Update(ctx context.Context, edu *model.Education) error
	Delete(ctx context.Context, id string) error
	Reorder(ctx context.Context, ids []string) error
}

// UserRepository stores admin accounts. Uniqueness of username and email is
// checked by the auth service before Create; the UNIQUE constraints in the
// schema are the backstop.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*model.AdminUser, error)
	GetByUsername(ctx context.Context, username string) (*model.AdminUser, error)
	GetByEmail(ctx context.Context, email string) (*model.AdminUser, error)
	Create(ctx context.Context, user *model.AdminUser) error
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
}

// BlogRepository stores posts. Published listings and slug lookups serve the
// public site; the ByID operations serve the admin endpoints and are
// unfiltered.
type BlogRepository interface {
	ListPublished(ctx context.Context) ([]model.BlogPost, error)
	ListAll(ctx context.Context) ([]model.BlogPost, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*model.BlogPost, error)
	GetByID(ctx context.Context, id string) (*model.BlogPost, error)
	Create(ctx context.Context, post *model.BlogPost) error
	Update(ctx context.Context, post *model.BlogPost) error
	Delete(ctx context.Context, id string) error
	// SlugExists reports whether another post (excluding excludeID) already
	// uses slug.
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
}
