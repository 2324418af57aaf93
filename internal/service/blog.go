package service

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/patrickmn/go-cache"

	"github.com/jmartel/portfolio-api/internal/apperror"
	"github.com/jmartel/portfolio-api/internal/model"
	"github.com/jmartel/portfolio-api/internal/repository"
)

const publishedPostsCacheKey = "blog-posts-published"

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe slug from a title: lower-case, every run of
// non-alphanumeric characters collapsed to a single hyphen, leading and
// trailing hyphens trimmed. It is idempotent: Slugify(Slugify(t)) ==
// Slugify(t).
func Slugify(title string) string {
	slug := strings.ToLower(title)
	slug = slugPattern.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// BlogService implements post CRUD, slug derivation and publication
// filtering.
type BlogService struct {
	repo   repository.BlogRepository
	cache  *cache.Cache
	logger *slog.Logger
}

func NewBlogService(repo repository.BlogRepository, c *cache.Cache, logger *slog.Logger) *BlogService {
	return &BlogService{repo: repo, cache: c, logger: logger}
}

// ListPublished returns published posts for the public index, newest first.
func (s *BlogService) ListPublished(ctx context.Context) ([]model.BlogPost, error) {
	if cached, found := s.cache.Get(publishedPostsCacheKey); found {
		return cached.([]model.BlogPost), nil
	}

	posts, err := s.repo.ListPublished(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing published posts: %w", err)
	}

	s.cache.Set(publishedPostsCacheKey, posts, cache.DefaultExpiration)
	return posts, nil
}

// ListAll returns every post for the admin view, drafts included.
func (s *BlogService) ListAll(ctx context.Context) ([]model.BlogPost, error) {
	posts, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing posts: %w", err)
	}
	return posts, nil
}

// GetPublishedBySlug is the public lookup. A post that exists but is not
// published surfaces as NotFound, exactly like a missing slug.
func (s *BlogService) GetPublishedBySlug(ctx context.Context, slug string) (*model.BlogPost, error) {
	return s.repo.GetPublishedBySlug(ctx, slug)
}

// Create stores a new post authored by authorID. The slug is derived from
// the title; when the derived slug is already taken a numeric suffix is
// appended so two posts never share one.
func (s *BlogService) Create(ctx context.Context, authorID, title, content string, isPublished bool) (*model.BlogPost, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, apperror.ValidationFailed("title", "post title is required")
	}

	slug, err := s.uniqueSlug(ctx, Slugify(title), "")
	if err != nil {
		return nil, err
	}

	post := &model.BlogPost{
		Title:       title,
		Slug:        slug,
		Content:     content,
		AuthorID:    authorID,
		IsPublished: isPublished,
	}
	if err := s.repo.Create(ctx, post); err != nil {
		s.logger.Error("failed to create blog post",
			slog.String("title", title),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating post: %w", err)
	}

	s.cache.Delete(publishedPostsCacheKey)
	s.logger.Info("blog post created",
		slog.String("id", post.ID),
		slog.String("slug", post.Slug),
	)

	return post, nil
}

// Update applies the present fields to a post. When the title changes, the
// slug is recomputed from the new title (and disambiguated if taken).
func (s *BlogService) Update(ctx context.Context, id string, update *model.BlogPostUpdate) (*model.BlogPost, error) {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	update.Apply(post)

	if update.Title != nil {
		slug, err := s.uniqueSlug(ctx, Slugify(post.Title), post.ID)
		if err != nil {
			return nil, err
		}
		post.Slug = slug
	}

	if err := s.repo.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("updating post: %w", err)
	}

	s.cache.Delete(publishedPostsCacheKey)
	s.logger.Info("blog post updated", slog.String("id", id))

	return post, nil
}

func (s *BlogService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.cache.Delete(publishedPostsCacheKey)
	s.logger.Info("blog post deleted", slog.String("id", id))
	return nil
}

// uniqueSlug returns base if free, otherwise base-2, base-3, … The post
// identified by excludeID is ignored so an unchanged title keeps its slug.
func (s *BlogService) uniqueSlug(ctx context.Context, base, excludeID string) (string, error) {
	if base == "" {
		base = "post"
	}

	candidate := base
	for i := 2; ; i++ {
		taken, err := s.repo.SlugExists(ctx, candidate, excludeID)
		if err != nil {
			return "", fmt.Errorf("checking slug: %w", err)
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}
