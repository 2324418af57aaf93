package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/xid"

	"github.com/jmartel/portfolio-api/internal/apperror"
	"github.com/jmartel/portfolio-api/internal/model"
	"github.com/jmartel/portfolio-api/internal/repository"
)

// BlogRepo stores blog posts.
type BlogRepo struct {
	conn *sql.DB
}

var _ repository.BlogRepository = (*BlogRepo)(nil)

// Blog returns the blog repository backed by this database.
func (db *DB) Blog() *BlogRepo {
	return &BlogRepo{conn: db.conn}
}

const blogColumns = `id, title, slug, content, author_id, is_published, created_at, updated_at`

func (r *BlogRepo) list(ctx context.Context, query string, args ...any) ([]model.BlogPost, error) {
	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing blog posts: %w", err)
	}
	defer rows.Close()

	posts := []model.BlogPost{}
	for rows.Next() {
		var p model.BlogPost
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Slug, &p.Content, &p.AuthorID,
			&p.IsPublished, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("sqlite: scanning blog post row: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating blog posts: %w", err)
	}

	return posts, nil
}

// ListPublished returns published posts, newest first. This feeds the
// public blog index.
func (r *BlogRepo) ListPublished(ctx context.Context) ([]model.BlogPost, error) {
	return r.list(ctx,
		`SELECT `+blogColumns+` FROM blog_posts
		 WHERE is_published = 1
		 ORDER BY created_at DESC`)
}

// ListAll returns every post, newest first, for the admin endpoints.
func (r *BlogRepo) ListAll(ctx context.Context) ([]model.BlogPost, error) {
	return r.list(ctx,
		`SELECT `+blogColumns+` FROM blog_posts
		 ORDER BY created_at DESC`)
}

// GetPublishedBySlug is the public lookup: unpublished posts are invisible
// here and surface as NotFound.
func (r *BlogRepo) GetPublishedBySlug(ctx context.Context, slug string) (*model.BlogPost, error) {
	var p model.BlogPost

	err := r.conn.QueryRowContext(ctx,
		`SELECT `+blogColumns+` FROM blog_posts
		 WHERE slug = ? AND is_published = 1`,
		slug,
	).Scan(
		&p.ID, &p.Title, &p.Slug, &p.Content, &p.AuthorID,
		&p.IsPublished, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("blog post", slug)
		}
		return nil, fmt.Errorf("sqlite: getting blog post %s: %w", slug, err)
	}

	return &p, nil
}

func (r *BlogRepo) GetByID(ctx context.Context, id string) (*model.BlogPost, error) {
	var p model.BlogPost

	err := r.conn.QueryRowContext(ctx,
		`SELECT `+blogColumns+` FROM blog_posts WHERE id = ?`,
		id,
	).Scan(
		&p.ID, &p.Title, &p.Slug, &p.Content, &p.AuthorID,
		&p.IsPublished, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("blog post", id)
		}
		return nil, fmt.Errorf("sqlite: getting blog post %s: %w", id, err)
	}

	return &p, nil
}

func (r *BlogRepo) Create(ctx context.Context, post *model.BlogPost) error {
	post.ID = xid.New().String()
	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now

	_, err := r.conn.ExecContext(ctx,
		`INSERT INTO blog_posts (id, title, slug, content, author_id, is_published, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		post.ID, post.Title, post.Slug, post.Content, post.AuthorID,
		post.IsPublished, post.CreatedAt, post.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: creating blog post: %w", err)
	}

	return nil
}

func (r *BlogRepo) Update(ctx context.Context, post *model.BlogPost) error {
	post.UpdatedAt = time.Now()

	result, err := r.conn.ExecContext(ctx,
		`UPDATE blog_posts
		 SET title = ?, slug = ?, content = ?, is_published = ?, updated_at = ?
		 WHERE id = ?`,
		post.Title, post.Slug, post.Content, post.IsPublished,
		post.UpdatedAt, post.ID,
	)
	if err != nil {
		return fmt.Errorf("sqlite: updating blog post %s: %w", post.ID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperror.NotFound("blog post", post.ID)
	}

	return nil
}

func (r *BlogRepo) Delete(ctx context.Context, id string) error {
	result, err := r.conn.ExecContext(ctx, `DELETE FROM blog_posts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("sqlite: deleting blog post %s: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperror.NotFound("blog post", id)
	}

	return nil
}

// SlugExists reports whether any post other than excludeID already uses slug.
// The blog service uses this to disambiguate derived slugs.
func (r *BlogRepo) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	var count int
	err := r.conn.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM blog_posts WHERE slug = ? AND id != ?`,
		slug, excludeID,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("sqlite: checking slug %s: %w", slug, err)
	}
	return count > 0, nil
}
