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

// ProjectRepo stores projects. The technologies and features columns hold
// JSON arrays bound through model.StringList.
type ProjectRepo struct {
	conn *sql.DB
}

var _ repository.ProjectRepository = (*ProjectRepo)(nil)

// Projects returns the project repository backed by this database.
func (db *DB) Projects() *ProjectRepo {
	return &ProjectRepo{conn: db.conn}
}

// List returns every project ordered by (order_index, created_at DESC) —
// pinned order first, newest within the same position.
func (r *ProjectRepo) List(ctx context.Context) ([]model.Project, error) {
	rows, err := r.conn.QueryContext(ctx,
		`SELECT id, title, description, category, image_url, technologies, features,
		        downloads, rating, users, status, github_url, demo_url, store_url,
		        order_index, created_at, updated_at
		 FROM projects
		 ORDER BY order_index, created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing projects: %w", err)
	}
	defer rows.Close()

	projects := []model.Project{}
	for rows.Next() {
		var p model.Project
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Description, &p.Category, &p.ImageURL,
			&p.Technologies, &p.Features, &p.Downloads, &p.Rating, &p.Users,
			&p.Status, &p.GitHubURL, &p.DemoURL, &p.StoreURL,
			&p.OrderIndex, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("sqlite: scanning project row: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating projects: %w", err)
	}

	return projects, nil
}

func (r *ProjectRepo) GetByID(ctx context.Context, id string) (*model.Project, error) {
	var p model.Project

	err := r.conn.QueryRowContext(ctx,
		`SELECT id, title, description, category, image_url, technologies, features,
		        downloads, rating, users, status, github_url, demo_url, store_url,
		        order_index, created_at, updated_at
		 FROM projects
		 WHERE id = ?`,
		id,
	).Scan(
		&p.ID, &p.Title, &p.Description, &p.Category, &p.ImageURL,
		&p.Technologies, &p.Features, &p.Downloads, &p.Rating, &p.Users,
		&p.Status, &p.GitHubURL, &p.DemoURL, &p.StoreURL,
		&p.OrderIndex, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("project", id)
		}
		return nil, fmt.Errorf("sqlite: getting project %s: %w", id, err)
	}

	return &p, nil
}

func (r *ProjectRepo) Create(ctx context.Context, project *model.Project) error {
	project.ID = xid.New().String()
	now := time.Now()
	project.CreatedAt = now
	project.UpdatedAt = now

	_, err := r.conn.ExecContext(ctx,
		`INSERT INTO projects (id, title, description, category, image_url,
		        technologies, features, downloads, rating, users, status,
		        github_url, demo_url, store_url, order_index, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		project.ID, project.Title, project.Description, project.Category,
		project.ImageURL, project.Technologies, project.Features,
		project.Downloads, project.Rating, project.Users, project.Status,
		project.GitHubURL, project.DemoURL, project.StoreURL,
		project.OrderIndex, project.CreatedAt, project.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: creating project: %w", err)
	}

	return nil
}

func (r *ProjectRepo) Update(ctx context.Context, project *model.Project) error {
	project.UpdatedAt = time.Now()

	result, err := r.conn.ExecContext(ctx,
		`UPDATE projects
		 SET title = ?, description = ?, category = ?, image_url = ?,
		     technologies = ?, features = ?, downloads = ?, rating = ?,
		     users = ?, status = ?, github_url = ?, demo_url = ?, store_url = ?,
		     order_index = ?, updated_at = ?
		 WHERE id = ?`,
		project.Title, project.Description, project.Category, project.ImageURL,
		project.Technologies, project.Features, project.Downloads,
		project.Rating, project.Users, project.Status, project.GitHubURL,
		project.DemoURL, project.StoreURL, project.OrderIndex,
		project.UpdatedAt, project.ID,
	)
	if err != nil {
		return fmt.Errorf("sqlite: updating project %s: %w", project.ID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperror.NotFound("project", project.ID)
	}

	return nil
}

func (r *ProjectRepo) Delete(ctx context.Context, id string) error {
	result, err := r.conn.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("sqlite: deleting project %s: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperror.NotFound("project", id)
	}

	return nil
}

func (r *ProjectRepo) Reorder(ctx context.Context, ids []string) error {
	return reorderTable(ctx, r.conn, "projects", ids)
}
