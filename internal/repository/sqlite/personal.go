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

// PersonalInfoRepo stores the singleton profile row.
type PersonalInfoRepo struct {
	conn *sql.DB
}

var _ repository.PersonalInfoRepository = (*PersonalInfoRepo)(nil)

// PersonalInfo returns the profile repository backed by this database.
func (db *DB) PersonalInfo() *PersonalInfoRepo {
	return &PersonalInfoRepo{conn: db.conn}
}

// Get returns the singleton profile row. There is at most one; if several
// ever exist the oldest wins, matching the original "first row" behaviour.
func (r *PersonalInfoRepo) Get(ctx context.Context) (*model.PersonalInfo, error) {
	var info model.PersonalInfo

	err := r.conn.QueryRowContext(ctx,
		`SELECT id, name, title, description, email, phone, location,
		        github_url, linkedin_url, twitter_url, created_at, updated_at
		 FROM personal_info
		 ORDER BY created_at
		 LIMIT 1`,
	).Scan(
		&info.ID, &info.Name, &info.Title, &info.Description, &info.Email,
		&info.Phone, &info.Location, &info.GitHubURL, &info.LinkedInURL,
		&info.TwitterURL, &info.CreatedAt, &info.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, &apperror.AppError{Err: apperror.ErrNotFound, Message: "no personal info found"}
		}
		return nil, fmt.Errorf("sqlite: getting personal info: %w", err)
	}

	return &info, nil
}

func (r *PersonalInfoRepo) Create(ctx context.Context, info *model.PersonalInfo) error {
	info.ID = xid.New().String()
	now := time.Now()
	info.CreatedAt = now
	info.UpdatedAt = now

	_, err := r.conn.ExecContext(ctx,
		`INSERT INTO personal_info (id, name, title, description, email, phone,
		        location, github_url, linkedin_url, twitter_url, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		info.ID, info.Name, info.Title, info.Description, info.Email,
		info.Phone, info.Location, info.GitHubURL, info.LinkedInURL,
		info.TwitterURL, info.CreatedAt, info.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: creating personal info: %w", err)
	}

	return nil
}

func (r *PersonalInfoRepo) Update(ctx context.Context, info *model.PersonalInfo) error {
	info.UpdatedAt = time.Now()

	result, err := r.conn.ExecContext(ctx,
		`UPDATE personal_info
		 SET name = ?, title = ?, description = ?, email = ?, phone = ?,
		     location = ?, github_url = ?, linkedin_url = ?, twitter_url = ?,
		     updated_at = ?
		 WHERE id = ?`,
		info.Name, info.Title, info.Description, info.Email, info.Phone,
		info.Location, info.GitHubURL, info.LinkedInURL, info.TwitterURL,
		info.UpdatedAt, info.ID,
	)
	if err != nil {
		return fmt.Errorf("sqlite: updating personal info: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperror.NotFound("personal info", info.ID)
	}

	return nil
}
