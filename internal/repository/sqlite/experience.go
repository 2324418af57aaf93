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

// ExperienceRepo stores work-history entries.
type ExperienceRepo struct {
	conn *sql.DB
}

var _ repository.ExperienceRepository = (*ExperienceRepo)(nil)

// Experiences returns the experience repository backed by this database.
func (db *DB) Experiences() *ExperienceRepo {
	return &ExperienceRepo{conn: db.conn}
}

func (r *ExperienceRepo) List(ctx context.Context) ([]model.Experience, error) {
	rows, err := r.conn.QueryContext(ctx,
		`SELECT id, title, company, location, period, employment_type, description,
		        achievements, technologies, color, order_index, created_at, updated_at
		 FROM experiences
		 ORDER BY order_index, created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing experiences: %w", err)
	}
	defer rows.Close()

	experiences := []model.Experience{}
	for rows.Next() {
		var e model.Experience
		if err := rows.Scan(
			&e.ID, &e.Title, &e.Company, &e.Location, &e.Period,
			&e.EmploymentType, &e.Description, &e.Achievements,
			&e.Technologies, &e.Color, &e.OrderIndex, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("sqlite: scanning experience row: %w", err)
		}
		experiences = append(experiences, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating experiences: %w", err)
	}

	return experiences, nil
}

func (r *ExperienceRepo) GetByID(ctx context.Context, id string) (*model.Experience, error) {
	var e model.Experience

	err := r.conn.QueryRowContext(ctx,
		`SELECT id, title, company, location, period, employment_type, description,
		        achievements, technologies, color, order_index, created_at, updated_at
		 FROM experiences
		 WHERE id = ?`,
		id,
	).Scan(
		&e.ID, &e.Title, &e.Company, &e.Location, &e.Period,
		&e.EmploymentType, &e.Description, &e.Achievements,
		&e.Technologies, &e.Color, &e.OrderIndex, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("experience", id)
		}
		return nil, fmt.Errorf("sqlite: getting experience %s: %w", id, err)
	}

	return &e, nil
}

func (r *ExperienceRepo) Create(ctx context.Context, exp *model.Experience) error {
	exp.ID = xid.New().String()
	now := time.Now()
	exp.CreatedAt = now
	exp.UpdatedAt = now

	_, err := r.conn.ExecContext(ctx,
		`INSERT INTO experiences (id, title, company, location, period,
		        employment_type, description, achievements, technologies, color,
		        order_index, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		exp.ID, exp.Title, exp.Company, exp.Location, exp.Period,
		exp.EmploymentType, exp.Description, exp.Achievements,
		exp.Technologies, exp.Color, exp.OrderIndex, exp.CreatedAt, exp.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: creating experience: %w", err)
	}

	return nil
}

func (r *ExperienceRepo) Update(ctx context.Context, exp *model.Experience) error {
	exp.UpdatedAt = time.Now()

	result, err := r.conn.ExecContext(ctx,
		`UPDATE experiences
		 SET title = ?, company = ?, location = ?, period = ?, employment_type = ?,
		     description = ?, achievements = ?, technologies = ?, color = ?,
		     order_index = ?, updated_at = ?
		 WHERE id = ?`,
		exp.Title, exp.Company, exp.Location, exp.Period, exp.EmploymentType,
		exp.Description, exp.Achievements, exp.Technologies, exp.Color,
		exp.OrderIndex, exp.UpdatedAt, exp.ID,
	)
	if err != nil {
		return fmt.Errorf("sqlite: updating experience %s: %w", exp.ID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperror.NotFound("experience", exp.ID)
	}

	return nil
}

func (r *ExperienceRepo) Delete(ctx context.Context, id string) error {
	result, err := r.conn.ExecContext(ctx, `DELETE FROM experiences WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("sqlite: deleting experience %s: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperror.NotFound("experience", id)
	}

	return nil
}

func (r *ExperienceRepo) Reorder(ctx context.Context, ids []string) error {
	return reorderTable(ctx, r.conn, "experiences", ids)
}
