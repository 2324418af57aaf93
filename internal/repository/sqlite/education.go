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

// EducationRepo stores education entries.
type EducationRepo struct {
	conn *sql.DB
}

var _ repository.EducationRepository = (*EducationRepo)(nil)

// Education returns the education repository backed by this database.
func (db *DB) Education() *EducationRepo {
	return &EducationRepo{conn: db.conn}
}

func (r *EducationRepo) List(ctx context.Context) ([]model.Education, error) {
	rows, err := r.conn.QueryContext(ctx,
		`SELECT id, degree, school, location, period, specialization,
		        order_index, created_at, updated_at
		 FROM education
		 ORDER BY order_index, created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing education: %w", err)
	}
	defer rows.Close()

	entries := []model.Education{}
	for rows.Next() {
		var e model.Education
		if err := rows.Scan(
			&e.ID, &e.Degree, &e.School, &e.Location, &e.Period,
			&e.Specialization, &e.OrderIndex, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("sqlite: scanning education row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating education: %w", err)
	}

	return entries, nil
}

func (r *EducationRepo) GetByID(ctx context.Context, id string) (*model.Education, error) {
	var e model.Education

	err := r.conn.QueryRowContext(ctx,
		`SELECT id, degree, school, location, period, specialization,
		        order_index, created_at, updated_at
		 FROM education
		 WHERE id = ?`,
		id,
	).Scan(
		&e.ID, &e.Degree, &e.School, &e.Location, &e.Period,
		&e.Specialization, &e.OrderIndex, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("education entry", id)
		}
		return nil, fmt.Errorf("sqlite: getting education entry %s: %w", id, err)
	}

	return &e, nil
}

func (r *EducationRepo) Create(ctx context.Context, edu *model.Education) error {
	edu.ID = xid.New().String()
	now := time.Now()
	edu.CreatedAt = now
	edu.UpdatedAt = now

	_, err := r.conn.ExecContext(ctx,
		`INSERT INTO education (id, degree, school, location, period,
		        specialization, order_index, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		edu.ID, edu.Degree, edu.School, edu.Location, edu.Period,
		edu.Specialization, edu.OrderIndex, edu.CreatedAt, edu.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: creating education entry: %w", err)
	}

	return nil
}

func (r *EducationRepo) Update(ctx context.Context, edu *model.Education) error {
	edu.UpdatedAt = time.Now()

	result, err := r.conn.ExecContext(ctx,
		`UPDATE education
		 SET degree = ?, school = ?, location = ?, period = ?, specialization = ?,
		     order_index = ?, updated_at = ?
		 WHERE id = ?`,
		edu.Degree, edu.School, edu.Location, edu.Period, edu.Specialization,
		edu.OrderIndex, edu.UpdatedAt, edu.ID,
	)
	if err != nil {
		return fmt.Errorf("sqlite: updating education entry %s: %w", edu.ID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperror.NotFound("education entry", edu.ID)
	}

	return nil
}

func (r *EducationRepo) Delete(ctx context.Context, id string) error {
	result, err := r.conn.ExecContext(ctx, `DELETE FROM education WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("sqlite: deleting education entry %s: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperror.NotFound("education entry", id)
	}

	return nil
}

func (r *EducationRepo) Reorder(ctx context.Context, ids []string) error {
	return reorderTable(ctx, r.conn, "education", ids)
}
