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

// SkillRepo stores skills.
type SkillRepo struct {
	conn *sql.DB
}

var _ repository.SkillRepository = (*SkillRepo)(nil)

// Skills returns the skill repository backed by this database.
func (db *DB) Skills() *SkillRepo {
	return &SkillRepo{conn: db.conn}
}

// List returns every skill ordered by (order_index, category, name) — the
// display order of the skills grid.
func (r *SkillRepo) List(ctx context.Context) ([]model.Skill, error) {
	rows, err := r.conn.QueryContext(ctx,
		`SELECT id, name, category, level, color, order_index, created_at, updated_at
		 FROM skills
		 ORDER BY order_index, category, name`,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing skills: %w", err)
	}
	defer rows.Close()

	skills := []model.Skill{}
	for rows.Next() {
		var s model.Skill
		if err := rows.Scan(
			&s.ID, &s.Name, &s.Category, &s.Level, &s.Color,
			&s.OrderIndex, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("sqlite: scanning skill row: %w", err)
		}
		skills = append(skills, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating skills: %w", err)
	}

	return skills, nil
}

func (r *SkillRepo) GetByID(ctx context.Context, id string) (*model.Skill, error) {
	var s model.Skill

	err := r.conn.QueryRowContext(ctx,
		`SELECT id, name, category, level, color, order_index, created_at, updated_at
		 FROM skills
		 WHERE id = ?`,
		id,
	).Scan(
		&s.ID, &s.Name, &s.Category, &s.Level, &s.Color,
		&s.OrderIndex, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("skill", id)
		}
		return nil, fmt.Errorf("sqlite: getting skill %s: %w", id, err)
	}

	return &s, nil
}

func (r *SkillRepo) Create(ctx context.Context, skill *model.Skill) error {
	skill.ID = xid.New().String()
	now := time.Now()
	skill.CreatedAt = now
	skill.UpdatedAt = now

	_, err := r.conn.ExecContext(ctx,
		`INSERT INTO skills (id, name, category, level, color, order_index, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		skill.ID, skill.Name, skill.Category, skill.Level, skill.Color,
		skill.OrderIndex, skill.CreatedAt, skill.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: creating skill: %w", err)
	}

	return nil
}

func (r *SkillRepo) Update(ctx context.Context, skill *model.Skill) error {
	skill.UpdatedAt = time.Now()

	result, err := r.conn.ExecContext(ctx,
		`UPDATE skills
		 SET name = ?, category = ?, level = ?, color = ?, order_index = ?, updated_at = ?
		 WHERE id = ?`,
		skill.Name, skill.Category, skill.Level, skill.Color,
		skill.OrderIndex, skill.UpdatedAt, skill.ID,
	)
	if err != nil {
		return fmt.Errorf("sqlite: updating skill %s: %w", skill.ID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperror.NotFound("skill", skill.ID)
	}

	return nil
}

func (r *SkillRepo) Delete(ctx context.Context, id string) error {
	result, err := r.conn.ExecContext(ctx, `DELETE FROM skills WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("sqlite: deleting skill %s: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperror.NotFound("skill", id)
	}

	return nil
}

func (r *SkillRepo) Reorder(ctx context.Context, ids []string) error {
	return reorderTable(ctx, r.conn, "skills", ids)
}
