package model

import "time"

// Skill is a single competency shown on the skills grid.
// Level is a 0-100 proficiency, Color a hex string used by the frontend.
type Skill struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	Level      int       `json:"level"`
	Color      string    `json:"color"`
	OrderIndex int       `json:"order_index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// SkillUpdate carries the optional fields of a skill update.
type SkillUpdate struct {
	Name       *string `json:"name"`
	Category   *string `json:"category"`
	Level      *int    `json:"level"`
	Color      *string `json:"color"`
	OrderIndex *int    `json:"order_index"`
}

func (u *SkillUpdate) Apply(s *Skill) {
	if u.Name != nil {
		s.Name = *u.Name
	}
	if u.Category != nil {
		s.Category = *u.Category
	}
	if u.Level != nil {
		s.Level = *u.Level
	}
	if u.Color != nil {
		s.Color = *u.Color
	}
	if u.OrderIndex != nil {
		s.OrderIndex = *u.OrderIndex
	}
}
