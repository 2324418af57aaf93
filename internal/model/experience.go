package model

import "time"

// Experience is a work-history entry. Period is free text ("2021 — 2023")
// rather than parsed dates; the frontend renders it verbatim.
type Experience struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Company        string     `json:"company"`
	Location       string     `json:"location"`
	Period         string     `json:"period"`
	EmploymentType string     `json:"employment_type"`
	Description    string     `json:"description"`
	Achievements   StringList `json:"achievements"`
	Technologies   StringList `json:"technologies"`
	Color          string     `json:"color"`
	OrderIndex     int        `json:"order_index"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// ExperienceUpdate carries the optional fields of an experience update.
type ExperienceUpdate struct {
	Title          *string     `json:"title"`
	Company        *string     `json:"company"`
	Location       *string     `json:"location"`
	Period         *string     `json:"period"`
	EmploymentType *string     `json:"employment_type"`
	Description    *string     `json:"description"`
	Achievements   *StringList `json:"achievements"`
	Technologies   *StringList `json:"technologies"`
	Color          *string     `json:"color"`
	OrderIndex     *int        `json:"order_index"`
}

func (u *ExperienceUpdate) Apply(e *Experience) {
	if u.Title != nil {
		e.Title = *u.Title
	}
	if u.Company != nil {
		e.Company = *u.Company
	}
	if u.Location != nil {
		e.Location = *u.Location
	}
	if u.Period != nil {
		e.Period = *u.Period
	}
	if u.EmploymentType != nil {
		e.EmploymentType = *u.EmploymentType
	}
	if u.Description != nil {
		e.Description = *u.Description
	}
	if u.Achievements != nil {
		e.Achievements = *u.Achievements
	}
	if u.Technologies != nil {
		e.Technologies = *u.Technologies
	}
	if u.Color != nil {
		e.Color = *u.Color
	}
	if u.OrderIndex != nil {
		e.OrderIndex = *u.OrderIndex
	}
}
