package model

import "time"

// Education is a degree or training entry.
type Education struct {
	ID             string    `json:"id"`
	Degree         string    `json:"degree"`
	School         string    `json:"school"`
	Location       string    `json:"location"`
	Period         string    `json:"period"`
	Specialization string    `json:"specialization"`
	OrderIndex     int       `json:"order_index"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// EducationUpdate carries the optional fields of an education update.
type EducationUpdate struct {
	Degree         *string `json:"degree"`
	School         *string `json:"school"`
	Location       *string `json:"location"`
	Period         *string `json:"period"`
	Specialization *string `json:"specialization"`
	OrderIndex     *int    `json:"order_index"`
}

func (u *EducationUpdate) Apply(e *Education) {
	if u.Degree != nil {
		e.Degree = *u.Degree
	}
	if u.School != nil {
		e.School = *u.School
	}
	if u.Location != nil {
		e.Location = *u.Location
	}
	if u.Period != nil {
		e.Period = *u.Period
	}
	if u.Specialization != nil {
		e.Specialization = *u.Specialization
	}
	if u.OrderIndex != nil {
		e.OrderIndex = *u.OrderIndex
	}
}
