package model

import "time"

// DefaultProjectStatus is the status assigned when a create payload omits
// one. The value matches what the frontend displays for in-progress work.
const DefaultProjectStatus = "En développement"

// Project is a portfolio entry. Technologies and Features are stored as
// serialized lists on the row (see StringList). Downloads, Rating and Users
// are display-only marketing figures, not computed values.
type Project struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Category     string     `json:"category"`
	ImageURL     string     `json:"image_url"`
	Technologies StringList `json:"technologies"`
	Features     StringList `json:"features"`
	Downloads    string     `json:"downloads"`
	Rating       float64    `json:"rating"`
	Users        string     `json:"users"`
	Status       string     `json:"status"`
	GitHubURL    string     `json:"github_url"`
	DemoURL      string     `json:"demo_url"`
	StoreURL     string     `json:"store_url"`
	OrderIndex   int        `json:"order_index"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// ProjectUpdate carries the optional fields of a project update.
type ProjectUpdate struct {
	Title        *string     `json:"title"`
	Description  *string     `json:"description"`
	Category     *string     `json:"category"`
	ImageURL     *string     `json:"image_url"`
	Technologies *StringList `json:"technologies"`
	Features     *StringList `json:"features"`
	Downloads    *string     `json:"downloads"`
	Rating       *float64    `json:"rating"`
	Users        *string     `json:"users"`
	Status       *string     `json:"status"`
	GitHubURL    *string     `json:"github_url"`
	DemoURL      *string     `json:"demo_url"`
	StoreURL     *string     `json:"store_url"`
	OrderIndex   *int        `json:"order_index"`
}

func (u *ProjectUpdate) Apply(p *Project) {
	if u.Title != nil {
		p.Title = *u.Title
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Category != nil {
		p.Category = *u.Category
	}
	if u.ImageURL != nil {
		p.ImageURL = *u.ImageURL
	}
	if u.Technologies != nil {
		p.Technologies = *u.Technologies
	}
	if u.Features != nil {
		p.Features = *u.Features
	}
	if u.Downloads != nil {
		p.Downloads = *u.Downloads
	}
	if u.Rating != nil {
		p.Rating = *u.Rating
	}
	if u.Users != nil {
		p.Users = *u.Users
	}
	if u.Status != nil {
		p.Status = *u.Status
	}
	if u.GitHubURL != nil {
		p.GitHubURL = *u.GitHubURL
	}
	if u.DemoURL != nil {
		p.DemoURL = *u.DemoURL
	}
	if u.StoreURL != nil {
		p.StoreURL = *u.StoreURL
	}
	if u.OrderIndex != nil {
		p.OrderIndex = *u.OrderIndex
	}
}
