// Package model defines the records stored and served by the portfolio API.
//
// JSON tags follow the snake_case contract the frontend consumes. Every
// record carries an xid string ID plus created_at/updated_at timestamps;
// list-displayed records additionally carry an order_index used purely as a
// display ordering hint.
package model

import "time"

// PersonalInfo is the site owner's profile. It is a singleton: the info
// endpoints only ever read and write the first row.
type PersonalInfo struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Location    string    `json:"location"`
	GitHubURL   string    `json:"github_url"`
	LinkedInURL string    `json:"linkedin_url"`
	TwitterURL  string    `json:"twitter_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PersonalInfoUpdate carries the optional fields of an info upsert. A nil
// pointer means "leave unchanged" — partial update semantics without
// reflection over payload keys.
type PersonalInfoUpdate struct {
	Name        *string `json:"name"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Location    *string `json:"location"`
	GitHubURL   *string `json:"github_url"`
	LinkedInURL *string `json:"linkedin_url"`
	TwitterURL  *string `json:"twitter_url"`
}

// Apply copies the present fields onto the record.
func (u *PersonalInfoUpdate) Apply(info *PersonalInfo) {
	if u.Name != nil {
		info.Name = *u.Name
	}
	if u.Title != nil {
		info.Title = *u.Title
	}
	if u.Description != nil {
		info.Description = *u.Description
	}
	if u.Email != nil {
		info.Email = *u.Email
	}
	if u.Phone != nil {
		info.Phone = *u.Phone
	}
	if u.Location != nil {
		info.Location = *u.Location
	}
	if u.GitHubURL != nil {
		info.GitHubURL = *u.GitHubURL
	}
	if u.LinkedInURL != nil {
		info.LinkedInURL = *u.LinkedInURL
	}
	if u.TwitterURL != nil {
		info.TwitterURL = *u.TwitterURL
	}
}
