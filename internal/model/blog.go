package model

import "time"

// BlogPost is an article authored by an admin user. Slug is derived from the
// title and is the public lookup key; unpublished posts are only visible
// through the admin endpoints.
type BlogPost struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Content     string    `json:"content"`
	AuthorID    string    `json:"author_id"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BlogPostUpdate carries the optional fields of a post update. The slug is
// not updatable directly — it is recomputed by the service whenever Title
// is present.
type BlogPostUpdate struct {
	Title       *string `json:"title"`
	Content     *string `json:"content"`
	IsPublished *bool   `json:"is_published"`
}

func (u *BlogPostUpdate) Apply(p *BlogPost) {
	if u.Title != nil {
		p.Title = *u.Title
	}
	if u.Content != nil {
		p.Content = *u.Content
	}
	if u.IsPublished != nil {
		p.IsPublished = *u.IsPublished
	}
}
