package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/jmartel/portfolio-api/internal/apperror"
	"github.com/jmartel/portfolio-api/internal/model"
)

func createTestPost(t *testing.T, db *DB, authorID, title, slug string, published bool) *model.BlogPost {
	t.Helper()
	post := &model.BlogPost{
		Title:       title,
		Slug:        slug,
		Content:     "content",
		AuthorID:    authorID,
		IsPublished: published,
	}
	if err := db.Blog().Create(context.Background(), post); err != nil {
		t.Fatalf("failed to create test post: %v", err)
	}
	return post
}

func TestBlogCreateAndGetByID(t *testing.T) {
	db := newTestDB(t)
	author := createTestUser(t, db, "author")

	created := createTestPost(t, db, author.ID, "First Post", "first-post", true)
	if created.ID == "" {
		t.Fatal("Create() did not set post.ID")
	}

	found, err := db.Blog().GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if found.Title != "First Post" || found.AuthorID != author.ID {
		t.Errorf("got %+v, want title=First Post author=%s", found, author.ID)
	}
}

func TestBlogGetPublishedBySlug(t *testing.T) {
	db := newTestDB(t)
	author := createTestUser(t, db, "author")

	createTestPost(t, db, author.ID, "Public", "public", true)

	found, err := db.Blog().GetPublishedBySlug(context.Background(), "public")
	if err != nil {
		t.Fatalf("GetPublishedBySlug() error = %v", err)
	}
	if !found.IsPublished {
		t.Error("expected a published post")
	}
}

func TestBlogGetPublishedBySlug_DraftInvisible(t *testing.T) {
	db := newTestDB(t)
	author := createTestUser(t, db, "author")

	createTestPost(t, db, author.ID, "Draft", "draft", false)

	_, err := db.Blog().GetPublishedBySlug(context.Background(), "draft")
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound for a draft", err)
	}
}

func TestBlogListPublished_FiltersAndListAllDoesNot(t *testing.T) {
	db := newTestDB(t)
	author := createTestUser(t, db, "author")
	ctx := context.Background()

	createTestPost(t, db, author.ID, "Live", "live", true)
	createTestPost(t, db, author.ID, "Draft", "draft", false)

	published, err := db.Blog().ListPublished(ctx)
	if err != nil {
		t.Fatalf("ListPublished() error = %v", err)
	}
	if len(published) != 1 {
		t.Fatalf("ListPublished() returned %d posts, want 1", len(published))
	}
	if published[0].Slug != "live" {
		t.Errorf("published[0].Slug = %q, want %q", published[0].Slug, "live")
	}

	all, err := db.Blog().ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if len(all) != 2 {
		t.Errorf("ListAll() returned %d posts, want 2", len(all))
	}
}

func TestBlogSlugExists(t *testing.T) {
	db := newTestDB(t)
	author := createTestUser(t, db, "author")
	ctx := context.Background()

	post := createTestPost(t, db, author.ID, "Taken", "taken", true)

	taken, err := db.Blog().SlugExists(ctx, "taken", "")
	if err != nil {
		t.Fatalf("SlugExists() error = %v", err)
	}
	if !taken {
		t.Error("SlugExists(taken) = false, want true")
	}

	free, err := db.Blog().SlugExists(ctx, "free", "")
	if err != nil {
		t.Fatalf("SlugExists() error = %v", err)
	}
	if free {
		t.Error("SlugExists(free) = true, want false")
	}

	// The post's own slug does not count against itself.
	self, err := db.Blog().SlugExists(ctx, "taken", post.ID)
	if err != nil {
		t.Fatalf("SlugExists() error = %v", err)
	}
	if self {
		t.Error("SlugExists(taken, excluding owner) = true, want false")
	}
}

func TestBlogUpdate(t *testing.T) {
	db := newTestDB(t)
	author := createTestUser(t, db, "author")
	ctx := context.Background()

	post := createTestPost(t, db, author.ID, "Before", "before", false)

	post.Title = "After"
	post.Slug = "after"
	post.IsPublished = true
	if err := db.Blog().Update(ctx, post); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	found, err := db.Blog().GetPublishedBySlug(ctx, "after")
	if err != nil {
		t.Fatalf("GetPublishedBySlug() error = %v", err)
	}
	if found.Title != "After" {
		t.Errorf("Title = %q, want %q", found.Title, "After")
	}
}

func TestBlogDelete(t *testing.T) {
	db := newTestDB(t)
	author := createTestUser(t, db, "author")
	ctx := context.Background()

	post := createTestPost(t, db, author.ID, "Gone", "gone", true)

	if err := db.Blog().Delete(ctx, post.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	_, err := db.Blog().GetByID(ctx, post.ID)
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("after delete: error = %v, want ErrNotFound", err)
	}

	if err := db.Blog().Delete(ctx, post.ID); !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("second delete: error = %v, want ErrNotFound", err)
	}
}
