package sqlite

import (
	"context"
	"testing"

	"github.com/jmartel/portfolio-api/internal/model"
)

// newTestDB opens an in-memory database with the full schema applied. Each
// test gets its own, destroyed when the connection closes.
func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// createTestUser satisfies the blog_posts author foreign key.
func createTestUser(t *testing.T, db *DB, username string) *model.AdminUser {
	t.Helper()
	user := &model.AdminUser{
		Username:     username,
		PasswordHash: "x",
		Email:        username + "@example.com",
		IsActive:     true,
	}
	if err := db.Users().Create(context.Background(), user); err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}
