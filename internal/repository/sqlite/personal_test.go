package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/jmartel/portfolio-api/internal/apperror"
	"github.com/jmartel/portfolio-api/internal/model"
)

func TestPersonalInfoGet_Empty(t *testing.T) {
	db := newTestDB(t)

	_, err := db.PersonalInfo().Get(context.Background())
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound on empty table", err)
	}
}

func TestPersonalInfoCreateAndGet(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	info := &model.PersonalInfo{
		Name:  "Jane Doe",
		Title: "Developer",
		Email: "jane@example.com",
	}
	if err := db.PersonalInfo().Create(ctx, info); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if info.ID == "" {
		t.Fatal("Create() did not set info.ID")
	}

	found, err := db.PersonalInfo().Get(ctx)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if found.Name != "Jane Doe" {
		t.Errorf("Name = %q, want %q", found.Name, "Jane Doe")
	}
}

func TestPersonalInfoUpdate(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	info := &model.PersonalInfo{Name: "Before"}
	if err := db.PersonalInfo().Create(ctx, info); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	info.Name = "After"
	info.Location = "Paris"
	if err := db.PersonalInfo().Update(ctx, info); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	found, err := db.PersonalInfo().Get(ctx)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if found.Name != "After" || found.Location != "Paris" {
		t.Errorf("got name=%q location=%q, want After/Paris", found.Name, found.Location)
	}
}
