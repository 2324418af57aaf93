package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jmartel/portfolio-api/internal/apperror"
	"github.com/jmartel/portfolio-api/internal/auth"
	"github.com/jmartel/portfolio-api/internal/model"
)

type mockUserRepo struct {
	users  map[string]*model.AdminUser
	nextID int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.AdminUser)}
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.AdminUser, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, apperror.NotFound("user", id)
	}
	result := *u
	return &result, nil
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*model.AdminUser, error) {
	for _, u := range m.users {
		if u.Username == username {
			result := *u
			return &result, nil
		}
	}
	return nil, apperror.NotFound("user", username)
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.AdminUser, error) {
	for _, u := range m.users {
		if u.Email == email {
			result := *u
			return &result, nil
		}
	}
	return nil, apperror.NotFound("user", email)
}

func (m *mockUserRepo) Create(_ context.Context, user *model.AdminUser) error {
	m.nextID++
	user.ID = fmt.Sprintf("mock-%d", m.nextID)
	user.CreatedAt = time.Now()
	stored := *user
	m.users[user.ID] = &stored
	return nil
}

func (m *mockUserRepo) UpdateLastLogin(_ context.Context, id string, at time.Time) error {
	u, ok := m.users[id]
	if !ok {
		return apperror.NotFound("user", id)
	}
	u.LastLogin = &at
	return nil
}

func newTestAuthService(t *testing.T) (*AuthService, *mockUserRepo) {
	t.Helper()
	repo := newMockUserRepo()
	tokens, err := auth.NewTokenService("test-secret-at-least-16-bytes")
	if err != nil {
		t.Fatalf("NewTokenService() error = %v", err)
	}
	// Low bcrypt cost keeps the test fast.
	passwords := auth.NewPasswordServiceForTest(4)
	return NewAuthService(repo, passwords, tokens, newTestLogger()), repo
}

func TestRegister_Success(t *testing.T) {
	svc, repo := newTestAuthService(t)

	err := svc.Register(context.Background(), "admin", "secret123", "admin@example.com")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	user, err := repo.GetByUsername(context.Background(), "admin")
	if err != nil {
		t.Fatalf("user not stored: %v", err)
	}
	if user.PasswordHash == "secret123" {
		t.Error("password stored in plaintext")
	}
	if user.PasswordHash == "" {
		t.Error("password hash is empty")
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	if err := svc.Register(ctx, "admin", "secret123", "one@example.com"); err != nil {
		t.Fatalf("first Register() error = %v", err)
	}

	err := svc.Register(ctx, "admin", "secret123", "two@example.com")
	if !errors.Is(err, apperror.ErrConflict) {
		t.Errorf("error = %v, want ErrConflict", err)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	if err := svc.Register(ctx, "one", "secret123", "same@example.com"); err != nil {
		t.Fatalf("first Register() error = %v", err)
	}

	err := svc.Register(ctx, "two", "secret123", "same@example.com")
	if !errors.Is(err, apperror.ErrConflict) {
		t.Errorf("error = %v, want ErrConflict", err)
	}
}

func TestRegister_MissingFields(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	cases := [][3]string{
		{"", "pass", "a@b.c"},
		{"user", "", "a@b.c"},
		{"user", "pass", ""},
	}
	for _, c := range cases {
		err := svc.Register(ctx, c[0], c[1], c[2])
		if !errors.Is(err, apperror.ErrValidation) {
			t.Errorf("Register(%q,%q,%q) error = %v, want ErrValidation", c[0], c[1], c[2], err)
		}
	}
}

func TestLogin_Success(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	if err := svc.Register(ctx, "admin", "secret123", "admin@example.com"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	token, user, err := svc.Login(ctx, "admin", "secret123")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if token == "" {
		t.Error("expected a non-empty token")
	}
	if user.LastLogin == nil {
		t.Error("expected LastLogin to be set")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	if err := svc.Register(ctx, "admin", "secret123", "admin@example.com"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	_, _, err := svc.Login(ctx, "admin", "wrong")
	if !errors.Is(err, apperror.ErrUnauthorized) {
		t.Errorf("error = %v, want ErrUnauthorized", err)
	}
}

func TestLogin_UnknownUser(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, _, err := svc.Login(context.Background(), "ghost", "whatever")
	if !errors.Is(err, apperror.ErrUnauthorized) {
		t.Errorf("error = %v, want ErrUnauthorized", err)
	}
}

func TestLogin_TokenRoundTrips(t *testing.T) {
	svc, repo := newTestAuthService(t)
	ctx := context.Background()

	if err := svc.Register(ctx, "admin", "secret123", "admin@example.com"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	token, user, err := svc.Login(ctx, "admin", "secret123")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	tokens, err := auth.NewTokenService("test-secret-at-least-16-bytes")
	if err != nil {
		t.Fatalf("NewTokenService() error = %v", err)
	}
	userID, err := tokens.Validate(token)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if userID != user.ID {
		t.Errorf("token subject = %q, want %q", userID, user.ID)
	}

	stored := repo.users[user.ID]
	if stored.LastLogin == nil {
		t.Error("expected LastLogin persisted")
	}
}
