// Package service contains the business logic layer: validation, business
// rules and orchestration. Services accept primitives and domain structs,
// never HTTP types, and return apperror domain errors for the handlers to
// translate.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jmartel/portfolio-api/internal/apperror"
	"github.com/jmartel/portfolio-api/internal/auth"
	"github.com/jmartel/portfolio-api/internal/model"
	"github.com/jmartel/portfolio-api/internal/repository"
)

// AuthService implements the admin registration and login rules.
type AuthService struct {
	users     repository.UserRepository
	passwords *auth.PasswordService
	tokens    *auth.TokenService
	logger    *slog.Logger
}

func NewAuthService(
	users repository.UserRepository,
	passwords *auth.PasswordService,
	tokens *auth.TokenService,
	logger *slog.Logger,
) *AuthService {
	return &AuthService{
		users:     users,
		passwords: passwords,
		tokens:    tokens,
		logger:    logger,
	}
}

// Register creates a new admin account. Username and email must be unused;
// the password is stored only as a bcrypt hash. Registration does not log
// the user in — login is a separate step.
func (s *AuthService) Register(ctx context.Context, username, password, email string) error {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if username == "" {
		return apperror.ValidationFailed("username", "username is required")
	}
	if password == "" {
		return apperror.ValidationFailed("password", "password is required")
	}
	if email == "" {
		return apperror.ValidationFailed("email", "email is required")
	}

	if _, err := s.users.GetByUsername(ctx, username); err == nil {
		return apperror.Conflict("username already taken")
	} else if !errors.Is(err, apperror.ErrNotFound) {
		return fmt.Errorf("checking username: %w", err)
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return apperror.Conflict("email already taken")
	} else if !errors.Is(err, apperror.ErrNotFound) {
		return fmt.Errorf("checking email: %w", err)
	}

	hash, err := s.passwords.Hash(password)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	user := &model.AdminUser{
		Username:     username,
		PasswordHash: hash,
		Email:        email,
	}
	if err := s.users.Create(ctx, user); err != nil {
		s.logger.Error("failed to create admin user",
			slog.String("username", username),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("creating user: %w", err)
	}

	s.logger.Info("admin user registered",
		slog.String("id", user.ID),
		slog.String("username", username),
	)

	return nil
}

// Login verifies the credentials, records the login time, and issues a
// bearer token. Unknown usernames and wrong passwords are indistinguishable
// to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *model.AdminUser, error) {
	if username == "" || password == "" {
		return "", nil, apperror.ValidationFailed("credentials", "username and password are required")
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return "", nil, apperror.Unauthorized("invalid credentials")
		}
		return "", nil, fmt.Errorf("looking up user: %w", err)
	}

	if err := s.passwords.Verify(user.PasswordHash, password); err != nil {
		return "", nil, apperror.Unauthorized("invalid credentials")
	}

	now := time.Now()
	if err := s.users.UpdateLastLogin(ctx, user.ID, now); err != nil {
		return "", nil, fmt.Errorf("updating last login: %w", err)
	}
	user.LastLogin = &now

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("issuing token: %w", err)
	}

	s.logger.Info("admin logged in", slog.String("id", user.ID))

	return token, user, nil
}
