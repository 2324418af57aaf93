// Command seed initializes the database with a default admin account and a
// starter profile so a fresh install has something to show. Running it twice
// is safe: existing records are left alone.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/jmartel/portfolio-api/internal/apperror"
	"github.com/jmartel/portfolio-api/internal/auth"
	"github.com/jmartel/portfolio-api/internal/config"
	"github.com/jmartel/portfolio-api/internal/model"
	sqliteRepo "github.com/jmartel/portfolio-api/internal/repository/sqlite"
)

const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
	defaultAdminEmail    = "admin@portfolio.local"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		logger.Error("failed to create data directory", slog.String("error", err.Error()))
		os.Exit(1)
	}

	db, err := sqliteRepo.New(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	ctx := context.Background()

	if err := seedAdmin(ctx, db, logger); err != nil {
		logger.Error("failed to seed admin user", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := seedPersonalInfo(ctx, db, logger); err != nil {
		logger.Error("failed to seed personal info", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := seedPortfolio(ctx, db, logger); err != nil {
		logger.Error("failed to seed portfolio content", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("database seeded", slog.String("database", cfg.DBPath))
}

func seedAdmin(ctx context.Context, db *sqliteRepo.DB, logger *slog.Logger) error {
	users := db.Users()

	if _, err := users.GetByUsername(ctx, defaultAdminUsername); err == nil {
		logger.Info("admin user already exists, skipping")
		return nil
	} else if !errors.Is(err, apperror.ErrNotFound) {
		return err
	}

	hash, err := auth.NewPasswordService().Hash(defaultAdminPassword)
	if err != nil {
		return err
	}

	if err := users.Create(ctx, &model.AdminUser{
		Username:     defaultAdminUsername,
		PasswordHash: hash,
		Email:        defaultAdminEmail,
		IsActive:     true,
	}); err != nil {
		return err
	}

	logger.Warn("default admin created, change the password",
		slog.String("username", defaultAdminUsername),
	)
	return nil
}

func seedPersonalInfo(ctx context.Context, db *sqliteRepo.DB, logger *slog.Logger) error {
	info := db.PersonalInfo()

	if _, err := info.Get(ctx); err == nil {
		logger.Info("personal info already exists, skipping")
		return nil
	} else if !errors.Is(err, apperror.ErrNotFound) {
		return err
	}

	if err := info.Create(ctx, &model.PersonalInfo{
		Name:        "Your Name",
		Title:       "Software Developer",
		Description: "Edit this profile from the admin panel.",
		Email:       defaultAdminEmail,
	}); err != nil {
		return err
	}

	logger.Info("starter personal info created")
	return nil
}

// seedPortfolio fills empty content tables with starter records so the public
// site renders something before the first admin session.
func seedPortfolio(ctx context.Context, db *sqliteRepo.DB, logger *slog.Logger) error {
	skills, err := db.Skills().List(ctx)
	if err != nil {
		return err
	}
	if len(skills) == 0 {
		starter := []model.Skill{
			{Name: "Go", Category: "Backend", Level: 90, Color: "#00ADD8", OrderIndex: 1},
			{Name: "SQLite", Category: "Backend", Level: 80, Color: "#003B57", OrderIndex: 2},
			{Name: "React", Category: "Frontend", Level: 85, Color: "#61DAFB", OrderIndex: 1},
			{Name: "TypeScript", Category: "Frontend", Level: 80, Color: "#3178C6", OrderIndex: 2},
			{Name: "Git", Category: "Outils", Level: 95, Color: "#F05032", OrderIndex: 1},
			{Name: "Docker", Category: "Outils", Level: 75, Color: "#2496ED", OrderIndex: 2},
		}
		for i := range starter {
			if err := db.Skills().Create(ctx, &starter[i]); err != nil {
				return err
			}
		}
		logger.Info("starter skills created", slog.Int("count", len(starter)))
	}

	projects, err := db.Projects().List(ctx)
	if err != nil {
		return err
	}
	if len(projects) == 0 {
		if err := db.Projects().Create(ctx, &model.Project{
			Title:        "Portfolio",
			Description:  "Ce site: une API Go avec un frontend React.",
			Category:     "web",
			Technologies: model.StringList{"Go", "SQLite", "React"},
			Features:     model.StringList{"Blog", "Admin", "Formulaire de contact"},
			Status:       model.DefaultProjectStatus,
			OrderIndex:   1,
		}); err != nil {
			return err
		}
		logger.Info("starter project created")
	}

	experiences, err := db.Experiences().List(ctx)
	if err != nil {
		return err
	}
	if len(experiences) == 0 {
		if err := db.Experiences().Create(ctx, &model.Experience{
			Title:          "Développeur",
			Company:        "Votre entreprise",
			Location:       "Paris, France",
			Period:         "2022 - Présent",
			EmploymentType: "CDI",
			Description:    "Modifiez cette expérience depuis le panneau admin.",
			Achievements:   model.StringList{},
			Technologies:   model.StringList{"Go"},
			OrderIndex:     1,
		}); err != nil {
			return err
		}
		logger.Info("starter experience created")
	}

	education, err := db.Education().List(ctx)
	if err != nil {
		return err
	}
	if len(education) == 0 {
		if err := db.Education().Create(ctx, &model.Education{
			Degree:     "Master Informatique",
			School:     "Votre école",
			Location:   "Paris, France",
			Period:     "2017 - 2019",
			OrderIndex: 1,
		}); err != nil {
			return err
		}
		logger.Info("starter education created")
	}

	return nil
}
