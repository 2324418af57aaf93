// Package server wires the application together and runs the HTTP server.
//
// This is the composition root: the database, services, handlers and
// middleware are all constructed here, each layer receiving only the
// dependencies it needs. main.go stays minimal and just calls New + Start.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/patrickmn/go-cache"
	"github.com/rs/cors"

	"github.com/jmartel/portfolio-api/internal/auth"
	"github.com/jmartel/portfolio-api/internal/config"
	"github.com/jmartel/portfolio-api/internal/handler"
	"github.com/jmartel/portfolio-api/internal/mail"
	"github.com/jmartel/portfolio-api/internal/middleware"
	sqliteRepo "github.com/jmartel/portfolio-api/internal/repository/sqlite"
	"github.com/jmartel/portfolio-api/internal/service"
	"github.com/jmartel/portfolio-api/internal/upload"
)

// Cached public reads live this long unless a mutation evicts them first.
const (
	cacheTTL           = 5 * time.Minute
	cacheSweepInterval = 10 * time.Minute
)

// Server owns the router and the resources that must be released on
// shutdown, the database connection in particular.
type Server struct {
	router *chi.Mux
	config config.Config
	logger *slog.Logger
	db     *sqliteRepo.DB
}

// New opens the database and assembles the full dependency chain. The
// returned server is ready to Start.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	db, err := sqliteRepo.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Server{
		router: chi.NewRouter(),
		config: cfg,
		logger: logger,
		db:     db,
	}

	if err := s.setupRoutes(); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting up routes: %w", err)
	}

	return s, nil
}

// setupRoutes configures global middleware, builds every service and
// handler, and registers the route tree. Mutating routes sit behind
// RequireAuth; public reads do not.
func (s *Server) setupRoutes() error {
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(middleware.Logger(s.logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   s.config.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})
	s.router.Use(corsHandler.Handler)

	// Uploaded images are served straight from disk.
	fileServer := http.FileServer(http.Dir(s.config.UploadDir))
	s.router.Handle("/uploads/*", http.StripPrefix("/uploads/", fileServer))

	tokens, err := auth.NewTokenService(s.config.JWTSecret)
	if err != nil {
		return fmt.Errorf("creating token service: %w", err)
	}
	passwords := auth.NewPasswordService()
	requireAuth := auth.RequireAuth(tokens)

	c := cache.New(cacheTTL, cacheSweepInterval)

	authService := service.NewAuthService(s.db.Users(), passwords, tokens, s.logger)
	personalService := service.NewPersonalInfoService(s.db.PersonalInfo(), c, s.logger)
	skillService := service.NewSkillService(s.db.Skills(), c, s.logger)
	projectService := service.NewProjectService(s.db.Projects(), c, s.logger)
	experienceService := service.NewExperienceService(s.db.Experiences(), c, s.logger)
	educationService := service.NewEducationService(s.db.Education(), c, s.logger)
	blogService := service.NewBlogService(s.db.Blog(), c, s.logger)
	contactService := service.NewContactService(mail.NewMailer(s.config.Mail), s.logger)

	authHandler := handler.NewAuthHandler(authService, s.logger)
	personalHandler := handler.NewPersonalInfoHandler(personalService, s.logger)
	skillHandler := handler.NewSkillHandler(skillService, s.logger)
	projectHandler := handler.NewProjectHandler(projectService, s.logger)
	experienceHandler := handler.NewExperienceHandler(experienceService, s.logger)
	educationHandler := handler.NewEducationHandler(educationService, s.logger)
	blogHandler := handler.NewBlogHandler(blogService, s.logger)
	contactHandler := handler.NewContactHandler(contactService, s.logger)
	uploadHandler := handler.NewUploadHandler(upload.NewStore(s.config.UploadDir), s.logger)

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/health", handler.HandleHealth)

		r.Post("/auth/register", authHandler.HandleRegister)
		r.Post("/auth/login", authHandler.HandleLogin)

		r.Get("/personal-info", personalHandler.HandleGet)
		r.Get("/skills", skillHandler.HandleList)
		r.Get("/projects", projectHandler.HandleList)
		r.Get("/experiences", experienceHandler.HandleList)
		r.Get("/education", educationHandler.HandleList)
		r.Get("/blog/posts", blogHandler.HandleListPublished)
		r.Get("/blog/posts/{slug}", blogHandler.HandleGetBySlug)

		r.Post("/contact", contactHandler.HandleSubmit)
		r.Post("/upload", uploadHandler.HandleUpload)

		// Everything below requires a valid admin token.
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)

			// The admin frontend has sent both verbs over time.
			r.Post("/personal-info", personalHandler.HandleUpsert)
			r.Put("/personal-info", personalHandler.HandleUpsert)

			r.Post("/skills", skillHandler.HandleCreate)
			r.Post("/skills/reorder", skillHandler.HandleReorder)
			r.Put("/skills/{id}", skillHandler.HandleUpdate)
			r.Delete("/skills/{id}", skillHandler.HandleDelete)

			r.Post("/projects", projectHandler.HandleCreate)
			r.Post("/projects/reorder", projectHandler.HandleReorder)
			r.Put("/projects/{id}", projectHandler.HandleUpdate)
			r.Delete("/projects/{id}", projectHandler.HandleDelete)

			r.Post("/experiences", experienceHandler.HandleCreate)
			r.Post("/experiences/reorder", experienceHandler.HandleReorder)
			r.Put("/experiences/{id}", experienceHandler.HandleUpdate)
			r.Delete("/experiences/{id}", experienceHandler.HandleDelete)

			r.Post("/education", educationHandler.HandleCreate)
			r.Post("/education/reorder", educationHandler.HandleReorder)
			r.Put("/education/{id}", educationHandler.HandleUpdate)
			r.Delete("/education/{id}", educationHandler.HandleDelete)

			r.Get("/admin/blog/posts", blogHandler.HandleListAll)
			r.Post("/admin/blog/posts", blogHandler.HandleCreate)
			r.Put("/admin/blog/posts/{id}", blogHandler.HandleUpdate)
			r.Delete("/admin/blog/posts/{id}", blogHandler.HandleDelete)
		})
	})

	return nil
}

// Router exposes the assembled handler tree, mainly for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Close releases the server's resources without running it.
func (s *Server) Close() error {
	return s.db.Close()
}

// Start runs the server until SIGINT or SIGTERM, then drains in-flight
// requests and closes the database.
func (s *Server) Start() error {
	defer s.db.Close()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("server starting",
			slog.Int("port", s.config.Port),
			slog.String("database", s.config.DBPath),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-quit:
		s.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.logger.Info("server stopped gracefully")
	}

	return nil
}
