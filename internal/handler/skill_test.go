package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmartel/portfolio-api/internal/apperror"
	"github.com/jmartel/portfolio-api/internal/auth"
	"github.com/jmartel/portfolio-api/internal/handler"
	"github.com/jmartel/portfolio-api/internal/model"
	"github.com/jmartel/portfolio-api/internal/service"
)

// memSkillRepo backs the handler tests without a database.
type memSkillRepo struct {
	skills map[string]*model.Skill
	nextID int
}

func newMemSkillRepo() *memSkillRepo {
	return &memSkillRepo{skills: make(map[string]*model.Skill)}
}

func (m *memSkillRepo) List(_ context.Context) ([]model.Skill, error) {
	result := []model.Skill{}
	for _, s := range m.skills {
		result = append(result, *s)
	}
	return result, nil
}

func (m *memSkillRepo) GetByID(_ context.Context, id string) (*model.Skill, error) {
	s, ok := m.skills[id]
	if !ok {
		return nil, apperror.NotFound("skill", id)
	}
	result := *s
	return &result, nil
}

func (m *memSkillRepo) Create(_ context.Context, skill *model.Skill) error {
	m.nextID++
	skill.ID = fmt.Sprintf("mem-%d", m.nextID)
	stored := *skill
	m.skills[skill.ID] = &stored
	return nil
}

func (m *memSkillRepo) Update(_ context.Context, skill *model.Skill) error {
	if _, ok := m.skills[skill.ID]; !ok {
		return apperror.NotFound("skill", skill.ID)
	}
	stored := *skill
	m.skills[skill.ID] = &stored
	return nil
}

func (m *memSkillRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.skills[id]; !ok {
		return apperror.NotFound("skill", id)
	}
	delete(m.skills, id)
	return nil
}

func (m *memSkillRepo) Reorder(_ context.Context, ids []string) error {
	for i, id := range ids {
		if s, ok := m.skills[id]; ok {
			s.OrderIndex = i
		}
	}
	return nil
}

// newSkillRouter assembles the skill routes the way the server does, with
// the mutating ones behind RequireAuth.
func newSkillRouter(t *testing.T) (*chi.Mux, *auth.TokenService) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	tokens, err := auth.NewTokenService("test-secret-at-least-16-bytes")
	require.NoError(t, err)

	svc := service.NewSkillService(newMemSkillRepo(), cache.New(time.Minute, time.Minute), logger)
	h := handler.NewSkillHandler(svc, logger)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Get("/skills", h.HandleList)
		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAuth(tokens))
			r.Post("/skills", h.HandleCreate)
			r.Post("/skills/reorder", h.HandleReorder)
			r.Put("/skills/{id}", h.HandleUpdate)
			r.Delete("/skills/{id}", h.HandleDelete)
		})
	})

	return r, tokens
}

func TestSkillRoutes(t *testing.T) {
	router, tokens := newSkillRouter(t)

	token, err := tokens.Generate("user-1")
	require.NoError(t, err)

	t.Run("list is public", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/skills", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, "[]", rr.Body.String())
	})

	t.Run("create without token is rejected", func(t *testing.T) {
		body := `{"name":"Go","category":"Backend","level":80}`
		req := httptest.NewRequest(http.MethodPost, "/api/skills", bytes.NewBufferString(body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("create with token succeeds", func(t *testing.T) {
		body := `{"name":"Go","category":"Backend","level":80}`
		req := httptest.NewRequest(http.MethodPost, "/api/skills", bytes.NewBufferString(body))
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var created model.Skill
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&created))
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "Go", created.Name)
	})

	t.Run("create with invalid payload is a validation error", func(t *testing.T) {
		body := `{"category":"Backend"}`
		req := httptest.NewRequest(http.MethodPost, "/api/skills", bytes.NewBufferString(body))
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var resp handler.ErrorResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "validation_error", resp.Error)
	})

	t.Run("update of missing skill is not found", func(t *testing.T) {
		body := `{"level":90}`
		req := httptest.NewRequest(http.MethodPut, "/api/skills/nonexistent", bytes.NewBufferString(body))
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("reorder round trip", func(t *testing.T) {
		var ids []string
		for _, name := range []string{"A", "B"} {
			body := fmt.Sprintf(`{"name":%q,"category":"c"}`, name)
			req := httptest.NewRequest(http.MethodPost, "/api/skills", bytes.NewBufferString(body))
			req.Header.Set("Authorization", "Bearer "+token)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			require.Equal(t, http.StatusCreated, rr.Code)

			var created model.Skill
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&created))
			ids = append(ids, created.ID)
		}

		body, err := json.Marshal(map[string][]string{"skill_ids": {ids[1], ids[0]}})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/api/skills/reorder", bytes.NewBuffer(body))
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		expired, err := tokens.GenerateWithDuration("user-1", -time.Minute)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodDelete, "/api/skills/whatever", nil)
		req.Header.Set("Authorization", "Bearer "+expired)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
