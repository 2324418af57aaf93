package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jmartel/portfolio-api/internal/apperror"
	"github.com/jmartel/portfolio-api/internal/model"
)

type mockSkillRepo struct {
	skills map[string]*model.Skill
	nextID int
}

func newMockSkillRepo() *mockSkillRepo {
	return &mockSkillRepo{skills: make(map[string]*model.Skill)}
}

func (m *mockSkillRepo) List(_ context.Context) ([]model.Skill, error) {
	result := []model.Skill{}
	for _, s := range m.skills {
		result = append(result, *s)
	}
	return result, nil
}

func (m *mockSkillRepo) GetByID(_ context.Context, id string) (*model.Skill, error) {
	s, ok := m.skills[id]
	if !ok {
		return nil, apperror.NotFound("skill", id)
	}
	result := *s
	return &result, nil
}

func (m *mockSkillRepo) Create(_ context.Context, skill *model.Skill) error {
	m.nextID++
	skill.ID = fmt.Sprintf("mock-%d", m.nextID)
	skill.CreatedAt = time.Now()
	skill.UpdatedAt = skill.CreatedAt
	stored := *skill
	m.skills[skill.ID] = &stored
	return nil
}

func (m *mockSkillRepo) Update(_ context.Context, skill *model.Skill) error {
	if _, ok := m.skills[skill.ID]; !ok {
		return apperror.NotFound("skill", skill.ID)
	}
	stored := *skill
	m.skills[skill.ID] = &stored
	return nil
}

func (m *mockSkillRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.skills[id]; !ok {
		return apperror.NotFound("skill", id)
	}
	delete(m.skills, id)
	return nil
}

func (m *mockSkillRepo) Reorder(_ context.Context, ids []string) error {
	for i, id := range ids {
		if s, ok := m.skills[id]; ok {
			s.OrderIndex = i
		}
	}
	return nil
}

func newTestSkillService(t *testing.T) (*SkillService, *mockSkillRepo) {
	t.Helper()
	repo := newMockSkillRepo()
	return NewSkillService(repo, newTestCache(), newTestLogger()), repo
}

func TestSkillCreate_Success(t *testing.T) {
	svc, _ := newTestSkillService(t)

	skill, err := svc.Create(context.Background(), &model.Skill{
		Name:     "Go",
		Category: "Backend",
		Level:    80,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if skill.ID == "" {
		t.Error("expected skill to have an ID")
	}
}

func TestSkillCreate_MissingName(t *testing.T) {
	svc, _ := newTestSkillService(t)

	_, err := svc.Create(context.Background(), &model.Skill{Category: "Backend"})
	if !errors.Is(err, apperror.ErrValidation) {
		t.Errorf("error = %v, want ErrValidation", err)
	}
}

func TestSkillCreate_MissingCategory(t *testing.T) {
	svc, _ := newTestSkillService(t)

	_, err := svc.Create(context.Background(), &model.Skill{Name: "Go"})
	if !errors.Is(err, apperror.ErrValidation) {
		t.Errorf("error = %v, want ErrValidation", err)
	}
}

func TestSkillCreate_LevelOutOfRange(t *testing.T) {
	svc, _ := newTestSkillService(t)

	for _, level := range []int{-1, 101} {
		_, err := svc.Create(context.Background(), &model.Skill{
			Name:     "Go",
			Category: "Backend",
			Level:    level,
		})
		if !errors.Is(err, apperror.ErrValidation) {
			t.Errorf("level %d: error = %v, want ErrValidation", level, err)
		}
	}
}

func TestSkillUpdate_PartialLeavesOtherFields(t *testing.T) {
	svc, _ := newTestSkillService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &model.Skill{
		Name:     "Go",
		Category: "Backend",
		Level:    70,
		Color:    "#00ADD8",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	level := 90
	updated, err := svc.Update(ctx, created.ID, &model.SkillUpdate{Level: &level})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if updated.Level != 90 {
		t.Errorf("Level = %d, want 90", updated.Level)
	}
	if updated.Name != "Go" {
		t.Errorf("Name = %q, want untouched %q", updated.Name, "Go")
	}
	if updated.Color != "#00ADD8" {
		t.Errorf("Color = %q, want untouched %q", updated.Color, "#00ADD8")
	}
}

func TestSkillUpdate_NotFound(t *testing.T) {
	svc, _ := newTestSkillService(t)

	name := "whatever"
	_, err := svc.Update(context.Background(), "nonexistent", &model.SkillUpdate{Name: &name})
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestSkillDelete_NotFound(t *testing.T) {
	svc, _ := newTestSkillService(t)

	err := svc.Delete(context.Background(), "nonexistent")
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestSkillReorder_AssignsPositions(t *testing.T) {
	svc, repo := newTestSkillService(t)
	ctx := context.Background()

	a, _ := svc.Create(ctx, &model.Skill{Name: "A", Category: "c"})
	b, _ := svc.Create(ctx, &model.Skill{Name: "B", Category: "c"})
	c, _ := svc.Create(ctx, &model.Skill{Name: "C", Category: "c"})

	if err := svc.Reorder(ctx, []string{c.ID, a.ID, b.ID}); err != nil {
		t.Fatalf("Reorder() error = %v", err)
	}

	want := map[string]int{c.ID: 0, a.ID: 1, b.ID: 2}
	for id, idx := range want {
		if got := repo.skills[id].OrderIndex; got != idx {
			t.Errorf("skill %s OrderIndex = %d, want %d", id, got, idx)
		}
	}
}

func TestSkillList_CacheInvalidatedOnMutation(t *testing.T) {
	svc, _ := newTestSkillService(t)
	ctx := context.Background()

	skills, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(skills) != 0 {
		t.Fatalf("List() returned %d skills, want 0", len(skills))
	}

	if _, err := svc.Create(ctx, &model.Skill{Name: "Go", Category: "Backend"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	skills, err = svc.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(skills) != 1 {
		t.Errorf("List() after create returned %d skills, want 1", len(skills))
	}
}
