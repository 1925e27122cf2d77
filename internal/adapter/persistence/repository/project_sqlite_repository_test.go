package repository

import (
	"context"
	"testing"
	"time"

	"renohub/internal/domain/entities"
	"renohub/internal/infrastructure/database"
)

func newSQLiteRepo(t *testing.T) *ProjectSQLiteRepository {
	t.Helper()
	db, err := database.OpenSQLite(t.TempDir() + "/projects.db")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	repo, err := NewProjectSQLiteRepository(db)
	if err != nil {
		t.Fatalf("create repository: %v", err)
	}
	return repo
}

func sampleProject(id, userID string, createdAt time.Time) entities.ProjectRecord {
	return entities.ProjectRecord{
		ID:         id,
		TemplateID: "deck-refresh",
		FormData:   map[string]any{"deckLength": 20.0},
		Estimate:   entities.Estimate{TemplateID: "deck-refresh", Total: 1275},
		UserID:     userID,
		Status:     entities.ProjectStatusPending,
		CreatedAt:  createdAt,
		UpdatedAt:  createdAt,
	}
}

func TestProjectSQLiteRepository_CreateAndGet(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()

	p := sampleProject("p-1", "user-1", time.Now().UTC())
	if _, err := repo.Create(ctx, p); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByID(ctx, "p-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != "p-1" || got.TemplateID != "deck-refresh" || got.Estimate.Total != 1275 {
		t.Fatalf("unexpected record: %+v", got)
	}

	// Unknown id yields a zero record, not an error.
	missing, err := repo.GetByID(ctx, "nope")
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing.ID != "" {
		t.Fatalf("expected a zero record, got %+v", missing)
	}
}

func TestProjectSQLiteRepository_DuplicateCreateFails(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()

	p := sampleProject("p-1", "user-1", time.Now().UTC())
	if _, err := repo.Create(ctx, p); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := repo.Create(ctx, p); err == nil {
		t.Fatal("expected duplicate insert to fail")
	}
}

func TestProjectSQLiteRepository_Update(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()

	p := sampleProject("p-1", "user-1", time.Now().UTC())
	if _, err := repo.Create(ctx, p); err != nil {
		t.Fatalf("create: %v", err)
	}

	p.Status = entities.ProjectStatusContractorSelected
	p.UpdatedAt = time.Now().UTC()
	if _, err := repo.Update(ctx, p); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := repo.GetByID(ctx, "p-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != entities.ProjectStatusContractorSelected {
		t.Fatalf("expected contractor-selected, got %q", got.Status)
	}

	// Updating a missing record yields a zero record, not an error.
	missing := sampleProject("nope", "user-1", time.Now().UTC())
	got, err = repo.Update(ctx, missing)
	if err != nil {
		t.Fatalf("update missing: %v", err)
	}
	if got.ID != "" {
		t.Fatalf("expected a zero record, got %+v", got)
	}
}

func TestProjectSQLiteRepository_FindByUser(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	for i, id := range []string{"p-1", "p-2", "p-3"} {
		userID := "user-1"
		if id == "p-3" {
			userID = "user-2"
		}
		p := sampleProject(id, userID, base.Add(time.Duration(i)*time.Hour))
		if _, err := repo.Create(ctx, p); err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
	}

	got, err := repo.FindByUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	// Newest first.
	if got[0].ID != "p-2" || got[1].ID != "p-1" {
		t.Fatalf("expected newest-first order, got %v, %v", got[0].ID, got[1].ID)
	}

	empty, err := repo.FindByUser(ctx, "user-99")
	if err != nil {
		t.Fatalf("find empty: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Fatalf("expected an empty slice, got %v", empty)
	}
}
