package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/delega-dev/delega/pkg/models"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := db.Migrate(); err != nil {
		t.Fatalf("Migrate failed: %v", err)
	}
	return db
}

func TestOpenCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "history.db")
	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()

	if db.Path() != path {
		t.Errorf("Path = %q, want %q", db.Path(), path)
	}
}

func TestMigrateIdempotent(t *testing.T) {
	db := openTestDB(t)
	if err := db.Migrate(); err != nil {
		t.Fatalf("Second Migrate failed: %v", err)
	}
}

func TestSaveAndGetRun(t *testing.T) {
	db := openTestDB(t)

	started := time.Now().UTC().Truncate(time.Second)
	rec := &models.RunRecord{
		ID:        "run-1",
		Goal:      "launch a product",
		Model:     "claude-sonnet-4-20250514",
		Status:    models.RunStatusRunning,
		StartedAt: started,
	}
	if err := db.SaveRun(rec); err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}

	got, err := db.GetRun("run-1")
	if err != nil {
		t.Fatalf("GetRun failed: %v", err)
	}
	if got == nil {
		t.Fatal("GetRun returned nil for existing run")
	}
	if got.Goal != "launch a product" {
		t.Errorf("Goal = %q, want %q", got.Goal, "launch a product")
	}
	if got.Status != models.RunStatusRunning {
		t.Errorf("Status = %q, want running", got.Status)
	}
	if got.CompletedAt != nil {
		t.Errorf("CompletedAt = %v, want nil for a running run", got.CompletedAt)
	}
}

func TestSaveRunUpdatesExisting(t *testing.T) {
	db := openTestDB(t)

	rec := &models.RunRecord{
		ID:        "run-1",
		Goal:      "launch a product",
		Status:    models.RunStatusRunning,
		StartedAt: time.Now().UTC(),
	}
	if err := db.SaveRun(rec); err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}

	done := time.Now().UTC().Truncate(time.Second)
	rec.Status = models.RunStatusDone
	rec.ResultJSON = `{"Research":"stats"}`
	rec.CompletedAt = &done
	if err := db.SaveRun(rec); err != nil {
		t.Fatalf("SaveRun update failed: %v", err)
	}

	got, err := db.GetRun("run-1")
	if err != nil {
		t.Fatalf("GetRun failed: %v", err)
	}
	if got.Status != models.RunStatusDone {
		t.Errorf("Status = %q, want done", got.Status)
	}
	if got.ResultJSON != `{"Research":"stats"}` {
		t.Errorf("ResultJSON = %q", got.ResultJSON)
	}
	if got.CompletedAt == nil {
		t.Error("CompletedAt should be set after update")
	}

	runs, err := db.ListRuns(0)
	if err != nil {
		t.Fatalf("ListRuns failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("ListRuns returned %d records, want 1 (upsert, not insert)", len(runs))
	}
}

func TestGetRunMissing(t *testing.T) {
	db := openTestDB(t)

	got, err := db.GetRun("nope")
	if err != nil {
		t.Fatalf("GetRun failed: %v", err)
	}
	if got != nil {
		t.Errorf("GetRun = %+v, want nil for missing run", got)
	}
}

func TestListRunsNewestFirst(t *testing.T) {
	db := openTestDB(t)

	base := time.Now().UTC().Add(-time.Hour)
	for i, id := range []string{"old", "mid", "new"} {
		rec := &models.RunRecord{
			ID:        id,
			Goal:      "goal " + id,
			Status:    models.RunStatusDone,
			StartedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := db.SaveRun(rec); err != nil {
			t.Fatalf("SaveRun(%s) failed: %v", id, err)
		}
	}

	runs, err := db.ListRuns(0)
	if err != nil {
		t.Fatalf("ListRuns failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("ListRuns returned %d records, want 3", len(runs))
	}
	if runs[0].ID != "new" || runs[2].ID != "old" {
		t.Errorf("Order = [%s %s %s], want newest first", runs[0].ID, runs[1].ID, runs[2].ID)
	}

	limited, err := db.ListRuns(2)
	if err != nil {
		t.Fatalf("ListRuns(2) failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("ListRuns(2) returned %d records, want 2", len(limited))
	}
	if limited[0].ID != "new" {
		t.Errorf("Limited list starts with %s, want new", limited[0].ID)
	}
}
