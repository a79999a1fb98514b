package storage

import (
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "cubie.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpenAppliesMigrations(t *testing.T) {
	db := openTestDB(t)

	version, err := db.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion: %v", err)
	}
	if version != 1 {
		t.Errorf("schema version = %d, want 1", version)
	}
}

func TestSaveAndListScrambles(t *testing.T) {
	db := openTestDB(t)
	repo := NewScrambleRepository(db)

	id, err := repo.Save("R U R' U'", 4, 42, "test scramble")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if id == "" {
		t.Fatal("Save returned an empty id")
	}

	scrambles, err := repo.List(10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(scrambles) != 1 {
		t.Fatalf("List returned %d scrambles, want 1", len(scrambles))
	}

	s := scrambles[0]
	if s.ScrambleID != id {
		t.Errorf("id = %q, want %q", s.ScrambleID, id)
	}
	if s.Sequence != "R U R' U'" {
		t.Errorf("sequence = %q", s.Sequence)
	}
	if s.Length != 4 {
		t.Errorf("length = %d, want 4", s.Length)
	}
	if s.Seed == nil || *s.Seed != 42 {
		t.Errorf("seed = %v, want 42", s.Seed)
	}
	if s.Notes == nil || *s.Notes != "test scramble" {
		t.Errorf("notes = %v", s.Notes)
	}
}

func TestSaveWithoutSeedStoresNull(t *testing.T) {
	db := openTestDB(t)
	repo := NewScrambleRepository(db)

	id, err := repo.Save("F2 B2", 2, 0, "")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	s, err := repo.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if s.Seed != nil {
		t.Errorf("seed = %v, want nil", s.Seed)
	}
	if s.Notes != nil {
		t.Errorf("notes = %v, want nil", s.Notes)
	}
}

func TestListLimit(t *testing.T) {
	db := openTestDB(t)
	repo := NewScrambleRepository(db)

	for i := 0; i < 5; i++ {
		if _, err := repo.Save("R", 1, int64(i+1), ""); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	scrambles, err := repo.List(3)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(scrambles) != 3 {
		t.Errorf("List(3) returned %d scrambles", len(scrambles))
	}
}
