package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Scramble represents a saved scramble in the database.
type Scramble struct {
	ScrambleID string
	CreatedAt  time.Time
	Length     int
	Seed       *int64
	Sequence   string
	Notes      *string
}

// ScrambleRepository provides CRUD operations for scrambles.
type ScrambleRepository struct {
	db *DB
}

// NewScrambleRepository creates a new scramble repository.
func NewScrambleRepository(db *DB) *ScrambleRepository {
	return &ScrambleRepository{db: db}
}

// Save stores a scramble and returns its ID. Seed 0 is stored as NULL
// (a time-seeded scramble has no reproducible seed worth keeping).
func (r *ScrambleRepository) Save(sequence string, length int, seed int64, notes string) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	var seedPtr *int64
	if seed != 0 {
		seedPtr = &seed
	}
	var notesPtr *string
	if notes != "" {
		notesPtr = &notes
	}

	_, err := r.db.Exec(`
		INSERT INTO scrambles (scramble_id, created_at, length, seed, sequence, notes)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, createdAt.Format(time.RFC3339), length, seedPtr, sequence, notesPtr)

	if err != nil {
		return "", fmt.Errorf("failed to save scramble: %w", err)
	}

	return id, nil
}

// List returns the most recent scrambles, newest first.
func (r *ScrambleRepository) List(limit int) ([]Scramble, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := r.db.Query(`
		SELECT scramble_id, created_at, length, seed, sequence, notes
		FROM scrambles
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list scrambles: %w", err)
	}
	defer rows.Close()

	var scrambles []Scramble
	for rows.Next() {
		var s Scramble
		var createdAt string
		if err := rows.Scan(&s.ScrambleID, &createdAt, &s.Length, &s.Seed, &s.Sequence, &s.Notes); err != nil {
			return nil, fmt.Errorf("failed to scan scramble: %w", err)
		}
		s.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse scramble timestamp: %w", err)
		}
		scrambles = append(scrambles, s)
	}

	return scrambles, rows.Err()
}

// Get returns a single scramble by ID.
func (r *ScrambleRepository) Get(id string) (*Scramble, error) {
	var s Scramble
	var createdAt string
	err := r.db.QueryRow(`
		SELECT scramble_id, created_at, length, seed, sequence, notes
		FROM scrambles
		WHERE scramble_id = ?
	`, id).Scan(&s.ScrambleID, &createdAt, &s.Length, &s.Seed, &s.Sequence, &s.Notes)
	if err != nil {
		return nil, fmt.Errorf("failed to get scramble: %w", err)
	}

	s.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse scramble timestamp: %w", err)
	}

	return &s, nil
}
