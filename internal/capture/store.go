// Package capture implements the SQLite-backed log of transform
// applications. Each recorded sample stores the frame pair and the input
// and output coordinates of one Apply call, so sampled conversions are
// auditable after the fact.
// See docs/ARCHITECTURE.md § Capture Store.
package capture

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// dbFileName is the SQLite database file created inside DataDir.
const dbFileName = "captures.db"

// Sample is one recorded transform application.
type Sample struct {
	CaptureID string    // UUID v7, generated on record.
	FromFrame string    // Display name of the source frame.
	ToFrame   string    // Display name of the destination frame.
	InX       float64   // Input point, source frame.
	InY       float64
	InZ       float64
	OutX      float64 // Output point, destination frame.
	OutY      float64
	OutZ      float64
	CreatedAt time.Time // Timestamp of the record.
}

// Store is a SQLite-backed capture log with an Attach/Detach lifecycle.
type Store struct {
	mu       sync.RWMutex
	attached bool
	config   Config
	db       *sql.DB
}

// NewStore creates a new Store. The store is not attached; call Attach
// with a Config to open the database.
func NewStore() *Store {
	return &Store{}
}

// Attach opens the capture database under config.DataDir, creating the
// directory and schema if needed. Returns ErrAlreadyAttached if the store
// is already attached.
func (s *Store) Attach(config Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attached {
		return ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(config.DataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(config.DataDir, dbFileName)
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("apply schema: %w", err)
		}
	}

	s.db = db
	s.config = config
	s.attached = true
	return nil
}

// Detach closes the database. After Detach, Record and List return
// ErrStoreDetached. Detach is idempotent.
func (s *Store) Detach() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return nil
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return err
		}
		s.db = nil
	}

	s.attached = false
	return nil
}

// Record inserts a sample into the capture log. The CaptureID and CreatedAt
// fields are assigned by the store; values supplied by the caller are
// ignored. Returns the assigned capture ID.
func (s *Store) Record(sample Sample) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return "", ErrStoreDetached
	}

	sample.CaptureID = generateUUID()
	sample.CreatedAt = time.Now().UTC()

	_, err := s.db.Exec(
		`INSERT INTO captures
		 (capture_id, from_frame, to_frame, in_x, in_y, in_z, out_x, out_y, out_z, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sample.CaptureID, sample.FromFrame, sample.ToFrame,
		sample.InX, sample.InY, sample.InZ,
		sample.OutX, sample.OutY, sample.OutZ,
		sample.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("insert capture: %w", err)
	}
	return sample.CaptureID, nil
}

// List returns all recorded samples in insertion-time order.
func (s *Store) List() ([]Sample, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, ErrStoreDetached
	}

	rows, err := s.db.Query(
		`SELECT capture_id, from_frame, to_frame,
		        in_x, in_y, in_z, out_x, out_y, out_z, created_at
		 FROM captures ORDER BY created_at, capture_id`)
	if err != nil {
		return nil, fmt.Errorf("query captures: %w", err)
	}
	defer rows.Close()

	var samples []Sample
	for rows.Next() {
		var sample Sample
		var createdAt string
		if err := rows.Scan(
			&sample.CaptureID, &sample.FromFrame, &sample.ToFrame,
			&sample.InX, &sample.InY, &sample.InZ,
			&sample.OutX, &sample.OutY, &sample.OutZ, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan capture: %w", err)
		}
		ts, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse capture timestamp: %w", err)
		}
		sample.CreatedAt = ts
		samples = append(samples, sample)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate captures: %w", err)
	}
	return samples, nil
}

// generateUUID generates a new UUID v7 for capture IDs.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
