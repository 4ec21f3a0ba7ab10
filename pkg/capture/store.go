// Package capture provides the public API for the capture log backend.
// It exposes the Store interface and factory function while keeping
// implementation details internal.
// See docs/ARCHITECTURE.md § Capture Store.
package capture

import (
	"github.com/mesh-intelligence/framekit/internal/capture"
)

// Config holds parameters for Store.Attach.
type Config = capture.Config

// Sample is one recorded transform application.
type Sample = capture.Sample

// Store is a capture log with an Attach/Detach lifecycle.
type Store interface {
	// Attach opens the capture database under config.DataDir.
	Attach(config Config) error
	// Detach closes the database. Idempotent.
	Detach() error
	// Record inserts a sample and returns the assigned capture ID.
	Record(sample Sample) (string, error)
	// List returns all recorded samples in insertion-time order.
	List() ([]Sample, error)
}

// NewStore creates a new capture store. The store is not attached; call
// Attach with a Config to open the database.
//
// Example:
//
//	store := capture.NewStore()
//	err := store.Attach(capture.Config{DataDir: ".framekit-db"})
//	defer store.Detach()
func NewStore() Store {
	return capture.NewStore()
}
