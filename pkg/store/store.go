// Package store persists scored solutions so the server can list,
// fetch and re-render past optimization runs.
//
// Backends:
//   - memory: in-process storage for development and tests
//   - mongo: MongoDB-backed storage for deployments
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/darkstore/rackplan/pkg/plan"
)

// Record is one persisted optimization run.
type Record struct {
	ID        string        `json:"id" bson:"_id"`
	Name      string        `json:"name" bson:"name"`
	Document  plan.Document `json:"document" bson:"document"`
	CreatedAt time.Time     `json:"created_at" bson:"created_at"`
}

// NewRecord wraps a solution document with a fresh identity.
func NewRecord(name string, doc plan.Document) Record {
	return Record{
		ID:        uuid.NewString(),
		Name:      name,
		Document:  doc,
		CreatedAt: time.Now().UTC(),
	}
}

// SolutionStore is the persistence backend for solution records.
type SolutionStore interface {
	// Put stores a record, overwriting any record with the same ID.
	Put(ctx context.Context, rec Record) error

	// Get retrieves a record by ID. Missing records return a
	// SOLUTION_NOT_FOUND error.
	Get(ctx context.Context, id string) (Record, error)

	// List returns all records, newest first.
	List(ctx context.Context) ([]Record, error)

	// Delete removes a record by ID. Missing records return a
	// SOLUTION_NOT_FOUND error.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}
