package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ShapeRecord is the persisted form of a gallery shape. The payload
// carries the kind-specific geometry (radius or width/height, plus
// color) as JSON so new shape kinds need no schema change.
type ShapeRecord struct {
	ID        uuid.UUID       `json:"id"`
	Kind      string          `json:"kind"`
	X         int             `json:"x"`
	Y         int             `json:"y"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

// Validate checks that the record has everything the store requires.
func (r *ShapeRecord) Validate() error {
	if r.ID == uuid.Nil {
		return ErrInvalidEntity
	}
	if r.Kind == "" {
		return ErrInvalidEntity
	}
	if len(r.Payload) == 0 {
		return ErrInvalidEntity
	}
	return nil
}

// ShapeStore defines persistence operations for the shape gallery.
type ShapeStore interface {
	// Save inserts a shape record.
	Save(ctx context.Context, record *ShapeRecord) error

	// List returns every record in insertion order.
	List(ctx context.Context) ([]*ShapeRecord, error)

	// Get returns the record with the given ID.
	// Returns ErrShapeNotFound if it does not exist.
	Get(ctx context.Context, id uuid.UUID) (*ShapeRecord, error)

	// Delete removes the record with the given ID.
	// Returns ErrShapeNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteAll clears the gallery and returns the number of records
	// removed.
	DeleteAll(ctx context.Context) (int64, error)
}
