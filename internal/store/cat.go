package store

import (
	"context"
	"time"

	"github.com/BennoAlif/cats-social/internal/domain"
)

// CatRecord identifies a stored cat row: the generated id and the
// creation timestamp assigned by the store.
type CatRecord struct {
	ID        int32
	CreatedAt time.Time
}

// CatStore defines the persistence operations for cat listings.
// Each operation is a single parameterized statement; callers that need
// check-then-act semantics (update, delete) perform the existence check
// themselves via GetByID.
type CatStore interface {
	// Create inserts a new cat and returns its generated id and
	// creation timestamp.
	Create(ctx context.Context, cat *domain.Cat) (CatRecord, error)

	// List returns the cats matching the filter, newest first, bounded
	// by the filter's limit and offset. The callerID backs the filter's
	// owned predicate. Zero matches yield an empty slice.
	List(ctx context.Context, filter domain.CatFilter, callerID int32) ([]domain.Cat, error)

	// GetByID retrieves a single cat. Returns ErrCatNotFound if absent.
	GetByID(ctx context.Context, id int32) (*domain.Cat, error)

	// Update replaces all mutable fields of the cat with the given id.
	// Returns ErrCatNotFound if the id is absent.
	Update(ctx context.Context, id int32, cat *domain.Cat) (CatRecord, error)

	// Delete removes the cat with the given id. Deleting an absent id
	// affects zero rows and is not an error at this layer.
	Delete(ctx context.Context, id int32) error
}
