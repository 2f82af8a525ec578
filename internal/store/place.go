package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/places-api/internal/domain"
)

// PlaceStore defines the interface for place data persistence.
type PlaceStore interface {
	// Create inserts a new place. It does not touch the owner's
	// owned-places relation; the service layer is responsible for doing
	// that inside the same transaction.
	Create(ctx context.Context, place *domain.Place) error

	// GetByID retrieves a place by its unique ID.
	// Returns ErrPlaceNotFound if the place does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Place, error)

	// GetByOwner retrieves the places referenced by the user's owned-places
	// relation, in insertion order.
	// Returns ErrUserNotFound if the user does not exist.
	GetByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Place, error)

	// GetByCreator retrieves all places whose creator column matches the
	// given user ID. An empty result is not an error.
	GetByCreator(ctx context.Context, creatorID uuid.UUID) ([]*domain.Place, error)

	// Update overwrites the mutable fields (title, description) of an
	// existing place. Owner, address, location and image are never updated.
	// Returns ErrPlaceNotFound if the place does not exist.
	Update(ctx context.Context, place *domain.Place) error

	// Delete removes a place row. It does not touch the owner's
	// owned-places relation; the service layer removes the membership in
	// the same transaction.
	// Returns ErrPlaceNotFound if the place does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new PlaceStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) PlaceStore
}
