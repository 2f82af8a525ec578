package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/places-api/internal/domain"
)

// UserStore defines the interface for user data persistence, including the
// owned-places membership relation. Membership rows are only written inside
// a place create/delete transaction; callers obtain a transactional store
// through WithTx.
type UserStore interface {
	// Create saves a new user to the store.
	// The user must already carry a hashed password.
	// Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID, including the ordered
	// IDs of the places they own.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// List returns all users without credential material.
	List(ctx context.Context) ([]*domain.User, error)

	// AppendPlace appends a place ID to the user's owned-places sequence.
	// It must only be called inside the transaction that inserts the place.
	AppendPlace(ctx context.Context, userID, placeID uuid.UUID) error

	// RemovePlace removes a place ID from the user's owned-places sequence.
	// It must only be called inside the transaction that deletes the place.
	// Returns ErrNotFound if the membership row does not exist.
	RemovePlace(ctx context.Context, userID, placeID uuid.UUID) error

	// WithTx returns a new UserStore instance that uses the provided transaction.
	// This allows multiple operations to be executed within a single transaction.
	// The transaction is created and managed by the caller (typically a service).
	WithTx(tx *sql.Tx) UserStore
}
