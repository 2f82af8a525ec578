package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/places-api/internal/domain"
	"github.com/phrazzld/places-api/internal/platform/logger"
	"github.com/phrazzld/places-api/internal/store"
)

// PostgresPlaceStore implements the store.PlaceStore interface
// using a PostgreSQL database as the storage backend.
type PostgresPlaceStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresPlaceStore creates a new PostgreSQL implementation of the PlaceStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresPlaceStore(db store.DBTX, logger *slog.Logger) *PostgresPlaceStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresPlaceStore{
		db:     db,
		logger: logger.With(slog.String("component", "place_store")),
	}
}

// Ensure PostgresPlaceStore implements store.PlaceStore interface
var _ store.PlaceStore = (*PostgresPlaceStore)(nil)

// WithTx returns a new PlaceStore that runs against the given transaction.
func (s *PostgresPlaceStore) WithTx(tx *sql.Tx) store.PlaceStore {
	return &PostgresPlaceStore{
		db:     tx,
		logger: s.logger,
	}
}

const placeColumns = `id, title, description, address, latitude, longitude, image_key, owner_id, created_at, updated_at`

// scanPlace scans a single place row in placeColumns order.
func scanPlace(row interface{ Scan(dest ...any) error }) (*domain.Place, error) {
	var place domain.Place
	err := row.Scan(
		&place.ID,
		&place.Title,
		&place.Description,
		&place.Address,
		&place.Location.Lat,
		&place.Location.Lng,
		&place.ImageKey,
		&place.OwnerID,
		&place.CreatedAt,
		&place.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &place, nil
}

// Create implements store.PlaceStore.Create
// Returns store.ErrInvalidEntity if the owner does not exist (foreign key violation).
func (s *PostgresPlaceStore) Create(ctx context.Context, place *domain.Place) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := place.Validate(); err != nil {
		log.Warn("place validation failed during create",
			slog.String("error", err.Error()),
			slog.String("place_id", place.ID.String()))
		return err
	}

	query := `
		INSERT INTO places (` + placeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		place.ID,
		place.Title,
		place.Description,
		place.Address,
		place.Location.Lat,
		place.Location.Lng,
		place.ImageKey,
		place.OwnerID,
		place.CreatedAt,
		place.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode {
			log.Warn("foreign key violation during place creation",
				slog.String("error", err.Error()),
				slog.String("place_id", place.ID.String()),
				slog.String("owner_id", place.OwnerID.String()))
			return fmt.Errorf("%w: user with ID %s not found",
				store.ErrInvalidEntity, place.OwnerID)
		}

		log.Error("failed to create place",
			slog.String("error", err.Error()),
			slog.String("place_id", place.ID.String()),
			slog.String("owner_id", place.OwnerID.String()))
		return MapError(err)
	}

	log.Info("place created successfully",
		slog.String("place_id", place.ID.String()),
		slog.String("owner_id", place.OwnerID.String()))
	return nil
}

// GetByID implements store.PlaceStore.GetByID
// Returns store.ErrPlaceNotFound if the place does not exist.
func (s *PostgresPlaceStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Place, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT ` + placeColumns + `
		FROM places
		WHERE id = $1
	`

	place, err := scanPlace(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("place not found", slog.String("place_id", id.String()))
			return nil, store.ErrPlaceNotFound
		}
		log.Error("failed to get place by ID",
			slog.String("error", err.Error()),
			slog.String("place_id", id.String()))
		return nil, MapError(err)
	}

	return place, nil
}

// GetByOwner implements store.PlaceStore.GetByOwner
// It resolves places through the owner's owned-places relation, preserving
// insertion order. Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresPlaceStore) GetByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Place, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// The relation is only meaningful for an existing user; distinguish
	// "unknown user" from "user with no places".
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, ownerID).Scan(&exists)
	if err != nil {
		log.Error("failed to check user existence",
			slog.String("error", err.Error()),
			slog.String("owner_id", ownerID.String()))
		return nil, MapError(err)
	}
	if !exists {
		return nil, store.ErrUserNotFound
	}

	query := `
		SELECT p.id, p.title, p.description, p.address, p.latitude, p.longitude,
		       p.image_key, p.owner_id, p.created_at, p.updated_at
		FROM user_places up
		JOIN places p ON p.id = up.place_id
		WHERE up.user_id = $1
		ORDER BY up.position
	`

	return s.queryPlaces(ctx, query, ownerID)
}

// GetByCreator implements store.PlaceStore.GetByCreator
// An empty result is returned as an empty slice, not an error.
func (s *PostgresPlaceStore) GetByCreator(ctx context.Context, creatorID uuid.UUID) ([]*domain.Place, error) {
	query := `
		SELECT ` + placeColumns + `
		FROM places
		WHERE owner_id = $1
		ORDER BY created_at
	`

	return s.queryPlaces(ctx, query, creatorID)
}

// Update implements store.PlaceStore.Update
// Only title, description and updated_at are written; the other columns are
// immutable after creation.
// Returns store.ErrPlaceNotFound if the place does not exist.
func (s *PostgresPlaceStore) Update(ctx context.Context, place *domain.Place) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := place.Validate(); err != nil {
		log.Warn("place validation failed during update",
			slog.String("error", err.Error()),
			slog.String("place_id", place.ID.String()))
		return err
	}

	place.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE places
		SET title = $1, description = $2, updated_at = $3
		WHERE id = $4
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		place.Title,
		place.Description,
		place.UpdatedAt,
		place.ID,
	)
	if err != nil {
		log.Error("failed to update place",
			slog.String("error", err.Error()),
			slog.String("place_id", place.ID.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "place"); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.ErrPlaceNotFound
		}
		return err
	}

	log.Info("place updated successfully",
		slog.String("place_id", place.ID.String()))
	return nil
}

// Delete implements store.PlaceStore.Delete
// Returns store.ErrPlaceNotFound if the place does not exist.
func (s *PostgresPlaceStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM places
		WHERE id = $1
	`
	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete place",
			slog.String("error", err.Error()),
			slog.String("place_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "place"); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.ErrPlaceNotFound
		}
		return err
	}

	log.Info("place deleted successfully",
		slog.String("place_id", id.String()))
	return nil
}

// queryPlaces runs a multi-row place query and scans the results.
func (s *PostgresPlaceStore) queryPlaces(
	ctx context.Context,
	query string,
	args ...any,
) ([]*domain.Place, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query places", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	places := []*domain.Place{}
	for rows.Next() {
		place, err := scanPlace(rows)
		if err != nil {
			log.Error("failed to scan place row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		places = append(places, place)
	}

	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return places, nil
}
