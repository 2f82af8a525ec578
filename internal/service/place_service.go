package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/places-api/internal/domain"
	"github.com/phrazzld/places-api/internal/platform/blob"
	"github.com/phrazzld/places-api/internal/platform/geocode"
	"github.com/phrazzld/places-api/internal/platform/logger"
	"github.com/phrazzld/places-api/internal/store"
)

// PlaceService holds the create/update/delete lifecycle of a place together
// with the matching updates of its owner's owned-places relation. All
// cross-entity writes go through store.RunInTransaction so the place row
// and the membership row commit or roll back together.
type PlaceService interface {
	// CreatePlace resolves the address, then inserts the place and appends
	// it to the owner's owned-places inside one transaction.
	// The owner is the caller's verified identity, never request data.
	CreatePlace(ctx context.Context, ownerID uuid.UUID, in CreatePlaceInput) (*domain.Place, error)

	// UpdatePlace overwrites title and description of a place owned by the caller.
	UpdatePlace(ctx context.Context, placeID, callerID uuid.UUID, title, description string) (*domain.Place, error)

	// DeletePlace removes a place owned by the caller together with its
	// membership row, then releases the stored image best-effort.
	DeletePlace(ctx context.Context, placeID, callerID uuid.UUID) error

	// GetPlace returns a single place by ID.
	GetPlace(ctx context.Context, placeID uuid.UUID) (*domain.Place, error)

	// GetPlacesByOwner returns the places in the owner's owned-places
	// relation. An owner with no places is reported as ErrPlaceNotFound.
	GetPlacesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Place, error)

	// GetPlacesByCreator returns all places created by the given user.
	// An empty result is a valid empty slice, never an error.
	GetPlacesByCreator(ctx context.Context, creatorID uuid.UUID) ([]*domain.Place, error)
}

// CreatePlaceInput carries the caller-supplied fields for a new place.
type CreatePlaceInput struct {
	Title       string
	Description string
	Address     string
	ImageKey    string
}

// placeServiceImpl implements the PlaceService interface.
type placeServiceImpl struct {
	db         *sql.DB
	placeStore store.PlaceStore
	userStore  store.UserStore
	geocoder   geocode.Geocoder
	storage    blob.Storage
	logger     *slog.Logger
}

// NewPlaceService creates a new PlaceService.
// It returns an error if any of the required dependencies are nil.
func NewPlaceService(
	db *sql.DB,
	placeStore store.PlaceStore,
	userStore store.UserStore,
	geocoder geocode.Geocoder,
	storage blob.Storage,
	log *slog.Logger,
) (PlaceService, error) {
	if db == nil {
		return nil, fmt.Errorf("db cannot be nil")
	}
	if placeStore == nil {
		return nil, fmt.Errorf("placeStore cannot be nil")
	}
	if userStore == nil {
		return nil, fmt.Errorf("userStore cannot be nil")
	}
	if geocoder == nil {
		return nil, fmt.Errorf("geocoder cannot be nil")
	}
	if storage == nil {
		return nil, fmt.Errorf("storage cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &placeServiceImpl{
		db:         db,
		placeStore: placeStore,
		userStore:  userStore,
		geocoder:   geocoder,
		storage:    storage,
		logger:     log.With(slog.String("component", "place_service")),
	}, nil
}

// CreatePlace implements PlaceService.CreatePlace.
func (s *placeServiceImpl) CreatePlace(
	ctx context.Context,
	ownerID uuid.UUID,
	in CreatePlaceInput,
) (*domain.Place, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	location, err := s.geocoder.Resolve(ctx, in.Address)
	if err != nil {
		if errors.Is(err, geocode.ErrZeroResults) {
			log.Debug("address could not be resolved",
				slog.String("owner_id", ownerID.String()))
			s.releaseImage(ctx, in.ImageKey)
			return nil, fmt.Errorf("%w: %v", ErrLocationUnresolved, err)
		}
		log.Error("geocoding failed",
			slog.String("error", err.Error()),
			slog.String("owner_id", ownerID.String()))
		s.releaseImage(ctx, in.ImageKey)
		return nil, fmt.Errorf("failed to resolve address: %w", err)
	}

	place, err := domain.NewPlace(ownerID, in.Title, in.Description, in.Address, location, in.ImageKey)
	if err != nil {
		s.releaseImage(ctx, in.ImageKey)
		return nil, err
	}

	// The owner must exist before the transaction opens; a missing owner is
	// a 404-class failure, not a constraint violation surprise mid-commit.
	if _, err := s.userStore.GetByID(ctx, ownerID); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.releaseImage(ctx, in.ImageKey)
			return nil, ErrOwnerNotFound
		}
		s.releaseImage(ctx, in.ImageKey)
		return nil, fmt.Errorf("failed to load owner: %w", err)
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.placeStore.WithTx(tx).Create(ctx, place); err != nil {
			return err
		}
		return s.userStore.WithTx(tx).AppendPlace(ctx, ownerID, place.ID)
	})
	if err != nil {
		log.Error("create place transaction failed",
			slog.String("error", err.Error()),
			slog.String("place_id", place.ID.String()),
			slog.String("owner_id", ownerID.String()))
		s.releaseImage(ctx, in.ImageKey)
		return nil, fmt.Errorf("failed to create place: %w", err)
	}

	log.Info("place created",
		slog.String("place_id", place.ID.String()),
		slog.String("owner_id", ownerID.String()))
	return place, nil
}

// UpdatePlace implements PlaceService.UpdatePlace.
// The ownership guard runs before any field is mutated.
func (s *placeServiceImpl) UpdatePlace(
	ctx context.Context,
	placeID, callerID uuid.UUID,
	title, description string,
) (*domain.Place, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	place, err := s.placeStore.GetByID(ctx, placeID)
	if err != nil {
		if errors.Is(err, store.ErrPlaceNotFound) {
			return nil, ErrPlaceNotFound
		}
		return nil, fmt.Errorf("failed to load place: %w", err)
	}

	if err := guardOwner(place.OwnerID, callerID); err != nil {
		log.Debug("update denied: caller is not the owner",
			slog.String("place_id", placeID.String()),
			slog.String("caller_id", callerID.String()))
		return nil, err
	}

	if err := place.UpdateDetails(title, description); err != nil {
		return nil, err
	}

	// No cross-entity transaction: no relationship field changes here.
	if err := s.placeStore.Update(ctx, place); err != nil {
		if errors.Is(err, store.ErrPlaceNotFound) {
			return nil, ErrPlaceNotFound
		}
		return nil, fmt.Errorf("failed to update place: %w", err)
	}

	log.Info("place updated", slog.String("place_id", placeID.String()))
	return place, nil
}

// DeletePlace implements PlaceService.DeletePlace.
func (s *placeServiceImpl) DeletePlace(ctx context.Context, placeID, callerID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	place, err := s.placeStore.GetByID(ctx, placeID)
	if err != nil {
		if errors.Is(err, store.ErrPlaceNotFound) {
			return ErrPlaceNotFound
		}
		return fmt.Errorf("failed to load place: %w", err)
	}

	// Load the owner through the expanded relation; the guard still
	// compares plain uuid.UUID identities.
	owner, err := s.userStore.GetByID(ctx, place.OwnerID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return ErrOwnerNotFound
		}
		return fmt.Errorf("failed to load owner: %w", err)
	}

	if err := guardOwner(owner.ID, callerID); err != nil {
		log.Debug("delete denied: caller is not the owner",
			slog.String("place_id", placeID.String()),
			slog.String("caller_id", callerID.String()))
		return err
	}

	// The membership row references the place, so it must go first: the
	// foreign key on user_places.place_id is checked per statement.
	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.userStore.WithTx(tx).RemovePlace(ctx, owner.ID, placeID); err != nil {
			return err
		}
		return s.placeStore.WithTx(tx).Delete(ctx, placeID)
	})
	if err != nil {
		log.Error("delete place transaction failed",
			slog.String("error", err.Error()),
			slog.String("place_id", placeID.String()))
		return fmt.Errorf("failed to delete place: %w", err)
	}

	// The database delete is committed; releasing the image is a
	// compensating action that must never fail or reverse it.
	s.releaseImage(ctx, place.ImageKey)

	log.Info("place deleted",
		slog.String("place_id", placeID.String()),
		slog.String("owner_id", owner.ID.String()))
	return nil
}

// GetPlace implements PlaceService.GetPlace.
func (s *placeServiceImpl) GetPlace(ctx context.Context, placeID uuid.UUID) (*domain.Place, error) {
	place, err := s.placeStore.GetByID(ctx, placeID)
	if err != nil {
		if errors.Is(err, store.ErrPlaceNotFound) {
			return nil, ErrPlaceNotFound
		}
		return nil, fmt.Errorf("failed to load place: %w", err)
	}
	return place, nil
}

// GetPlacesByOwner implements PlaceService.GetPlacesByOwner.
func (s *placeServiceImpl) GetPlacesByOwner(
	ctx context.Context,
	ownerID uuid.UUID,
) ([]*domain.Place, error) {
	places, err := s.placeStore.GetByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, ErrOwnerNotFound
		}
		return nil, fmt.Errorf("failed to load places by owner: %w", err)
	}

	// Reading through the owner relation expects a populated relation;
	// an empty one is reported as not found, unlike the creator query.
	if len(places) == 0 {
		return nil, ErrPlaceNotFound
	}

	return places, nil
}

// GetPlacesByCreator implements PlaceService.GetPlacesByCreator.
func (s *placeServiceImpl) GetPlacesByCreator(
	ctx context.Context,
	creatorID uuid.UUID,
) ([]*domain.Place, error) {
	places, err := s.placeStore.GetByCreator(ctx, creatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load places by creator: %w", err)
	}
	return places, nil
}

// releaseImage deletes a stored image best-effort. Failures are logged and
// never propagated; external storage is outside the atomic boundary.
func (s *placeServiceImpl) releaseImage(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := s.storage.Delete(ctx, key); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Warn("failed to release stored image",
			slog.String("error", err.Error()),
			slog.String("image_key", key))
	}
}
