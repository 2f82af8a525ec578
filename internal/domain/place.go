package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common place validation errors. All wrap ErrValidation so the API layer
// can classify them without enumerating each sentinel.
var (
	ErrEmptyPlaceID        = fmt.Errorf("%w: place ID cannot be empty", ErrValidation)
	ErrEmptyTitle          = fmt.Errorf("%w: title cannot be empty", ErrValidation)
	ErrDescriptionTooShort = fmt.Errorf("%w: description must be at least 5 characters long", ErrValidation)
	ErrEmptyAddress        = fmt.Errorf("%w: address cannot be empty", ErrValidation)
	ErrEmptyOwnerID        = fmt.Errorf("%w: owner ID cannot be empty", ErrValidation)
)

// Location holds coordinates resolved from a place's address by the
// geocoding collaborator.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Place represents a location created by a user. Owner, address, location
// and image are fixed at creation; only title and description are mutable.
type Place struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Address     string    `json:"address"`
	Location    Location  `json:"location"`
	ImageKey    string    `json:"image"`
	OwnerID     uuid.UUID `json:"creator"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewPlace creates a new Place owned by the given user. The coordinates
// must already be resolved by the geocoding collaborator; NewPlace performs
// no lookups of its own. Returns an error if validation fails.
func NewPlace(
	ownerID uuid.UUID,
	title, description, address string,
	location Location,
	imageKey string,
) (*Place, error) {
	place := &Place{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Address:     address,
		Location:    location,
		ImageKey:    imageKey,
		OwnerID:     ownerID,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}

	if err := place.Validate(); err != nil {
		return nil, err
	}

	return place, nil
}

// Validate checks if the Place has valid data.
// Returns an error if any field fails validation.
func (p *Place) Validate() error {
	if p.ID == uuid.Nil {
		return ErrEmptyPlaceID
	}

	if strings.TrimSpace(p.Title) == "" {
		return ErrEmptyTitle
	}

	if len(p.Description) < 5 {
		return ErrDescriptionTooShort
	}

	if strings.TrimSpace(p.Address) == "" {
		return ErrEmptyAddress
	}

	if p.OwnerID == uuid.Nil {
		return ErrEmptyOwnerID
	}

	return nil
}

// UpdateDetails overwrites the mutable fields of the place. Address,
// location, image and owner are immutable after creation and are left
// untouched. Returns an error if the new values fail validation.
func (p *Place) UpdateDetails(title, description string) error {
	updated := *p
	updated.Title = title
	updated.Description = description

	if err := updated.Validate(); err != nil {
		return err
	}

	p.Title = title
	p.Description = description
	p.UpdatedAt = time.Now().UTC()
	return nil
}
