package api

import (
	"github.com/google/uuid"
	"github.com/phrazzld/places-api/internal/domain"
)

// Common request/response structures

// SignupRequest defines the payload for the user signup endpoint.
type SignupRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Image    string `json:"image"    validate:"required"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	// UserID is the unique identifier for the authenticated user
	UserID uuid.UUID `json:"user_id"`

	// Email is the authenticated user's email address
	Email string `json:"email"`

	// Token is the JWT used for API authorization
	Token string `json:"token"`
}

// CreatePlaceRequest defines the payload for creating a place. The owner is
// taken from the verified token, never from the request body.
type CreatePlaceRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required,min=5"`
	Address     string `json:"address"     validate:"required"`
	Image       string `json:"image"       validate:"required"`
}

// UpdatePlaceRequest defines the payload for updating a place's mutable fields.
type UpdatePlaceRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required,min=5"`
}

// PlaceResponse wraps a single place.
type PlaceResponse struct {
	Place *domain.Place `json:"place"`
}

// PlacesResponse wraps a list of places.
type PlacesResponse struct {
	Places []*domain.Place `json:"places"`
}

// UsersResponse wraps a list of users.
type UsersResponse struct {
	Users []*domain.User `json:"users"`
}

// UploadResponse carries the object key of a stored image.
type UploadResponse struct {
	Key string `json:"key"`
}

// MessageResponse carries a confirmation message with no entity body.
type MessageResponse struct {
	Message string `json:"message"`
}
