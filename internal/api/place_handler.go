package api

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/places-api/internal/api/shared"
	"github.com/phrazzld/places-api/internal/service"
)

// PlaceHandler handles place API requests.
type PlaceHandler struct {
	placeService service.PlaceService
	validator    *validator.Validate
}

// NewPlaceHandler creates a new PlaceHandler with the given dependencies.
func NewPlaceHandler(placeService service.PlaceService) *PlaceHandler {
	return &PlaceHandler{
		placeService: placeService,
		validator:    validator.New(),
	}
}

// GetPlace handles GET /places/{placeID}.
func (h *PlaceHandler) GetPlace(w http.ResponseWriter, r *http.Request) {
	placeID, err := getPathUUID(r, "placeID")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	place, err := h.placeService.GetPlace(r.Context(), placeID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, PlaceResponse{Place: place})
}

// GetPlacesByOwner handles GET /places/owner/{userID}. It reads the owner's
// owned-places relation; an owner with no places is reported as not found.
func (h *PlaceHandler) GetPlacesByOwner(w http.ResponseWriter, r *http.Request) {
	ownerID, err := getPathUUID(r, "userID")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	places, err := h.placeService.GetPlacesByOwner(r.Context(), ownerID)
	if err != nil {
		msg := ""
		if errors.Is(err, service.ErrPlaceNotFound) || errors.Is(err, service.ErrOwnerNotFound) {
			msg = "Could not find places for the provided user id"
		}
		HandleAPIError(w, r, err, msg)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, PlacesResponse{Places: places})
}

// GetPlacesByCreator handles GET /places/user/{userID}. Unlike the owner
// relation read, an empty result is a valid empty list.
func (h *PlaceHandler) GetPlacesByCreator(w http.ResponseWriter, r *http.Request) {
	creatorID, err := getPathUUID(r, "userID")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	places, err := h.placeService.GetPlacesByCreator(r.Context(), creatorID)
	if err != nil {
		HandleAPIError(w, r, err, "Fetching places failed, please try again later")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, PlacesResponse{Places: places})
}

// CreatePlace handles POST /places. The owner is always the authenticated
// caller; any creator field in the body is ignored.
func (h *PlaceHandler) CreatePlace(w http.ResponseWriter, r *http.Request) {
	callerID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req CreatePlaceRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity,
			"Invalid inputs passed, please check your data")
		return
	}

	place, err := h.placeService.CreatePlace(r.Context(), callerID, service.CreatePlaceInput{
		Title:       req.Title,
		Description: req.Description,
		Address:     req.Address,
		ImageKey:    req.Image,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, PlaceResponse{Place: place})
}

// UpdatePlace handles PATCH /places/{placeID}.
func (h *PlaceHandler) UpdatePlace(w http.ResponseWriter, r *http.Request) {
	callerID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	placeID, err := getPathUUID(r, "placeID")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req UpdatePlaceRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity,
			"Invalid inputs passed, please check your data")
		return
	}

	place, err := h.placeService.UpdatePlace(r.Context(), placeID, callerID, req.Title, req.Description)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, PlaceResponse{Place: place})
}

// DeletePlace handles DELETE /places/{placeID}.
func (h *PlaceHandler) DeletePlace(w http.ResponseWriter, r *http.Request) {
	callerID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	placeID, err := getPathUUID(r, "placeID")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.placeService.DeletePlace(r.Context(), placeID, callerID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "Deleted place."})
}
