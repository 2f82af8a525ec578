package api

import (
	"net/http"

	"github.com/phrazzld/places-api/internal/api/shared"
	"github.com/phrazzld/places-api/internal/store"
)

// UserHandler handles user listing API requests.
type UserHandler struct {
	userStore store.UserStore
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(userStore store.UserStore) *UserHandler {
	return &UserHandler{userStore: userStore}
}

// ListUsers handles the GET /users endpoint. Password hashes are never
// serialized; the domain type excludes them from JSON.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userStore.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Fetching users failed, please try again later")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, UsersResponse{Users: users})
}
