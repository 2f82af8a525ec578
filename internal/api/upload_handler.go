package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/places-api/internal/api/shared"
	"github.com/phrazzld/places-api/internal/platform/blob"
)

// maxUploadBytes bounds the multipart form held in memory per request.
const maxUploadBytes = 8 << 20

// allowedImageTypes are the content types accepted for place and avatar images.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// UploadHandler handles image upload API requests.
type UploadHandler struct {
	storage blob.Storage
}

// NewUploadHandler creates a new UploadHandler with the given dependencies.
func NewUploadHandler(storage blob.Storage) *UploadHandler {
	return &UploadHandler{storage: storage}
}

// UploadImage handles POST /uploads/images. The image arrives as the "image"
// field of a multipart form and is stored under a generated object key that
// the client then references when creating users or places.
func (h *UploadHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity,
			"Invalid multipart form data")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity,
			"Missing image file, field name must be 'image'")
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			slog.Warn("failed to close uploaded file", "error", closeErr)
		}
	}()

	contentType := header.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity,
			"Unsupported image type, use jpeg, png or webp")
		return
	}

	key, err := h.storage.Upload(r.Context(), file, header.Size, contentType)
	if err != nil {
		HandleAPIError(w, r, err, "Storing the image failed, please try again")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, UploadResponse{Key: key})
}
