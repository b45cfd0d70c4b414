package rest

import (
	"encoding/json"
	"errors"
	"log"
	"mime"
	"net/http"

	"github.com/ewilliams-labs/moodsnap/internal/core/domain"
	"github.com/ewilliams-labs/moodsnap/internal/photo"
)

// Caller-facing messages. Upstream details never reach the client.
const (
	msgGenerationFailed = "Something went wrong. Please try again."
	msgTextTooShort     = "Please describe your mood in a few words."
	msgPhotoMissing     = "Please upload a photo."
	msgPhotoTooLarge    = "Please upload an image smaller than 4MB."
	msgPhotoNotImage    = "Please upload a PNG, JPEG, GIF or WebP image."
	msgMoodMissing      = "Please pick a mood first."
	msgInvalidBody      = "Invalid request body"
	msgNotJSON          = "Content-Type must be application/json"
)

const (
	codeInvalidInput     = "INVALID_INPUT"
	codeGenerationFailed = "GENERATION_FAILED"
	codeUnsupportedMedia = "UNSUPPORTED_MEDIA_TYPE"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("WARN rest: encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeErrorWithCode(w, status, codeInvalidInput, message)
}

func writeErrorWithCode(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: message, Code: code})
}

// writeServiceError maps gateway and photo errors onto HTTP responses.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, photo.ErrTooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, msgPhotoTooLarge)
	case errors.Is(err, photo.ErrMissing):
		writeError(w, http.StatusBadRequest, msgPhotoMissing)
	case errors.Is(err, photo.ErrNotImage), errors.Is(err, domain.ErrInvalidDataURI):
		writeError(w, http.StatusBadRequest, msgPhotoNotImage)
	case errors.Is(err, domain.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, msgInvalidBody)
	case errors.Is(err, domain.ErrGenerationFailure):
		writeErrorWithCode(w, http.StatusBadGateway, codeGenerationFailed, msgGenerationFailed)
	default:
		log.Printf("WARN rest: unexpected error: %v", err)
		writeErrorWithCode(w, http.StatusInternalServerError, codeGenerationFailed, msgGenerationFailed)
	}
}

func isJSONContentType(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "application/json"
}

func isMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "multipart/form-data"
}

// decodeJSON enforces the JSON content type and decodes the body into v.
// It writes the error response itself and reports whether decoding succeeded.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if !isJSONContentType(r) {
		writeErrorWithCode(w, http.StatusUnsupportedMediaType, codeUnsupportedMedia, msgNotJSON)
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return false
	}
	return true
}
