package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/ewilliams-labs/moodsnap/internal/core/domain"
	"github.com/ewilliams-labs/moodsnap/internal/photo"
)

const minTextLength = 3

// Base64 inflates by 4/3; the rest is room for the JSON envelope.
const maxPhotoJSONBody = photo.MaxBytes/3*4 + 64<<10

type analyzeTextRequest struct {
	Text string `json:"text"`
}

type analyzePhotoRequest struct {
	PhotoDataURI string `json:"photoDataUri"`
}

type moodRequest struct {
	Mood string `json:"mood"`
}

type analysisResponse struct {
	ID          string             `json:"id"`
	MoodPackage domain.MoodPackage `json:"moodPackage"`
	Style       styleResponse      `json:"style"`
}

func (h *Handler) analysis(pkg domain.MoodPackage, hasPhoto bool) analysisResponse {
	return analysisResponse{
		ID:          uuid.NewString(),
		MoodPackage: pkg,
		Style:       newStyleResponse(h.resolver.Resolve(pkg, hasPhoto)),
	}
}

// AnalyzeText handles POST /moods/text
func (h *Handler) AnalyzeText(w http.ResponseWriter, r *http.Request) {
	var req analyzeTextRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	text := strings.TrimSpace(req.Text)
	if utf8.RuneCountInString(text) < minTextLength {
		writeError(w, http.StatusBadRequest, msgTextTooShort)
		return
	}

	pkg, err := h.gateway.AnalyzeFromText(r.Context(), text)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, h.analysis(pkg, false))
}

// AnalyzePhoto handles POST /moods/photo. The photo arrives either as a
// multipart "photo" field or as a JSON data URI.
func (h *Handler) AnalyzePhoto(w http.ResponseWriter, r *http.Request) {
	var (
		dataURI string
		err     error
	)
	if isMultipart(r) {
		dataURI, _, err = photo.FromRequest(r)
	} else {
		dataURI, err = decodePhotoJSON(w, r)
		if dataURI == "" && err == nil {
			return
		}
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}

	pkg, err := h.gateway.AnalyzeFromPhoto(r.Context(), dataURI)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, h.analysis(pkg, true))
}

// decodePhotoJSON returns an empty URI and nil error when it has already
// written a response.
func decodePhotoJSON(w http.ResponseWriter, r *http.Request) (string, error) {
	if !isJSONContentType(r) {
		writeErrorWithCode(w, http.StatusUnsupportedMediaType, codeUnsupportedMedia, msgNotJSON)
		return "", nil
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxPhotoJSONBody)

	var req analyzePhotoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			return "", photo.ErrTooLarge
		}
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return "", nil
	}

	uri, _, err := photo.FromDataURI(req.PhotoDataURI)
	if err != nil {
		return "", err
	}
	return uri, nil
}

// GenerateQuote handles POST /moods/quote
func (h *Handler) GenerateQuote(w http.ResponseWriter, r *http.Request) {
	var req moodRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	mood := strings.TrimSpace(req.Mood)
	if mood == "" {
		writeError(w, http.StatusBadRequest, msgMoodMissing)
		return
	}

	res, err := h.gateway.GenerateQuote(r.Context(), mood)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// RecommendFilter handles POST /moods/filter
func (h *Handler) RecommendFilter(w http.ResponseWriter, r *http.Request) {
	var req moodRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	mood := strings.TrimSpace(req.Mood)
	if mood == "" {
		writeError(w, http.StatusBadRequest, msgMoodMissing)
		return
	}

	res, err := h.gateway.RecommendFilter(r.Context(), mood)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}
