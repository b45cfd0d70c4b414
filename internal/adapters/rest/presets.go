package rest

import (
	"net/http"

	"github.com/ewilliams-labs/moodsnap/internal/core/domain"
	"github.com/ewilliams-labs/moodsnap/internal/core/presets"
)

type resolveRequest struct {
	BackgroundStyle  string `json:"backgroundStyle"`
	FilterSuggestion string `json:"filterSuggestion"`
	HasPhoto         bool   `json:"hasPhoto"`
}

type styleResponse struct {
	Background       string `json:"background"`
	BackgroundPreset string `json:"backgroundPreset"`
	Filter           string `json:"filter"`
	FilterPreset     string `json:"filterPreset"`
	Grayscale        bool   `json:"grayscale"`
}

func newStyleResponse(s domain.CardStyle) styleResponse {
	return styleResponse{
		Background:       s.Background.CSS(),
		BackgroundPreset: s.Background.Name,
		Filter:           s.Filter.CSS(),
		FilterPreset:     s.Filter.Name,
		Grayscale:        s.Filter.Grayscale(),
	}
}

// ResolvePresets handles POST /presets/resolve
func (h *Handler) ResolvePresets(w http.ResponseWriter, r *http.Request) {
	var req resolveRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	style := h.resolver.Resolve(domain.MoodPackage{
		BackgroundStyle:  req.BackgroundStyle,
		FilterSuggestion: req.FilterSuggestion,
	}, req.HasPhoto)

	writeJSON(w, http.StatusOK, newStyleResponse(style))
}

// ListPresets handles GET /presets
func (h *Handler) ListPresets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, presets.Phrases())
}
