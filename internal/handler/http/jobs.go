package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/Supreeth450/KodjobsSupreeth/internal/logger"
	"github.com/Supreeth450/KodjobsSupreeth/internal/validators"
)

// getJobs proxies one page of job listings. The page number comes from
// the "page" query parameter and defaults to 1; an unreachable upstream
// still answers 200 with the fallback page, flagged in the payload.
func (h *Handler) getJobs(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "page must be an integer", http.StatusBadRequest)
			return
		}
		page = parsed
	}

	listings, err := h.services.Jobs.Listings(r.Context(), page)
	if err != nil {
		if errors.Is(err, validators.ErrNonPositivePageIndex) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Error().Err(err).Int("page", page).Msg("jobs listing failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(listings); err != nil {
		log.Error().Err(err).Msg("jobs response encode failed")
	}
}
