package http

import (
	"net/http"

	"github.com/MKhiriev/go-vocab-keeper/internal/logger"
	"github.com/MKhiriev/go-vocab-keeper/internal/utils"
	"github.com/MKhiriev/go-vocab-keeper/models"
)

func (h *Handler) getProgress(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	records, err := h.services.ProgressService.GetProgress(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.getProgress").Msg("error getting progress")
		http.Error(w, "error getting progress", statusFromError(err))
		return
	}

	utils.WriteJSON(w, nonNil(records), http.StatusOK)
}

func (h *Handler) upsertProgress(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	records, err := utils.DecodeJSON[[]models.ProgressRecord](w, r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.upsertProgress").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err = h.services.ProgressService.UpsertProgress(r.Context(), records); err != nil {
		log.Err(err).Str("func", "*Handler.upsertProgress").Int("records", len(records)).Msg("error upserting progress")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) incrementProgress(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	delta, err := utils.DecodeJSON[models.ProgressDelta](w, r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.incrementProgress").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	record, err := h.services.ProgressService.IncrementProgress(r.Context(), delta)
	if err != nil {
		log.Err(err).
			Str("func", "*Handler.incrementProgress").
			Int64("card_id", delta.CardID).
			Msg("error incrementing progress")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, record, http.StatusOK)
}
