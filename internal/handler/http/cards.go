package http

import (
	"net/http"

	"github.com/MKhiriev/go-vocab-keeper/internal/logger"
	"github.com/MKhiriev/go-vocab-keeper/internal/utils"
	"github.com/MKhiriev/go-vocab-keeper/models"
)

func (h *Handler) getAllCards(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	cards, err := h.services.CardService.GetAllCards(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.getAllCards").Msg("error getting cards")
		http.Error(w, "error getting cards", statusFromError(err))
		return
	}

	utils.WriteJSON(w, nonNil(cards), http.StatusOK)
}

func (h *Handler) getCardRefs(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	refs, err := h.services.CardService.GetCardRefs(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.getCardRefs").Msg("error getting card ids")
		http.Error(w, "error getting card ids", statusFromError(err))
		return
	}

	utils.WriteJSON(w, nonNil(refs), http.StatusOK)
}

func (h *Handler) upsertCards(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	cards, err := utils.DecodeJSON[[]models.Card](w, r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.upsertCards").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	stored, err := h.services.CardService.UpsertCards(r.Context(), cards)
	if err != nil {
		log.Err(err).Str("func", "*Handler.upsertCards").Int("cards", len(cards)).Msg("error upserting cards")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, nonNil(stored), http.StatusOK)
}

// nonNil keeps empty collections encoded as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
