package http

import (
	"net/http"
)

func (h *Handler) getCoins(w http.ResponseWriter, r *http.Request) {
	page := ParsePageRequest(r.URL.Query())

	coins, err := h.services.CoinService.ListCoins(r.Context(), page)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, coins)
}

func (h *Handler) getCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.services.CoinService.ListCategories(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, categories)
}

func (h *Handler) getFilteredCoins(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := ParsePageRequest(query)

	coins, err := h.services.CoinService.ListFilteredCoins(r.Context(), parseIDs(query), page)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, coins)
}
