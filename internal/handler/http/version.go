package http

import (
	"net/http"
)

func (h *Handler) getVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, h.services.AppInfoService.GetVersionInfo(r.Context()))
}

// getHealth always answers 200; upstream trouble only shows in the body.
func (h *Handler) getHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, h.services.AppInfoService.GetHealthStatus(r.Context()))
}
