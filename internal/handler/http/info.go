package http

import (
	"net/http"

	"github.com/MKhiriev/go-task-keeper/internal/utils"
)

// health and info answer with bare JSON objects, outside the envelope.

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.AppInfoService.GetHealth(r.Context()), http.StatusOK)
}

func (h *Handler) info(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.AppInfoService.GetAppInfo(r.Context()), http.StatusOK)
}
