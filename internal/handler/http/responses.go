package http

import (
	"net/http"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

// writeData renders a success envelope.
func writeData(w http.ResponseWriter, r *http.Request, data any, message string, status int) {
	envelope := models.Envelope{Data: data}
	if message != "" {
		envelope.Message = &message
	}

	if _, err := utils.WriteJSON(w, envelope, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, errRouteNotFound)
}
