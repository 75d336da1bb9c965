package http

import (
	"net/http"

	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	var credentials models.Credentials
	if err := utils.DecodeJSON(r, &credentials); err != nil {
		writeError(w, r, err)
		return
	}

	user, token, err := h.services.AuthService.Signup(r.Context(), credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, models.AuthResponse{User: user, Token: token.String()}, "Account created successfully", http.StatusCreated)
}

func (h *Handler) signin(w http.ResponseWriter, r *http.Request) {
	var credentials models.Credentials
	if err := utils.DecodeJSON(r, &credentials); err != nil {
		writeError(w, r, err)
		return
	}

	user, token, err := h.services.AuthService.Signin(r.Context(), credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, models.AuthResponse{User: user, Token: token.String()}, "Signed in successfully", http.StatusOK)
}
