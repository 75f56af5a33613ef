package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/fleet-tracker/internal/logger"
	"github.com/MKhiriev/fleet-tracker/internal/utils"
	"github.com/MKhiriev/fleet-tracker/models"
)

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.MessageResponse{Message: "fleet-tracker API"}, http.StatusOK)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.register").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.register").Msg("user registration ended with error")
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", registeredUser.UserID).Str("role", string(registeredUser.Role)).Msg("user registered")

	utils.WriteJSON(w, registeredUser, http.StatusCreated)
}

// token exchanges email/password credentials for a bearer token. Unknown
// email and wrong password produce the same 401 so the endpoint does not leak
// which accounts exist.
func (h *Handler) token(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.token").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.token").Msg("login ended with error")
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Str("func", "*Handler.token").Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.TokenResponse{AccessToken: token.SignedString, TokenType: "bearer"}, http.StatusOK)
}
