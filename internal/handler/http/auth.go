package http

import (
	"encoding/json"
	"net/http"

	"github.com/bishtbros/ledger/internal/logger"
	"github.com/bishtbros/ledger/internal/utils"
	"github.com/bishtbros/ledger/models"
)

type signupRequest struct {
	Mobile   string `json:"mobile"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Mobile   string `json:"mobile"`
	Password string `json:"password"`
}

type logoutRequest struct {
	Token string `json:"token"`
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	role, err := h.services.AuthService.Register(ctx, req.Mobile, req.Password, req.Name)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SignupResponse{Success: true, Role: role}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.Authenticate(ctx, req.Mobile, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	token := h.sessions.Create(user.Mobile, user.Role, user.Name)

	utils.WriteJSON(w, models.LoginResponse{
		Success: true,
		User: models.LoginUser{
			Name:   user.Name,
			Mobile: user.Mobile,
			Role:   user.Role,
			Token:  token,
		},
	}, http.StatusOK)
}

// logout destroys the presented session. It never fails: an absent or
// already-destroyed token gets the same acknowledgement.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	var req logoutRequest
	// body is optional; a missing token just makes logout a no-op
	_ = json.NewDecoder(r.Body).Decode(&req)

	if req.Token != "" {
		h.sessions.Destroy(req.Token)
	}

	utils.WriteJSON(w, models.OKResponse{Success: true}, http.StatusOK)
}
