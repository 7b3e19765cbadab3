package http

import (
	"encoding/json"
	"net/http"

	"github.com/bishtbros/ledger/internal/logger"
	"github.com/bishtbros/ledger/internal/utils"
	"github.com/bishtbros/ledger/models"
)

type changeRoleRequest struct {
	TargetMobile string `json:"targetMobile"`
	NewRole      string `json:"newRole"`
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.AuthService.ListUsers(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) changeRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	acting, ok := utils.GetSessionFromContext(ctx)
	if !ok {
		// requireAdmin always seeds the session; a miss means a wiring bug
		log.Error().Msg("no session in context on admin route")
		utils.WriteError(w, "Access Denied: Admin only", http.StatusForbidden)
		return
	}

	var req changeRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.AuthService.ChangeRole(ctx, acting, req.TargetMobile, req.NewRole); err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.OKResponse{Success: true}, http.StatusOK)
}
