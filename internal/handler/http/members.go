package http

import (
	"encoding/json"
	"net/http"

	"github.com/bishtbros/ledger/internal/logger"
	"github.com/bishtbros/ledger/internal/utils"
	"github.com/bishtbros/ledger/models"
)

type replaceMembersRequest struct {
	Members []models.Member `json:"members"`
}

func (h *Handler) listMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.services.MemberService.ListMembers(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, members, http.StatusOK)
}

func (h *Handler) replaceMembers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req replaceMembersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.MemberService.ReplaceMembers(ctx, req.Members); err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.OKResponse{Success: true}, http.StatusOK)
}
