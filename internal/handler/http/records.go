package http

import (
	"encoding/json"
	"net/http"

	"github.com/bishtbros/ledger/internal/logger"
	"github.com/bishtbros/ledger/internal/store"
	"github.com/bishtbros/ledger/internal/utils"
	"github.com/bishtbros/ledger/models"
)

// upsertRecordRequest tolerates the loose typing of the existing clients:
// amount may be a number or a string, and any field except name and period
// may be missing.
type upsertRecordRequest struct {
	Name     string `json:"name"`
	Period   string `json:"period"`
	Amount   any    `json:"amount"`
	Status   string `json:"status"`
	PaidDate string `json:"paidDate"`
}

func (h *Handler) listRecords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter := store.RecordFilter{
		Name:   r.URL.Query().Get("name"),
		Status: r.URL.Query().Get("status"),
	}

	records, err := h.services.LedgerService.ListRecords(ctx, filter)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, records, http.StatusOK)
}

func (h *Handler) upsertRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req upsertRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if _, err := h.services.LedgerService.UpsertRecord(ctx, req.Name, req.Period, req.Amount, req.Status, req.PaidDate); err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.OKResponse{Success: true}, http.StatusOK)
}
