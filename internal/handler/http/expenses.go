package http

import (
	"encoding/json"
	"net/http"

	"github.com/bishtbros/ledger/internal/logger"
	"github.com/bishtbros/ledger/internal/utils"
	"github.com/bishtbros/ledger/models"
	"github.com/go-chi/chi/v5"
)

type addExpenseRequest struct {
	Description string `json:"description"`
	Amount      any    `json:"amount"`
	Date        string `json:"date"`
	Category    string `json:"category"`
}

func (h *Handler) listExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.services.LedgerService.ListExpenses(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, expenses, http.StatusOK)
}

func (h *Handler) addExpense(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req addExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	expense, err := h.services.LedgerService.AddExpense(ctx, req.Description, req.Amount, req.Date, req.Category)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ExpenseResponse{Success: true, Expense: expense}, http.StatusOK)
}

func (h *Handler) removeExpense(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.services.LedgerService.RemoveExpense(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.OKResponse{Success: true}, http.StatusOK)
}
