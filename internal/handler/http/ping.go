package http

import (
	"net/http"

	"github.com/bishtbros/ledger/internal/logger"
)

// ping reports whether the database connection is alive. Deploy checks poll
// it before routing traffic.
func (h *Handler) ping(w http.ResponseWriter, r *http.Request) {
	if err := h.db.PingContext(r.Context()); err != nil {
		logger.FromRequest(r).Err(err).Msg("database ping failed")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
