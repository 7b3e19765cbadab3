package http

import (
	"errors"
	"net/http"

	"github.com/bishtbros/ledger/internal/logger"
	"github.com/bishtbros/ledger/internal/service"
	"github.com/bishtbros/ledger/internal/store"
	"github.com/bishtbros/ledger/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrPasswordTooShort:    http.StatusBadRequest,
	service.ErrInvalidMobile:       http.StatusBadRequest,
	service.ErrInvalidStatus:       http.StatusBadRequest,
	service.ErrInvalidRole:         http.StatusBadRequest,
	service.ErrInvalidCredentials:  http.StatusUnauthorized,
	service.ErrAdminOnly:           http.StatusForbidden,

	store.ErrMobileAlreadyRegistered: http.StatusBadRequest,
	store.ErrNoUserWasFound:          http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

// errorMessageMap holds the client-facing wording for the errors whose
// message differs from the sentinel text. Messages match what the existing
// clients display verbatim.
var errorMessageMap = map[error]string{
	service.ErrInvalidDataProvided:   "All fields required",
	service.ErrPasswordTooShort:      "Password min 6 chars",
	service.ErrInvalidMobile:         "Mobile must be 10 digits",
	service.ErrInvalidStatus:         "Invalid status",
	service.ErrInvalidRole:           "Invalid role",
	service.ErrInvalidCredentials:    "Invalid mobile or password",
	service.ErrAdminOnly:             "Admin only",
	store.ErrMobileAlreadyRegistered: "Mobile already registered!",
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError maps a service-layer error onto the uniform error
// envelope. Unrecognised errors become an opaque 500: internals are logged,
// never surfaced.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	if status == http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Msg("internal server error")
		utils.WriteError(w, "internal server error", status)
		return
	}

	message := err.Error()
	for target, m := range errorMessageMap {
		if errors.Is(err, target) {
			message = m
			break
		}
	}

	utils.WriteError(w, message, status)
}
