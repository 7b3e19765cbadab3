// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, logging, and tracing concerns are all
// handled at this layer before requests are forwarded to the service layer.
package http

import (
	"context"
	"net/http"

	"github.com/bishtbros/ledger/internal/logger"
	"github.com/bishtbros/ledger/internal/utils"
	"github.com/bishtbros/ledger/models"
)

// Header names carrying the acting identity and its session token.
const (
	mobileHeader = "X-Mobile"
	tokenHeader  = "X-Token"
)

// requireAdmin is an HTTP middleware admitting only live admin sessions.
//
// It reads the acting mobile and token from the X-Mobile / X-Token headers
// and consults the session store. On success the session snapshot is stored
// in the request context under [utils.SessionCtxKey] before delegating to
// the next handler.
//
// Every failure (missing headers, unknown or expired token, identity
// mismatch, non-admin role) produces the same HTTP 403 response, so a
// probing caller cannot tell which check failed.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		mobile := r.Header.Get(mobileHeader)
		token := r.Header.Get(tokenHeader)

		if !h.sessions.Authorize(mobile, token, models.RoleAdmin) {
			log.Warn().Str("mobile", mobile).Str("uri", r.RequestURI).Msg("admin access denied")
			utils.WriteError(w, "Access Denied: Admin only", http.StatusForbidden)
			return
		}

		sess, _ := h.sessions.Lookup(token)
		ctx := context.WithValue(r.Context(), utils.SessionCtxKey, sess)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireAuth is the weaker variant admitting any live session whose bound
// identity matches the claimed one, regardless of role.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		mobile := r.Header.Get(mobileHeader)
		token := r.Header.Get(tokenHeader)

		sess, ok := h.sessions.Lookup(token)
		if !ok || sess.Mobile != mobile {
			log.Warn().Str("mobile", mobile).Str("uri", r.RequestURI).Msg("access denied")
			utils.WriteError(w, "Not authenticated", http.StatusForbidden)
			return
		}

		ctx := context.WithValue(r.Context(), utils.SessionCtxKey, sess)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
