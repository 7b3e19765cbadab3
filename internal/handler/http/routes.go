package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/ping", h.ping)
		r.Post("/api/signup", h.signup)
		r.Post("/api/login", h.login)
		r.Post("/api/logout", h.logout)
		r.Get("/api/records", h.listRecords)
		r.Get("/api/expenses", h.listExpenses)
		r.Get("/api/members", h.listMembers)
	})

	// routes for any logged-in user
	router.Group(func(r chi.Router) {
		r.Use(h.requireAuth)
		r.Get("/api/users", h.listUsers)
	})

	// admin-only routes
	router.Group(func(r chi.Router) {
		r.Use(h.requireAdmin)
		r.Post("/api/records", h.upsertRecord)
		r.Post("/api/expenses", h.addExpense)
		r.Delete("/api/expenses/{id}", h.removeExpense)
		r.Post("/api/members", h.replaceMembers)
		r.Post("/api/users/role", h.changeRole)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
