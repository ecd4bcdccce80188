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
		r.Post("/login", h.login)
		r.Post("/signup", h.signup)
		r.Post("/refresh/", h.refresh)
		r.Get("/google-login/", h.googleLogin)
		r.Get("/callback", h.googleCallback)
	})

	// routes that require a valid access-token cookie
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/logout/", h.logout)
		r.Get("/me", h.me)
	})

	return router
}
