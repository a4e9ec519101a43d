package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://127.0.0.1:5173"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.live)
		r.Get("/data", h.data)
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Get("/logout", h.logout)
	})

	// routes requiring a valid session cookie
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/auth", h.authStatus)
		r.Get("/protected", h.protected)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
