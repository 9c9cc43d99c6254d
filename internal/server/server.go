// Package server exposes quiz generation over HTTP. The wire contract
// (paths, parameter names, error bodies) matches what the browser
// frontend expects.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/liuyang/duwen/internal/quizgen"
)

// New builds the HTTP handler for the quiz service.
func New(gen quizgen.Generator, cfg Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(requestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	// The contract requires a JSON error body on wrong methods, not
	// chi's default plain-text 405.
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorResp("Method Not Allowed"))
	})

	// Health check
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	h := &quizHandler{gen: gen}
	r.Post("/api/quiz", h.Generate)

	return r
}
