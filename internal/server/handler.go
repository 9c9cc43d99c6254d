package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/liuyang/duwen/internal/quizgen"
)

type quizHandler struct {
	gen quizgen.Generator
}

// Generate handles POST /api/quiz. Upstream failure detail stays in the
// server log; the client only ever sees the generic error body.
func (h *quizHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var params quizgen.Params
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("Missing required parameters in the request body."))
		return
	}
	if err := params.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("Missing required parameters in the request body."))
		return
	}

	quiz, err := h.gen.Generate(r.Context(), params)
	if err != nil {
		log.Printf("quiz generation failed [request %s]: %v", requestIDFrom(r.Context()), err)
		writeJSON(w, http.StatusInternalServerError, errorResp("Failed to generate quiz from API."))
		return
	}

	writeJSON(w, http.StatusOK, quiz)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}

func errorResp(msg string) map[string]string {
	return map[string]string{"error": msg}
}

type ctxKey string

const requestIDKey ctxKey = "request_id"

// requestID tags every request with a uuid for log correlation.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

func requestIDFrom(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return "unknown"
}
