// Package api provides HTTP handlers for the message constructor API.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/avoronin/message-constructor/internal/config"
	"github.com/avoronin/message-constructor/internal/groq"
	"github.com/avoronin/message-constructor/internal/store"
)

// Generator is the generation collaborator boundary. Implemented by
// groq.Client; tests substitute a fake.
type Generator interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string, opts groq.Options) (*groq.Result, error)
}

// Handler provides common handler dependencies.
type Handler struct {
	repo store.Repository
	gen  Generator
	cfg  *config.Config
}

// NewHandler creates a new Handler with common dependencies.
func NewHandler(repo store.Repository, gen Generator, cfg *config.Config) *Handler {
	return &Handler{repo: repo, gen: gen, cfg: cfg}
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}
