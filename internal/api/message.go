package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/avoronin/message-constructor/internal/domain"
	"github.com/avoronin/message-constructor/internal/groq"
	"github.com/avoronin/message-constructor/internal/identity"
	"github.com/avoronin/message-constructor/internal/preview"
	"github.com/avoronin/message-constructor/internal/prompt"
	"github.com/avoronin/message-constructor/internal/review"
	"github.com/avoronin/message-constructor/internal/salon"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Generation call parameters. Variations run hotter so a rewrite actually
// differs from the original.
const (
	generateTemperature  = 0.7
	variationTemperature = 0.9
	generateMaxTokens    = 1000
	generateTopP         = 0.9
)

// RegisterRoutes registers the message constructor API routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/check-limit", h.CheckLimit)
		r.Get("/history", h.History)
		r.Post("/parse", h.ParseSalon)
		r.Post("/preview", h.Preview)
		r.Post("/generate", h.Generate)
		r.Post("/generate-variation", h.GenerateVariation)
	})
}

// generateRequest is the payload for /api/generate and /api/preview.
type generateRequest struct {
	Salon       *domain.SalonRecord `json:"salon"`
	UserAnswers *domain.UserAnswers `json:"user_answers"`
}

// CheckLimit reports the caller's remaining quota.
func (h *Handler) CheckLimit(w http.ResponseWriter, r *http.Request) {
	userID := identity.UserIDFromContext(r.Context())

	user, err := h.repo.GetOrCreateUser(r.Context(), userID)
	if err != nil {
		slog.Error("Failed to load user counter", "error", err, "user_id", userID)
		Error(w, http.StatusInternalServerError, "failed to check limit")
		return
	}

	JSON(w, http.StatusOK, map[string]interface{}{
		"generations_used": user.GenerationsCount,
		"generations_left": user.GenerationsLeft(h.cfg.GenerationLimit),
		"limit":            h.cfg.GenerationLimit,
	})
}

// ParseSalon parses a pasted spreadsheet row server-side and returns the
// record together with its selected pain point.
func (h *Handler) ParseSalon(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Row     string `json:"row"`
		Service string `json:"service"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	rec := salon.ParseRow(req.Row)
	if !rec.IsValid() {
		JSON(w, http.StatusOK, map[string]interface{}{"recognized": false})
		return
	}

	pain := salon.SelectPain(rec, req.Service)
	JSON(w, http.StatusOK, map[string]interface{}{
		"recognized": true,
		"salon":      rec,
		"pain":       pain,
	})
}

// Preview renders the deterministic local preview without touching the
// generation collaborator or the quota.
func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if req.UserAnswers == nil {
		Error(w, http.StatusBadRequest, "user_answers is required")
		return
	}

	text := preview.Render(req.Salon, req.UserAnswers)
	if text == "" {
		Error(w, http.StatusUnprocessableEntity, "salon and seller name are required for a preview")
		return
	}

	JSON(w, http.StatusOK, map[string]interface{}{
		"message": text,
		"metrics": preview.Measure(text, req.Salon, req.UserAnswers.Guarantees),
	})
}

// Generate builds the prompt, calls the generation collaborator and
// increments the quota counter on success.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := identity.UserIDFromContext(ctx)

	user, err := h.repo.GetOrCreateUser(ctx, userID)
	if err != nil {
		slog.Error("Failed to load user counter", "error", err, "user_id", userID)
		Error(w, http.StatusInternalServerError, "failed to check limit")
		return
	}

	if user.GenerationsCount >= h.cfg.GenerationLimit {
		JSON(w, http.StatusTooManyRequests, map[string]interface{}{
			"error":            "Лимит исчерпан",
			"message":          fmt.Sprintf("Вы использовали все %d генераций", h.cfg.GenerationLimit),
			"generations_left": 0,
		})
		return
	}

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if req.UserAnswers == nil {
		Error(w, http.StatusBadRequest, "user_answers is required")
		return
	}
	if !req.Salon.IsValid() {
		Error(w, http.StatusBadRequest, "salon is required")
		return
	}

	if err := review.Validate(req.UserAnswers); err != nil {
		JSON(w, http.StatusBadRequest, map[string]string{
			"error":   "Ошибка валидации",
			"message": err.Error(),
		})
		return
	}

	warnings := review.CheckWarnings(req.UserAnswers)
	userPrompt := prompt.Build(req.Salon, req.UserAnswers)

	result, err := h.gen.Generate(ctx, prompt.System, userPrompt, groq.Options{
		Temperature: generateTemperature,
		MaxTokens:   generateMaxTokens,
		TopP:        generateTopP,
	})
	if err != nil {
		slog.Error("Generation failed", "error", err, "user_id", userID)
		JSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "Ошибка генерации",
			"message": err.Error(),
		})
		return
	}

	// The counter only moves after a successful generation. If the
	// increment itself fails the user gets the message anyway; an
	// undercounted quota beats a paid-for message that was never shown.
	if err := h.repo.IncrementGenerations(ctx, userID); err != nil {
		slog.Error("Failed to increment generations", "error", err, "user_id", userID)
	}

	score := review.Score(result.Text, req.Salon, req.UserAnswers.Guarantees)
	gen := &domain.Generation{
		ID:         uuid.NewString(),
		UserID:     userID,
		SalonName:  req.Salon.Name,
		Message:    result.Text,
		TokensUsed: result.TokensUsed,
		Model:      result.Model,
		Score:      score,
		CreatedAt:  time.Now(),
	}
	if err := h.repo.InsertGeneration(ctx, gen); err != nil {
		slog.Warn("Failed to record generation history", "error", err, "user_id", userID)
	}

	JSON(w, http.StatusOK, map[string]interface{}{
		"success":          true,
		"message":          result.Text,
		"generations_left": h.cfg.GenerationLimit - (user.GenerationsCount + 1),
		"warnings":         warnings,
		"metrics": map[string]interface{}{
			"tokens_used": result.TokensUsed,
			"model":       result.Model,
			"score":       score,
		},
	})
}

// GenerateVariation rewrites an already generated message. Variations do
// not count against the quota.
func (h *Handler) GenerateVariation(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OriginalMessage string `json:"original_message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if req.OriginalMessage == "" {
		Error(w, http.StatusBadRequest, "original_message is required")
		return
	}

	result, err := h.gen.Generate(r.Context(), prompt.VariationSystem, prompt.Variation(req.OriginalMessage), groq.Options{
		Temperature: variationTemperature,
		MaxTokens:   generateMaxTokens,
	})
	if err != nil {
		slog.Error("Variation failed", "error", err)
		JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": result.Text,
	})
}

// History returns the caller's recent generations.
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	userID := identity.UserIDFromContext(r.Context())

	generations, err := h.repo.ListGenerations(r.Context(), userID, h.cfg.HistoryLimit)
	if err != nil {
		slog.Error("Failed to list generations", "error", err, "user_id", userID)
		Error(w, http.StatusInternalServerError, "failed to load history")
		return
	}
	if generations == nil {
		generations = []*domain.Generation{}
	}

	JSON(w, http.StatusOK, map[string]interface{}{"generations": generations})
}
