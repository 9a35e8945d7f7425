package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/avoronin/message-constructor/internal/domain"
	"github.com/avoronin/message-constructor/internal/identity"
	"github.com/avoronin/message-constructor/internal/preview"
	"github.com/avoronin/message-constructor/internal/wizard"
	"github.com/coder/websocket"
)

const wsWriteTimeout = 10 * time.Second

// previewRequest is one client update on the live-preview socket.
type previewRequest struct {
	Type    string              `json:"type"` // "salon_row", "answers", "reset"
	Row     string              `json:"row,omitempty"`
	Answers *domain.UserAnswers `json:"answers,omitempty"`
}

// previewResponse is pushed back after every update.
type previewResponse struct {
	Type       string                `json:"type"`
	Recognized *bool                 `json:"recognized,omitempty"`
	Salon      *domain.SalonRecord   `json:"salon,omitempty"`
	Pain       *domain.PainCandidate `json:"pain,omitempty"`
	Message    string                `json:"message,omitempty"`
	Metrics    *preview.Metrics      `json:"metrics,omitempty"`
	Error      string                `json:"error,omitempty"`
}

// PreviewSocket serves the live-preview channel. Each connection owns one
// wizard session; the client streams pasted rows and answer snapshots, the
// server replies with the recomputed preview on every update.
func (h *Handler) PreviewSocket(w http.ResponseWriter, r *http.Request) {
	userID := identity.UserIDFromContext(r.Context())

	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: h.cfg.IsDevelopment(),
	})
	if err != nil {
		slog.Warn("WebSocket accept failed", "error", err, "user_id", userID)
		return
	}
	defer c.Close(websocket.StatusNormalClosure, "")

	slog.Info("Live preview connected", "user_id", userID)

	sess := wizard.NewSession()
	ctx := r.Context()

	for {
		_, data, err := c.Read(ctx)
		if err != nil {
			status := websocket.CloseStatus(err)
			if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway || errors.Is(err, context.Canceled) {
				return
			}
			slog.Debug("Live preview read error", "error", err, "user_id", userID)
			return
		}

		var req previewRequest
		if err := json.Unmarshal(data, &req); err != nil {
			h.writePreview(ctx, c, previewResponse{Type: "error", Error: "invalid JSON payload"})
			continue
		}

		switch req.Type {
		case "salon_row":
			recognized := sess.SetSalonRow(req.Row)
			resp := previewResponse{Type: "salon", Recognized: &recognized}
			if recognized {
				resp.Salon = sess.Salon
				if pain, ok := sess.Pain(); ok {
					resp.Pain = &pain
				}
			}
			h.writePreview(ctx, c, resp)

		case "answers":
			if req.Answers != nil {
				sess.SetAnswers(*req.Answers)
			}

		case "reset":
			sess.Reset()
			h.writePreview(ctx, c, previewResponse{Type: "reset"})
			continue

		default:
			h.writePreview(ctx, c, previewResponse{Type: "error", Error: "unknown message type"})
			continue
		}

		if text, metrics, ok := sess.Preview(); ok {
			h.writePreview(ctx, c, previewResponse{Type: "preview", Message: text, Metrics: &metrics})
		}
	}
}

func (h *Handler) writePreview(ctx context.Context, c *websocket.Conn, resp previewResponse) {
	data, err := json.Marshal(resp)
	if err != nil {
		slog.Error("Failed to marshal preview response", "error", err)
		return
	}

	writeCtx, cancel := context.WithTimeout(ctx, wsWriteTimeout)
	defer cancel()

	if err := c.Write(writeCtx, websocket.MessageText, data); err != nil {
		slog.Debug("Live preview write error", "error", err)
	}
}
