package domain

import "time"

// Generation is one completed generation, kept for the per-user history.
type Generation struct {
	ID         string    `json:"id"`
	UserID     string    `json:"-"`
	SalonName  string    `json:"salon_name"`
	Message    string    `json:"message"`
	TokensUsed int       `json:"tokens_used"`
	Model      string    `json:"model"`
	Score      int       `json:"score"`
	CreatedAt  time.Time `json:"created_at"`
}
