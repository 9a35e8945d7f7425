package domain

import "time"

// User is the per-identity generation counter. Created lazily on first
// contact; the counter only ever increments.
type User struct {
	UserID           string     `json:"user_id"`
	GenerationsCount int        `json:"generations_count"`
	LastGeneration   *time.Time `json:"last_generation,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// GenerationsLeft returns the remaining quota, never negative.
func (u *User) GenerationsLeft(limit int) int {
	left := limit - u.GenerationsCount
	if left < 0 {
		return 0
	}
	return left
}
