// Package store provides data persistence interfaces and implementations.
package store

import (
	"context"

	"github.com/avoronin/message-constructor/internal/domain"
)

// Repository persists the per-user quota counter and generation history.
type Repository interface {
	// GetOrCreateUser fetches the counter for a user, creating it at zero
	// on first contact.
	GetOrCreateUser(ctx context.Context, userID string) (*domain.User, error)

	// IncrementGenerations bumps the counter by one and stamps
	// last_generation. The increment happens in the database, so two
	// concurrent calls never lose an update. Note that the limit check
	// and the increment are still separate operations: two requests from
	// one user at the limit boundary can both pass the check. That race
	// is accepted.
	IncrementGenerations(ctx context.Context, userID string) error

	// InsertGeneration records one completed generation.
	InsertGeneration(ctx context.Context, g *domain.Generation) error

	// ListGenerations returns a user's most recent generations, newest
	// first.
	ListGenerations(ctx context.Context, userID string, limit int) ([]*domain.Generation, error)

	// Ping verifies database connectivity.
	Ping(ctx context.Context) error

	// Close closes the database connection.
	Close() error
}
