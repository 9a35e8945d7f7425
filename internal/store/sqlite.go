package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/avoronin/message-constructor/internal/domain"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements Repository using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite creates a new SQLite-backed repository.
func NewSQLite(dbPath string) (Repository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	// Open database with WAL mode for better concurrency.
	dsn := dbPath + "?_journal=WAL&_sync=NORMAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	query := `
	PRAGMA busy_timeout = 5000;
	CREATE TABLE IF NOT EXISTS users (
		user_id TEXT PRIMARY KEY,
		generations_count INTEGER NOT NULL DEFAULT 0,
		last_generation INTEGER,
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS generations (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		salon_name TEXT NOT NULL,
		message TEXT NOT NULL,
		tokens_used INTEGER NOT NULL DEFAULT 0,
		model TEXT NOT NULL DEFAULT '',
		score INTEGER NOT NULL DEFAULT 0,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_generations_user ON generations(user_id, created_at);
	`
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Ping verifies database connectivity.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// GetOrCreateUser fetches the counter for a user, creating it lazily.
func (s *SQLiteStore) GetOrCreateUser(ctx context.Context, userID string) (*domain.User, error) {
	now := time.Now().Unix()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (user_id, generations_count, created_at, updated_at)
		 VALUES (?, 0, ?, ?)
		 ON CONFLICT(user_id) DO NOTHING`,
		userID, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("ensure user: %w", err)
	}

	row := s.db.QueryRowContext(ctx,
		`SELECT user_id, generations_count, last_generation, created_at, updated_at
		 FROM users WHERE user_id = ?`, userID)

	var user domain.User
	var lastGeneration sql.NullInt64
	var createdAt, updatedAt int64

	if err := row.Scan(&user.UserID, &user.GenerationsCount, &lastGeneration, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("scan user row: %w", err)
	}

	if lastGeneration.Valid {
		ts := time.Unix(lastGeneration.Int64, 0)
		user.LastGeneration = &ts
	}
	user.CreatedAt = time.Unix(createdAt, 0)
	user.UpdatedAt = time.Unix(updatedAt, 0)

	return &user, nil
}

// IncrementGenerations bumps the counter atomically in the database.
func (s *SQLiteStore) IncrementGenerations(ctx context.Context, userID string) error {
	now := time.Now().Unix()
	result, err := s.db.ExecContext(ctx,
		`UPDATE users
		 SET generations_count = generations_count + 1,
		     last_generation = ?,
		     updated_at = ?
		 WHERE user_id = ?`,
		now, now, userID,
	)
	if err != nil {
		return fmt.Errorf("increment generations: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("increment generations: user %s not found", userID)
	}
	return nil
}

// InsertGeneration records one completed generation.
func (s *SQLiteStore) InsertGeneration(ctx context.Context, g *domain.Generation) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO generations (id, user_id, salon_name, message, tokens_used, model, score, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		g.ID, g.UserID, g.SalonName, g.Message, g.TokensUsed, g.Model, g.Score, g.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("insert generation: %w", err)
	}
	return nil
}

// ListGenerations returns a user's most recent generations, newest first.
func (s *SQLiteStore) ListGenerations(ctx context.Context, userID string, limit int) ([]*domain.Generation, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, salon_name, message, tokens_used, model, score, created_at
		 FROM generations WHERE user_id = ?
		 ORDER BY created_at DESC, id LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query generations: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			slog.Warn("failed to close generations rows", "error", closeErr)
		}
	}()

	var generations []*domain.Generation
	for rows.Next() {
		var g domain.Generation
		var createdAt int64
		if err := rows.Scan(&g.ID, &g.UserID, &g.SalonName, &g.Message, &g.TokensUsed, &g.Model, &g.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("scan generation row: %w", err)
		}
		g.CreatedAt = time.Unix(createdAt, 0)
		generations = append(generations, &g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate generations: %w", err)
	}

	return generations, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	return nil
}
