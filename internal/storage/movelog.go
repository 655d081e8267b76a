package storage

import (
	"context"
	"fmt"
	"time"
)

// MoveLogEntry represents a logged move in the database.
type MoveLogEntry struct {
	MoveID    int64
	GameID    string
	MoveIndex int
	LoggedAt  time.Time
	Notation  string
}

// MoveLogRepository provides append and read access to the move audit trail.
type MoveLogRepository struct {
	db *DB
}

// NewMoveLogRepository creates a new move log repository.
func NewMoveLogRepository(db *DB) *MoveLogRepository {
	return &MoveLogRepository{db: db}
}

// Append logs a move after the game's last logged move and returns its ID.
func (r *MoveLogRepository) Append(ctx context.Context, gameID, notation string) (int64, error) {
	result, err := r.db.ExecContext(ctx, `
		INSERT INTO move_log (game_id, move_index, logged_at, notation)
		SELECT ?, COALESCE(MAX(move_index), -1) + 1, ?, ?
		FROM move_log WHERE game_id = ?
	`, gameID, time.Now().UTC().Format(timeLayout), notation, gameID)
	if err != nil {
		return 0, fmt.Errorf("failed to log move: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get move ID: %w", err)
	}

	return id, nil
}

// GetByGame retrieves all logged moves for a game in order.
func (r *MoveLogRepository) GetByGame(ctx context.Context, gameID string) ([]MoveLogEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT move_id, game_id, move_index, logged_at, notation
		FROM move_log
		WHERE game_id = ?
		ORDER BY move_index
	`, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}
	defer rows.Close()

	var entries []MoveLogEntry
	for rows.Next() {
		var e MoveLogEntry
		var loggedAtStr string
		if err := rows.Scan(&e.MoveID, &e.GameID, &e.MoveIndex, &loggedAtStr, &e.Notation); err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		e.LoggedAt, _ = time.Parse(timeLayout, loggedAtStr)
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// Count returns the number of logged moves for a game.
func (r *MoveLogRepository) Count(ctx context.Context, gameID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM move_log WHERE game_id = ?", gameID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count moves: %w", err)
	}
	return count, nil
}

// Notations returns the logged move tokens of a game in order.
func Notations(entries []MoveLogEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Notation
	}
	return out
}
