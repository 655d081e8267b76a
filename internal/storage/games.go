package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/google/uuid"

	"github.com/SeamusWaldron/revenge"
)

// Game represents a saved game in the database.
type Game struct {
	GameID       string
	Name         string // human-friendly label, not unique
	CreatedAt    time.Time
	UpdatedAt    time.Time
	SolvedAt     *time.Time
	Size         int
	CubiesJSON   *string // nil until the first save
	History      []string
	Solved       bool
	ScrambleSeed *string
	ScrambleLen  *int // nil for games saved before it was recorded
}

// State decodes the saved cube. It returns nil if the game was never saved.
func (g *Game) State() (*revenge.State, error) {
	if g.CubiesJSON == nil {
		return nil, nil
	}

	var cubies []revenge.Cubie
	if err := json.Unmarshal([]byte(*g.CubiesJSON), &cubies); err != nil {
		return nil, fmt.Errorf("failed to decode cubies for game %s: %w", g.GameID, err)
	}

	history := make([]string, len(g.History))
	copy(history, g.History)
	return &revenge.State{Size: g.Size, Cubies: cubies, History: history}, nil
}

// GameRepository provides CRUD operations for games.
type GameRepository struct {
	db *DB
}

// NewGameRepository creates a new game repository.
func NewGameRepository(db *DB) *GameRepository {
	return &GameRepository{db: db}
}

// Create creates a new, not yet saved game and returns its ID.
// The game gets a generated name such as "eager-walrus".
func (r *GameRepository) Create(ctx context.Context, size int) (string, error) {
	id := uuid.New().String()
	now := time.Now().UTC().Format(timeLayout)

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO games (game_id, name, created_at, updated_at, size)
		VALUES (?, ?, ?, ?, ?)
	`, id, petname.Generate(2, "-"), now, now, size)
	if err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}

	return id, nil
}

// Save stores the state of a game, creating the row if it does not exist.
// The last save wins. A negative scrambleLen is stored as unknown.
func (r *GameRepository) Save(ctx context.Context, gameID string, state revenge.State, solved bool, scrambleSeed string, scrambleLen int) error {
	cubies, err := json.Marshal(state.Cubies)
	if err != nil {
		return fmt.Errorf("failed to encode cubies: %w", err)
	}

	now := time.Now().UTC().Format(timeLayout)
	var seedPtr *string
	if scrambleSeed != "" {
		seedPtr = &scrambleSeed
	}
	var lenPtr *int
	if scrambleLen >= 0 {
		lenPtr = &scrambleLen
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO games (game_id, created_at, updated_at, size, cubies_json, history_text, solved, scramble_seed, scramble_len, solved_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, CASE WHEN ? THEN ? END)
		ON CONFLICT(game_id) DO UPDATE SET
			updated_at    = excluded.updated_at,
			size          = excluded.size,
			cubies_json   = excluded.cubies_json,
			history_text  = excluded.history_text,
			solved        = excluded.solved,
			scramble_seed = excluded.scramble_seed,
			scramble_len  = excluded.scramble_len,
			solved_at     = CASE WHEN excluded.solved THEN COALESCE(games.solved_at, excluded.updated_at) END
	`, gameID, now, now, state.Size, string(cubies), strings.Join(state.History, " "), solved, seedPtr, lenPtr, solved, now)
	if err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	return nil
}

const gameColumns = `game_id, name, created_at, updated_at, solved_at, size, cubies_json, history_text, solved, scramble_seed, scramble_len`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGame(row rowScanner) (*Game, error) {
	var g Game
	var createdAtStr, updatedAtStr, historyText string
	var solvedAtStr sql.NullString

	err := row.Scan(
		&g.GameID, &g.Name, &createdAtStr, &updatedAtStr, &solvedAtStr,
		&g.Size, &g.CubiesJSON, &historyText, &g.Solved, &g.ScrambleSeed, &g.ScrambleLen,
	)
	if err != nil {
		return nil, err
	}

	g.CreatedAt, _ = time.Parse(timeLayout, createdAtStr)
	g.UpdatedAt, _ = time.Parse(timeLayout, updatedAtStr)
	if solvedAtStr.Valid {
		t, _ := time.Parse(timeLayout, solvedAtStr.String)
		g.SolvedAt = &t
	}
	g.History = strings.Fields(historyText)

	return &g, nil
}

// Get retrieves a game by ID. It returns nil if the game does not exist.
func (r *GameRepository) Get(ctx context.Context, gameID string) (*Game, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+gameColumns+` FROM games WHERE game_id = ?`, gameID)

	g, err := scanGame(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return g, nil
}

// GetLast retrieves the most recently updated game.
func (r *GameRepository) GetLast(ctx context.Context) (*Game, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+gameColumns+` FROM games ORDER BY updated_at DESC LIMIT 1`)

	g, err := scanGame(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last game: %w", err)
	}

	return g, nil
}

// List retrieves recently updated games.
func (r *GameRepository) List(ctx context.Context, limit int) ([]Game, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+gameColumns+`
		FROM games
		ORDER BY updated_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	defer rows.Close()

	var games []Game
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan game: %w", err)
		}
		games = append(games, *g)
	}

	return games, rows.Err()
}

// Delete deletes a game and its move log (cascading).
func (r *GameRepository) Delete(ctx context.Context, gameID string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM games WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}
	return nil
}
