package storage

import (
	"context"

	"github.com/SeamusWaldron/revenge"
)

// GameStore persists one game. It implements revenge.ScrambleStore.
type GameStore struct {
	gameID string
	games  *GameRepository
	moves  *MoveLogRepository
}

var _ revenge.ScrambleStore = (*GameStore)(nil)

// NewGameStore creates a store for the game with the given ID.
// SaveState creates the game row if needed, but LogMove requires it to exist,
// so callers create the game with GameRepository.Create first.
func NewGameStore(db *DB, gameID string) *GameStore {
	return &GameStore{
		gameID: gameID,
		games:  NewGameRepository(db),
		moves:  NewMoveLogRepository(db),
	}
}

// GameID returns the ID of the stored game.
func (s *GameStore) GameID() string {
	return s.gameID
}

// LoadState returns the saved state, or nil if the game was never saved.
func (s *GameStore) LoadState(ctx context.Context) (*revenge.State, error) {
	g, err := s.games.Get(ctx, s.gameID)
	if err != nil || g == nil {
		return nil, err
	}
	return g.State()
}

// LoadScramble returns the scramble seed and length saved with the state.
// The length is -1 when the row predates the scramble_len column.
func (s *GameStore) LoadScramble(ctx context.Context) (string, int, error) {
	g, err := s.games.Get(ctx, s.gameID)
	if err != nil || g == nil {
		return "", -1, err
	}
	seed, n := "", -1
	if g.ScrambleSeed != nil {
		seed = *g.ScrambleSeed
	}
	if g.ScrambleLen != nil {
		n = *g.ScrambleLen
	}
	return seed, n, nil
}

// SaveState upserts the game row. The scramble length is stored as unknown.
func (s *GameStore) SaveState(ctx context.Context, state revenge.State, solved bool, scrambleSeed string) error {
	return s.games.Save(ctx, s.gameID, state, solved, scrambleSeed, -1)
}

// SaveScrambled upserts the game row with its scramble length.
func (s *GameStore) SaveScrambled(ctx context.Context, state revenge.State, solved bool, scrambleSeed string, scrambleLen int) error {
	return s.games.Save(ctx, s.gameID, state, solved, scrambleSeed, scrambleLen)
}

// LogMove appends to the move log.
func (s *GameStore) LogMove(ctx context.Context, move string) error {
	_, err := s.moves.Append(ctx, s.gameID, move)
	return err
}
