package revenge

import (
	"context"
	"sync"
)

// Store persists games on behalf of a Session.
//
// Implementations must be safe for concurrent use: the Session saves from a
// timer goroutine and logs moves from a single worker goroutine.
type Store interface {
	// LoadState returns the saved game, or nil with a nil error when there is none.
	LoadState(ctx context.Context) (*State, error)

	// SaveState stores the state, replacing any earlier save. Saving the same
	// state twice has the same effect as saving it once.
	SaveState(ctx context.Context, state State, solved bool, scrambleSeed string) error

	// LogMove appends a token to the move audit trail. Best effort.
	LogMove(ctx context.Context, move string) error
}

// ScrambleStore is implemented by stores that keep the scramble seed and
// length next to the state. A Session saves through SaveScrambled when the
// store has it, and after a restart uses LoadScramble to tell scramble moves
// from player moves.
type ScrambleStore interface {
	Store

	// SaveScrambled is SaveState plus the number of scramble moves at the
	// start of the history.
	SaveScrambled(ctx context.Context, state State, solved bool, scrambleSeed string, scrambleLen int) error

	// LoadScramble returns the saved seed and scramble length. The length is
	// negative when the state was saved without one.
	LoadScramble(ctx context.Context) (seed string, scrambleLen int, err error)
}

// MemoryStore is a Store kept in memory. It is useful in tests and for
// sessions that should not outlive the process.
type MemoryStore struct {
	mu          sync.Mutex
	state       *State
	seed        string
	scrambleLen int
	moves       []string
}

var _ ScrambleStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// LoadState returns a copy of the last saved state.
func (m *MemoryStore) LoadState(ctx context.Context) (*State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == nil {
		return nil, nil
	}
	s := m.state.Clone()
	return &s, nil
}

// SaveState replaces the saved state. The scramble length becomes unknown.
func (m *MemoryStore) SaveState(ctx context.Context, state State, solved bool, scrambleSeed string) error {
	return m.SaveScrambled(ctx, state, solved, scrambleSeed, -1)
}

// SaveScrambled replaces the saved state and scramble.
func (m *MemoryStore) SaveScrambled(ctx context.Context, state State, solved bool, scrambleSeed string, scrambleLen int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := state.Clone()
	m.state = &s
	m.seed = scrambleSeed
	m.scrambleLen = scrambleLen
	return nil
}

// LogMove records a move token.
func (m *MemoryStore) LogMove(ctx context.Context, move string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.moves = append(m.moves, move)
	return nil
}

// Moves returns the logged move tokens.
func (m *MemoryStore) Moves() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.moves))
	copy(out, m.moves)
	return out
}

// LoadScramble returns the scramble seed and length of the last save.
func (m *MemoryStore) LoadScramble(ctx context.Context) (string, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == nil {
		return "", -1, nil
	}
	return m.seed, m.scrambleLen, nil
}
