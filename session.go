package revenge

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/SeamusWaldron/revenge/internal/persist"
)

const (
	logMoveTimeout = 5 * time.Second
	logQueueSize   = 256
)

var errLogQueueFull = errors.New("move log queue full")

// snapshot is what the debounced saver writes.
type snapshot struct {
	state       State
	solved      bool
	seed        string
	scrambleLen int
}

// Session owns the current game: the state, the scramble it started from and
// its persistence. Calls are serialized, so only one move is in flight at a time.
type Session struct {
	cfg     *config
	saver   *persist.Debouncer[snapshot]
	logDone chan struct{}

	mu          sync.Mutex
	state       State
	seed        string
	scrambleLen int
	solved      bool
	onSolved    func(State)
	logs        chan string // nil once closed
}

// NewSession restores the stored game, or starts a fresh scrambled one when
// there is no store, nothing stored, or the stored game cannot be used.
// Load failures are logged, never returned.
func NewSession(ctx context.Context, opts ...Option) *Session {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	s := &Session{cfg: cfg}
	if cfg.store != nil {
		s.saver = persist.New(s.write, persist.Config{
			Interval:    cfg.saveDebounce,
			MaxAttempts: cfg.saveAttempts,
			Logger:      cfg.logger,
		})
		s.logs = make(chan string, logQueueSize)
		s.logDone = make(chan struct{})
		go s.logLoop(s.logs)
	}

	if !s.restore(ctx) {
		s.resetLocked()
		s.scheduleSaveLocked()
	}
	s.solved = IsSolved(s.state)
	return s
}

// restore loads the stored game. It returns false if a fresh game is needed.
func (s *Session) restore(ctx context.Context) bool {
	if s.cfg.store == nil {
		return false
	}

	loaded, err := s.cfg.store.LoadState(ctx)
	if err != nil {
		s.cfg.logger.Printf("%v", &PersistenceError{Op: "load", Err: err})
		return false
	}
	if loaded == nil {
		return false
	}
	if err := Validate(*loaded); err != nil {
		s.cfg.logger.Printf("%v", &PersistenceError{Op: "load", Err: err})
		return false
	}

	s.state = loaded.Clone()
	s.seed = ""
	s.scrambleLen = 0
	if seed, n, ok := s.loadedScramble(ctx); ok {
		s.seed = seed
		if n < 0 {
			n = s.cfg.scrambleLength
		}
		if parsed, err := ParseSeed(seed); err == nil {
			s.scrambleLen = commonPrefix(NewScrambler(parsed).Generate(n), s.state.History)
		}
	}
	return true
}

// loadedScramble asks stores that remember the scramble for its seed and length.
func (s *Session) loadedScramble(ctx context.Context) (string, int, bool) {
	ss, ok := s.cfg.store.(ScrambleStore)
	if !ok {
		return "", 0, false
	}
	seed, n, err := ss.LoadScramble(ctx)
	if err != nil {
		s.cfg.logger.Printf("%v", &PersistenceError{Op: "load", Err: err})
		return "", 0, false
	}
	if seed == "" {
		return "", 0, false
	}
	return seed, n, true
}

// OnSolved sets a callback that fires when a move or undo leaves the cube
// solved and the previous state was not.
func (s *Session) OnSolved(cb func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onSolved = cb
}

// State returns a copy of the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// IsSolved returns true if the cube is solved.
func (s *Session) IsSolved() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.solved
}

// Seed returns the seed the current scramble was generated from.
func (s *Session) Seed() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seed
}

// Scramble returns the scramble tokens of the current game.
func (s *Session) Scramble() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, s.scrambleLen)
	copy(out, s.state.History[:s.scrambleLen])
	return out
}

// PlayerMoves returns the tokens applied after the scramble.
func (s *Session) PlayerMoves() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	moves := s.state.History[s.scrambleLen:]
	out := make([]string, len(moves))
	copy(out, moves)
	return out
}

// Move applies token. An invalid token leaves the cube unchanged and returns
// the current state with an error wrapping ErrInvalidNotation.
func (s *Session) Move(token string) (State, error) {
	m, err := ParseMove(token)

	s.mu.Lock()
	if err != nil {
		current := s.state.Clone()
		s.mu.Unlock()
		return current, err
	}
	s.state = s.state.Apply(m)
	cb := s.transitionLocked()
	s.scheduleSaveLocked()
	s.logMoveLocked(m.Notation())
	current := s.state.Clone()
	s.mu.Unlock()

	if cb != nil {
		cb(current)
	}
	return current, nil
}

// Undo reverts the last player move. Scramble moves cannot be undone;
// when no player move is left the state is returned unchanged with ErrEmptyHistory.
func (s *Session) Undo() (State, error) {
	s.mu.Lock()
	if len(s.state.History) <= s.scrambleLen {
		current := s.state.Clone()
		s.mu.Unlock()
		return current, ErrEmptyHistory
	}
	s.state = UndoMove(s.state)
	cb := s.transitionLocked()
	s.scheduleSaveLocked()
	current := s.state.Clone()
	s.mu.Unlock()

	if cb != nil {
		cb(current)
	}
	return current, nil
}

// Reset discards the current game and history and starts a freshly scrambled one.
func (s *Session) Reset() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
	s.solved = IsSolved(s.state)
	s.scheduleSaveLocked()
	return s.state.Clone()
}

// Flush writes any pending save immediately.
func (s *Session) Flush(ctx context.Context) error {
	if s.saver == nil {
		return nil
	}
	return s.saver.Flush(ctx)
}

// Close flushes pending saves and waits for queued move logs.
// Moves made after Close are no longer logged.
func (s *Session) Close(ctx context.Context) error {
	err := s.Flush(ctx)

	s.mu.Lock()
	if s.logs != nil {
		close(s.logs)
		s.logs = nil
	}
	s.mu.Unlock()

	if s.logDone != nil {
		select {
		case <-s.logDone:
		case <-ctx.Done():
			if err == nil {
				err = ctx.Err()
			}
		}
	}
	return err
}

func (s *Session) resetLocked() {
	scrambler := NewScrambler(s.cfg.seeds())
	s.state = NewGame(s.cfg.size, scrambler, s.cfg.scrambleLength)
	s.seed = scrambler.SeedString()
	s.scrambleLen = len(s.state.History)
}

// transitionLocked updates the solved flag and returns the callback to run
// once the lock is released, if the cube just became solved.
func (s *Session) transitionLocked() func(State) {
	was := s.solved
	s.solved = IsSolved(s.state)
	if s.solved && !was {
		return s.onSolved
	}
	return nil
}

func (s *Session) scheduleSaveLocked() {
	if s.saver == nil {
		return
	}
	s.saver.Schedule(snapshot{
		state:       s.state.Clone(),
		solved:      s.solved,
		seed:        s.seed,
		scrambleLen: s.scrambleLen,
	})
}

// write is the debounced save.
func (s *Session) write(ctx context.Context, snap snapshot) error {
	var err error
	if ss, ok := s.cfg.store.(ScrambleStore); ok {
		err = ss.SaveScrambled(ctx, snap.state, snap.solved, snap.seed, snap.scrambleLen)
	} else {
		err = s.cfg.store.SaveState(ctx, snap.state, snap.solved, snap.seed)
	}
	if err != nil {
		return &PersistenceError{Op: "save", Err: err}
	}
	return nil
}

// logMoveLocked queues the move for the log worker without blocking.
// Queuing under the lock keeps the log in move order.
func (s *Session) logMoveLocked(token string) {
	if s.logs == nil {
		return
	}
	select {
	case s.logs <- token:
	default:
		s.cfg.logger.Printf("%v", &PersistenceError{Op: "log", Err: errLogQueueFull})
	}
}

// logLoop writes queued moves one at a time until logs is closed.
func (s *Session) logLoop(logs <-chan string) {
	defer close(s.logDone)
	for token := range logs {
		ctx, cancel := context.WithTimeout(context.Background(), logMoveTimeout)
		if err := s.cfg.store.LogMove(ctx, token); err != nil {
			s.cfg.logger.Printf("%v", &PersistenceError{Op: "log", Err: err})
		}
		cancel()
	}
}

func commonPrefix(a, b []string) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}
