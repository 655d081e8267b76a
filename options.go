package revenge

import (
	"io"
	"log"
	"time"
)

// Option configures Session behavior.
type Option func(*config)

type config struct {
	size           int
	scrambleLength int
	store          Store
	logger         *log.Logger
	saveDebounce   time.Duration
	saveAttempts   int
	seeds          func() int64
}

func defaultConfig() *config {
	return &config{
		size:           DefaultSize,
		scrambleLength: DefaultScrambleLength,
		logger:         log.New(io.Discard, "", 0),
		saveDebounce:   500 * time.Millisecond,
		saveAttempts:   3,
		seeds:          NewSeed,
	}
}

// WithSize sets the cube order used for new games. Values below 2 are ignored.
func WithSize(n int) Option {
	return func(c *config) {
		if n >= 2 {
			c.size = n
		}
	}
}

// WithScrambleLength sets how many moves a fresh game is scrambled with.
func WithScrambleLength(n int) Option {
	return func(c *config) {
		c.scrambleLength = n
	}
}

// WithStore enables persistence.
// Without a store the session lives only in memory.
func WithStore(s Store) Option {
	return func(c *config) {
		c.store = s
	}
}

// WithLogger sets the logger that receives persistence failures.
// By default nothing is logged.
func WithLogger(l *log.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithSaveDebounce sets the idle window after the last move before the game is saved.
func WithSaveDebounce(d time.Duration) Option {
	return func(c *config) {
		c.saveDebounce = d
	}
}

// WithSaveAttempts sets how many times a failed background save is tried.
func WithSaveAttempts(n int) Option {
	return func(c *config) {
		c.saveAttempts = n
	}
}

// WithSeed makes every scramble of the session use seed.
// Intended for tests and reproducible demos.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seeds = func() int64 { return seed }
	}
}
