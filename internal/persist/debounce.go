// Package persist coalesces bursts of state changes into background saves.
package persist

import (
	"context"
	"io"
	"log"
	"sync"
	"time"
)

// SaveFunc writes one snapshot.
type SaveFunc[T any] func(ctx context.Context, v T) error

// Config controls a Debouncer.
type Config struct {
	// Interval is the idle window after the last Schedule before a save runs.
	Interval time.Duration
	// MaxAttempts bounds how often a failed background save is tried (at least 1).
	MaxAttempts int
	// Logger receives failed saves. Nil discards them.
	Logger *log.Logger
}

// Debouncer saves the most recently scheduled value once no new value has
// arrived for Interval. Background failures are logged and retried with a
// doubling delay; they are never returned to the caller of Schedule.
// Saves never overlap, and a save never writes an older value after a newer one.
type Debouncer[T any] struct {
	save        SaveFunc[T]
	interval    time.Duration
	maxAttempts int
	logger      *log.Logger

	saveMu sync.Mutex // held for the duration of a save

	mu      sync.Mutex
	timer   *time.Timer
	pending T
	seq     uint64 // bumped by every Schedule
	done    uint64 // highest seq written or abandoned
}

// New creates a Debouncer around save.
func New[T any](save SaveFunc[T], cfg Config) *Debouncer[T] {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard, "", 0)
	}
	return &Debouncer[T]{
		save:        save,
		interval:    cfg.Interval,
		maxAttempts: cfg.MaxAttempts,
		logger:      cfg.Logger,
	}
}

// Schedule replaces the pending value and restarts the idle timer.
func (d *Debouncer[T]) Schedule(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending = v
	d.seq++
	d.stopLocked()
	d.timer = time.AfterFunc(d.interval, func() { d.fire(1) })
}

// Pending reports whether a scheduled value has not been written yet.
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.seq != d.done
}

// Flush writes the pending value now, if there is one, and returns the save error.
func (d *Debouncer[T]) Flush(ctx context.Context) error {
	d.mu.Lock()
	d.stopLocked()
	d.mu.Unlock()

	_, err := d.drain(ctx)
	return err
}

// Cancel drops the pending value without writing it.
func (d *Debouncer[T]) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopLocked()
	d.done = d.seq
	var zero T
	d.pending = zero
}

func (d *Debouncer[T]) stopLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// fire runs on the timer goroutine.
func (d *Debouncer[T]) fire(attempt int) {
	seq, err := d.drain(context.Background())
	if err == nil {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.seq != seq {
		// A newer value is scheduled; its own timer will write it.
		return
	}
	if attempt >= d.maxAttempts {
		d.logger.Printf("save failed after %d attempts, giving up: %v", attempt, err)
		d.done = seq
		return
	}

	delay := d.interval << (attempt - 1)
	d.logger.Printf("save failed (attempt %d/%d), retrying in %s: %v", attempt, d.maxAttempts, delay, err)
	d.stopLocked()
	d.timer = time.AfterFunc(delay, func() { d.fire(attempt + 1) })
}

// drain writes the pending value if it is newer than the last write.
// It returns the seq it attempted.
func (d *Debouncer[T]) drain(ctx context.Context) (uint64, error) {
	d.saveMu.Lock()
	defer d.saveMu.Unlock()

	d.mu.Lock()
	if d.seq == d.done {
		done := d.done
		d.mu.Unlock()
		return done, nil
	}
	v, seq := d.pending, d.seq
	d.mu.Unlock()

	if err := d.save(ctx, v); err != nil {
		return seq, err
	}

	d.mu.Lock()
	if seq > d.done {
		d.done = seq
	}
	d.mu.Unlock()
	return seq, nil
}
