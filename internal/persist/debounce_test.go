package persist

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type recorder struct {
	mu    sync.Mutex
	saved []int
	fail  int // number of calls to fail
	calls int
}

func (r *recorder) save(ctx context.Context, v int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.calls <= r.fail {
		return errors.New("write failed")
	}
	r.saved = append(r.saved, v)
	return nil
}

func (r *recorder) snapshot() ([]int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, len(r.saved))
	copy(out, r.saved)
	return out, r.calls
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("Timed out")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestDebouncer_CoalescesBurst(t *testing.T) {
	r := &recorder{}
	d := New(r.save, Config{Interval: 20 * time.Millisecond})

	for i := 1; i <= 5; i++ {
		d.Schedule(i)
	}
	waitFor(t, func() bool { return !d.Pending() })

	saved, calls := r.snapshot()
	if calls != 1 || len(saved) != 1 || saved[0] != 5 {
		t.Errorf("Expected one save of 5, got %v after %d calls", saved, calls)
	}
}

func TestDebouncer_FlushWritesNow(t *testing.T) {
	r := &recorder{}
	d := New(r.save, Config{Interval: time.Hour})

	d.Schedule(7)
	if !d.Pending() {
		t.Error("Expected a pending value")
	}
	if err := d.Flush(context.Background()); err != nil {
		t.Fatalf("Flush returned error: %v", err)
	}
	if d.Pending() {
		t.Error("Flush should clear the pending value")
	}

	// Nothing new to write.
	if err := d.Flush(context.Background()); err != nil {
		t.Fatalf("Second Flush returned error: %v", err)
	}
	saved, calls := r.snapshot()
	if calls != 1 || saved[0] != 7 {
		t.Errorf("Expected one save of 7, got %v after %d calls", saved, calls)
	}
}

func TestDebouncer_FlushReturnsError(t *testing.T) {
	r := &recorder{fail: 1}
	d := New(r.save, Config{Interval: time.Hour})

	d.Schedule(1)
	if err := d.Flush(context.Background()); err == nil {
		t.Error("Expected the save error")
	}
	if !d.Pending() {
		t.Error("A failed flush should keep the value pending")
	}
	if err := d.Flush(context.Background()); err != nil {
		t.Errorf("Retry should succeed, got %v", err)
	}
}

func TestDebouncer_Cancel(t *testing.T) {
	r := &recorder{}
	d := New(r.save, Config{Interval: 10 * time.Millisecond})

	d.Schedule(1)
	d.Cancel()
	time.Sleep(40 * time.Millisecond)

	if _, calls := r.snapshot(); calls != 0 {
		t.Errorf("Cancelled value should not be saved, got %d calls", calls)
	}
	if d.Pending() {
		t.Error("Cancel should clear the pending value")
	}
}

func TestDebouncer_RetriesThenGivesUp(t *testing.T) {
	r := &recorder{fail: 10}
	d := New(r.save, Config{Interval: 5 * time.Millisecond, MaxAttempts: 3})

	d.Schedule(1)
	waitFor(t, func() bool { return !d.Pending() })

	saved, calls := r.snapshot()
	if calls != 3 || len(saved) != 0 {
		t.Errorf("Expected 3 failed attempts, got %d calls and saves %v", calls, saved)
	}
}

func TestDebouncer_RetrySucceeds(t *testing.T) {
	r := &recorder{fail: 1}
	d := New(r.save, Config{Interval: 5 * time.Millisecond, MaxAttempts: 3})

	d.Schedule(42)
	waitFor(t, func() bool { return !d.Pending() })

	saved, calls := r.snapshot()
	if calls != 2 || len(saved) != 1 || saved[0] != 42 {
		t.Errorf("Expected success on the second attempt, got %v after %d calls", saved, calls)
	}
}
