package revenge

import (
	"testing"
)

func TestUndoLaw(t *testing.T) {
	start := scrambled(t)
	for _, tok := range AllTokens {
		s, err := ApplyMove(start, tok)
		if err != nil {
			t.Fatalf("ApplyMove(%q) returned error: %v", tok, err)
		}
		undone := UndoMove(s)
		if !undone.Equal(start) {
			t.Errorf("Undo after %s should restore the previous state", tok)
		}
		if len(undone.History) != len(start.History) {
			t.Errorf("Undo after %s: history length %d, want %d", tok, len(undone.History), len(start.History))
		}
	}
}

func TestUndoMove_EmptyHistory(t *testing.T) {
	s := NewSolvedState()
	undone := UndoMove(s)
	if !undone.Equal(s) || len(undone.History) != 0 {
		t.Error("Undo on empty history should return the state unchanged")
	}
}

func TestUndoMove_ZeroState(t *testing.T) {
	s := State{History: []string{"R"}}
	undone := UndoMove(s)
	if undone.Size != 0 || len(undone.History) != 1 {
		t.Errorf("Undo on a zero state should return it unchanged, got %s", undone.Debug())
	}

	// ApplyMove returns a zero State next to its error.
	bad, err := ApplyMove(NewSolvedState(), "xyz")
	if err == nil {
		t.Fatal("Expected an error for xyz")
	}
	bad.History = []string{"R", "U"}
	_ = UndoMove(bad)
}

func TestUndoMove_CorruptHistory(t *testing.T) {
	s := NewSolvedState().Apply(MoveR)
	s.History = []string{"bogus", "R"}
	undone := UndoMove(s)
	if !undone.Equal(s) {
		t.Error("Undo with unparseable history should return the state unchanged")
	}
}

func TestUndoMove_RepeatedToSolved(t *testing.T) {
	s := scrambled(t)
	for s.MoveCount() > 0 {
		s = UndoMove(s)
	}
	if !s.Equal(NewSolvedState()) {
		t.Error("Undoing every move should give the solved cube")
		t.Log(s.String())
	}
}

func TestReplay(t *testing.T) {
	want := scrambled(t)
	got, err := Replay(want.Size, want.History)
	if err != nil {
		t.Fatalf("Replay returned error: %v", err)
	}
	if !got.Equal(want) {
		t.Error("Replaying history should reproduce the state")
	}

	if _, err := Replay(4, []string{"R", "Z"}); err == nil {
		t.Error("Replay should fail on an invalid token")
	}
}
