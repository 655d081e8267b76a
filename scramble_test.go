package revenge

import (
	"strings"
	"testing"
)

func TestGenerateScramble_NoRepeatedFace(t *testing.T) {
	for i := 0; i < 50; i++ {
		tokens := GenerateScramble(30)
		if len(tokens) != 30 {
			t.Fatalf("Expected 30 tokens, got %d", len(tokens))
		}
		for j, tok := range tokens {
			m, err := ParseMove(tok)
			if err != nil {
				t.Fatalf("Scramble token %q does not parse: %v", tok, err)
			}
			if m.Slice != 0 {
				t.Errorf("Scramble should only use outer turns, got %q", tok)
			}
			if j > 0 && tok[0] == tokens[j-1][0] {
				t.Errorf("Consecutive tokens share a face: %s", strings.Join(tokens, " "))
				break
			}
		}
	}
}

func TestScrambler_Deterministic(t *testing.T) {
	a := NewScrambler(42).Generate(30)
	b := NewScrambler(42).Generate(30)
	if strings.Join(a, " ") != strings.Join(b, " ") {
		t.Errorf("Same seed should give the same scramble:\n%v\n%v", a, b)
	}

	c := NewScrambler(43).Generate(30)
	if strings.Join(a, " ") == strings.Join(c, " ") {
		t.Error("Different seeds should give different scrambles")
	}
}

func TestScrambler_Empty(t *testing.T) {
	for _, n := range []int{0, -3} {
		tokens := NewScrambler(1).Generate(n)
		if tokens == nil || len(tokens) != 0 {
			t.Errorf("Generate(%d) should return an empty slice, got %#v", n, tokens)
		}
	}
}

func TestSeedString_RoundTrip(t *testing.T) {
	s := NewScrambler(-1234567890123)
	seed, err := ParseSeed(s.SeedString())
	if err != nil {
		t.Fatalf("ParseSeed returned error: %v", err)
	}
	if seed != s.Seed() {
		t.Errorf("ParseSeed(%q) = %d, want %d", s.SeedString(), seed, s.Seed())
	}
	if _, err := ParseSeed("not a seed"); err == nil {
		t.Error("ParseSeed should reject non-numeric input")
	}
}

func TestNewGame(t *testing.T) {
	s := NewGame(4, NewScrambler(7), 30)
	want := NewScrambler(7).Generate(30)
	if strings.Join(s.History, " ") != strings.Join(want, " ") {
		t.Errorf("History should hold the scramble:\n%v\n%v", s.History, want)
	}
	if err := Validate(s); err != nil {
		t.Error(err)
	}
	if IsSolved(s) {
		t.Log("Scramble happened to solve the cube")
	}
}
