package revenge

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestValidate_Reachable(t *testing.T) {
	if err := Validate(NewSolvedState()); err != nil {
		t.Errorf("Solved cube: %v", err)
	}
	if err := Validate(scrambled(t)); err != nil {
		t.Errorf("Scrambled cube: %v", err)
	}
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *State)
	}{
		{"missing cubie", func(s *State) { s.Cubies = s.Cubies[:63] }},
		{"bad size", func(s *State) { s.Size = 1 }},
		{"shuffled ids", func(s *State) { s.Cubies[0].ID = 5 }},
		{"out of bounds", func(s *State) { s.Cubies[0].Pos = Vec{4, 0, 0} }},
		{"shared position", func(s *State) {
			s.Cubies[21].Pos = s.Cubies[22].Pos
		}},
		{"odd orientation", func(s *State) { s.Cubies[3].Orient[AxisY] = 45 }},
		{"full turn orientation", func(s *State) { s.Cubies[3].Orient[AxisZ] = 360 }},
		{"sticker inside", func(s *State) { s.Cubies[21].Stickers[U] = White }},
		{"missing sticker", func(s *State) { s.Cubies[0].Stickers[D] = NoColor }},
		{"recolored", func(s *State) { s.Cubies[0].Stickers[D] = White }},
		{"bad history", func(s *State) { s.History = append(s.History, "Q") }},
	}

	// Mutations index cubies by their solved positions.
	for _, tt := range tests {
		s := NewSolvedState().Apply(MoveU, MoveUPrime)
		tt.mutate(&s)
		err := Validate(s)
		if err == nil {
			t.Errorf("%s: expected an error", tt.name)
			continue
		}
		if !errors.Is(err, ErrInvalidState) {
			t.Errorf("%s: error %v should wrap ErrInvalidState", tt.name, err)
		}
	}
}

func TestStateJSON(t *testing.T) {
	want := scrambled(t)
	data, err := json.Marshal(want)
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}
	var got State
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if !got.Equal(want) || len(got.History) != len(want.History) {
		t.Error("State should survive a JSON round trip")
	}
	if err := Validate(got); err != nil {
		t.Error(err)
	}
}
