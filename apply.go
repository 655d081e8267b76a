package revenge

// ApplyMove parses token and applies it to state, returning the new state.
// The input state is left untouched. An unparseable token returns an error
// wrapping ErrInvalidNotation and a zero State.
func ApplyMove(state State, token string) (State, error) {
	m, err := ParseMove(token)
	if err != nil {
		return State{}, err
	}
	return state.Apply(m), nil
}

// ApplyMoves applies a sequence of tokens in order.
// The first invalid token aborts the whole sequence; state is left untouched.
func ApplyMoves(state State, tokens ...string) (State, error) {
	moves := make([]Move, 0, len(tokens))
	for _, tok := range tokens {
		m, err := ParseMove(tok)
		if err != nil {
			return State{}, err
		}
		moves = append(moves, m)
	}
	return state.Apply(moves...), nil
}

// ApplyNotation applies a whitespace-separated move sequence such as "R U R' U'".
func ApplyNotation(state State, s string) (State, error) {
	moves, err := ParseMoves(s)
	if err != nil {
		return State{}, err
	}
	return state.Apply(moves...), nil
}

// Apply returns the state after the given moves. Each move is appended to History.
func (s State) Apply(moves ...Move) State {
	next := s.Clone()
	for _, m := range moves {
		next.applyInPlace(m)
	}
	return next
}

// applyInPlace mutates s; callers must own s's slices.
func (s *State) applyInPlace(m Move) {
	turns := 1
	if m.Double {
		turns = 2
	}
	for i := range s.Cubies {
		if !InSlice(s.Cubies[i].Pos, m.Face, m.Slice, s.Size) {
			continue
		}
		for t := 0; t < turns; t++ {
			s.Cubies[i] = s.Cubies[i].Rotate(m.Face, m.Clockwise, s.Size)
		}
	}
	s.History = append(s.History, m.Notation())
}
