package revenge

import "fmt"

// UndoMove returns the state before the last move in s.History.
// It rebuilds the state by replaying all but the last token over a solved cube,
// so its cost grows with the history length. With an empty history s is
// returned unchanged, as it is for a zero State or when the history holds a
// token that does not parse.
func UndoMove(s State) State {
	if len(s.History) == 0 || s.Size < 2 {
		return s
	}
	prev, err := Replay(s.Size, s.History[:len(s.History)-1])
	if err != nil {
		return s
	}
	return prev
}

// Replay builds the state reached by applying tokens to a solved cube of the given order.
func Replay(size int, tokens []string) (State, error) {
	s := NewSolvedStateN(size)
	for i, tok := range tokens {
		m, err := ParseMove(tok)
		if err != nil {
			return State{}, fmt.Errorf("history entry %d: %w", i, err)
		}
		s.applyInPlace(m)
	}
	return s, nil
}

// NewGame returns a solved cube of the given order with a fresh scramble of
// n moves applied. The scramble tokens are the first entries of History.
func NewGame(size int, scrambler *Scrambler, n int) State {
	s := NewSolvedStateN(size)
	for _, tok := range scrambler.Generate(n) {
		s.applyInPlace(MustParseMove(tok))
	}
	return s
}
