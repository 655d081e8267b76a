package revenge

import (
	"fmt"
	"strings"
)

// Move is a parsed notation token.
// Slice is 0 for an outer-layer turn and 1 for a wide turn, which also
// rotates the layer directly behind the face.
type Move struct {
	Face      Face // Which face to turn
	Slice     int  // Deepest layer turned, counted from the face
	Clockwise bool // Direction, as seen looking at the face
	Double    bool // Half turn
}

// Notation returns the standard notation token for this move.
// Examples: R, R', R2, Rw, Rw', Rw2
func (m Move) Notation() string {
	var b strings.Builder
	b.WriteString(m.Face.String())
	if m.Slice > 0 {
		b.WriteByte('w')
	}
	switch {
	case m.Double:
		b.WriteByte('2')
	case !m.Clockwise:
		b.WriteByte('\'')
	}
	return b.String()
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// Inverse returns the inverse of this move.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverse() Move {
	inv := m
	if !m.Double {
		inv.Clockwise = !m.Clockwise
	}
	return inv
}

// ParseMove parses a notation token into a Move.
// Accepted tokens match ^[UDLRFB]w?(2|')?$; anything else returns an error
// wrapping ErrInvalidNotation.
func ParseMove(s string) (Move, error) {
	if len(s) == 0 {
		return Move{}, fmt.Errorf("%w: empty token", ErrInvalidNotation)
	}

	face, ok := faceFromLetter(s[0])
	if !ok {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	m := Move{Face: face, Clockwise: true}
	rest := s[1:]
	if strings.HasPrefix(rest, "w") {
		m.Slice = 1
		rest = rest[1:]
	}

	switch rest {
	case "":
	case "'":
		m.Clockwise = false
	case "2":
		m.Double = true
	default:
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	return m, nil
}

// MustParseMove is like ParseMove but panics on invalid notation.
func MustParseMove(s string) Move {
	m, err := ParseMove(s)
	if err != nil {
		panic(err)
	}
	return m
}

// ParseMoves parses a whitespace-separated sequence of moves.
// Example: "R U R' U'"
// The first invalid token aborts parsing.
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for i, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// InverseNotation returns the token that undoes token.
// A prime is added or removed; half turns are their own inverse.
func InverseNotation(token string) (string, error) {
	m, err := ParseMove(token)
	if err != nil {
		return "", err
	}
	return m.Inverse().Notation(), nil
}

// InverseSequence returns the tokens that undo tokens, in reverse order.
func InverseSequence(tokens []string) ([]string, error) {
	inv := make([]string, len(tokens))
	for i, tok := range tokens {
		t, err := InverseNotation(tok)
		if err != nil {
			return nil, err
		}
		inv[len(tokens)-1-i] = t
	}
	return inv, nil
}
