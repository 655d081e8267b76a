package revenge

import "fmt"

// DefaultSize is the order of the cube this package models by default.
const DefaultSize = 4

// Color represents a sticker color.
type Color byte

const (
	NoColor Color = 0 // No sticker on this face of the cubie
	White   Color = 1 // Up face when solved
	Yellow  Color = 2 // Down face when solved
	Green   Color = 3 // Front face when solved
	Blue    Color = 4 // Back face when solved
	Red     Color = 5 // Right face when solved
	Orange  Color = 6 // Left face when solved
)

func (c Color) String() string {
	switch c {
	case NoColor:
		return "."
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// Vec is an integer grid coordinate (or direction) indexed by Axis.
type Vec [3]int

// Orientation holds the accumulated rotation of a cubie about each axis, in degrees.
// Every component is one of 0, 90, 180 or 270.
type Orientation [3]int

// Cubie is one of the N³ sub-units of the cube.
// Stickers is indexed by Face; NoColor means the cubie shows nothing on that face.
type Cubie struct {
	ID       int         `json:"id"`
	Pos      Vec         `json:"pos"`
	Orient   Orientation `json:"orient"`
	Stickers [6]Color    `json:"stickers"`
}

// Sticker returns the color the cubie shows on face f, and whether it shows one.
func (c Cubie) Sticker(f Face) (Color, bool) {
	color := c.Stickers[f]
	return color, color != NoColor
}

// State is a complete cube configuration.
// Cubies is indexed by cubie ID; the position of a cubie changes, its index never does.
// States are values: every transform in this package returns a new State and never
// writes to the slices of its input.
type State struct {
	Size    int      `json:"size"`
	Cubies  []Cubie  `json:"cubies"`
	History []string `json:"history"`
}

// NewSolvedState creates a solved 4x4 cube with standard orientation:
// White on top, Green in front.
func NewSolvedState() State {
	return NewSolvedStateN(DefaultSize)
}

// NewSolvedStateN creates a solved cube of order n.
// It panics if n < 2.
func NewSolvedStateN(n int) State {
	if n < 2 {
		panic(fmt.Sprintf("revenge: invalid cube size %d", n))
	}

	s := State{
		Size:    n,
		Cubies:  make([]Cubie, 0, n*n*n),
		History: []string{},
	}
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			for z := 0; z < n; z++ {
				c := Cubie{ID: len(s.Cubies), Pos: Vec{x, y, z}}
				for f := Face(0); f < numFaces; f++ {
					if c.Pos[f.Axis()] == f.Boundary(n) {
						c.Stickers[f] = f.SolvedColor()
					}
				}
				s.Cubies = append(s.Cubies, c)
			}
		}
	}
	return s
}

// Clone creates a deep copy of the state.
func (s State) Clone() State {
	clone := State{Size: s.Size}
	clone.Cubies = make([]Cubie, len(s.Cubies))
	copy(clone.Cubies, s.Cubies)
	clone.History = make([]string, len(s.History))
	copy(clone.History, s.History)
	return clone
}

// Equal reports whether two states have the same configuration.
// History is not compared: two different move sequences can reach the same cube.
func (s State) Equal(other State) bool {
	if s.Size != other.Size || len(s.Cubies) != len(other.Cubies) {
		return false
	}
	for i := range s.Cubies {
		if s.Cubies[i] != other.Cubies[i] {
			return false
		}
	}
	return true
}

// MoveCount returns the number of moves applied since the last reset.
func (s State) MoveCount() int {
	return len(s.History)
}

// Debug returns a one-line summary for logs.
func (s State) Debug() string {
	return fmt.Sprintf("Size: %d Moves: %d Solved: %v", s.Size, len(s.History), IsSolved(s))
}
