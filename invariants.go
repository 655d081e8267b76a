package revenge

import "fmt"

// Validate checks that s is a configuration reachable from a solved cube:
//   - every grid coordinate holds exactly one cubie
//   - every orientation component is a multiple of 90 in [0, 360)
//   - a cubie shows a sticker on a face iff it sits on that face's outer layer
//   - each canonical color appears on exactly N² stickers
//   - every history token parses
//
// Errors wrap ErrInvalidState.
func Validate(s State) error {
	n := s.Size
	if n < 2 {
		return fmt.Errorf("%w: size %d", ErrInvalidState, n)
	}
	if len(s.Cubies) != n*n*n {
		return fmt.Errorf("%w: %d cubies, want %d", ErrInvalidState, len(s.Cubies), n*n*n)
	}

	occupied := make(map[Vec]int, len(s.Cubies))
	var colorCount [Orange + 1]int
	for i, c := range s.Cubies {
		if c.ID != i {
			return fmt.Errorf("%w: cubie at index %d has id %d", ErrInvalidState, i, c.ID)
		}
		for axis, v := range c.Pos {
			if v < 0 || v >= n {
				return fmt.Errorf("%w: cubie %d out of bounds on %s", ErrInvalidState, i, Axis(axis))
			}
		}
		if other, dup := occupied[c.Pos]; dup {
			return fmt.Errorf("%w: cubies %d and %d share position %v", ErrInvalidState, other, i, c.Pos)
		}
		occupied[c.Pos] = i

		for axis, deg := range c.Orient {
			if deg < 0 || deg >= 360 || deg%90 != 0 {
				return fmt.Errorf("%w: cubie %d has orientation %d on %s", ErrInvalidState, i, deg, Axis(axis))
			}
		}

		for _, f := range Faces {
			onFace := c.Pos[f.Axis()] == f.Boundary(n)
			color, has := c.Sticker(f)
			if onFace != has {
				return fmt.Errorf("%w: cubie %d sticker on %s does not match its position", ErrInvalidState, i, f)
			}
			if has {
				if color > Orange {
					return fmt.Errorf("%w: cubie %d has unknown color %d", ErrInvalidState, i, color)
				}
				colorCount[color]++
			}
		}
	}

	for _, f := range Faces {
		if got := colorCount[f.SolvedColor()]; got != n*n {
			return fmt.Errorf("%w: color %s appears on %d stickers, want %d", ErrInvalidState, f.SolvedColor(), got, n*n)
		}
	}

	for i, tok := range s.History {
		if _, err := ParseMove(tok); err != nil {
			return fmt.Errorf("%w: history entry %d: %v", ErrInvalidState, i, err)
		}
	}

	return nil
}
