package revenge

import "strings"

// Facelets returns the stickers of face f as a Size x Size grid, row 0 on top,
// laid out as the face appears in an unfolded net:
//
//	    U
//	L   F   R   B
//	    D
//
// U is seen from above with B at the top; D from below with F at the top.
func (s State) Facelets(f Face) [][]Color {
	n := s.Size
	byPos := make(map[Vec]Cubie, len(s.Cubies))
	for _, c := range s.Cubies {
		byPos[c.Pos] = c
	}

	grid := make([][]Color, n)
	for row := 0; row < n; row++ {
		grid[row] = make([]Color, n)
		for col := 0; col < n; col++ {
			grid[row][col] = byPos[faceletPos(f, row, col, n)].Stickers[f]
		}
	}
	return grid
}

// faceletPos maps a net cell of face f to the grid coordinate of the cubie behind it.
func faceletPos(f Face, row, col, n int) Vec {
	top := n - 1 - row // y for side faces
	switch f {
	case U:
		return Vec{col, n - 1, row}
	case D:
		return Vec{col, 0, n - 1 - row}
	case F:
		return Vec{col, top, n - 1}
	case B:
		return Vec{n - 1 - col, top, 0}
	case R:
		return Vec{n - 1, top, n - 1 - col}
	case L:
		return Vec{0, top, col}
	}
	return Vec{}
}

// String returns a text representation of the cube as an unfolded net.
func (s State) String() string {
	var b strings.Builder
	n := s.Size
	indent := strings.Repeat("  ", n)

	writeRow := func(row []Color) {
		for _, c := range row {
			b.WriteString(c.String())
			b.WriteByte(' ')
		}
	}

	// U face (indented)
	up := s.Facelets(U)
	for row := 0; row < n; row++ {
		b.WriteString(indent)
		writeRow(up[row])
		b.WriteString("\n")
	}

	// L, F, R, B faces (side by side)
	sides := [][][]Color{s.Facelets(L), s.Facelets(F), s.Facelets(R), s.Facelets(B)}
	for row := 0; row < n; row++ {
		for _, face := range sides {
			writeRow(face[row])
		}
		b.WriteString("\n")
	}

	// D face (indented)
	down := s.Facelets(D)
	for row := 0; row < n; row++ {
		b.WriteString(indent)
		writeRow(down[row])
		b.WriteString("\n")
	}

	return b.String()
}
