package revenge

import (
	"testing"
)

func TestNewSolvedStateIsSolved(t *testing.T) {
	s := NewSolvedState()
	if !IsSolved(s) {
		t.Error("New cube should be solved")
		t.Log(s.String())
	}
	if s.Size != 4 || len(s.Cubies) != 64 {
		t.Errorf("Expected 64 cubies of a 4x4, got size %d with %d cubies", s.Size, len(s.Cubies))
	}
	if len(s.History) != 0 {
		t.Errorf("New cube should have empty history, got %v", s.History)
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	s := NewSolvedState().Apply(MoveU)
	if IsSolved(s) {
		t.Error("Cube should not be solved after U move")
		t.Log(s.String())
	}
}

func TestStickersOnlyOnOuterLayer(t *testing.T) {
	s := NewSolvedState()
	stickers := 0
	inner := 0
	for _, c := range s.Cubies {
		n := 0
		for _, col := range c.Stickers {
			if col != NoColor {
				n++
			}
		}
		if n == 0 {
			inner++
		}
		stickers += n
	}
	if stickers != 96 {
		t.Errorf("Expected 96 stickers, got %d", stickers)
	}
	if inner != 8 {
		t.Errorf("Expected 8 hidden inner cubies, got %d", inner)
	}
}

func TestRRRR_ReturnsToSolved_AllFaces(t *testing.T) {
	for _, f := range Faces {
		for slice := 0; slice <= 1; slice++ {
			m := Move{Face: f, Slice: slice, Clockwise: true}
			s := NewSolvedState().Apply(m, m, m, m)
			if !s.Equal(NewSolvedState()) {
				t.Errorf("%s x 4 should return to solved", m)
				t.Log(s.String())
			}
		}
	}
}

func TestR_MovesFrontToUp(t *testing.T) {
	s := NewSolvedState().Apply(MoveR)
	up := s.Facelets(U)
	for row := 0; row < 4; row++ {
		if up[row][3] != Green {
			t.Errorf("U row %d right column: expected G, got %s", row, up[row][3])
		}
		if up[row][2] != White {
			t.Errorf("U row %d third column should not move on R, got %s", row, up[row][2])
		}
	}
	right := s.Facelets(R)
	for row := range right {
		for col := range right[row] {
			if right[row][col] != Red {
				t.Errorf("R face should stay red, got %s at %d,%d", right[row][col], row, col)
			}
		}
	}
	if !t.Failed() {
		return
	}
	t.Log(s.String())
}

func TestU_MovesFrontToLeft(t *testing.T) {
	s := NewSolvedState().Apply(MoveU)
	left := s.Facelets(L)
	for col := 0; col < 4; col++ {
		if left[0][col] != Green {
			t.Errorf("L top row col %d: expected G, got %s", col, left[0][col])
		}
	}
}

func TestF_MovesUpToRight(t *testing.T) {
	s := NewSolvedState().Apply(MoveF)
	right := s.Facelets(R)
	for row := 0; row < 4; row++ {
		if right[row][0] != White {
			t.Errorf("R row %d left column: expected W, got %s", row, right[row][0])
		}
	}
}

func TestWideMoveTurnsTwoLayers(t *testing.T) {
	s := NewSolvedState().Apply(MoveRw)
	up := s.Facelets(U)
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			want := White
			if col >= 2 {
				want = Green
			}
			if up[row][col] != want {
				t.Errorf("U %d,%d after Rw: expected %s, got %s", row, col, want, up[row][col])
			}
		}
	}
}

func TestSexyMove_6Times_ReturnsToSolved(t *testing.T) {
	s := NewSolvedState()
	for i := 0; i < 6; i++ {
		s = s.Apply(SexyMove...)
	}
	if !samePieces(s, NewSolvedState()) {
		t.Error("Sexy move x 6 should return every piece to its place")
		t.Log(s.String())
	}
	if s.MoveCount() != 24 {
		t.Errorf("Expected 24 moves in history, got %d", s.MoveCount())
	}
}

func TestTPerm_Twice_ReturnsToSolved(t *testing.T) {
	s := NewSolvedState().Apply(TPerm...)
	if IsSolved(s) {
		t.Error("T-perm should leave the cube unsolved")
	}
	// The U center turns a quarter per T-perm, so only the colors are compared.
	s = s.Apply(TPerm...)
	if !IsSolved(s) {
		t.Error("T-perm x 2 should return to solved")
		t.Log(s.String())
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	s := NewSolvedState()
	before := s.Clone()
	_ = s.Apply(MoveR, MoveU)
	if !s.Equal(before) || len(s.History) != 0 {
		t.Error("Apply must not modify its receiver")
	}
}

func TestCloneIsDeep(t *testing.T) {
	s := NewSolvedState().Apply(MoveR)
	c := s.Clone()
	c.Cubies[0].Pos = Vec{9, 9, 9}
	c.History[0] = "L"
	if s.Cubies[0].Pos == (Vec{9, 9, 9}) || s.History[0] != "R" {
		t.Error("Clone should not share slices with the original")
	}
}

func TestOrientationAccumulates(t *testing.T) {
	s := NewSolvedState().Apply(MoveR)
	for _, c := range s.Cubies {
		if c.Pos[AxisX] != 3 {
			if c.Orient != (Orientation{}) {
				t.Errorf("Cubie %d off the R layer should not rotate, got %v", c.ID, c.Orient)
			}
			continue
		}
		if c.Orient[AxisX] != 270 {
			t.Errorf("Cubie %d on R layer: expected x orientation 270, got %d", c.ID, c.Orient[AxisX])
		}
	}
}

func TestOtherSizes(t *testing.T) {
	for _, n := range []int{2, 3, 5} {
		s := NewSolvedStateN(n)
		if len(s.Cubies) != n*n*n {
			t.Errorf("Size %d: expected %d cubies, got %d", n, n*n*n, len(s.Cubies))
		}
		s = s.Apply(TPerm...).Apply(TPerm...)
		if !IsSolved(s) {
			t.Errorf("Size %d: T-perm x 2 should return to solved", n)
			t.Log(s.String())
		}
		if err := Validate(NewSolvedStateN(n).Apply(SexyMove...)); err != nil {
			t.Errorf("Size %d: %v", n, err)
		}
	}
}

func TestNewSolvedStateN_PanicsOnInvalidSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewSolvedStateN(1) should panic")
		}
	}()
	NewSolvedStateN(1)
}

func TestStringRendersNet(t *testing.T) {
	s := NewSolvedState()
	str := s.String()
	// 4 rows of U, 4 rows of L F R B, 4 rows of D
	lines := 0
	for _, r := range str {
		if r == '\n' {
			lines++
		}
	}
	if lines != 12 {
		t.Errorf("Expected 12 lines in net, got %d", lines)
		t.Log(str)
	}
}

func TestDebug(t *testing.T) {
	s := NewSolvedState().Apply(MoveR)
	if got := s.Debug(); got != "Size: 4 Moves: 1 Solved: false" {
		t.Errorf("Debug = %q", got)
	}
}

func TestProgress(t *testing.T) {
	if p := Progress(NewSolvedState()); p != 6 {
		t.Errorf("Solved cube should have 6 solved faces, got %d", p)
	}
	// R leaves only R and L homogeneous
	s := NewSolvedState().Apply(MoveR)
	faces := SolvedFaces(s)
	if len(faces) != 2 {
		t.Errorf("Expected 2 solved faces after R, got %v", faces)
	}
	for _, f := range faces {
		if f != R && f != L {
			t.Errorf("Unexpected solved face %s after R", f)
		}
	}
}

func TestIsSolved_AcceptsWholeCubeRotation(t *testing.T) {
	// Turning every layer about one axis rotates the whole cube.
	s := NewSolvedState().Apply(MoveRw, Move{Face: L, Slice: 1})
	if !IsSolved(s) {
		t.Error("A whole-cube rotation should still count as solved")
		t.Log(s.String())
	}
	if s.Equal(NewSolvedState()) {
		t.Error("A whole-cube rotation should differ from the canonical state")
	}
}

// samePieces compares positions and stickers but not accumulated orientation,
// which depends on the path a cubie took.
func samePieces(a, b State) bool {
	if len(a.Cubies) != len(b.Cubies) {
		return false
	}
	for i := range a.Cubies {
		if a.Cubies[i].Pos != b.Cubies[i].Pos || a.Cubies[i].Stickers != b.Cubies[i].Stickers {
			return false
		}
	}
	return true
}
