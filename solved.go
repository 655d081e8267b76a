package revenge

// IsSolved returns true if every face shows a single color.
// Any homogeneous coloring counts, not only the canonical one.
func IsSolved(s State) bool {
	for _, f := range Faces {
		if !faceHomogeneous(s, f) {
			return false
		}
	}
	return true
}

// SolvedFaces returns the faces whose stickers all share one color.
func SolvedFaces(s State) []Face {
	var faces []Face
	for _, f := range Faces {
		if faceHomogeneous(s, f) {
			faces = append(faces, f)
		}
	}
	return faces
}

// Progress returns how many of the six faces are homogeneous.
func Progress(s State) int {
	return len(SolvedFaces(s))
}

// faceHomogeneous checks the stickers on the outer layer of face f.
func faceHomogeneous(s State, f Face) bool {
	boundary := f.Boundary(s.Size)
	axis := f.Axis()
	first := NoColor
	for _, c := range s.Cubies {
		if c.Pos[axis] != boundary {
			continue
		}
		color, ok := c.Sticker(f)
		if !ok {
			continue
		}
		if first == NoColor {
			first = color
			continue
		}
		if color != first {
			return false
		}
	}
	return true
}
