package revenge

// Axis identifies a coordinate axis.
// X grows from L to R, Y from D to U and Z from B to F.
type Axis int

const (
	AxisX Axis = 0
	AxisY Axis = 1
	AxisZ Axis = 2
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "?"
	}
}

// Face represents a cube face.
type Face int

const (
	U Face = 0 // Up (White)
	D Face = 1 // Down (Yellow)
	F Face = 2 // Front (Green)
	B Face = 3 // Back (Blue)
	R Face = 4 // Right (Red)
	L Face = 5 // Left (Orange)

	numFaces Face = 6
)

// Faces lists every face in enum order.
var Faces = []Face{U, D, F, B, R, L}

// faceSpec describes a face by the axis it is perpendicular to and the direction
// of its outward normal along that axis. Slice selection, rotation and solved
// detection are all driven by this table, so no code path depends on the cube order.
type faceSpec struct {
	letter byte
	axis   Axis
	sign   int // +1: boundary at N-1, -1: boundary at 0
	color  Color
}

var faceTable = [numFaces]faceSpec{
	U: {'U', AxisY, +1, White},
	D: {'D', AxisY, -1, Yellow},
	F: {'F', AxisZ, +1, Green},
	B: {'B', AxisZ, -1, Blue},
	R: {'R', AxisX, +1, Red},
	L: {'L', AxisX, -1, Orange},
}

func (f Face) String() string {
	if f < 0 || f >= numFaces {
		return "?"
	}
	return string(faceTable[f].letter)
}

// Axis returns the axis the face is perpendicular to.
func (f Face) Axis() Axis {
	return faceTable[f].axis
}

// Sign returns +1 if the face's outward normal points along the positive axis, -1 otherwise.
func (f Face) Sign() int {
	return faceTable[f].sign
}

// Boundary returns the coordinate of the face's outer layer on a cube of the given order.
func (f Face) Boundary(size int) int {
	if faceTable[f].sign > 0 {
		return size - 1
	}
	return 0
}

// SolvedColor returns the color of a face when solved.
func (f Face) SolvedColor() Color {
	return faceTable[f].color
}

// Opposite returns the face on the other side of the cube.
func (f Face) Opposite() Face {
	for g := Face(0); g < numFaces; g++ {
		if g != f && faceTable[g].axis == faceTable[f].axis {
			return g
		}
	}
	return f
}

// Normal returns the outward unit normal of the face.
func (f Face) Normal() Vec {
	var v Vec
	v[faceTable[f].axis] = faceTable[f].sign
	return v
}

// faceFromLetter returns the face for a notation letter.
func faceFromLetter(c byte) (Face, bool) {
	for f := Face(0); f < numFaces; f++ {
		if faceTable[f].letter == c {
			return f, true
		}
	}
	return 0, false
}

// faceFromNormal returns the face whose outward normal is v.
func faceFromNormal(v Vec) (Face, bool) {
	for f := Face(0); f < numFaces; f++ {
		if f.Normal() == v {
			return f, true
		}
	}
	return 0, false
}
