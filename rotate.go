package revenge

// InSlice reports whether a cubie at pos is turned by a move of face f
// reaching slice layers deep (0 = outer layer only) on a cube of the given order.
func InSlice(pos Vec, f Face, slice, size int) bool {
	depth := pos[f.Axis()] - f.Boundary(size)
	if depth < 0 {
		depth = -depth
	}
	return depth <= slice
}

// Rotate returns the cubie after a quarter turn of face f.
// Clockwise is as seen looking at the face from outside the cube.
func (c Cubie) Rotate(f Face, clockwise bool, size int) Cubie {
	axis := f.Axis()

	// A clockwise turn is a negative right-handed rotation about the outward normal.
	q := -f.Sign()
	if !clockwise {
		q = -q
	}

	out := c

	// Rotate about the cube center on doubled coordinates (2p - (N-1)) so a
	// half-integer center stays integral and no rounding is involved.
	off := size - 1
	var d Vec
	for i := range d {
		d[i] = 2*c.Pos[i] - off
	}
	d = rotateVec(d, axis, q)
	for i := range d {
		out.Pos[i] = (d[i] + off) / 2
	}

	out.Orient[axis] = ((c.Orient[axis]+q*90)%360 + 360) % 360

	out.Stickers = [6]Color{}
	for g := Face(0); g < numFaces; g++ {
		if c.Stickers[g] == NoColor {
			continue
		}
		to, _ := faceFromNormal(rotateVec(g.Normal(), axis, q))
		out.Stickers[to] = c.Stickers[g]
	}

	return out
}

// rotateVec rotates v by q quarter turns (q = ±1) about axis, right-handed.
func rotateVec(v Vec, axis Axis, q int) Vec {
	x, y, z := v[AxisX], v[AxisY], v[AxisZ]
	switch axis {
	case AxisX:
		// (y, z) -> (-z, y)
		return Vec{x, -q * z, q * y}
	case AxisY:
		// (z, x) -> (-x, z)
		return Vec{q * z, y, -q * x}
	case AxisZ:
		// (x, y) -> (-y, x)
		return Vec{-q * y, q * x, z}
	}
	return v
}
