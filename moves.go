package revenge

// Predefined moves for convenience.
// Use these instead of constructing Move structs manually.
//
// Example:
//
//	s := revenge.NewSolvedState().Apply(revenge.MoveR, revenge.MoveU, revenge.MoveRPrime)
var (
	// Right face moves
	MoveR      = Move{Face: R, Clockwise: true}              // Right clockwise
	MoveRPrime = Move{Face: R}                               // Right counter-clockwise
	MoveR2     = Move{Face: R, Clockwise: true, Double: true} // Right 180

	// Left face moves
	MoveL      = Move{Face: L, Clockwise: true}
	MoveLPrime = Move{Face: L}
	MoveL2     = Move{Face: L, Clockwise: true, Double: true}

	// Up face moves
	MoveU      = Move{Face: U, Clockwise: true}
	MoveUPrime = Move{Face: U}
	MoveU2     = Move{Face: U, Clockwise: true, Double: true}

	// Down face moves
	MoveD      = Move{Face: D, Clockwise: true}
	MoveDPrime = Move{Face: D}
	MoveD2     = Move{Face: D, Clockwise: true, Double: true}

	// Front face moves
	MoveF      = Move{Face: F, Clockwise: true}
	MoveFPrime = Move{Face: F}
	MoveF2     = Move{Face: F, Clockwise: true, Double: true}

	// Back face moves
	MoveB      = Move{Face: B, Clockwise: true}
	MoveBPrime = Move{Face: B}
	MoveB2     = Move{Face: B, Clockwise: true, Double: true}

	// Wide moves turn the outer layer and the one behind it
	MoveRw = Move{Face: R, Slice: 1, Clockwise: true}
	MoveLw = Move{Face: L, Slice: 1, Clockwise: true}
	MoveUw = Move{Face: U, Slice: 1, Clockwise: true}
	MoveDw = Move{Face: D, Slice: 1, Clockwise: true}
	MoveFw = Move{Face: F, Slice: 1, Clockwise: true}
	MoveBw = Move{Face: B, Slice: 1, Clockwise: true}
)

// Sexy move: R U R' U'
var SexyMove = []Move{MoveR, MoveU, MoveRPrime, MoveUPrime}

// T-perm algorithm
var TPerm = []Move{MoveR, MoveU, MoveRPrime, MoveUPrime, MoveRPrime, MoveF, MoveR2, MoveUPrime, MoveRPrime, MoveUPrime, MoveR, MoveU, MoveRPrime, MoveFPrime}

// AllTokens lists every token the move grammar accepts.
var AllTokens = func() []string {
	var tokens []string
	for _, f := range Faces {
		for slice := 0; slice <= 1; slice++ {
			for _, m := range []Move{
				{Face: f, Slice: slice, Clockwise: true},
				{Face: f, Slice: slice},
				{Face: f, Slice: slice, Clockwise: true, Double: true},
			} {
				tokens = append(tokens, m.Notation())
			}
		}
	}
	return tokens
}()
