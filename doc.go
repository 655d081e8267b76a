// Package revenge models a 4x4x4 combination puzzle ("Rubik's Revenge") as 64
// cubies with position, orientation and stickers.
//
// # Features
//
//   - Value-semantics states: every move returns a new State
//   - Strict move notation (R, R', R2, Rw, Rw', Rw2 and the same for U, D, L, F, B)
//   - Seeded scrambles with no two consecutive moves on the same face
//   - Solved detection and undo by history replay
//   - A Session that persists the game through a Store with debounced saves
//
// # Quick Start
//
//	s := revenge.NewSolvedState()
//
//	s, err := revenge.ApplyMove(s, "Rw2")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Or from a sequence
//	s, err = revenge.ApplyNotation(s, "R U R' U'")
//
//	fmt.Println("Solved:", revenge.IsSolved(s))
//	fmt.Print(s)
//
// # Sessions
//
// A Session wraps a scrambled game and keeps it saved:
//
//	sess := revenge.NewSession(ctx,
//	    revenge.WithStore(store),
//	    revenge.WithSaveDebounce(time.Second),
//	)
//	defer sess.Close(ctx)
//
//	sess.OnSolved(func(s revenge.State) {
//	    fmt.Println("Solved in", len(sess.PlayerMoves()), "moves")
//	})
//
//	if _, err := sess.Move("F'"); err != nil {
//	    // errors.Is(err, revenge.ErrInvalidNotation)
//	}
//
// # Coordinates
//
// x grows from L to R, y from D to U and z from B to F, each in [0, N-1].
// A cubie shows a sticker on a face exactly when it lies in that face's outer layer.
package revenge
