package game

// Rand is the randomness source used to break ties between equally scored
// cells. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// SelectMove picks a cell for self with a single-ply greedy scan over the
// empty cells in row-major order:
//  1. the first cell where self completes WinLength;
//  2. else the first cell where opponent would complete WinLength;
//  3. else a random cell among those giving self the longest run.
//
// With a nil rng the first of the best cells is returned.
func SelectMove(b *Board, self, opponent Color, rng Rand) (Cell, error) {
	empty := b.EmptyCells()
	if len(empty) == 0 {
		return Cell{}, ErrNoLegalMoves
	}

	var (
		block    Cell
		hasBlock bool
		bestRun  int
		best     []Cell
	)
	for _, c := range empty {
		selfRun := MaxRun(b, c, self)
		if selfRun >= WinLength {
			return c, nil
		}
		if !hasBlock && MaxRun(b, c, opponent) >= WinLength {
			block, hasBlock = c, true
		}
		switch {
		case selfRun > bestRun:
			bestRun = selfRun
			best = append(best[:0], c)
		case selfRun == bestRun:
			best = append(best, c)
		}
	}

	if hasBlock {
		return block, nil
	}
	if rng == nil {
		return best[0], nil
	}
	return best[rng.Intn(len(best))], nil
}
