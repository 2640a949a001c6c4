package core

// Crossing geometry.
//
// Every step between consecutive strand cells is either orthogonal or
// diagonal. Orthogonal unit steps can never intersect another step without
// sharing a cell, so only diagonal steps matter. A diagonal step occupies one
// diagonal of exactly one 2×2 block of cells; two paths cross iff one uses
// the ↘ diagonal of some block as a consecutive step while the other uses
// the ↗ diagonal of the same block.
//
// Each 2×2 block is identified by its top-left cell and indexed row-major
// over the (rows-1)×(cols-1) block lattice. With at most 64 grid cells the
// lattice holds at most 49 blocks, so one Mask per orientation covers it.

// DiagStep classifies the step a→b. For a diagonal step it returns the
// block-lattice bit for the block the step occupies, whether the step lies
// on the ↘ (down) diagonal, and ok=true. Orthogonal steps return ok=false.
//
// Exposed for callers that account crossings incrementally while extending
// a path (candidate generation prunes self-crossing branches this way).
func DiagStep(a, b Cell, cols int) (bit Mask, down bool, ok bool) {
	dr, dc := b.Row-a.Row, b.Col-a.Col
	if dr == 0 || dc == 0 {
		return 0, false, false
	}
	// Top-left cell of the 2×2 block containing both endpoints.
	tr, tc := a.Row, a.Col
	if b.Row < tr {
		tr = b.Row
	}
	if b.Col < tc {
		tc = b.Col
	}

	return Mask(1) << uint(tr*(cols-1)+tc), dr == dc, true
}
