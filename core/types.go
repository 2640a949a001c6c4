// Package core types: cells, bitmasks, neighbor offsets, and the dictionary
// capability consumed by candidate generation.
package core

import "math/bits"

// Cell is a single grid position. Row 0 is the top row, Col 0 the left column.
type Cell struct {
	Row, Col int
}

// NeighborOffsets lists the eight adjacency directions in the fixed order
// used by every traversal in the engine: E, SE, S, SW, W, NW, N, NE.
// The order is part of the engine's determinism contract.
var NeighborOffsets = [8][2]int{
	{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
}

// Adjacent reports whether a and b are distinct 8-directionally adjacent cells.
func Adjacent(a, b Cell) bool {
	dr, dc := a.Row-b.Row, a.Col-b.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}

	return (dr | dc) != 0 && dr <= 1 && dc <= 1
}

// Mask is a bitset over cell indices (bit i = cell with BitIndex i).
// A Grid never exceeds 64 cells, so a single word always suffices.
type Mask uint64

// Has reports whether bit i is set.
func (m Mask) Has(i int) bool { return m>>uint(i)&1 == 1 }

// Count returns the number of set bits.
func (m Mask) Count() int { return bits.OnesCount64(uint64(m)) }

// Overlaps reports whether the two masks share any bit.
func (m Mask) Overlaps(other Mask) bool { return m&other != 0 }

// Dictionary is the word-lookup capability consumed by candidate generation.
// Implementations must be deterministic, side-effect-free, and safe for
// concurrent use; lookups are expected sub-linear in dictionary size.
type Dictionary interface {
	// IsWord reports whether text is a complete dictionary word.
	IsWord(text string) bool
	// IsPrefix reports whether text is a prefix of at least one word
	// (a complete word is a prefix of itself).
	IsPrefix(text string) bool
}
