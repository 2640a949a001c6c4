// Package core defines the fundamental data model shared by every stage of
// the strands solving engine: grid geometry, cell bitmasks, strands (simple
// word paths), covers, solutions, and the crossing relation between paths.
//
// What:
//
//   - Grid: an immutable rows×cols arrangement of letters with 8-directional
//     adjacency, row-major bit indexing, and a spanning test.
//   - Mask: a uint64 bitset over cell indices; a Grid never exceeds 64 cells.
//   - Strand: an immutable simple path under grid adjacency, carrying its
//     spelled text, its cell Mask, and per-orientation diagonal-step masks
//     that make the crossing test a pair of AND instructions.
//   - Cover: an exact cover of the grid by pairwise disjoint, pairwise
//     non-crossing strands.
//   - Solution: a Cover plus the designation of one strand — possibly a
//     chain of several merged strands — as the spangram.
//   - Dictionary: the lookup capability consumed by candidate generation.
//
// Why:
//
//	Every downstream stage (candidate generation, exact-cover search,
//	spangram resolution) shares exactly these primitives, and all of their
//	hot-path compatibility checks reduce to O(1) bitmask operations defined
//	here.
//
// Crossing geometry:
//
//	Two strands cross when, inside some 2×2 block of cells, one traverses
//	the block's ↘ diagonal as a consecutive step while the other traverses
//	the ↗ diagonal of the same block — their paths intersect between cell
//	centers without sharing a cell. Each Strand precomputes one bit per
//	2×2 block for each diagonal orientation, so Crosses is O(1).
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular, ErrGridTooLarge, ErrBadLetter —
//     grid construction preconditions.
//   - ErrNilGrid, ErrEmptyStrand, ErrOutOfBounds, ErrNotAdjacent,
//     ErrRepeatedCell, ErrSelfCrossing — strand construction preconditions.
//   - ErrNothingToChain — Chain called without parts.
//
// All types in this package are immutable after construction and safe for
// concurrent read access without locking.
package core
