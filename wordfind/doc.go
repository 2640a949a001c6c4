// Package wordfind enumerates every candidate strand in a letter grid: each
// simple, non-self-crossing path under 8-directional adjacency whose spelled
// text is a dictionary word of at least the configured minimum length.
//
// What:
//
//   - Finder: depth-first expansion from every starting cell. A branch is
//     abandoned the moment its spelled prefix is no longer a dictionary
//     prefix — this single check is what keeps the formally exponential
//     enumeration tractable on puzzle-scale grids. Extensions that would
//     cross an edge already walked by the same path are pruned as well.
//
// Determinism:
//
//	Starting cells are scanned in row-major order and neighbors expanded in
//	core.NeighborOffsets order, so identical (grid, dictionary) inputs
//	always yield the same candidate sequence. Strands covering the same
//	cell set with the same text via a different traversal order are
//	deduplicated, keeping the first one generated.
//
// Complexity:
//
//	Worst case exponential in grid size; in practice prefix pruning bounds
//	the live frontier to paths that are genuine word prefixes. Memory is
//	O(path length) beyond the output.
//
// Errors:
//
//   - ErrNilGrid, ErrNilDictionary, ErrMinLength — constructor preconditions.
//   - context errors — enumeration cancelled via context.Context.
//
// An empty result is a valid outcome: the grid simply contains no words.
package wordfind
