// Package strands is an in-memory engine for tiling a letter grid into
// non-overlapping, non-crossing word paths that cover every cell exactly
// once, with one designated path (the spangram) spanning the grid.
//
// 🚀 What is strands?
//
//	A deterministic exact-cover solving engine for word-grid puzzles:
//		• Core primitives: immutable Grid, Strand, Cover and Solution types
//		• Candidate generation: DFS word search under dictionary-prefix pruning
//		• Exact cover: MRV-driven backtracking over cell bitmasks
//		• Crossing geometry: O(1) diagonal-step intersection tests
//		• Spangram resolution: chain merging against a target word count
//
// ✨ Why choose strands?
//
//   - Deterministic – identical inputs always produce identical output order
//   - Cancellable – every search entry point honors context deadlines
//   - Lazy – covers are enumerated on demand, never materialized eagerly
//   - Explicit – dictionary and configuration are passed in, never ambient
//
// Under the hood, everything is organized under focused subpackages:
//
//	core/     — Grid, Cell, Mask, Strand, Cover, Solution & crossing geometry
//	wordfind/ — candidate strand generation over a grid and a dictionary
//	cover/    — coverage index + lazy exact-cover search
//	spangram/ — spangram detection and chain-merge resolution
//	solver/   — end-to-end pipeline, batch solving, progress logging
//	worddict/ — sorted word-list dictionary with prefix lookups
//
// Quick ASCII example:
//
//	    A B
//	    C D
//
//	with a dictionary holding AB and CD admits exactly one exact cover,
//	{AB, CD}, and both strands span the grid horizontally.
//
// Dive into README-style package docs of each subpackage for contracts,
// complexity notes and worked examples.
//
//	go get github.com/katalvlaran/strands
package strands
