// Package solver orchestrates the full puzzle pipeline: candidate word
// discovery, duplicate-text designation, exact-cover enumeration, and
// spangram resolution.
//
// What: Solve takes a Puzzle (letters, required word count) and a
// core.Dictionary, and returns every Solution the grid supports, in a
// deterministic order. SolveBatch runs independent puzzles concurrently;
// each single Solve stays single-threaded.
//
// Why: the algorithm packages (wordfind, cover, spangram) are deliberately
// small and composable. This package is the one place that knows how they
// fit together, and the only one that logs.
//
// Logging: pass WithLogger to observe pipeline progress; by default all
// output is discarded.
//
// Errors: precondition violations surface as sentinel errors
// (ErrNilDictionary, ErrWordCount) or as errors from the stage
// constructors. Cancellation surfaces as the context's error. A puzzle
// with no solutions is a normal outcome, not an error.
package solver
