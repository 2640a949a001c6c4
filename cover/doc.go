// Package cover finds exact covers of a letter grid by candidate strands:
// selections whose cell masks are pairwise disjoint, pairwise non-crossing,
// and whose union is the full grid.
//
// What:
//
//   - Index: built once per candidate set. Precomputes per-strand cell and
//     diagonal-step masks and a per-cell list of covering candidates, so
//     every compatibility test during search is a handful of AND
//     instructions.
//   - Covers: a backtracking search over the index, exposed as a lazy,
//     non-restartable Stream. Each call to Next resumes the search where
//     the previous cover was emitted; nothing is materialized eagerly.
//
// How the search works:
//
//	The engine keeps an explicit decision stack instead of native
//	recursion. At each node it picks the uncovered cell with the fewest
//	compatible candidates (minimum remaining values), tie-broken by lowest
//	cell bit index, and branches over that cell's candidates in ascending
//	index order. Forcing the least free decision first surfaces failures
//	near the root, which is what makes a formally exponential search behave
//	near-linearly at puzzle scale. A candidate is compatible when its mask
//	is disjoint from the covered mask, it crosses no chosen strand, and its
//	text is not already on the stack — unless the text was designated as an
//	allowed duplicate, the escape hatch used to let duplicated words reach
//	a spangram merge downstream.
//
// Termination and outcomes:
//
//	The covered mask strictly grows on every descent, so the search always
//	terminates. Exhausting the space without emitting a cover is a normal
//	outcome ("no exact cover exists"), reported as a drained Stream with a
//	nil Err. Cancellation via context is checked on every node event and
//	reported through Err as the context's error — never conflated with
//	exhaustion.
//
// Errors:
//
//   - ErrNilIndex, ErrNilGrid, ErrNilStrand — constructor preconditions.
//   - context errors — search cancelled or timed out, via Stream.Err.
package cover
