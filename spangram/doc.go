// Package spangram turns exact covers into puzzle solutions: it designates
// one strand — or one chain of several cover strands merged end-to-start —
// as the spangram, the path spanning the grid across a full dimension, and
// enforces the puzzle's required word count.
//
// What:
//
//   - Resolver: configured once per puzzle with the grid and the required
//     word count K. Resolve inspects one cover at a time:
//
//   - count == K: every grid-spanning member yields a Solution directly;
//     several spanning members yield several Solutions.
//
//   - count > K: exactly count-K+1 strands must merge into a single chain.
//     Resolve enumerates every subset of that size and every chain
//     ordering of it (the last cell of each part adjacent to the first
//     cell of the next), keeps the chains that join without crossing and
//     span the grid, and emits one Solution per surviving chain. Merge
//     width is capped (default 5 words): real spangrams are never built
//     from many short fragments, and the cap keeps the secondary search
//     small.
//
//   - count < K: no Solution; a cover can only be reduced by merging,
//     never split.
//
// Duplicate words:
//
//	A word spellable at more than one grid location may never survive as a
//	standalone word, even in a cover holding just one of its placements.
//	WithDuplicateTexts declares the grid-wide set (the solver computes it
//	from the candidate strands); texts repeated within a single cover are
//	caught regardless. Every such strand is forced into the merge subset,
//	and covers whose duplicates cannot all be absorbed produce no
//	Solution. This mirrors the search-side rule that admits duplicates
//	only when explicitly designated.
//
// Determinism:
//
//	Cover order fixes subset and ordering enumeration, so identical input
//	always yields identical Solutions in identical order.
//
// Errors:
//
//   - ErrNilGrid, ErrWordCount, ErrMergeWidth — constructor preconditions.
//
// Resolve itself never fails: an empty result simply means this cover
// supports no valid spangram designation.
package spangram
