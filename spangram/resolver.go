package spangram

import "github.com/katalvlaran/strands/core"

// Resolver designates spangrams for covers of one puzzle. It is immutable
// after construction and safe to share across goroutines; each Resolve call
// owns its own state.
type Resolver struct {
	grid     *core.Grid
	numWords int
	maxMerge int
	dup      map[string]bool
}

// New constructs a Resolver for a puzzle requiring numWords words, counting
// a merged spangram as one word.
//
// Returns ErrNilGrid, ErrWordCount, or ErrMergeWidth on precondition
// violations.
func New(g *core.Grid, numWords int, opts ...Option) (*Resolver, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if numWords < 1 {
		return nil, ErrWordCount
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.MaxMergeWords < 1 {
		return nil, ErrMergeWidth
	}
	dup := make(map[string]bool, len(o.DuplicateTexts))
	for _, t := range o.DuplicateTexts {
		dup[t] = true
	}

	return &Resolver{grid: g, numWords: numWords, maxMerge: o.MaxMergeWords, dup: dup}, nil
}

// Resolve returns every Solution supported by cv: each valid designation of
// a spangram (single strand or merged chain) that spans the grid and brings
// the word count to exactly the required number. An empty result is a
// normal outcome.
//
// Duplicated words are the union of the declared WithDuplicateTexts set and
// any text repeated within cv itself; they may appear only inside the merge.
//
// Complexity: O(len(cv)) for the direct case; for merges,
// O(C(len(cv), m) × m!) worst case with m = len(cv)-K+1 ≤ the merge cap,
// heavily pruned by chain adjacency. Work per call is bounded by the merge
// cap, so Resolve takes no context; cancellation is handled by the cover
// stream producing cv.
func (r *Resolver) Resolve(cv core.Cover) []core.Solution {
	if len(cv) < r.numWords {
		return nil
	}

	dup := r.duplicateTexts(cv)

	if len(cv) == r.numWords {
		// No merge available, so a duplicated word would stay standalone.
		for _, s := range cv {
			if dup[s.Text()] {
				return nil
			}
		}

		var out []core.Solution
		for i, s := range cv {
			if r.grid.Spans(s) {
				out = append(out, core.Solution{
					Spangram: []*core.Strand{s},
					Rest:     rest(cv, 1<<uint(i)),
				})
			}
		}

		return out
	}

	// Merging m strands into one chain reduces the count to exactly K.
	m := len(cv) - r.numWords + 1
	if m > r.maxMerge {
		return nil
	}

	// Duplicated words may never stand alone: force them all into the
	// merge subset.
	var required, optional []int
	for i, s := range cv {
		if dup[s.Text()] {
			required = append(required, i)
		} else {
			optional = append(optional, i)
		}
	}
	if len(required) > m {
		return nil
	}

	var (
		out    []core.Solution
		subset = append(make([]int, 0, m), required...)
		choose func(start, need int)
	)
	choose = func(start, need int) {
		if need == 0 {
			out = append(out, r.chains(cv, subset)...)

			return
		}
		for k := start; k <= len(optional)-need; k++ {
			subset = append(subset, optional[k])
			choose(k+1, need-1)
			subset = subset[:len(subset)-1]
		}
	}
	choose(0, m-len(required))

	return out
}

// ResolveAll resolves a batch of covers, concatenating their Solutions in
// cover order.
func (r *Resolver) ResolveAll(covers []core.Cover) []core.Solution {
	var out []core.Solution
	for _, cv := range covers {
		out = append(out, r.Resolve(cv)...)
	}

	return out
}

// chains enumerates every ordering of the subset that joins into a single
// valid chain, and emits a Solution for each chain that spans the grid.
func (r *Resolver) chains(cv core.Cover, subset []int) []core.Solution {
	var (
		out     []core.Solution
		order   = make([]int, 0, len(subset))
		taken   = make([]bool, len(subset))
		descend func()
	)
	descend = func() {
		if len(order) == len(subset) {
			parts := make([]*core.Strand, len(order))
			var subsetBits uint
			for k, i := range order {
				parts[k] = cv[i]
				subsetBits |= 1 << uint(i)
			}
			// Chain validates join adjacency and rejects merges whose
			// joining steps cross the rest of the path.
			merged, err := core.Chain(r.grid, parts...)
			if err != nil || !r.grid.Spans(merged) {
				return
			}
			out = append(out, core.Solution{Spangram: parts, Rest: rest(cv, subsetBits)})

			return
		}
		for k, i := range subset {
			if taken[k] {
				continue
			}
			if len(order) > 0 && !cv[order[len(order)-1]].CanChain(cv[i]) {
				continue
			}
			taken[k] = true
			order = append(order, i)
			descend()
			order = order[:len(order)-1]
			taken[k] = false
		}
	}
	descend()

	return out
}

// duplicateTexts returns the duplicated words relevant to cv: the declared
// grid-wide set plus any text spelled by more than one strand of cv.
func (r *Resolver) duplicateTexts(cv core.Cover) map[string]bool {
	seen := make(map[string]int, len(cv))
	dup := make(map[string]bool, len(r.dup))
	for _, s := range cv {
		if r.dup[s.Text()] {
			dup[s.Text()] = true
		}
		seen[s.Text()]++
	}
	for text, n := range seen {
		if n > 1 {
			dup[text] = true
		}
	}

	return dup
}

// rest returns cv's strands whose indices are not in the subset bitset,
// preserving cover order.
func rest(cv core.Cover, subsetBits uint) []*core.Strand {
	out := make([]*core.Strand, 0, len(cv))
	for i, s := range cv {
		if subsetBits&(1<<uint(i)) == 0 {
			out = append(out, s)
		}
	}

	return out
}
