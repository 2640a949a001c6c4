package cover

import (
	"context"
	"iter"

	"github.com/katalvlaran/strands/core"
)

// frame is one decision point on the explicit search stack: the compatible
// candidates for the MRV cell chosen at this depth, a cursor over them, and
// whether the candidate under the cursor is currently applied.
type frame struct {
	candidates []int
	next       int
	applied    bool
}

// Stream is a lazy, finite, non-restartable sequence of covers. Each Next
// call resumes the underlying search; once Next returns false the stream is
// complete and Err distinguishes normal exhaustion (nil) from cancellation
// (the context's error).
//
// A Stream is exclusively owned by one logical thread of control; it must
// not be shared across goroutines.
type Stream struct {
	ctx      context.Context
	idx      *Index
	limit    int
	allowDup map[string]struct{}

	full     core.Mask
	covered  core.Mask
	downDiag core.Mask // ↘ diagonal steps of all chosen strands
	upDiag   core.Mask // ↗ diagonal steps of all chosen strands
	used     map[string]int
	chosen   []int
	frames   []frame

	emitted int
	started bool
	done    bool
	err     error
}

// Covers starts an exact-cover search over idx and returns its Stream.
// The search itself is sequential with explicit push/undo; run independent
// searches in separate Streams for parallelism — they may share idx freely.
//
// Returns ErrNilIndex when idx is nil.
func Covers(ctx context.Context, idx *Index, opts ...Option) (*Stream, error) {
	if idx == nil {
		return nil, ErrNilIndex
	}
	if ctx == nil {
		ctx = context.Background()
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	st := &Stream{
		ctx:   ctx,
		idx:   idx,
		limit: o.Limit,
		full:  idx.grid.FullMask(),
		used:  make(map[string]int),
	}
	if len(o.AllowedDuplicates) > 0 {
		st.allowDup = make(map[string]struct{}, len(o.AllowedDuplicates))
		for _, t := range o.AllowedDuplicates {
			st.allowDup[t] = struct{}{}
		}
	}

	return st, nil
}

// Next resumes the search until the next cover is found. It returns the
// cover and true, or the zero value and false once the stream completes.
// Emitted covers are immutable snapshots, independent of further search.
func (st *Stream) Next() (core.Cover, bool) {
	if st.done {
		return nil, false
	}

	for {
		// Cancellation check, once per node event. It runs before the very
		// first expansion too: a zero deadline reports cancellation, never
		// exhaustion, even on inputs with no cover at all.
		if err := st.ctx.Err(); err != nil {
			st.err = err
			st.done = true

			return nil, false
		}

		if !st.started {
			st.started = true
			if !st.push() {
				st.done = true

				return nil, false
			}

			continue
		}

		if len(st.frames) == 0 {
			// Space exhausted: a normal terminal state, not an error.
			st.done = true

			return nil, false
		}

		top := &st.frames[len(st.frames)-1]
		if top.applied {
			st.undo(top.candidates[top.next-1])
			top.applied = false
		}
		if top.next == len(top.candidates) {
			st.frames = st.frames[:len(st.frames)-1]

			continue
		}

		cand := top.candidates[top.next]
		top.next++
		top.applied = true
		st.apply(cand)

		if st.covered == st.full {
			cv := st.snapshot()
			st.emitted++
			if st.limit > 0 && st.emitted == st.limit {
				st.done = true
			}

			return cv, true
		}

		// Descend; a dead branch (push fails) stays at this depth and the
		// next iteration undoes cand and tries its successor.
		st.push()
	}
}

// Err reports how a completed stream finished: nil after normal exhaustion
// (including reaching the cover cap), or the context's error after
// cancellation. Valid once Next has returned false.
func (st *Stream) Err() error { return st.err }

// Seq returns a range-over view of the remaining covers. It shares the
// stream's state: ranging partially and then calling Next continues from
// the same point.
func (st *Stream) Seq() iter.Seq[core.Cover] {
	return func(yield func(core.Cover) bool) {
		for {
			cv, ok := st.Next()
			if !ok || !yield(cv) {
				return
			}
		}
	}
}

// All drains the stream and returns every remaining cover, or the covers
// found so far together with the context's error on cancellation.
func (st *Stream) All() ([]core.Cover, error) {
	var out []core.Cover
	for cv := range st.Seq() {
		out = append(out, cv)
	}

	return out, st.Err()
}

// push selects the MRV cell for the current state and pushes its decision
// frame. It reports false on a dead branch: some uncovered cell has no
// compatible candidate (including the exhausted-immediately case).
func (st *Stream) push() bool {
	var (
		bestCell  = -1
		bestCount = st.idx.Len() + 1
		numCells  = st.idx.grid.NumCells()
	)
	for cell := 0; cell < numCells; cell++ {
		if st.covered.Has(cell) {
			continue
		}
		count := 0
		for _, i := range st.idx.byCell[cell] {
			if st.compatible(i) {
				count++
				if count >= bestCount {
					break
				}
			}
		}
		if count == 0 {
			return false
		}
		// Strict less-than keeps the lowest bit index on ties.
		if count < bestCount {
			bestCount = count
			bestCell = cell
		}
	}
	if bestCell < 0 {
		// Every cell covered; the caller emits before descending again.
		return false
	}

	cands := make([]int, 0, bestCount)
	for _, i := range st.idx.byCell[bestCell] {
		if st.compatible(i) {
			cands = append(cands, i)
		}
	}
	st.frames = append(st.frames, frame{candidates: cands})

	return true
}

// compatible reports whether candidate i can join the current stack: its
// cells are uncovered, it crosses no chosen strand, and its text respects
// the duplicate-word rule. O(1).
func (st *Stream) compatible(i int) bool {
	if st.idx.masks[i]&st.covered != 0 {
		return false
	}
	if st.idx.down[i]&st.upDiag != 0 || st.idx.up[i]&st.downDiag != 0 {
		return false
	}
	if st.used[st.idx.texts[i]] > 0 {
		_, allowed := st.allowDup[st.idx.texts[i]]

		return allowed
	}

	return true
}

// apply pushes candidate i onto the stack. Chosen strands are pairwise
// disjoint in both cell and diagonal-step masks, so undo can clear with
// AND-NOT.
func (st *Stream) apply(i int) {
	st.covered |= st.idx.masks[i]
	st.downDiag |= st.idx.down[i]
	st.upDiag |= st.idx.up[i]
	st.used[st.idx.texts[i]]++
	st.chosen = append(st.chosen, i)
}

// undo reverses apply.
func (st *Stream) undo(i int) {
	st.covered &^= st.idx.masks[i]
	st.downDiag &^= st.idx.down[i]
	st.upDiag &^= st.idx.up[i]
	st.used[st.idx.texts[i]]--
	st.chosen = st.chosen[:len(st.chosen)-1]
}

// snapshot copies the chosen stack into an immutable Cover.
func (st *Stream) snapshot() core.Cover {
	cv := make(core.Cover, len(st.chosen))
	for k, i := range st.chosen {
		cv[k] = st.idx.strands[i]
	}

	return cv
}
