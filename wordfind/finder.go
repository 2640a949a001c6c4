package wordfind

import (
	"context"

	"github.com/katalvlaran/strands/core"
)

// Finder enumerates candidate strands over one grid and one dictionary.
// It is immutable after construction; each FindAll call owns its own state,
// so a Finder may be shared across goroutines.
type Finder struct {
	grid *core.Grid
	dict core.Dictionary
	opts Options
}

// New constructs a Finder. Returns ErrNilGrid, ErrNilDictionary, or
// ErrMinLength on precondition violations.
func New(g *core.Grid, dict core.Dictionary, opts ...Option) (*Finder, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if dict == nil {
		return nil, ErrNilDictionary
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.MinLength < 1 {
		return nil, ErrMinLength
	}

	return &Finder{grid: g, dict: dict, opts: o}, nil
}

// strandKey identifies a candidate up to traversal order: same covered
// cells, same spelled text.
type strandKey struct {
	mask core.Mask
	text string
}

// walker carries the mutable state of one FindAll invocation.
type walker struct {
	ctx  context.Context
	grid *core.Grid
	dict core.Dictionary
	min  int

	path     []core.Cell
	text     []byte
	used     core.Mask // cells on the current path
	downDiag core.Mask // ↘ diagonal steps walked by the current path
	upDiag   core.Mask // ↗ diagonal steps walked by the current path

	seen map[strandKey]struct{}
	out  []*core.Strand
}

// FindAll enumerates all candidate strands in deterministic order: starting
// cells row-major, neighbor expansion in core.NeighborOffsets order,
// duplicates (same cell set, same text) keeping the first occurrence.
//
// Cancellation is checked on every node expansion; on cancellation the
// candidates found so far are returned together with the context's error.
func (f *Finder) FindAll(ctx context.Context) ([]*core.Strand, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	n := f.grid.NumCells()
	w := &walker{
		ctx:  ctx,
		grid: f.grid,
		dict: f.dict,
		min:  f.opts.MinLength,
		path: make([]core.Cell, 0, n),
		text: make([]byte, 0, n),
		seen: make(map[strandKey]struct{}),
	}

	for idx := 0; idx < n; idx++ {
		if err := w.expand(f.grid.CellAt(idx)); err != nil {
			return w.out, err
		}
	}

	return w.out, nil
}

// expand visits c as the next cell of the current path and recurses into
// every legal extension.
func (w *walker) expand(c core.Cell) error {
	// Cancellation check, once per node expansion.
	select {
	case <-w.ctx.Done():
		return w.ctx.Err()
	default:
	}

	// Account the step onto c. A diagonal step that opposes an earlier
	// diagonal of the same path would self-cross: prune.
	var dBit core.Mask
	var dDown, dOK bool
	if len(w.path) > 0 {
		dBit, dDown, dOK = core.DiagStep(w.path[len(w.path)-1], c, w.grid.Cols())
		if dOK {
			if dDown && w.upDiag&dBit != 0 {
				return nil
			}
			if !dDown && w.downDiag&dBit != 0 {
				return nil
			}
		}
	}

	bit := core.Mask(1) << uint(w.grid.BitIndex(c))
	w.path = append(w.path, c)
	w.text = append(w.text, w.grid.Letter(c))
	w.used |= bit
	if dOK {
		if dDown {
			w.downDiag |= dBit
		} else {
			w.upDiag |= dBit
		}
	}
	defer func() {
		w.path = w.path[:len(w.path)-1]
		w.text = w.text[:len(w.text)-1]
		w.used &^= bit
		if dOK {
			if dDown {
				w.downDiag &^= dBit
			} else {
				w.upDiag &^= dBit
			}
		}
	}()

	// The one check that keeps the search tractable: abandon the branch as
	// soon as the spelled prefix leads nowhere in the dictionary.
	prefix := string(w.text)
	if !w.dict.IsPrefix(prefix) {
		return nil
	}

	if len(prefix) >= w.min && w.dict.IsWord(prefix) {
		if err := w.record(); err != nil {
			return err
		}
	}

	for _, d := range core.NeighborOffsets {
		next := core.Cell{Row: c.Row + d[0], Col: c.Col + d[1]}
		if !w.grid.InBounds(next) {
			continue
		}
		if w.used.Has(w.grid.BitIndex(next)) {
			continue
		}
		if err := w.expand(next); err != nil {
			return err
		}
	}

	return nil
}

// record snapshots the current path as a candidate strand, deduplicating
// traversal-order variants of the same cell set and text.
func (w *walker) record() error {
	key := strandKey{mask: w.used, text: string(w.text)}
	if _, dup := w.seen[key]; dup {
		return nil
	}
	w.seen[key] = struct{}{}

	// The walker maintains every NewStrand invariant by construction, so
	// this never fails; the error is still propagated rather than dropped.
	s, err := core.NewStrand(w.grid, w.path)
	if err != nil {
		return err
	}
	w.out = append(w.out, s)

	return nil
}
