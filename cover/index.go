package cover

import "github.com/katalvlaran/strands/core"

// Index is the precomputed coverage geometry of one candidate set over one
// grid: per-strand cell masks, per-strand diagonal-step masks, and per-cell
// candidate lists. It is immutable after construction and may be shared by
// any number of concurrent searches.
type Index struct {
	grid    *core.Grid
	strands []*core.Strand
	masks   []core.Mask
	down    []core.Mask
	up      []core.Mask
	texts   []string
	byCell  [][]int // per cell bit index: covering candidates, ascending
}

// NewIndex builds an Index from a candidate set. Candidate order is
// preserved; it defines the deterministic branching order of every search
// over this index.
//
// Returns ErrNilGrid or ErrNilStrand on precondition violations.
// Complexity: O(total strand length) time, O(candidates + cells) memory.
func NewIndex(g *core.Grid, strands []*core.Strand) (*Index, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	idx := &Index{
		grid:    g,
		strands: make([]*core.Strand, len(strands)),
		masks:   make([]core.Mask, len(strands)),
		down:    make([]core.Mask, len(strands)),
		up:      make([]core.Mask, len(strands)),
		texts:   make([]string, len(strands)),
		byCell:  make([][]int, g.NumCells()),
	}
	copy(idx.strands, strands)

	for i, s := range idx.strands {
		if s == nil {
			return nil, ErrNilStrand
		}
		idx.masks[i] = s.Mask()
		idx.down[i], idx.up[i] = s.DiagMasks()
		idx.texts[i] = s.Text()
		for _, c := range s.Cells() {
			bit := g.BitIndex(c)
			idx.byCell[bit] = append(idx.byCell[bit], i)
		}
	}

	return idx, nil
}

// Grid returns the grid the index was built over.
func (idx *Index) Grid() *core.Grid { return idx.grid }

// Len returns the number of indexed candidates.
func (idx *Index) Len() int { return len(idx.strands) }

// Strand returns candidate i.
func (idx *Index) Strand(i int) *core.Strand { return idx.strands[i] }

// Covering returns the candidates covering the given cell bit index, in
// ascending candidate order. The returned slice is shared; do not mutate.
func (idx *Index) Covering(cellBit int) []int { return idx.byCell[cellBit] }
