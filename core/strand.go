package core

import "strings"

// Strand is a simple path under grid adjacency together with its spelled
// text. Strands are immutable once constructed; all mutating operations
// return new strands.
type Strand struct {
	cells    []Cell
	text     string
	mask     Mask
	downDiag Mask // 2×2 blocks whose ↘ diagonal is a consecutive step
	upDiag   Mask // 2×2 blocks whose ↗ diagonal is a consecutive step
}

// NewStrand constructs a Strand over g from an ordered cell sequence,
// deriving its text and masks.
//
// Preconditions (checked, with the matching sentinel on violation):
// at least one cell (ErrEmptyStrand), all cells in bounds (ErrOutOfBounds),
// consecutive cells adjacent (ErrNotAdjacent), no repeated cell
// (ErrRepeatedCell), and no geometric self-crossing (ErrSelfCrossing).
//
// Complexity: O(len(cells)).
func NewStrand(g *Grid, cells []Cell) (*Strand, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if len(cells) == 0 {
		return nil, ErrEmptyStrand
	}

	var (
		text     strings.Builder
		mask     Mask
		downDiag Mask
		upDiag   Mask
	)
	text.Grow(len(cells))
	for i, c := range cells {
		if !g.InBounds(c) {
			return nil, ErrOutOfBounds
		}
		bit := Mask(1) << uint(g.BitIndex(c))
		if mask&bit != 0 {
			return nil, ErrRepeatedCell
		}
		mask |= bit
		text.WriteByte(g.Letter(c))

		if i == 0 {
			continue
		}
		prev := cells[i-1]
		if !Adjacent(prev, c) {
			return nil, ErrNotAdjacent
		}
		if dBit, down, ok := DiagStep(prev, c, g.cols); ok {
			// A diagonal step crosses any earlier step on the opposite
			// diagonal of the same block.
			if down {
				if upDiag&dBit != 0 {
					return nil, ErrSelfCrossing
				}
				downDiag |= dBit
			} else {
				if downDiag&dBit != 0 {
					return nil, ErrSelfCrossing
				}
				upDiag |= dBit
			}
		}
	}

	owned := make([]Cell, len(cells))
	copy(owned, cells)

	return &Strand{
		cells:    owned,
		text:     text.String(),
		mask:     mask,
		downDiag: downDiag,
		upDiag:   upDiag,
	}, nil
}

// Chain concatenates parts in order into a single strand over g: the last
// cell of each part must be adjacent to the first cell of the next, the
// parts must be pairwise disjoint, and the joined path must not cross
// itself. Returns ErrNothingToChain when called without parts; otherwise
// the same sentinels as NewStrand.
func Chain(g *Grid, parts ...*Strand) (*Strand, error) {
	if len(parts) == 0 {
		return nil, ErrNothingToChain
	}
	if len(parts) == 1 {
		return parts[0], nil
	}
	total := 0
	for _, p := range parts {
		total += len(p.cells)
	}
	cells := make([]Cell, 0, total)
	for _, p := range parts {
		cells = append(cells, p.cells...)
	}

	return NewStrand(g, cells)
}

// Cells returns a copy of the strand's ordered cell sequence.
func (s *Strand) Cells() []Cell {
	out := make([]Cell, len(s.cells))
	copy(out, s.cells)

	return out
}

// Len returns the number of cells (equal to the text length).
func (s *Strand) Len() int { return len(s.cells) }

// Text returns the word spelled by the strand.
func (s *Strand) Text() string { return s.text }

// Mask returns the bitset of cells the strand covers.
func (s *Strand) Mask() Mask { return s.mask }

// First returns the strand's starting cell.
func (s *Strand) First() Cell { return s.cells[0] }

// Last returns the strand's final cell.
func (s *Strand) Last() Cell { return s.cells[len(s.cells)-1] }

// Overlaps reports whether the two strands share at least one cell.
func (s *Strand) Overlaps(other *Strand) bool { return s.mask.Overlaps(other.mask) }

// Crosses reports whether the two strands intersect geometrically: some
// 2×2 block carries one strand's step on its ↘ diagonal and the other
// strand's step on its ↗ diagonal. Strands sharing a cell do not cross,
// they overlap.
// Complexity: O(1).
func (s *Strand) Crosses(other *Strand) bool {
	return s.downDiag&other.upDiag != 0 || s.upDiag&other.downDiag != 0
}

// CanChain reports whether other can directly follow s in a chain merge,
// i.e. s's last cell is adjacent to other's first cell.
func (s *Strand) CanChain(other *Strand) bool { return Adjacent(s.Last(), other.First()) }

// DiagMasks returns the strand's per-orientation diagonal-step block masks
// (↘, ↗). Exposed so batch compatibility indices can combine crossing
// accounting across many strands without re-walking paths.
func (s *Strand) DiagMasks() (down, up Mask) { return s.downDiag, s.upDiag }
