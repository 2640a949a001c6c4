package core

// MaxCells bounds the number of grid cells so that a Mask fits one word.
const MaxCells = 64

// Grid is a fixed rows×cols letter grid. It is immutable after construction
// and safe for unsynchronized concurrent reads.
type Grid struct {
	rows, cols int
	letters    []byte // row-major, uppercase A–Z
}

// NewGrid constructs a Grid from one string per row. Letters may be given in
// either case and are stored uppercase.
//
// Returns ErrEmptyGrid, ErrNonRectangular, ErrGridTooLarge, or ErrBadLetter
// on precondition violations.
// Complexity: O(rows×cols) time and memory.
func NewGrid(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	if h*w > MaxCells {
		return nil, ErrGridTooLarge
	}
	letters := make([]byte, 0, h*w)
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		for i := 0; i < len(row); i++ {
			b := row[i]
			if b >= 'a' && b <= 'z' {
				b -= 'a' - 'A'
			}
			if b < 'A' || b > 'Z' {
				return nil, ErrBadLetter
			}
			letters = append(letters, b)
		}
	}

	return &Grid{rows: h, cols: w, letters: letters}, nil
}

// Rows returns the number of grid rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of grid columns.
func (g *Grid) Cols() int { return g.cols }

// NumCells returns rows×cols.
func (g *Grid) NumCells() int { return g.rows * g.cols }

// InBounds reports whether c lies within the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// BitIndex maps c to its unique row-major index in [0, NumCells).
func (g *Grid) BitIndex(c Cell) int { return c.Row*g.cols + c.Col }

// CellAt inverts BitIndex.
func (g *Grid) CellAt(idx int) Cell { return Cell{Row: idx / g.cols, Col: idx % g.cols} }

// Letter returns the uppercase letter stored at c.
func (g *Grid) Letter(c Cell) byte { return g.letters[g.BitIndex(c)] }

// Line returns row r as a string, for rendering.
func (g *Grid) Line(r int) string { return string(g.letters[r*g.cols : (r+1)*g.cols]) }

// FullMask returns the mask with one bit set per grid cell.
func (g *Grid) FullMask() Mask {
	n := g.NumCells()
	if n == MaxCells {
		return ^Mask(0)
	}

	return Mask(1)<<uint(n) - 1
}

// Neighbors returns the in-bounds cells adjacent to c, in NeighborOffsets
// order. Up to 8 cells; fewer at edges and corners.
// Complexity: O(1).
func (g *Grid) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, 8)
	for _, d := range NeighborOffsets {
		n := Cell{Row: c.Row + d[0], Col: c.Col + d[1]}
		if g.InBounds(n) {
			out = append(out, n)
		}
	}

	return out
}

// Spans reports whether s touches both the top and bottom rows (vertical
// span) or both the left and right columns (horizontal span). A strand is a
// single connected path, so touching both opposite edges means crossing the
// grid along that dimension.
// Complexity: O(len(s)).
func (g *Grid) Spans(s *Strand) bool {
	var top, bottom, left, right bool
	for _, c := range s.cells {
		if c.Row == 0 {
			top = true
		}
		if c.Row == g.rows-1 {
			bottom = true
		}
		if c.Col == 0 {
			left = true
		}
		if c.Col == g.cols-1 {
			right = true
		}
	}

	return (top && bottom) || (left && right)
}
