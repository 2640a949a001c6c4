package core

import "errors"

// Sentinel errors for core construction preconditions.
// Callers branch with errors.Is; sentinels are never wrapped at definition.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("core: grid must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("core: all grid rows must have the same length")

	// ErrGridTooLarge indicates rows×cols exceeds the 64-cell bitset width.
	ErrGridTooLarge = errors.New("core: grid exceeds 64 cells")

	// ErrBadLetter indicates a grid letter outside A–Z.
	ErrBadLetter = errors.New("core: grid letters must be in A-Z")

	// ErrNilGrid is returned when a nil *Grid is passed where one is required.
	ErrNilGrid = errors.New("core: grid is nil")

	// ErrEmptyStrand indicates a strand was constructed from zero cells.
	ErrEmptyStrand = errors.New("core: strand must cover at least one cell")

	// ErrOutOfBounds indicates a strand cell outside the grid.
	ErrOutOfBounds = errors.New("core: strand cell out of grid bounds")

	// ErrNotAdjacent indicates two consecutive strand cells that are not
	// 8-directionally adjacent.
	ErrNotAdjacent = errors.New("core: consecutive strand cells must be adjacent")

	// ErrRepeatedCell indicates a strand visiting the same cell twice.
	ErrRepeatedCell = errors.New("core: strand must not repeat a cell")

	// ErrSelfCrossing indicates a strand whose path crosses itself.
	ErrSelfCrossing = errors.New("core: strand must not cross itself")

	// ErrNothingToChain indicates Chain was called with no strands.
	ErrNothingToChain = errors.New("core: chain requires at least one strand")
)
