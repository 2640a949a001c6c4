package core_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strands/core"
)

func TestNewGrid_Empty(t *testing.T) {
	_, err := core.NewGrid(nil)
	assert.ErrorIs(t, err, core.ErrEmptyGrid)

	_, err = core.NewGrid([]string{""})
	assert.ErrorIs(t, err, core.ErrEmptyGrid)
}

func TestNewGrid_NonRectangular(t *testing.T) {
	_, err := core.NewGrid([]string{"AB", "A"})
	assert.ErrorIs(t, err, core.ErrNonRectangular)
}

func TestNewGrid_TooLarge(t *testing.T) {
	rows := make([]string, 9)
	for i := range rows {
		rows[i] = strings.Repeat("A", 8) // 72 cells > 64
	}
	_, err := core.NewGrid(rows)
	assert.ErrorIs(t, err, core.ErrGridTooLarge)
}

func TestNewGrid_BadLetter(t *testing.T) {
	_, err := core.NewGrid([]string{"A1"})
	assert.ErrorIs(t, err, core.ErrBadLetter)
}

func TestNewGrid_LowercaseNormalized(t *testing.T) {
	g, err := core.NewGrid([]string{"ab", "cd"})
	require.NoError(t, err)
	assert.Equal(t, byte('A'), g.Letter(core.Cell{Row: 0, Col: 0}))
	assert.Equal(t, byte('D'), g.Letter(core.Cell{Row: 1, Col: 1}))
	assert.Equal(t, "AB", g.Line(0))
}

func TestGrid_BitIndexRoundTrip(t *testing.T) {
	g, err := core.NewGrid([]string{"ABC", "DEF"})
	require.NoError(t, err)

	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 3, g.Cols())
	assert.Equal(t, 6, g.NumCells())
	assert.Equal(t, core.Mask(0b111111), g.FullMask())

	for idx := 0; idx < g.NumCells(); idx++ {
		c := g.CellAt(idx)
		assert.True(t, g.InBounds(c))
		assert.Equal(t, idx, g.BitIndex(c))
	}
	assert.Equal(t, 5, g.BitIndex(core.Cell{Row: 1, Col: 2}))
}

func TestGrid_Neighbors_CornerAndCenter(t *testing.T) {
	g, err := core.NewGrid([]string{"ABC", "DEF", "GHI"})
	require.NoError(t, err)

	// Corner: E, SE, S survive the bounds filter, in offset order.
	corner := g.Neighbors(core.Cell{Row: 0, Col: 0})
	assert.Equal(t, []core.Cell{{Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 1, Col: 0}}, corner)

	// Center cell sees all eight neighbors.
	center := g.Neighbors(core.Cell{Row: 1, Col: 1})
	assert.Len(t, center, 8)
}

func TestGrid_Spans(t *testing.T) {
	g, err := core.NewGrid([]string{"ABC", "DEF"})
	require.NoError(t, err)

	vertical, err := core.NewStrand(g, []core.Cell{{Row: 0, Col: 0}, {Row: 1, Col: 1}})
	require.NoError(t, err)
	assert.True(t, g.Spans(vertical), "touches top and bottom rows")

	horizontal, err := core.NewStrand(g, []core.Cell{
		{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2},
	})
	require.NoError(t, err)
	assert.True(t, g.Spans(horizontal), "touches left and right columns")

	partial, err := core.NewStrand(g, []core.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}})
	require.NoError(t, err)
	assert.False(t, g.Spans(partial))
}
