package cover_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strands/core"
	"github.com/katalvlaran/strands/cover"
	"github.com/katalvlaran/strands/wordfind"
)

// mapDict is a tiny Dictionary stub backed by an explicit word set.
type mapDict map[string]struct{}

func newMapDict(words ...string) mapDict {
	d := make(mapDict, len(words))
	for _, w := range words {
		d[w] = struct{}{}
	}

	return d
}

func (d mapDict) IsWord(text string) bool {
	_, ok := d[text]

	return ok
}

func (d mapDict) IsPrefix(text string) bool {
	for w := range d {
		if strings.HasPrefix(w, text) {
			return true
		}
	}

	return false
}

// findCandidates runs candidate generation with a lowered minimum length so
// tiny grids stay hand-checkable.
func findCandidates(t *testing.T, g *core.Grid, d core.Dictionary) []*core.Strand {
	t.Helper()
	f, err := wordfind.New(g, d, wordfind.WithMinLength(2))
	require.NoError(t, err)
	strands, err := f.FindAll(context.Background())
	require.NoError(t, err)

	return strands
}

// assertValidCover checks the exact-cover invariants: union of masks equals
// the full grid mask, pairwise disjoint, pairwise non-crossing.
func assertValidCover(t *testing.T, g *core.Grid, cv core.Cover) {
	t.Helper()
	assert.Equal(t, g.FullMask(), cv.Mask())
	for i := 0; i < len(cv); i++ {
		for j := i + 1; j < len(cv); j++ {
			assert.False(t, cv[i].Overlaps(cv[j]), "strands %d and %d overlap", i, j)
			assert.False(t, cv[i].Crosses(cv[j]), "strands %d and %d cross", i, j)
		}
	}
}

func TestNewIndex_Preconditions(t *testing.T) {
	g, err := core.NewGrid([]string{"AB"})
	require.NoError(t, err)

	_, err = cover.NewIndex(nil, nil)
	assert.ErrorIs(t, err, cover.ErrNilGrid)

	_, err = cover.NewIndex(g, []*core.Strand{nil})
	assert.ErrorIs(t, err, cover.ErrNilStrand)
}

func TestCovers_NilIndex(t *testing.T) {
	_, err := cover.Covers(context.Background(), nil)
	assert.ErrorIs(t, err, cover.ErrNilIndex)
}

func TestCovers_TwoByTwo_SingleCover(t *testing.T) {
	g, err := core.NewGrid([]string{"AB", "CD"})
	require.NoError(t, err)
	idx, err := cover.NewIndex(g, findCandidates(t, g, newMapDict("AB", "CD")))
	require.NoError(t, err)

	st, err := cover.Covers(context.Background(), idx)
	require.NoError(t, err)
	covers, err := st.All()
	require.NoError(t, err)

	require.Len(t, covers, 1)
	assert.Equal(t, []string{"AB", "CD"}, covers[0].Words())
	assertValidCover(t, g, covers[0])
}

func TestCovers_EnumeratesAllCovers(t *testing.T) {
	// Rows {AB, CD} and columns {AC, BD} both tile the grid.
	g, err := core.NewGrid([]string{"AB", "CD"})
	require.NoError(t, err)
	idx, err := cover.NewIndex(g, findCandidates(t, g, newMapDict("AB", "CD", "AC", "BD")))
	require.NoError(t, err)

	st, err := cover.Covers(context.Background(), idx)
	require.NoError(t, err)
	covers, err := st.All()
	require.NoError(t, err)

	require.Len(t, covers, 2)
	assert.Equal(t, []string{"AB", "CD"}, covers[0].Words())
	assert.Equal(t, []string{"AC", "BD"}, covers[1].Words())
	for _, cv := range covers {
		assertValidCover(t, g, cv)
	}
}

func TestCovers_CrossingPairNeverEmitted(t *testing.T) {
	// AD and BC tile the cells but cross on the block's diagonals; the only
	// legal cover is {AB, CD}.
	g, err := core.NewGrid([]string{"AB", "CD"})
	require.NoError(t, err)
	idx, err := cover.NewIndex(g, findCandidates(t, g, newMapDict("AB", "CD", "AD", "BC")))
	require.NoError(t, err)

	st, err := cover.Covers(context.Background(), idx)
	require.NoError(t, err)
	covers, err := st.All()
	require.NoError(t, err)

	require.Len(t, covers, 1)
	assert.Equal(t, []string{"AB", "CD"}, covers[0].Words())
}

func TestCovers_ExhaustedIsNotAnError(t *testing.T) {
	// Five cells, one four-cell candidate: no tiling exists.
	g, err := core.NewGrid([]string{"ABCDE"})
	require.NoError(t, err)

	abcd, err := core.NewStrand(g, []core.Cell{
		{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 3},
	})
	require.NoError(t, err)
	idx, err := cover.NewIndex(g, []*core.Strand{abcd})
	require.NoError(t, err)

	st, err := cover.Covers(context.Background(), idx)
	require.NoError(t, err)
	covers, err := st.All()
	assert.NoError(t, err)
	assert.Empty(t, covers)
}

func TestCovers_ZeroDeadlineReportsCancellation(t *testing.T) {
	// Even on an input with no cover at all, an expired deadline must
	// surface as cancellation, never as proven exhaustion.
	g, err := core.NewGrid([]string{"ABCDE"})
	require.NoError(t, err)
	idx, err := cover.NewIndex(g, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 0)
	defer cancel()

	st, err := cover.Covers(ctx, idx)
	require.NoError(t, err)
	_, ok := st.Next()
	assert.False(t, ok)
	assert.ErrorIs(t, st.Err(), context.DeadlineExceeded)
}

func TestCovers_LimitCapsEmission(t *testing.T) {
	g, err := core.NewGrid([]string{"AB", "CD"})
	require.NoError(t, err)
	idx, err := cover.NewIndex(g, findCandidates(t, g, newMapDict("AB", "CD", "AC", "BD")))
	require.NoError(t, err)

	st, err := cover.Covers(context.Background(), idx, cover.WithLimit(1))
	require.NoError(t, err)
	covers, err := st.All()
	require.NoError(t, err)
	assert.Len(t, covers, 1)

	// The stream is done; further pulls stay exhausted.
	_, ok := st.Next()
	assert.False(t, ok)
	assert.NoError(t, st.Err())
}

func TestCovers_DuplicateWordsRejectedByDefault(t *testing.T) {
	// AB is spellable at two disjoint locations; both are needed to tile
	// the row, so rejecting duplicates leaves no cover.
	g, err := core.NewGrid([]string{"ABAB"})
	require.NoError(t, err)
	idx, err := cover.NewIndex(g, findCandidates(t, g, newMapDict("AB")))
	require.NoError(t, err)
	// AB at cells 0-1, at cells 2-3, and backwards over cells 2-1.
	require.Equal(t, 3, idx.Len())

	st, err := cover.Covers(context.Background(), idx)
	require.NoError(t, err)
	covers, err := st.All()
	require.NoError(t, err)
	assert.Empty(t, covers)
}

func TestCovers_DesignatedDuplicateAllowed(t *testing.T) {
	g, err := core.NewGrid([]string{"ABAB"})
	require.NoError(t, err)
	idx, err := cover.NewIndex(g, findCandidates(t, g, newMapDict("AB")))
	require.NoError(t, err)

	st, err := cover.Covers(context.Background(), idx, cover.WithAllowedDuplicates("AB"))
	require.NoError(t, err)
	covers, err := st.All()
	require.NoError(t, err)

	require.Len(t, covers, 1)
	assert.Equal(t, []string{"AB", "AB"}, covers[0].Words())
	assertValidCover(t, g, covers[0])
}

func TestCovers_SeqIsResumable(t *testing.T) {
	g, err := core.NewGrid([]string{"AB", "CD"})
	require.NoError(t, err)
	idx, err := cover.NewIndex(g, findCandidates(t, g, newMapDict("AB", "CD", "AC", "BD")))
	require.NoError(t, err)

	st, err := cover.Covers(context.Background(), idx)
	require.NoError(t, err)

	// Take one cover from the range view, then keep pulling manually.
	var got []core.Cover
	for cv := range st.Seq() {
		got = append(got, cv)

		break
	}
	require.Len(t, got, 1)

	second, ok := st.Next()
	require.True(t, ok)
	assert.Equal(t, []string{"AC", "BD"}, second.Words())

	_, ok = st.Next()
	assert.False(t, ok)
	assert.NoError(t, st.Err())
}
