package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strands/core"
)

func TestRenderGrid(t *testing.T) {
	g, err := core.NewGrid([]string{"AB", "CD"})
	require.NoError(t, err)

	assert.Equal(t, "A B\nC D\n", renderGrid(g))
}

func TestRenderSolution(t *testing.T) {
	g, err := core.NewGrid([]string{"AB", "CD"})
	require.NoError(t, err)
	ab, err := core.NewStrand(g, []core.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}})
	require.NoError(t, err)
	cd, err := core.NewStrand(g, []core.Cell{{Row: 1, Col: 0}, {Row: 1, Col: 1}})
	require.NoError(t, err)

	sol := core.Solution{Spangram: []*core.Strand{ab}, Rest: []*core.Strand{cd}}

	assert.Equal(t, "spangram: AB\nword: CD @ (1,0)\nA B\nc d\n", renderSolution(g, sol))
}

func TestRenderSolution_MergedSpangram(t *testing.T) {
	g, err := core.NewGrid([]string{"ABCD"})
	require.NoError(t, err)
	ab, err := core.NewStrand(g, []core.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}})
	require.NoError(t, err)
	cd, err := core.NewStrand(g, []core.Cell{{Row: 0, Col: 2}, {Row: 0, Col: 3}})
	require.NoError(t, err)

	sol := core.Solution{Spangram: []*core.Strand{ab, cd}}

	assert.Equal(t, "spangram: ABCD (AB + CD)\nA B C D\n", renderSolution(g, sol))
}
