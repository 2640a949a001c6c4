package main

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/strands/core"
)

// renderGrid returns the board as rows of space-separated letters.
func renderGrid(g *core.Grid) string {
	var b strings.Builder
	for r := 0; r < g.Rows(); r++ {
		line := g.Line(r)
		for c := 0; c < len(line); c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			b.WriteByte(line[c])
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// renderSolution returns a text block: the spangram line, the remaining
// words with their start cells, and the board with every cell outside the
// spangram lowercased.
func renderSolution(g *core.Grid, sol core.Solution) string {
	var b strings.Builder

	fmt.Fprintf(&b, "spangram: %s", sol.SpangramText())
	if len(sol.Spangram) > 1 {
		parts := make([]string, len(sol.Spangram))
		for i, s := range sol.Spangram {
			parts[i] = s.Text()
		}
		fmt.Fprintf(&b, " (%s)", strings.Join(parts, " + "))
	}
	b.WriteByte('\n')

	for _, s := range sol.Rest {
		first := s.First()
		fmt.Fprintf(&b, "word: %s @ (%d,%d)\n", s.Text(), first.Row, first.Col)
	}

	var span core.Mask
	for _, s := range sol.Spangram {
		span |= s.Mask()
	}
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			cell := core.Cell{Row: r, Col: c}
			ch := g.Letter(cell)
			if !span.Has(g.BitIndex(cell)) {
				ch += 'a' - 'A'
			}
			b.WriteByte(ch)
		}
		b.WriteByte('\n')
	}

	return b.String()
}
