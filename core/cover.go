package core

import "strings"

// Cover is an exact cover of a grid: strands with pairwise disjoint masks,
// pairwise non-crossing, whose union equals the full grid mask. The search
// emits each Cover as an immutable snapshot; callers must not mutate it.
type Cover []*Strand

// Mask returns the union of the member masks.
func (c Cover) Mask() Mask {
	var m Mask
	for _, s := range c {
		m |= s.mask
	}

	return m
}

// Words returns the member texts in cover order.
func (c Cover) Words() []string {
	out := make([]string, len(c))
	for i, s := range c {
		out[i] = s.text
	}

	return out
}

// Solution is a Cover with exactly one strand designated as the spangram.
// The spangram may be a chain of several cover strands merged end-to-start;
// Spangram lists the parts in merge order and Rest holds the remaining
// standalone strands. Solutions are terminal outputs, consumed read-only.
type Solution struct {
	// Spangram is the ordered chain of strands merged into the spanning
	// path. Length 1 when no merge was needed.
	Spangram []*Strand

	// Rest holds the cover's remaining strands, each a standalone word.
	Rest []*Strand
}

// SpangramText returns the text of the merged spanning path.
func (s Solution) SpangramText() string {
	var b strings.Builder
	for _, p := range s.Spangram {
		b.WriteString(p.text)
	}

	return b.String()
}

// NumWords returns the solution's word count, counting the merged spangram
// as one word.
func (s Solution) NumWords() int { return 1 + len(s.Rest) }
