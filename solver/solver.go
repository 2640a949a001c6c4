package solver

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/strands/core"
	"github.com/katalvlaran/strands/cover"
	"github.com/katalvlaran/strands/spangram"
	"github.com/katalvlaran/strands/wordfind"
)

// Puzzle is the input record for one board.
type Puzzle struct {
	Name     string   `json:"name"`
	Theme    string   `json:"theme"`
	Letters  []string `json:"letters"`
	NumWords int      `json:"num_words"`
}

// Solver runs the pipeline for one puzzle. It is immutable after
// construction; Solve may be called repeatedly and concurrently.
type Solver struct {
	puzzle Puzzle
	grid   *core.Grid
	dict   core.Dictionary
	opts   Options
}

// New validates the puzzle record and builds its grid.
//
// Returns ErrNilDictionary, ErrWordCount, or a grid construction error.
func New(p Puzzle, dict core.Dictionary, opts ...Option) (*Solver, error) {
	if dict == nil {
		return nil, ErrNilDictionary
	}
	if p.NumWords < 1 {
		return nil, ErrWordCount
	}
	g, err := core.NewGrid(p.Letters)
	if err != nil {
		return nil, fmt.Errorf("puzzle %q: %w", p.Name, err)
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &Solver{puzzle: p, grid: g, dict: dict, opts: o}, nil
}

// Grid returns the parsed puzzle grid.
func (s *Solver) Grid() *core.Grid { return s.grid }

// Solve enumerates every Solution of the puzzle: each exact cover of the
// grid by dictionary words, with a spangram designated, reduced to exactly
// the required word count. Results are deduplicated and returned in
// discovery order.
//
// Words placeable at more than one cell set are designated as allowed
// duplicates for the cover search; the resolver never leaves a strand
// spelling one of them standalone — each must sit inside the spangram
// merge, even when its cover holds only one of the placements.
func (s *Solver) Solve(ctx context.Context) ([]core.Solution, error) {
	log := s.opts.Logger.WithField("puzzle", s.puzzle.Name)

	finder, err := wordfind.New(s.grid, s.dict, wordfind.WithMinLength(s.opts.MinWordLength))
	if err != nil {
		return nil, err
	}
	candidates, err := finder.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	dups := duplicateCandidateTexts(candidates)
	log.WithFields(logrus.Fields{
		"candidates": len(candidates),
		"duplicates": len(dups),
	}).Info("candidate words found")

	idx, err := cover.NewIndex(s.grid, candidates)
	if err != nil {
		return nil, err
	}
	st, err := cover.Covers(ctx, idx,
		cover.WithLimit(s.opts.CoverLimit),
		cover.WithAllowedDuplicates(dups...))
	if err != nil {
		return nil, err
	}
	resolver, err := spangram.New(s.grid, s.puzzle.NumWords,
		spangram.WithMaxMergeWords(s.opts.MaxMergeWords),
		spangram.WithDuplicateTexts(dups...))
	if err != nil {
		return nil, err
	}

	var (
		numCovers int
		solutions []core.Solution
		seen      = make(map[string]struct{})
	)
	for cv, ok := st.Next(); ok; cv, ok = st.Next() {
		numCovers++
		for _, sol := range resolver.Resolve(cv) {
			sig := signature(sol)
			if _, dup := seen[sig]; dup {
				continue
			}
			seen[sig] = struct{}{}
			solutions = append(solutions, sol)
		}
	}
	if err := st.Err(); err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"covers":    numCovers,
		"solutions": len(solutions),
	}).Info("puzzle solved")

	return solutions, nil
}

// duplicateCandidateTexts returns, in first-seen order, every text spelled
// by more than one candidate strand. Candidates are already unique per
// (cell set, text), so a repeated text means a word placeable in more than
// one way.
func duplicateCandidateTexts(strands []*core.Strand) []string {
	count := make(map[string]int, len(strands))
	for _, s := range strands {
		count[s.Text()]++
	}
	var out []string
	for _, s := range strands {
		if count[s.Text()] > 1 {
			out = append(out, s.Text())
			count[s.Text()] = 0
		}
	}

	return out
}

// signature is the canonical identity of a Solution: the spangram's parts
// in chain order plus the remaining strands, each pinned to its cell set.
func signature(sol core.Solution) string {
	var b strings.Builder
	for _, s := range sol.Spangram {
		fmt.Fprintf(&b, "%s#%x;", s.Text(), uint64(s.Mask()))
	}
	b.WriteByte('|')
	for _, s := range sol.Rest {
		fmt.Fprintf(&b, "%s#%x;", s.Text(), uint64(s.Mask()))
	}

	return b.String()
}
