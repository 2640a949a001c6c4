// Package spangram options and sentinel errors.
package spangram

import "errors"

// DefaultMaxMergeWords caps how many strands may merge into one spangram
// when no WithMaxMergeWords option is supplied.
const DefaultMaxMergeWords = 5

var (
	// ErrNilGrid is returned when a nil *core.Grid is passed to New.
	ErrNilGrid = errors.New("spangram: grid is nil")

	// ErrWordCount indicates a non-positive required word count.
	ErrWordCount = errors.New("spangram: word count must be positive")

	// ErrMergeWidth indicates a non-positive merge-width cap.
	ErrMergeWidth = errors.New("spangram: merge width must be positive")
)

// Option configures optional Resolver behavior. Use with New(g, k, opts...).
type Option func(*Options)

// Options holds configurable parameters for spangram resolution.
type Options struct {
	// MaxMergeWords caps the number of strands merged into one spangram.
	// Defaults to DefaultMaxMergeWords.
	MaxMergeWords int

	// DuplicateTexts lists words spellable at more than one grid location.
	// A strand spelling one of them may never stand alone in a Solution; it
	// must be absorbed into the spangram merge.
	DuplicateTexts []string
}

// DefaultOptions returns the Options used when no overrides are supplied.
func DefaultOptions() Options {
	return Options{MaxMergeWords: DefaultMaxMergeWords}
}

// WithMaxMergeWords returns an Option that sets the merge-width cap.
func WithMaxMergeWords(n int) Option {
	return func(o *Options) {
		o.MaxMergeWords = n
	}
}

// WithDuplicateTexts returns an Option declaring texts spellable at more
// than one grid location. Resolution never leaves them standalone, even in
// covers holding just one of their placements.
func WithDuplicateTexts(texts ...string) Option {
	return func(o *Options) {
		o.DuplicateTexts = append(o.DuplicateTexts, texts...)
	}
}
