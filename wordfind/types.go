// Package wordfind options and sentinel errors.
package wordfind

import "errors"

// DefaultMinLength is the minimum candidate word length used when no
// WithMinLength option is supplied. Real puzzles never accept shorter words.
const DefaultMinLength = 4

var (
	// ErrNilGrid is returned when a nil *core.Grid is passed to New.
	ErrNilGrid = errors.New("wordfind: grid is nil")

	// ErrNilDictionary is returned when a nil dictionary is passed to New.
	ErrNilDictionary = errors.New("wordfind: dictionary is nil")

	// ErrMinLength indicates a non-positive minimum word length.
	ErrMinLength = errors.New("wordfind: minimum length must be positive")
)

// Option configures optional Finder behavior. Use with New(g, dict, opts...).
type Option func(*Options)

// Options holds configurable parameters for candidate generation.
type Options struct {
	// MinLength is the minimum accepted word length. Defaults to
	// DefaultMinLength; tests may lower it to exercise tiny grids.
	MinLength int
}

// DefaultOptions returns the Options used when no overrides are supplied.
func DefaultOptions() Options {
	return Options{MinLength: DefaultMinLength}
}

// WithMinLength returns an Option that sets the minimum accepted word length.
func WithMinLength(n int) Option {
	return func(o *Options) {
		o.MinLength = n
	}
}
