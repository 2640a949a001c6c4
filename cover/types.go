// Package cover options and sentinel errors.
package cover

import "errors"

var (
	// ErrNilGrid is returned when a nil *core.Grid is passed to NewIndex.
	ErrNilGrid = errors.New("cover: grid is nil")

	// ErrNilStrand indicates a nil strand in the candidate set.
	ErrNilStrand = errors.New("cover: candidate strand is nil")

	// ErrNilIndex is returned when a nil *Index is passed to Covers.
	ErrNilIndex = errors.New("cover: index is nil")
)

// Option configures optional search behavior. Use with Covers(ctx, idx, opts...).
type Option func(*Options)

// Options holds configurable parameters for the exact-cover search.
type Options struct {
	// Limit caps the number of covers emitted; 0 means unlimited. The
	// stream completes normally once the cap is reached.
	Limit int

	// AllowedDuplicates lists word texts exempt from the duplicate-word
	// rule: strands spelling them may appear on the stack more than once.
	// Everything else is rejected the second time its text is chosen.
	AllowedDuplicates []string
}

// DefaultOptions returns the Options used when no overrides are supplied:
// unlimited covers, no duplicate texts allowed.
func DefaultOptions() Options {
	return Options{}
}

// WithLimit returns an Option that caps the number of emitted covers.
// Non-positive values mean unlimited.
func WithLimit(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Limit = n
		}
	}
}

// WithAllowedDuplicates returns an Option designating texts that may be
// chosen more than once within a single cover.
func WithAllowedDuplicates(texts ...string) Option {
	return func(o *Options) {
		o.AllowedDuplicates = append(o.AllowedDuplicates, texts...)
	}
}
