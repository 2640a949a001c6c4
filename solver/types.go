package solver

import (
	"errors"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/strands/spangram"
	"github.com/katalvlaran/strands/wordfind"
)

var (
	// ErrNilDictionary is returned when New is given a nil dictionary.
	ErrNilDictionary = errors.New("solver: dictionary is nil")

	// ErrWordCount indicates a puzzle word count below 1.
	ErrWordCount = errors.New("solver: word count must be at least 1")
)

// Option configures optional pipeline behavior. Use with New(puzzle, dict, opts...).
type Option func(*Options)

// Options holds configurable parameters for the solve pipeline. Values are
// validated by the stage constructors they feed.
type Options struct {
	// MinWordLength is the shortest candidate word accepted.
	MinWordLength int

	// CoverLimit caps the number of covers examined; 0 means unlimited.
	CoverLimit int

	// MaxMergeWords caps the number of strands merged into one spangram.
	MaxMergeWords int

	// Logger receives pipeline progress. Defaults to a discard logger.
	Logger logrus.FieldLogger
}

// DefaultOptions returns the Options used when no overrides are supplied.
func DefaultOptions() Options {
	return Options{
		MinWordLength: wordfind.DefaultMinLength,
		MaxMergeWords: spangram.DefaultMaxMergeWords,
		Logger:        discardLogger(),
	}
}

// WithMinWordLength returns an Option that sets the minimum accepted word length.
func WithMinWordLength(n int) Option {
	return func(o *Options) {
		o.MinWordLength = n
	}
}

// WithCoverLimit returns an Option that caps the number of covers examined.
func WithCoverLimit(n int) Option {
	return func(o *Options) {
		o.CoverLimit = n
	}
}

// WithMaxMergeWords returns an Option that sets the spangram merge-width cap.
func WithMaxMergeWords(n int) Option {
	return func(o *Options) {
		o.MaxMergeWords = n
	}
}

// WithLogger returns an Option that installs log as the pipeline logger.
// A nil log keeps the default.
func WithLogger(log logrus.FieldLogger) Option {
	return func(o *Options) {
		if log != nil {
			o.Logger = log
		}
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}
