package worddict_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strands/core"
	"github.com/katalvlaran/strands/worddict"
)

func TestNew_NormalizesAndDeduplicates(t *testing.T) {
	d := worddict.New("apple", "APPLE", " pear ", "don't", "x", "a", "i", "")

	assert.Equal(t, 4, d.Len(), "APPLE, PEAR, A, I")
	assert.True(t, d.IsWord("APPLE"))
	assert.True(t, d.IsWord("PEAR"))
	assert.True(t, d.IsWord("A"))
	assert.True(t, d.IsWord("I"))
	assert.False(t, d.IsWord("X"), "single letters other than A and I are dropped")
	assert.False(t, d.IsWord("DON'T"), "non-alphabetic entries are dropped")
}

func TestIsWord(t *testing.T) {
	d := worddict.New("CAT", "CATTLE", "DOG")

	assert.True(t, d.IsWord("CAT"))
	assert.True(t, d.IsWord("CATTLE"))
	assert.False(t, d.IsWord("CATT"))
	assert.False(t, d.IsWord(""))
}

func TestIsPrefix(t *testing.T) {
	d := worddict.New("CAT", "CATTLE", "DOG")

	assert.True(t, d.IsPrefix("C"))
	assert.True(t, d.IsPrefix("CAT"), "a full word is a prefix of itself")
	assert.True(t, d.IsPrefix("CATT"))
	assert.True(t, d.IsPrefix("DO"))
	assert.False(t, d.IsPrefix("CATTLES"))
	assert.False(t, d.IsPrefix("E"))
}

func TestFromReader(t *testing.T) {
	d, err := worddict.FromReader(strings.NewReader("cat\ndog\ncat\n123\n"))
	require.NoError(t, err)

	assert.Equal(t, 4, d.Len(), "CAT, DOG plus the implicit A and I")
	assert.True(t, d.IsWord("CAT"))
	assert.True(t, d.IsWord("DOG"))
}

func TestNew_AlwaysContainsAAndI(t *testing.T) {
	d := worddict.New()

	assert.Equal(t, 2, d.Len())
	assert.True(t, d.IsWord("A"))
	assert.True(t, d.IsWord("I"))
	assert.True(t, d.IsPrefix("I"))
}

// Dict satisfies the capability interface consumed by the finder.
var _ core.Dictionary = (*worddict.Dict)(nil)
