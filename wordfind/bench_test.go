package wordfind_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/strands/core"
	"github.com/katalvlaran/strands/wordfind"
)

func BenchmarkFindAll_4x4(b *testing.B) {
	g, err := core.NewGrid([]string{"ABCD", "EFGH", "IJKL", "MNOP"})
	if err != nil {
		b.Fatal(err)
	}
	d := newMapDict("ABCD", "EFGH", "IJKL", "MNOP", "AFKP", "ABFE", "MIEA", "DHLP")
	f, err := wordfind.New(g, d)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := f.FindAll(context.Background()); err != nil {
			b.Fatal(err)
		}
	}
}
