package cover_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/strands/core"
	"github.com/katalvlaran/strands/cover"
)

// ExampleCovers tiles the grid
//
//	A B
//	C D
//
// with handmade row strands and streams every exact cover lazily.
func ExampleCovers() {
	g, _ := core.NewGrid([]string{"AB", "CD"})
	ab, _ := core.NewStrand(g, []core.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}})
	cd, _ := core.NewStrand(g, []core.Cell{{Row: 1, Col: 0}, {Row: 1, Col: 1}})

	idx, _ := cover.NewIndex(g, []*core.Strand{ab, cd})
	st, _ := cover.Covers(context.Background(), idx)

	for cv := range st.Seq() {
		fmt.Println(strings.Join(cv.Words(), "+"))
	}
	fmt.Println("err:", st.Err())

	// Output:
	// AB+CD
	// err: <nil>
}
