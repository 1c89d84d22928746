// File: internal/block/example_test.go
package block_test

import (
	"fmt"

	"github.com/katalvlaran/gapa/internal/block"
)

////////////////////////////////////////////////////////////////////////////////
// Example: FirstCol boundary column
////////////////////////////////////////////////////////////////////////////////

// ExampleFirstCol demonstrates the classical top/left boundary column: column
// i=0 costs one deletion per row of b.
// Scenario:
//
//   - j_range [0, 5) rounds out to the full 64-row slab.
//   - index(j) returns j directly, since every delta is +1.
func ExampleFirstCol() {
	b := block.FirstCol(block.JRange{Lo: 0, Hi: 5})

	for _, j := range []block.I{0, 1, 4} {
		v, _ := b.Index(j)
		fmt.Printf("index(%d) = %d\n", j, v)
	}

	// Output:
	// index(0) = 0
	// index(1) = 1
	// index(4) = 4
}
