// File: internal/dna/example_test.go
package dna_test

import (
	"fmt"

	"github.com/katalvlaran/gapa/internal/dna"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Profile + bit-parallel column advance
////////////////////////////////////////////////////////////////////////////////

// ExampleProfile demonstrates building a match profile for a short reference
// and folding one query character across it with the scalar kernel.
// Scenario:
//
//   - Query "G" against reference "ACGT".
//   - Peq mask for 'G' has bit 2 set (0-indexed), since b[2] == 'G'.
//
// Complexity: O(len(b)/W) to build, O(1) per EqWord lookup.
func ExampleProfile() {
	p, err := dna.Build([]byte("G"), []byte("ACGT"))
	if err != nil {
		panic(err)
	}

	mask := p.EqWord(0, 0)
	fmt.Printf("%04b\n", mask)

	// Output:
	// 0100
}
