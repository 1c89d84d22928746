package gapa_test

import (
	"fmt"

	"github.com/katalvlaran/gapa"
)

func ExampleAlign() {
	params := gapa.DefaultParams()
	params.K = 4

	dist, cigar, _, err := gapa.Align([]byte("ACGTACGT"), []byte("ACGTACGT"), params, nil)
	if err != nil {
		panic(err)
	}
	fmt.Println(dist, cigar)
	// Output: 0 8M
}
