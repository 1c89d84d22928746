package seed

import "github.com/katalvlaran/gapa/internal/dna"

// qgramIndex maps every length-width substring of a sequence to the list of
// start positions where it occurs, the sort-free hashmap option the
// specification allows alongside a sorted qgram index.
type qgramIndex struct {
	width int
	byKey map[string][]int
}

func buildQgramIndex(seq []dna.Base, width int) *qgramIndex {
	idx := &qgramIndex{width: width, byKey: make(map[string][]int)}
	if width <= 0 || width > len(seq) {
		return idx
	}
	buf := make([]byte, width)
	for start := 0; start+width <= len(seq); start++ {
		for k := 0; k < width; k++ {
			buf[k] = byte(seq[start+k])
		}
		key := string(buf)
		idx.byKey[key] = append(idx.byKey[key], start)
	}
	return idx
}

func (q *qgramIndex) lookup(qgram []dna.Base) []int {
	if len(qgram) != q.width {
		return nil
	}
	buf := make([]byte, q.width)
	for k, b := range qgram {
		buf[k] = byte(b)
	}
	return q.byKey[string(buf)]
}
