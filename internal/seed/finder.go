package seed

import (
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/gapa/internal/block"
	"github.com/katalvlaran/gapa/internal/dna"
)

// Find tiles a into disjoint k-length seeds and looks each one (and, when
// r==2, its edit neighbourhood) up in b.
func Find(a, b []dna.Base, k, r int) (*Matches, error) {
	if k <= 0 {
		return nil, ErrBadK
	}
	if r != 1 && r != 2 {
		return nil, ErrBadR
	}
	maxMatchCost := r - 1
	potential := uint8(r)

	idxK := buildQgramIndex(b, k)
	var idxKm1, idxKp1 *qgramIndex
	if maxMatchCost > 0 {
		idxKm1 = buildQgramIndex(b, k-1)
		idxKp1 = buildQgramIndex(b, k+1)
	}

	var seeds []Seed
	var matches []Match
	n := len(a)
	for start := 0; start+k <= n; start += k {
		end := start + k
		seeds = append(seeds, Seed{Start: block.I(start), End: block.I(end), SeedPotential: potential})
		qgram := a[start:end]

		for _, s := range idxK.lookup(qgram) {
			matches = append(matches, Match{
				Start: block.Pos{I: block.I(start), J: block.I(s)},
				End:   block.Pos{I: block.I(end), J: block.I(s + k)},
				Cost:  0, SeedPotential: potential, Status: Active,
			})
		}
		if maxMatchCost == 0 {
			continue
		}

		for p := 0; p < k; p++ {
			orig := qgram[p]
			for base := dna.Base(0); base < 4; base++ {
				if base == orig {
					continue
				}
				sub := append(append([]dna.Base{}, qgram[:p]...), base)
				sub = append(sub, qgram[p+1:]...)
				for _, s := range idxK.lookup(sub) {
					matches = append(matches, Match{
						Start: block.Pos{I: block.I(start), J: block.I(s)},
						End:   block.Pos{I: block.I(end), J: block.I(s + k)},
						Cost:  1, SeedPotential: potential, Status: Active,
					})
				}
			}
		}

		for p := 0; p < k; p++ {
			del := append(append([]dna.Base{}, qgram[:p]...), qgram[p+1:]...)
			for _, s := range idxKm1.lookup(del) {
				matches = append(matches, Match{
					Start: block.Pos{I: block.I(start), J: block.I(s)},
					End:   block.Pos{I: block.I(end), J: block.I(s + k - 1)},
					Cost:  1, SeedPotential: potential, Status: Active,
				})
			}
		}

		for p := 0; p <= k; p++ {
			for base := dna.Base(0); base < 4; base++ {
				ins := append(append([]dna.Base{}, qgram[:p]...), base)
				ins = append(ins, qgram[p:]...)
				for _, s := range idxKp1.lookup(ins) {
					matches = append(matches, Match{
						Start: block.Pos{I: block.I(start), J: block.I(s)},
						End:   block.Pos{I: block.I(end), J: block.I(s + k + 1)},
						Cost:  1, SeedPotential: potential, Status: Active,
					})
				}
			}
		}
	}

	matches = dedup(matches)

	startOfSeed := make([]block.I, n+1)
	for i := 0; i <= n; i++ {
		startOfSeed[i] = block.I(i)
	}
	for _, sd := range seeds {
		for i := sd.Start; i < sd.End; i++ {
			startOfSeed[i] = sd.Start
		}
	}

	pot := suffixSumOfSeedPotentials(seeds, n)

	return &Matches{
		Seeds:       seeds,
		Matches:     matches,
		StartOfSeed: startOfSeed,
		Potential:   pot,
	}, nil
}

func suffixSumOfSeedPotentials(seeds []Seed, n int) []block.I {
	pot := make([]block.I, n+1)
	byStart := make(map[block.I]uint8, len(seeds))
	for _, sd := range seeds {
		byStart[sd.Start] += sd.SeedPotential
	}
	for i := n - 1; i >= 0; i-- {
		pot[i] = pot[i+1] + block.I(byStart[block.I(i)])
	}
	return pot
}

// dedup sorts by (Start.I, Start.J, End.I, End.J, Cost) and keeps only the
// minimum-cost entry among matches sharing identical (Start, End). Uses
// golang.org/x/exp/slices rather than sort.Slice, matching the ordering
// helper the retrieval pack's vm/unpivot.go reaches for.
func dedup(matches []Match) []Match {
	slices.SortFunc(matches, func(a, b Match) int {
		if a.Start.I != b.Start.I {
			return int(a.Start.I - b.Start.I)
		}
		if a.Start.J != b.Start.J {
			return int(a.Start.J - b.Start.J)
		}
		if a.End.I != b.End.I {
			return int(a.End.I - b.End.I)
		}
		if a.End.J != b.End.J {
			return int(a.End.J - b.End.J)
		}
		return int(a.Cost) - int(b.Cost)
	})
	out := matches[:0]
	for i, m := range matches {
		if i > 0 {
			p := out[len(out)-1]
			if p.Start == m.Start && p.End == m.End {
				continue
			}
		}
		out = append(out, m)
	}
	return out
}
