package dna

import "fmt"

// Encode maps an ASCII DNA sequence to 2-bit bases. Lower and upper case
// A/C/G/T are accepted; any other byte is rejected.
func Encode(seq []byte) ([]Base, error) {
	if len(seq) == 0 {
		return nil, ErrEmptySequence
	}
	out := make([]Base, len(seq))
	for i, c := range seq {
		b, ok := encodeByte(c)
		if !ok {
			return nil, fmt.Errorf("%w: byte %q at offset %d", ErrBadSymbol, c, i)
		}
		out[i] = b
	}
	return out, nil
}

func encodeByte(c byte) (Base, bool) {
	switch c {
	case 'A', 'a':
		return A, true
	case 'C', 'c':
		return C, true
	case 'G', 'g':
		return G, true
	case 'T', 't':
		return T, true
	default:
		return 0, false
	}
}

// Profile precomputes, for the reference sequence b, the per-base match mask
// ("Peq" table) over W-row chunks, plus the raw encoded query a and
// reference b used by greedy-extension routines (traceback, dt-trace).
type Profile struct {
	A []Base
	B []Base

	// peq[base][chunk] has bit k set iff B[chunk*W+k] == base.
	peq [4][]uint64
}

// Build constructs a Profile for the query a and reference b. Both must be
// non-empty and drawn from the {A,C,G,T} alphabet.
func Build(a, b []byte) (*Profile, error) {
	ea, err := Encode(a)
	if err != nil {
		return nil, fmt.Errorf("dna: query: %w", err)
	}
	eb, err := Encode(b)
	if err != nil {
		return nil, fmt.Errorf("dna: reference: %w", err)
	}
	return BuildEncoded(ea, eb), nil
}

// BuildEncoded constructs a Profile from already-encoded bases, skipping
// alphabet validation. Used internally when a and b are re-used across many
// alignments.
func BuildEncoded(a, b []Base) *Profile {
	chunks := (len(b) + W - 1) / W
	p := &Profile{A: a, B: b}
	for base := range p.peq {
		p.peq[base] = make([]uint64, chunks)
	}
	for j, base := range b {
		chunk := j / W
		bitIdx := uint(j % W)
		p.peq[base][chunk] |= 1 << bitIdx
	}
	return p
}

// EqWord returns the match mask for character a[i] against the W rows of b
// starting at chunk*W. Rows beyond len(b) are zero (never a match).
func (p *Profile) EqWord(i int, chunk int) uint64 {
	base := p.A[i]
	if chunk >= len(p.peq[base]) {
		return 0
	}
	return p.peq[base][chunk]
}

// IsMatch reports whether a[i] == b[j], used by greedy diagonal extension
// during traceback. Both indices are 0-based into the encoded sequences.
func (p *Profile) IsMatch(i, j int) bool {
	return p.A[i] == p.B[j]
}
