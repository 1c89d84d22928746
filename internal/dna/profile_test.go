package dna

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		got, err := Encode([]byte("ACgT"))
		require.NoError(t, err)
		assert.Equal(t, []Base{A, C, G, T}, got)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := Encode(nil)
		require.ErrorIs(t, err, ErrEmptySequence)
	})

	t.Run("bad symbol", func(t *testing.T) {
		_, err := Encode([]byte("ACXT"))
		require.ErrorIs(t, err, ErrBadSymbol)
	})
}

func TestBuildEncodedEqWord(t *testing.T) {
	// b = "ACGTACGT..." repeated to span more than one chunk.
	b := make([]byte, W+8)
	for i := range b {
		switch i % 4 {
		case 0:
			b[i] = 'A'
		case 1:
			b[i] = 'C'
		case 2:
			b[i] = 'G'
		case 3:
			b[i] = 'T'
		}
	}
	p, err := Build([]byte("A"), b)
	require.NoError(t, err)

	chunks := (len(b) + W - 1) / W
	require.Equal(t, 2, chunks)

	mask := p.EqWord(0, 0)
	for k := 0; k < W; k++ {
		want := b[k] == 'A'
		got := mask&(1<<uint(k)) != 0
		assert.Equal(t, want, got, "bit %d", k)
	}
}

func TestIsMatch(t *testing.T) {
	p, err := Build([]byte("ACGT"), []byte("AGGT"))
	require.NoError(t, err)

	assert.True(t, p.IsMatch(0, 0))  // A == A
	assert.False(t, p.IsMatch(1, 1)) // C != G
	assert.True(t, p.IsMatch(3, 3))  // T == T
}
