package dna

import "errors"

// Sentinel errors for sequence encoding.
var (
	// ErrEmptySequence indicates an empty input sequence was supplied where a
	// non-empty one is required.
	ErrEmptySequence = errors.New("dna: sequence must be non-empty")

	// ErrBadSymbol indicates a byte outside the 4-symbol {A,C,G,T} alphabet.
	ErrBadSymbol = errors.New("dna: symbol outside {A,C,G,T} alphabet")
)
