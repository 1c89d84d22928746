// Package dna provides the 2-bit DNA alphabet, the per-column match profile,
// and the bit-parallel dynamic-programming kernels that the blocks engine
// folds over.
//
// A sequence over {A,C,G,T} is packed two bits per base. For a 64-row chunk of
// the reference, a Profile precomputes, for each of the four bases, a 64-bit
// mask of which rows equal that base ("Peq" in the classical Myers bit-vector
// formulation). The kernels then fold one query character at a time across
// those masks to advance the vertical delta state (p, m) column by column.
package dna
