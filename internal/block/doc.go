// Package block defines the shared scalar and range types used throughout
// the alignment engine (I, Cost, Pos, IRange, JRange), and Block: a single
// stored DP column in its bit-packed vertical-delta encoding, grounded on the
// same "narrow value type + Validate-free invariant methods" shape the
// surrounding packages use for their own small value types.
package block
