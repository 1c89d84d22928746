package blocks

// Op identifies one edit-script operation, using CIGAR's own vocabulary:
// Match/Sub consume one query and one reference symbol, Ins consumes a
// query symbol with no reference counterpart, Del consumes a reference
// symbol with no query counterpart. The root package translates a run of
// Steps into its public Cigar type.
type Op int

const (
	Match Op = iota
	Sub
	Ins
	Del
)

// Step is a run-length-encoded edit-script operation.
type Step struct {
	Op  Op
	Len int32
}
