package dual

import "errors"

// Dimension errors are programmer errors, surfaced as panics at the point of
// combination so a mismatched operand can never flow onward as a silently
// truncated or padded result.
var (
	// ErrDimensionMismatch is the panic value when two Multi operands with
	// different partial-vector lengths are combined.
	ErrDimensionMismatch = errors.New("dual: partial-derivative vectors have different lengths")

	// ErrAxisRange is the panic value when a seed axis is outside [0, n).
	ErrAxisRange = errors.New("dual: seed axis out of range")
)
