package hypergrasp

import "errors"

// The three error classes from the system's error handling design.
//
// ErrUserInput: unknown problem tag, malformed instance, argument out of
// range — surfaced to the caller with a one-line message, never thrown
// mid-solve.
//
// ErrInvariant: union of incompatible components, archive containing a
// weakly-dominated pair at validation time, a candidate with negative
// contribution escaping the filter — these are defects in the algorithm
// itself, not in the input. Solve aborts with a diagnostic; no partial
// results are reported.
//
// No-result (an empty archive because the stopping criterion fired before
// any feasible solution was accepted) is deliberately NOT an error: Solve
// returns successfully with an empty Statistics.Solutions.
var (
	ErrUserInput  = errors.New("hypergrasp: invalid input")
	ErrInvariant  = errors.New("hypergrasp: invariant violation")
)
