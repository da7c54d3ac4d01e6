package frank

import (
	"errors"
	"fmt"
)

// ErrConflictingEngineSelection is returned when both heuristic-only and
// exact-only were requested for the same run.
var ErrConflictingEngineSelection = errors.New("frank: heuristic-only and exact-only are mutually exclusive")

// ErrInvalidShard is returned when a shard specifier's R is not in [0, M).
var ErrInvalidShard = errors.New("frank: shard R must satisfy 0 <= R < M")

// ErrDoubleCheckFailed wraps a heuristic witness-verification failure
// (heuristic.ErrWitnessInvalid) surfaced through the driver. Resolves
// spec.md §9 Open Question (c): by default this is fatal to the run, but
// it is a plain sentinel so an embedder can catch it with errors.Is and
// fall through to the exact engine instead, rather than the driver
// silently deciding that policy on the caller's behalf.
//
// Usage: errors.Is(err, ErrDoubleCheckFailed).
var ErrDoubleCheckFailed = errors.New("frank: heuristic double-check failed verification")

func wrapDoubleCheckFailure(err error) error {
	return fmt.Errorf("%w: %v", ErrDoubleCheckFailed, err)
}
