package heuristic

import "errors"

// ErrWitnessInvalid is returned by Decide when the witness builder's
// final verification (§4.10 step 4) fails: the two constructed
// orientations were not both strongly connected, or their deletable
// sets did not cover every edge. This indicates a proof-side defect in
// the configuration that passed the consistency and strong-2-edge
// tests, not a property of the input graph.
//
// Usage: errors.Is(err, ErrWitnessInvalid).
var ErrWitnessInvalid = errors.New("heuristic: witness construction failed verification")
