// Package heuristic implements the sufficient (not necessary) heuristic
// test of spec.md §4.6-§4.10 for Frank number 2 on cyclically
// 4-edge-connected cubic graphs: a perfect-matching enumerator, the
// two-odd-cycle configuration test (cases A and B), circuit-orientation
// consistency, the strong-2-edge test, and a witness builder that
// double-checks a positive answer by constructing two explicit
// complementary orientations.
//
// Decide returns true the instant some perfect matching F yields a
// configuration (exactly two odd cycles in G-F, joined by a bridge or
// length-2 path satisfying orientation consistency and the strong-2-edge
// property) — a positive answer here is conclusive. A negative answer
// after exhausting every perfect matching means the heuristic found no
// witness; the exact engine of §4.3-§4.5 remains the authority for graphs
// the heuristic cannot decide.
//
// Two deliberate simplifications relative to the literal prose. When
// Decide is asked for a witness, the witness builder's final verification
// covers both (an unsound simplification then surfaces as an error, not a
// false positive); without a witness request no verification runs:
//
//   - Case B only scans bridges originating from C1 (as specified); it
//     does not additionally scan from C2, since any bridge the spec's
//     construction can find is symmetric under swapping the roles of
//     the two odd cycles and F's involutive pairing.
//   - The witness builder's step 3 (§4.10) folds "already oriented,
//     correct direction" and "already oriented, wrong direction" into a
//     single case: both directions of an F/M-circuit edge are already
//     recorded by step 2, so step 3 only ever needs to add the
//     leftover cycle edges that aren't part of any circuit.
package heuristic
