// Package frank orchestrates the heuristic and exact engines into the
// single per-graph decision described by spec.md §2's control flow: run
// the heuristic (unless exact-only was requested); on success the
// answer is 2; otherwise (or always, if the heuristic is disabled) run
// the exact engine. Both engines can optionally build and report their
// witness orientations.
package frank
