package graph6

import "errors"

// ErrMalformed is returned when a graph6 payload is shorter than its
// header declares, or its header is truncated or invalid. Bytes beyond the
// declared length are ignored.
//
// Usage: errors.Is(err, ErrMalformed).
var ErrMalformed = errors.New("graph6: malformed payload")
