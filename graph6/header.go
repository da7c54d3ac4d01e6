package graph6

import "strings"

// HeaderPrefix is the optional graph6 stream header (§6).
const HeaderPrefix = ">>graph6<<"

// StripHeader removes HeaderPrefix from line if present, reporting
// whether it was found so the caller can echo it back on output.
func StripHeader(line string) (payload string, hadHeader bool) {
	if strings.HasPrefix(line, HeaderPrefix) {
		return line[len(HeaderPrefix):], true
	}

	return line, false
}

// WithHeader prepends HeaderPrefix to payload.
func WithHeader(payload string) string { return HeaderPrefix + payload }
