package main

import (
	"context"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrenders/frank2/frank"
)

// pipe returns a connected (reader, writer) *os.File pair, closing both at
// test cleanup.
func pipe(t *testing.T) (*os.File, *os.File) {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() {
		r.Close()
		w.Close()
	})

	return r, w
}

func runStream(t *testing.T, input string, printCount bool) (stdoutLines string, stderrText string) {
	t.Helper()

	stdinR, stdinW := pipe(t)
	stdoutR, stdoutW := pipe(t)
	stderrR, stderrW := pipe(t)

	go func() {
		io.WriteString(stdinW, input)
		stdinW.Close()
	}()

	// K4 ("C~") has Frank number 2; WithComplement emits graphs whose
	// Frank number IS 2, so it reaches stdout.
	opts, err := frank.NewRunOptions(frank.WithComplement())
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		done <- stream(context.Background(), stdinR, stdoutW, stderrW, opts, 0, 0, printCount)
	}()

	require.NoError(t, <-done)
	stdoutW.Close()
	stderrW.Close()

	out, err := io.ReadAll(stdoutR)
	require.NoError(t, err)
	errOut, err := io.ReadAll(stderrR)
	require.NoError(t, err)

	return string(out), string(errOut)
}

// A malformed graph6 line must be skipped, not abort the stream: the
// well-formed K4 line on either side of it still reaches stdout.
func TestStream_SkipsMalformedLine_ContinuesStream(t *testing.T) {
	input := "C~\n" + "not-a-valid-graph6-line\n" + "C~\n"

	out, _ := runStream(t, input, false)
	assert.Equal(t, "C~\nC~\n", out)
}

func TestStream_PrintCount_ReportsReadSkippedEmitted(t *testing.T) {
	input := "C~\n" + "not-a-valid-graph6-line\n"

	_, errOut := runStream(t, input, true)
	assert.Contains(t, errOut, "read=1")
	assert.Contains(t, errOut, "skipped=1")
	assert.Contains(t, errOut, "emitted=1")
}
