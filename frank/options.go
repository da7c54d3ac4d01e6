package frank

// RunOptions configures a single Decide call. Construct via NewRunOptions
// with a list of RunOption functions rather than a literal, so future
// fields default safely.
type RunOptions struct {
	// HeuristicOnly restricts the driver to the heuristic engine (-2).
	HeuristicOnly bool

	// ExactOnly skips the heuristic engine entirely (-e).
	ExactOnly bool

	// BruteForce selects the exact engine's brute-force comparator pool
	// instead of the constraint-propagation search (-b).
	BruteForce bool

	// Complement flips which graphs the caller should emit: by default
	// graphs whose Frank number is not 2 (or, under HeuristicOnly,
	// graphs that fail the heuristic); with Complement, the opposite (-c).
	Complement bool

	// DoubleCheck requests witness construction and verification for a
	// heuristic success (-d).
	DoubleCheck bool

	// PrintWitness requests that Decide populate Decision.Witness (-p).
	PrintWitness bool

	// Verbose requests per-graph statistics and skip reasons on standard
	// error (-v). Decide fills RunStats the same way whether or not it is
	// set.
	Verbose bool

	// ShardM, ShardR implement the exact engine's single-graph sharding
	// (-s R/M): only fully oriented states whose generation count
	// satisfies count%ShardM == ShardR are evaluated. ShardM <= 1 means
	// no sharding.
	ShardM int
	ShardR int
}

// RunOption mutates a RunOptions under construction.
type RunOption func(*RunOptions)

func WithHeuristicOnly() RunOption { return func(o *RunOptions) { o.HeuristicOnly = true } }

func WithExactOnly() RunOption { return func(o *RunOptions) { o.ExactOnly = true } }

func WithBruteForce() RunOption { return func(o *RunOptions) { o.BruteForce = true } }

func WithComplement() RunOption { return func(o *RunOptions) { o.Complement = true } }

func WithDoubleCheck() RunOption { return func(o *RunOptions) { o.DoubleCheck = true } }

func WithPrintWitness() RunOption { return func(o *RunOptions) { o.PrintWitness = true } }

func WithVerbose() RunOption { return func(o *RunOptions) { o.Verbose = true } }

func WithSingleGraphShard(r, m int) RunOption {
	return func(o *RunOptions) { o.ShardR, o.ShardM = r, m }
}

// NewRunOptions applies opts over a zero-value RunOptions normalized to
// "no sharding", returning an error if the combination is invalid.
func NewRunOptions(opts ...RunOption) (RunOptions, error) {
	ro := RunOptions{ShardM: 1}
	for _, opt := range opts {
		opt(&ro)
	}

	if err := ro.normalize(); err != nil {
		return RunOptions{}, err
	}

	return ro, nil
}

func (o *RunOptions) normalize() error {
	if o.HeuristicOnly && o.ExactOnly {
		return ErrConflictingEngineSelection
	}
	if o.ShardM <= 0 {
		o.ShardM = 1
	}
	if o.ShardR < 0 || o.ShardR >= o.ShardM {
		return ErrInvalidShard
	}

	return nil
}

// ShouldEmit reports whether a graph decided as frankIs2 should be
// written to the output stream under these options (§6: default emits
// not-2, Complement emits 2 — or, under HeuristicOnly, default emits
// heuristic failures and Complement emits heuristic successes).
func (o RunOptions) ShouldEmit(frankIs2 bool) bool {
	if o.Complement {
		return frankIs2
	}

	return !frankIs2
}
