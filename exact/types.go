package exact

import "github.com/jrenders/frank2/graph"

// Options configures a single Decide call.
type Options struct {
	// BruteForce selects the Pool-based comparator (§4.5) instead of the
	// default constraint-propagation search (§4.4).
	BruteForce bool

	// ShardM > 1 activates single-graph sharding (-s R/M): only fully
	// oriented states whose 1-based generation count satisfies
	// count%ShardM == ShardR are evaluated. ShardM <= 1 means no sharding.
	ShardM int
	ShardR int

	// WantWitness requests that Decide populate Witness on success.
	WantWitness bool

	// Pool, if non-nil, is reused across Decide calls (amortizing its
	// backing array per spec.md §5's "brute-force pool ... may carry its
	// capacity across graphs"). If nil and BruteForce is set, Decide
	// allocates a fresh Pool sized for g.
	Pool *Pool
}

// Stats reports per-graph counters surfaced by the driver's -v mode.
type Stats struct {
	OrientationsGenerated int
	StronglyConnected     int
	PoolHighWaterMark     int
}

// Witness holds the two complementary orientations found on success, when
// Options.WantWitness was set.
type Witness struct {
	D1, D2 *graph.DiGraph
}
