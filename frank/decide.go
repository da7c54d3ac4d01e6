package frank

import (
	"errors"

	"github.com/jrenders/frank2/exact"
	"github.com/jrenders/frank2/graph"
	"github.com/jrenders/frank2/heuristic"
)

// RunStats reports per-graph counters for -v output. GraphsRead and
// Skipped are stream-level: Decide always sets GraphsRead to 1 (calling
// Decide means the stream successfully produced one decodable graph),
// but Skipped is never set here — a skipped line (malformed graph6,
// non-cubic, too many vertices) never reaches Decide at all, so the
// caller streaming lines from standard input is the one that counts
// it and accumulates these fields across the run.
type RunStats struct {
	GraphsRead int
	Skipped    int

	HeuristicAttempted bool
	HeuristicSucceeded bool

	ExactAttempted        bool
	OrientationsGenerated int
	StronglyConnected     int
	PoolHighWaterMark     int
}

// Witness holds the two complementary orientations that witness a
// positive decision, from whichever engine produced the answer.
type Witness struct {
	D1, D2 *graph.DiGraph
}

// Decision is the outcome of a single Decide call.
type Decision struct {
	FrankIs2 bool
	Stats    RunStats
	Witness  *Witness
}

// Decide runs the configured engines on g and returns the decision.
// pool, if non-nil, is the exact engine's brute-force comparator pool,
// reused across graphs per spec.md §5's amortized-capacity guidance;
// pass nil to let the exact engine allocate its own when BruteForce is
// set.
func Decide(g *graph.UndirectedGraph, opts RunOptions, pool *exact.Pool) (Decision, error) {
	var d Decision
	d.Stats.GraphsRead = 1

	if !opts.ExactOnly {
		d.Stats.HeuristicAttempted = true

		wantWitness := opts.PrintWitness || opts.DoubleCheck
		found, w, err := heuristic.Decide(g, wantWitness)
		if err != nil {
			if errors.Is(err, heuristic.ErrWitnessInvalid) {
				return Decision{}, wrapDoubleCheckFailure(err)
			}

			return Decision{}, err
		}

		if found {
			d.Stats.HeuristicSucceeded = true
			d.FrankIs2 = true
			if opts.PrintWitness {
				d.Witness = &Witness{D1: w.D1, D2: w.D2}
			}
		}
	}

	if !d.FrankIs2 && !opts.HeuristicOnly {
		d.Stats.ExactAttempted = true

		eopts := exact.Options{
			BruteForce:  opts.BruteForce,
			ShardM:      opts.ShardM,
			ShardR:      opts.ShardR,
			WantWitness: opts.PrintWitness,
			Pool:        pool,
		}

		found, estats, ew := exact.Decide(g, eopts)
		d.Stats.OrientationsGenerated = estats.OrientationsGenerated
		d.Stats.StronglyConnected = estats.StronglyConnected
		d.Stats.PoolHighWaterMark = estats.PoolHighWaterMark

		if found {
			d.FrankIs2 = true
			if opts.PrintWitness {
				d.Witness = &Witness{D1: ew.D1, D2: ew.D2}
			}
		}
	}

	return d, nil
}
