// Command frank2 reads one graph per line in graph6 format from
// standard input and writes graph6 lines to standard output, filtering
// by Frank number per spec.md §6.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	flag "github.com/spf13/pflag"

	"github.com/jrenders/frank2/exact"
	"github.com/jrenders/frank2/frank"
	"github.com/jrenders/frank2/graph"
	"github.com/jrenders/frank2/graph6"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin *os.File, stdout, stderr *os.File) int {
	fs := flag.NewFlagSet("frank2", flag.ContinueOnError)
	fs.SetOutput(stderr)

	heuristicOnly := fs.BoolP("heuristic-only", '2', false, "run the heuristic engine only")
	bruteForce := fs.BoolP("brute-force", 'b', false, "exact engine: brute-force comparator instead of constraint search")
	complement := fs.BoolP("complement", 'c', false, "emit graphs whose Frank number IS 2 (or, with -2, heuristic successes)")
	doubleCheck := fs.BoolP("double-check", 'd', false, "verify heuristic successes by building explicit witness orientations")
	exactOnly := fs.BoolP("exact-only", 'e', false, "skip the heuristic engine")
	printWitness := fs.BoolP("print-witness", 'p', false, "write witness orientations to standard error")
	shard := fs.StringP("shard", 's', "", "single-graph shard spec R/M for the exact enumerator")
	verbose := fs.BoolP("verbose", 'v', false, "print per-graph statistics to standard error")
	count := fs.BoolP("count", 'n', false, "print a final summary (read/skipped/emitted) to standard error on exit")

	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: frank2 [options] [R/M]")
		fmt.Fprintln(stderr, "  reads graph6 lines from stdin, writes filtered graph6 lines to stdout.")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}

		return 1
	}

	runOpts := []frank.RunOption{}
	if *heuristicOnly {
		runOpts = append(runOpts, frank.WithHeuristicOnly())
	}
	if *bruteForce {
		runOpts = append(runOpts, frank.WithBruteForce())
	}
	if *complement {
		runOpts = append(runOpts, frank.WithComplement())
	}
	if *doubleCheck {
		runOpts = append(runOpts, frank.WithDoubleCheck())
	}
	if *exactOnly {
		runOpts = append(runOpts, frank.WithExactOnly())
	}
	if *printWitness {
		runOpts = append(runOpts, frank.WithPrintWitness())
	}
	if *verbose {
		runOpts = append(runOpts, frank.WithVerbose())
	}
	if *shard != "" {
		r, m, err := parseShard(*shard)
		if err != nil {
			fmt.Fprintln(stderr, "frank2:", err)

			return 1
		}
		runOpts = append(runOpts, frank.WithSingleGraphShard(r, m))
	}

	var shardR, shardM int
	if fs.NArg() > 0 {
		r, m, err := parseShard(fs.Arg(0))
		if err != nil {
			fmt.Fprintln(stderr, "frank2:", err)

			return 1
		}
		shardR, shardM = r, m
	}

	opts, err := frank.NewRunOptions(runOpts...)
	if err != nil {
		fmt.Fprintln(stderr, "frank2:", err)

		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := stream(ctx, stdin, stdout, stderr, opts, shardR, shardM, *count); err != nil {
		fmt.Fprintln(stderr, "frank2:", err)

		return 1
	}

	return 0
}

func stream(ctx context.Context, stdin *os.File, stdout, stderr *os.File, opts frank.RunOptions, shardR, shardM int, printCount bool) error {
	out := bufio.NewWriter(stdout)
	defer out.Flush()

	scanner := bufio.NewScanner(stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	pool := exact.NewPool(0)

	var totals frank.RunStats
	emitted := 0

	index := 0
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		line := scanner.Text()
		if line == "" {
			continue
		}

		if shardM > 1 && index%shardM != shardR {
			index++

			continue
		}
		index++

		// A decode failure (malformed line, non-cubic, self-loop, parallel
		// edge, too many vertices) is never fatal to the stream: skip this
		// graph, count it, and keep reading — spec.md §7 kind (1)/(2).
		payload, _ := graph6.StripHeader(line)
		g, err := graph6.Decode(payload)
		if err != nil {
			totals.Skipped++
			if opts.Verbose {
				fmt.Fprintf(stderr, "graph %d: skipped: %v\n", index, err)
			}

			continue
		}

		d, err := frank.Decide(g, opts, pool)
		if err != nil {
			return fmt.Errorf("line %d: %w", index, err)
		}

		totals.GraphsRead += d.Stats.GraphsRead
		totals.OrientationsGenerated += d.Stats.OrientationsGenerated
		totals.StronglyConnected += d.Stats.StronglyConnected
		totals.PoolHighWaterMark = d.Stats.PoolHighWaterMark

		if opts.Verbose {
			printStats(stderr, index, d.Stats)
		}
		if opts.PrintWitness && d.Witness != nil {
			printWitness(stderr, d.Witness)
		}

		if opts.ShouldEmit(d.FrankIs2) {
			fmt.Fprintln(out, line)
			emitted++
		}
	}

	if printCount {
		fmt.Fprintf(stderr, "read=%d skipped=%d emitted=%d\n", totals.GraphsRead, totals.Skipped, emitted)
	}

	return scanner.Err()
}

func parseShard(spec string) (r, m int, err error) {
	parts := strings.SplitN(spec, "/", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid shard spec %q, want R/M", spec)
	}

	r, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid shard spec %q: %w", spec, err)
	}
	m, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid shard spec %q: %w", spec, err)
	}
	if m <= 0 || r < 0 || r >= m {
		return 0, 0, fmt.Errorf("invalid shard spec %q: need 0 <= R < M", spec)
	}

	return r, m, nil
}

func printStats(stderr *os.File, index int, stats frank.RunStats) {
	fmt.Fprintf(stderr, "graph %d: heuristic=%v orientations=%d stronglyConnected=%d poolHighWater=%d\n",
		index, stats.HeuristicSucceeded, stats.OrientationsGenerated, stats.StronglyConnected, stats.PoolHighWaterMark)
}

func printWitness(stderr *os.File, w *frank.Witness) {
	fmt.Fprintf(stderr, "witness: D1 arcs=%d D2 arcs=%d\n", w.D1.ArcCount, w.D2.ArcCount)
	for i, d := range [2]*graph.DiGraph{w.D1, w.D2} {
		for u := 0; u < d.N; u++ {
			for v, ok := d.Out[u].Next(-1); ok; v, ok = d.Out[u].Next(v) {
				fmt.Fprintf(stderr, "D%d %d->%d\n", i+1, u, v)
			}
		}
	}
}
