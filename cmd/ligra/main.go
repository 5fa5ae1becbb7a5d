// Command ligra runs one of the bundled graph applications (BFS, PageRank,
// PageRankDelta, Radii) over a Ligra-adj input graph, in the spirit of the
// one-binary-per-app layout original_source/apps/*.C compiles to, collapsed
// into a single dispatching entry point since this engine bundles all four
// applications in one module.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/katalvlaran/ligra/apps"
	"github.com/katalvlaran/ligra/apps/bfs"
	"github.com/katalvlaran/ligra/apps/pagerank"
	"github.com/katalvlaran/ligra/apps/pagerankdelta"
	"github.com/katalvlaran/ligra/apps/radii"
	"github.com/katalvlaran/ligra/ioadj"
	"github.com/katalvlaran/ligra/options"
	"github.com/katalvlaran/ligra/perfcount"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: ligra <bfs|pagerank|pagerankdelta|radii> [-r N] [-maxiters N] [-e events] <input.adj>")
}

func main() {
	if len(os.Args) < 3 {
		usage()
		os.Exit(2)
	}

	appName := os.Args[1]
	opts, err := options.Parse(os.Args[2:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "ligra: %v\n", err)
		os.Exit(1)
	}

	_, inputFile := opts.IOFileNames()
	if inputFile == "" {
		fmt.Fprintln(os.Stderr, "ligra: missing input file")
		usage()
		os.Exit(2)
	}

	g, newIDs, err := ioadj.Load(context.Background(), inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ligra: loading %s: %v\n", inputFile, err)
		os.Exit(1)
	}

	logger := apps.StdoutLogger
	counters := perfcount.New()

	switch appName {
	case "bfs":
		_, err = bfs.Compute(g, opts, newIDs, logger, counters)
	case "pagerank":
		_, err = pagerank.Compute(g, opts, newIDs, logger, counters)
	case "pagerankdelta":
		_, err = pagerankdelta.Compute(g, opts, newIDs, logger, counters)
	case "radii":
		_, err = radii.Compute(g, opts, newIDs, logger, counters)
	default:
		fmt.Fprintf(os.Stderr, "ligra: unknown app %q\n", appName)
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "ligra: %s: %v\n", appName, err)
		os.Exit(1)
	}
}
