package ioadj

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/ligra/graph"
)

const headerToken = "AdjacencyGraph"

// Load reads a Ligra-adj file at path and builds an immutable *graph.Graph
// through graph.Builder. The returned NewIDs is always nil: Load never
// reorders vertices itself, that is reorder's job, and a nil/short slice
// is the engine-wide "no preprocessing applied" sentinel (see reorder and
// the apps packages' preprocessed check).
func Load(ctx context.Context, path string) (*graph.Graph, []uint32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("ioadj: opening %s: %w", path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), 64*1024*1024)
	sc.Split(bufio.ScanWords)

	next := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		return sc.Text(), true
	}

	header, ok := next()
	if !ok || header != headerToken {
		return nil, nil, ErrBadHeader
	}

	nTok, ok := next()
	if !ok {
		return nil, nil, ErrTruncated
	}
	n, err := strconv.Atoi(nTok)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: n=%q", ErrMalformedInt, nTok)
	}

	mTok, ok := next()
	if !ok {
		return nil, nil, ErrTruncated
	}
	m, err := strconv.Atoi(mTok)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: m=%q", ErrMalformedInt, mTok)
	}

	offsetTokens := make([]string, n)
	for i := 0; i < n; i++ {
		tok, ok := next()
		if !ok {
			return nil, nil, ErrTruncated
		}
		offsetTokens[i] = tok
	}

	destTokens := make([]string, m)
	for i := 0; i < m; i++ {
		tok, ok := next()
		if !ok {
			return nil, nil, ErrTruncated
		}
		destTokens[i] = tok
	}
	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("ioadj: scanning %s: %w", path, err)
	}

	offsets := make([]int64, n)
	dests := make([]uint32, m)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		for i, tok := range offsetTokens {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			v, err := strconv.ParseInt(tok, 10, 64)
			if err != nil {
				return fmt.Errorf("%w: offset[%d]=%q", ErrMalformedInt, i, tok)
			}
			offsets[i] = v
		}
		return nil
	})
	g.Go(func() error {
		for i, tok := range destTokens {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			v, err := strconv.ParseUint(tok, 10, 32)
			if err != nil {
				return fmt.Errorf("%w: dest[%d]=%q", ErrMalformedInt, i, tok)
			}
			dests[i] = uint32(v)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	b := graph.NewBuilder(n)
	for v := 0; v < n; v++ {
		end := int64(m)
		if v+1 < n {
			end = offsets[v+1]
		}
		for i := offsets[v]; i < end; i++ {
			b.AddEdge(uint32(v), dests[i])
		}
	}

	built, err := b.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("ioadj: building graph from %s: %w", path, err)
	}

	return built, nil, nil
}
