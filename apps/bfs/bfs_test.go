package bfs_test

import (
	"os"
	"testing"

	"github.com/katalvlaran/ligra/apps"
	"github.com/katalvlaran/ligra/apps/bfs"
	"github.com/katalvlaran/ligra/graph"
	"github.com/katalvlaran/ligra/options"
	"github.com/katalvlaran/ligra/perfcount"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nullLogger struct{}

func (nullLogger) Debug(string, ...interface{}) {}
func (nullLogger) Info(string, ...interface{})  {}
func (nullLogger) Warn(string, ...interface{})  {}
func (nullLogger) Error(string, ...interface{}) {}
func (l nullLogger) WithField(string, interface{}) apps.Logger { return l }

func noopOpts(t *testing.T, args ...string) *options.Options {
	t.Helper()
	opts, err := options.Parse(args)
	require.NoError(t, err)
	return opts
}

func TestComputeBFSPathGraph(t *testing.T) {
	b := graph.NewBuilder(4)
	b.AddEdge(0, 1)
	b.AddEdge(1, 2)
	b.AddEdge(2, 3)
	g, err := b.Build()
	require.NoError(t, err)

	tmp := t.TempDir()
	oldWD, _ := os.Getwd()
	require.NoError(t, os.Chdir(tmp))
	defer os.Chdir(oldWD)

	res, err := bfs.Compute(g, noopOpts(t, "graph.adj"), nil, nullLogger{}, perfcount.New())
	require.NoError(t, err)

	assert.Equal(t, []uint32{0, 0, 1, 2}, res.Parents)
	assert.Equal(t, 4, res.Iterations)
	assert.Equal(t, 4, res.ReachableCount)
}

func TestComputeBFSDisconnectedPair(t *testing.T) {
	b := graph.NewBuilder(4)
	b.AddEdge(0, 1)
	b.AddEdge(1, 0)
	b.AddEdge(2, 3)
	b.AddEdge(3, 2)
	g, err := b.Build()
	require.NoError(t, err)

	tmp := t.TempDir()
	oldWD, _ := os.Getwd()
	require.NoError(t, os.Chdir(tmp))
	defer os.Chdir(oldWD)

	res, err := bfs.Compute(g, noopOpts(t, "graph.adj"), nil, nullLogger{}, perfcount.New())
	require.NoError(t, err)

	assert.Equal(t, []uint32{0, 0, bfs.NoParent, bfs.NoParent}, res.Parents)
	assert.Equal(t, 2, res.ReachableCount)
}
