package pagerank_test

import (
	"os"
	"testing"

	"github.com/katalvlaran/ligra/apps"
	"github.com/katalvlaran/ligra/apps/pagerank"
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

func TestComputePageRankThreeCycleConvergesToUniform(t *testing.T) {
	b := graph.NewBuilder(3)
	b.AddEdge(0, 1)
	b.AddEdge(1, 2)
	b.AddEdge(2, 0)
	g, err := b.Build()
	require.NoError(t, err)

	tmp := t.TempDir()
	oldWD, _ := os.Getwd()
	require.NoError(t, os.Chdir(tmp))
	defer os.Chdir(oldWD)

	opts, err := options.Parse([]string{"graph.adj"})
	require.NoError(t, err)

	res, err := pagerank.Compute(g, opts, nil, nullLogger{}, perfcount.New())
	require.NoError(t, err)

	assert.LessOrEqual(t, res.Iterations, 3)
	for _, r := range res.Ranks {
		assert.InDelta(t, 1.0/3.0, r, 1e-6)
	}
}
