package radii_test

import (
	"os"
	"testing"

	"github.com/katalvlaran/ligra/apps"
	"github.com/katalvlaran/ligra/apps/radii"
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

func TestComputeRadiiPathGraph(t *testing.T) {
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

	opts, err := options.Parse([]string{"graph.adj"})
	require.NoError(t, err)

	res, err := radii.Compute(g, opts, nil, nullLogger{}, perfcount.New())
	require.NoError(t, err)

	assert.Equal(t, []int32{0, 1, 2, 3}, res.Radii)
	assert.Equal(t, 4, res.Iterations)
}

func TestComputeRadiiCompleteDigraphK3(t *testing.T) {
	b := graph.NewBuilder(3)
	for s := uint32(0); s < 3; s++ {
		for d := uint32(0); d < 3; d++ {
			if s != d {
				b.AddEdge(s, d)
			}
		}
	}
	g, err := b.Build()
	require.NoError(t, err)

	tmp := t.TempDir()
	oldWD, _ := os.Getwd()
	require.NoError(t, os.Chdir(tmp))
	defer os.Chdir(oldWD)

	opts, err := options.Parse([]string{"graph.adj"})
	require.NoError(t, err)

	res, err := radii.Compute(g, opts, nil, nullLogger{}, perfcount.New())
	require.NoError(t, err)

	assert.Equal(t, []int32{1, 1, 1}, res.Radii)
	assert.Equal(t, 2, res.Iterations)
}
