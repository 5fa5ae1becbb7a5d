//go:build !linux

package perfcount_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/ligra/perfcount"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopCountersWritesDurationAndZeroCounters(t *testing.T) {
	c := perfcount.New()
	require.NoError(t, c.Init("0x53003c"))
	c.Reset()
	c.Start()
	c.Stop()

	path := filepath.Join(t.TempDir(), "result.out")
	require.NoError(t, c.WriteResults(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "ns\n")
	assert.Contains(t, string(data), "0\n")
}
