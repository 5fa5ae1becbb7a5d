//go:build !linux

package perfcount

import (
	"fmt"
	"os"
	"time"
)

// noopCounters is the non-Linux fallback: it still records wall-clock
// duration (so Compute routines never need an OS-specific branch) but
// reports zero for every hardware counter.
type noopCounters struct {
	startTime time.Time
	duration  time.Duration
}

// New returns the platform counter collaborator. On non-Linux platforms,
// hardware counters are unavailable, so only elapsed time is tracked.
func New() Counters {
	return &noopCounters{}
}

func (c *noopCounters) Init(events string) error { return nil }

func (c *noopCounters) Reset() {}

func (c *noopCounters) Start() { c.startTime = time.Now() }

func (c *noopCounters) Stop() { c.duration = time.Since(c.startTime) }

func (c *noopCounters) WriteResults(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("perfcount: creating results file: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%dns\n", c.duration.Nanoseconds()); err != nil {
		return fmt.Errorf("perfcount: writing duration: %w", err)
	}
	if _, err := fmt.Fprintln(f, "0"); err != nil {
		return fmt.Errorf("perfcount: writing counter values: %w", err)
	}
	return nil
}
