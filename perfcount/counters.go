package perfcount

import "errors"

// ErrNotInitialized names use of a Counters before a successful Init. No
// implementation in this package returns it: Start and Stop return
// nothing, and WriteResults writes whatever was recorded even without Init.
var ErrNotInitialized = errors.New("perfcount: counters not initialized")

// Counters is the engine's external counter collaborator. The engine
// treats it as opaque: it does not interpret event values, only forwards
// the -e events string from the command line and calls the lifecycle
// methods around a Compute run.
type Counters interface {
	// Init opens the counter group for the given comma-separated,
	// hex-encoded raw event list (e.g. "0x53003c,0x5301c0").
	Init(events string) error
	// Reset zeroes the counter group.
	Reset()
	// Start enables the counter group and records the wall-clock start
	// time.
	Start()
	// Stop disables the counter group and records elapsed duration.
	Stop()
	// WriteResults writes an elapsed-time line ("<ns>ns") followed by a
	// comma-separated counter-value line to path.
	WriteResults(path string) error
}
