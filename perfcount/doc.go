// Package perfcount provides the hardware performance counter collaborator
// the bundled apps use to time and profile a run, mirroring the retained
// chp_perf.h collaborator: a small group of raw perf events opened once,
// reset/started/stopped around the computation, and written to a results
// file alongside the elapsed wall-clock duration.
package perfcount
