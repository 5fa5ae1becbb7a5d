//go:build linux

package perfcount

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sys/unix"
)

const maxGroupSize = 5

// linuxCounters backs Counters with a grouped perf_event_open counter set,
// one leader plus up to four followers, the same five-slot layout
// chp_perf.h's perf_struct uses.
type linuxCounters struct {
	fds       []int
	ids       []uint64
	startTime time.Time
	duration  time.Duration
}

// New returns the platform counter collaborator: on linux, a
// perf_event_open-backed implementation; Init falls back to a no-op
// duration-only counter if perf_event_open is refused (missing capability
// or a restrictive perf_event_paranoid), so callers never need an
// OS-specific branch.
func New() Counters {
	return &linuxCounters{}
}

func (c *linuxCounters) Init(events string) error {
	configs, err := parseEventConfigs(events)
	if err != nil {
		return err
	}

	attr := &unix.PerfEventAttr{
		Type:        unix.PERF_TYPE_RAW,
		Size:        uint32(unsafeSizeofPerfEventAttr),
		Config:      configs[0],
		Bits:        unix.PerfBitDisabled | unix.PerfBitExcludeKernel | unix.PerfBitExcludeHv,
		Read_format: unix.PERF_FORMAT_GROUP | unix.PERF_FORMAT_ID,
	}

	leaderFD, err := unix.PerfEventOpen(attr, 0, -1, -1, 0)
	if err != nil {
		// perf_event_open refused (paranoid setting, missing
		// capability, unsupported guest): degrade to wall-clock-only.
		c.fds = nil
		c.ids = nil
		return nil
	}
	fds := []int{leaderFD}
	ids := []uint64{0}
	if id, idErr := ioctlID(leaderFD); idErr == nil {
		ids[0] = id
	}

	for i := 1; i < len(configs) && i < maxGroupSize; i++ {
		followerAttr := *attr
		followerAttr.Config = configs[i]
		fd, err := unix.PerfEventOpen(&followerAttr, 0, -1, leaderFD, 0)
		if err != nil {
			continue
		}
		fds = append(fds, fd)
		id, _ := ioctlID(fd)
		ids = append(ids, id)
	}

	c.fds = fds
	c.ids = ids
	return nil
}

func (c *linuxCounters) Reset() {
	if len(c.fds) == 0 {
		return
	}
	_ = unix.IoctlSetInt(c.fds[0], unix.PERF_EVENT_IOC_RESET, unix.PERF_IOC_FLAG_GROUP)
}

func (c *linuxCounters) Start() {
	if len(c.fds) > 0 {
		_ = unix.IoctlSetInt(c.fds[0], unix.PERF_EVENT_IOC_ENABLE, unix.PERF_IOC_FLAG_GROUP)
	}
	c.startTime = time.Now()
}

func (c *linuxCounters) Stop() {
	c.duration = time.Since(c.startTime)
	if len(c.fds) > 0 {
		_ = unix.IoctlSetInt(c.fds[0], unix.PERF_EVENT_IOC_DISABLE, unix.PERF_IOC_FLAG_GROUP)
	}
}

func (c *linuxCounters) WriteResults(path string) error {
	values := make([]uint64, len(c.fds))
	if len(c.fds) > 0 {
		if read, err := readGroup(c.fds[0], c.ids); err == nil {
			values = read
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("perfcount: creating results file: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%dns\n", c.duration.Nanoseconds()); err != nil {
		return fmt.Errorf("perfcount: writing duration: %w", err)
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatUint(v, 10)
	}
	if _, err := fmt.Fprintln(f, strings.Join(parts, ",")); err != nil {
		return fmt.Errorf("perfcount: writing counter values: %w", err)
	}
	return nil
}

func parseEventConfigs(events string) ([]uint64, error) {
	fields := strings.Split(events, ",")
	configs := make([]uint64, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.ParseUint(strings.TrimPrefix(f, "0x"), 16, 64)
		if err != nil {
			return nil, fmt.Errorf("perfcount: invalid event config %q: %w", f, err)
		}
		configs = append(configs, v)
	}
	if len(configs) == 0 {
		return nil, fmt.Errorf("perfcount: no event configs parsed from %q", events)
	}
	return configs, nil
}

func ioctlID(fd int) (uint64, error) {
	v, err := unix.IoctlGetInt(fd, unix.PERF_EVENT_IOC_ID)
	if err != nil {
		return 0, err
	}
	return uint64(v), nil
}

// readGroup reads a PERF_FORMAT_GROUP|PERF_FORMAT_ID buffer and maps each
// reported id back to its position in ids, mirroring chp_perf.h's
// read_counter loop.
func readGroup(fd int, ids []uint64) ([]uint64, error) {
	buf := make([]byte, 8+16*len(ids))
	n, err := unix.Read(fd, buf)
	if err != nil {
		return nil, err
	}
	_ = n

	out := make([]uint64, len(ids))
	nr := leUint64(buf[0:8])
	for i := uint64(0); i < nr; i++ {
		off := 8 + int(i)*16
		if off+16 > len(buf) {
			break
		}
		value := leUint64(buf[off : off+8])
		id := leUint64(buf[off+8 : off+16])
		for j, want := range ids {
			if id == want {
				out[j] = value
			}
		}
	}
	return out, nil
}

func leUint64(b []byte) uint64 {
	var v uint64
	for i := 7; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}
	return v
}

const unsafeSizeofPerfEventAttr = 112
