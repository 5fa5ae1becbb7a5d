package apps

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ResultFilename derives the results filename a perfcount.Counters run
// writes to, mirroring BFS.C/PageRank.C/Radii.C's
// "result_<App>_<inputBasename>_<events-with-commas-as-dashes>" convention.
func ResultFilename(appName, inputPath, events string) string {
	base := filepath.Base(inputPath)
	sanitizedEvents := strings.ReplaceAll(events, ",", "-")
	return fmt.Sprintf("result_%s_%s_%s", appName, base, sanitizedEvents)
}

// WriteOutputUint32 writes one value per line, in vertex-id order, to
// AppOutput.out (if newIDs indicates the graph was preprocessed) or
// AppOutput-nopreprocess.out otherwise.
func WriteOutputUint32(arr []uint32, newIDs []uint32) error {
	path, preprocessed := outputPath(newIDs)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("apps: creating output file: %w", err)
	}
	defer f.Close()

	for v := range arr {
		idx := v
		if preprocessed {
			idx = int(newIDs[v])
		}
		if _, err := fmt.Fprintln(f, arr[idx]); err != nil {
			return fmt.Errorf("apps: writing output: %w", err)
		}
	}
	return nil
}

// WriteOutputFloat64 is WriteOutputUint32's float64 counterpart, used by
// the PageRank family.
func WriteOutputFloat64(arr []float64, newIDs []uint32) error {
	path, preprocessed := outputPath(newIDs)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("apps: creating output file: %w", err)
	}
	defer f.Close()

	for v := range arr {
		idx := v
		if preprocessed {
			idx = int(newIDs[v])
		}
		if _, err := fmt.Fprintln(f, arr[idx]); err != nil {
			return fmt.Errorf("apps: writing output: %w", err)
		}
	}
	return nil
}

func outputPath(newIDs []uint32) (path string, preprocessed bool) {
	preprocessed = len(newIDs) >= 2 && newIDs[0] != newIDs[1]
	if preprocessed {
		return "AppOutput.out", true
	}
	return "AppOutput-nopreprocess.out", false
}
