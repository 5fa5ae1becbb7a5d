package ioadj

import "errors"

// Sentinel errors returned by Load.
var (
	// ErrBadHeader indicates the file's first token is not "AdjacencyGraph".
	ErrBadHeader = errors.New("ioadj: missing AdjacencyGraph header")

	// ErrTruncated indicates the file ended before its header-declared
	// n offsets and m destination ids were fully present.
	ErrTruncated = errors.New("ioadj: file truncated before declared n/m tokens were read")

	// ErrMalformedInt indicates a token expected to be an integer failed
	// to parse as one.
	ErrMalformedInt = errors.New("ioadj: malformed integer token")
)
