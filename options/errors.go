package options

import "errors"

// ErrMissingInputFile indicates the command line supplied no positional
// input filename.
var ErrMissingInputFile = errors.New("options: missing input adjacency file argument")
