package options

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// Options is a thin keyed-lookup wrapper over a pflag.FlagSet, in the style
// of Ligra's commandLine: callers ask for "-flag" by name with a default,
// rather than binding variables ahead of time, since the set of flags an
// app accepts is open-ended across BFS/PageRank/PageRankDelta/Radii.
type Options struct {
	fs         *pflag.FlagSet
	positional []string
}

// Parse builds an Options from a raw argument list (as from os.Args[1:]):
// any token starting with "-" is treated as a flag (optionally "-flag=value"
// or "-flag value"); everything else is a positional I/O filename.
func Parse(args []string) (*Options, error) {
	fs := pflag.NewFlagSet("ligra", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist = pflag.ParseErrorsWhitelist{UnknownFlags: true}

	for _, name := range discoverFlagNames(args) {
		fs.String(name, "", "")
	}
	// pflag reads a single-dash token as a run of one-letter shorthands,
	// so each "-flag" is handed to it in its "--flag" long form.
	normalized := make([]string, len(args))
	for i, a := range args {
		if len(a) >= 2 && a[0] == '-' && a[1] != '-' {
			a = "-" + a
		}
		normalized[i] = a
	}
	if err := fs.Parse(normalized); err != nil {
		return nil, fmt.Errorf("options: parsing arguments: %w", err)
	}

	return &Options{fs: fs, positional: fs.Args()}, nil
}

func discoverFlagNames(args []string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, a := range args {
		if len(a) < 2 || a[0] != '-' {
			continue
		}
		name := strings.TrimLeft(a, "-")
		if eq := strings.IndexByte(name, '='); eq >= 0 {
			name = name[:eq]
		}
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

func (o *Options) lookup(flag string) (string, bool) {
	name := strings.TrimLeft(flag, "-")
	f := o.fs.Lookup(name)
	if f == nil || !f.Changed {
		return "", false
	}
	return f.Value.String(), true
}

// GetOptionValue returns the string value bound to flag, or dflt if flag
// was not supplied on the command line.
func (o *Options) GetOptionValue(flag string, dflt string) string {
	if v, ok := o.lookup(flag); ok {
		return v
	}
	return dflt
}

// GetOptionLongValue returns the int64 value bound to flag, or dflt if
// flag was not supplied or does not parse as an integer.
func (o *Options) GetOptionLongValue(flag string, dflt int64) int64 {
	v, ok := o.lookup(flag)
	if !ok {
		return dflt
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return dflt
	}
	return n
}

// GetOptionDoubleValue returns the float64 value bound to flag, or dflt if
// flag was not supplied or does not parse as a float.
func (o *Options) GetOptionDoubleValue(flag string, dflt float64) float64 {
	v, ok := o.lookup(flag)
	if !ok {
		return dflt
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return dflt
	}
	return f
}

// IOFileNames returns the (symbol, input) positional filename pair, mirroring
// Ligra's commandLine::IOFileNames. With a single positional argument, the
// symbol name is empty and input is that argument; with none, both are
// empty — callers should treat that as ErrMissingInputFile.
func (o *Options) IOFileNames() (string, string) {
	switch len(o.positional) {
	case 0:
		return "", ""
	case 1:
		return "", o.positional[0]
	default:
		return o.positional[len(o.positional)-2], o.positional[len(o.positional)-1]
	}
}
