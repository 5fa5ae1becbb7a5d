// Package options implements the command-line surface the bundled apps are
// driven through: a thin wrapper over pflag.FlagSet exposing the Ligra
// commandLine's keyed-lookup style (-flag value, plus two positional I/O
// filenames) instead of pflag's usual bound-variable style.
package options
