// Package argh classifies command-line argument vectors into flags,
// valued parameters, and positional arguments, following a GNU-like
// convention: short options ("-v"), short option bundles ("-abc",
// equivalent to "-a -b -c"), long options ("--verbose"), inline values
// ("--output=file.txt"), the "--" option terminator, and the lone "-"
// stdin placeholder. Options may appear in any order, before or after
// positional arguments.
//
// Nothing is declared up front. The classifier cannot know on its own
// whether a bare word following a flag is that flag's value or a
// positional argument (should "file.txt" belong to "-q" in
// "prog -q file.txt"?), so it records both interpretations. Querying a
// flag's value with Parameter, or calling ConfirmParameter directly,
// resolves the ambiguity by declaring the flag value-taking and
// removing its claimed words from the positional sequence.
//
// Classification is total: malformed or adversarial input never
// produces an error, only a deterministic classification.
package argh

import (
	"github.com/shrimpster00/argh/internal/scan"
)

// Args holds the classified view of one argument vector. A single
// left-to-right pass runs at construction; all queries afterwards are
// in-memory lookups. Confirming a parameter mutates the positional
// sequence, so an Args value is not safe for concurrent use.
type Args struct {
	programName string
	result      *scan.Result
}

// Parse classifies the given tokens in a single pass. The empty vector
// is legal and yields zero flags, parameters and positionals. By
// default every token is classified; pass WithProgramName when the
// vector still carries the program name at index 0.
func Parse(args []string, options ...Option) *Args {
	opt := defOpts().apply(options...)

	parsed := &Args{}

	if opt.programName && len(args) > 0 {
		parsed.programName = args[0]
		args = args[1:]
	}

	parsed.result = scan.Scan(args)

	return parsed
}

// HasFlag reports whether any of the given flag spellings was seen.
// Spellings are the literal command-line tokens, hyphens included:
// "-v", "--verbose". It never resolves parameter ambiguity.
func (args *Args) HasFlag(names ...string) bool {
	for _, name := range names {
		if args.result.Flags[name] > 0 {
			return true
		}
	}

	return false
}

// Occurrences returns how many times the given flag was seen. Repeated
// options are common ("-vvv"), and each letter of a bundle counts on
// its own.
func (args *Args) Occurrences(name string) int {
	return args.result.Flags[name]
}

// ConfirmParameter declares each of the given flag spellings to be a
// value-taking parameter, removing every positional candidate the flag
// claimed: those words were its values, never true positionals. The
// removal is irreversible, idempotent, and a no-op for flags nobody
// claimed. Positional indices shift accordingly.
func (args *Args) ConfirmParameter(names ...string) {
	for _, name := range names {
		args.result.Positionals.RemoveOwned(name)
	}
}

// Parameter confirms each of the given flag spellings as value-taking,
// then returns the first value recorded among them, or the empty
// string when none carries a value. This is the usual way a caller
// declares "this flag takes a value": simply by asking for it.
//
// The empty return is indistinguishable from a genuinely empty value
// ("--output="); use LookupParameter when the distinction matters.
func (args *Args) Parameter(names ...string) string {
	args.ConfirmParameter(names...)

	for _, name := range names {
		if value, found := args.result.Params[name]; found {
			return value
		}
	}

	return ""
}

// LookupParameter is the presence-reporting form of Parameter, for
// callers that must distinguish an absent parameter from an empty
// value. It carries the same confirmation side effect.
func (args *Args) LookupParameter(name string) (string, bool) {
	args.ConfirmParameter(name)

	value, found := args.result.Params[name]

	return value, found
}

// Positional returns the positional argument at the given index, or
// the empty string when the index is out of bounds. Indices shift as
// parameters are confirmed, so query parameters first, or accept that
// positions move.
func (args *Args) Positional(index int) string {
	return args.result.Positionals.At(index)
}

// Positionals returns the current positional arguments in input order.
func (args *Args) Positionals() []string {
	return args.result.Positionals.Values()
}

// NumPositionals returns the current number of positional arguments,
// after any confirmations already applied.
func (args *Args) NumPositionals() int {
	return args.result.Positionals.Len()
}

// ProgramName returns the program name captured at index 0, or the
// empty string unless Parse was given WithProgramName.
func (args *Args) ProgramName() string {
	return args.programName
}
