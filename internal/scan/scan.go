package scan

import (
	"github.com/shrimpster00/argh/internal/positional"
	"github.com/shrimpster00/argh/internal/token"
)

// Result holds the derived views of one argument vector: every flag
// seen (with its occurrence count), the values tentatively or
// definitively bound to flags, and the ordered positional candidates.
type Result struct {
	// Flags maps each recognized flag token (short options expanded
	// out of their bundles, long options verbatim, "=" keys) to the
	// number of times it occurred.
	Flags map[string]int

	// Params maps a flag token to its associated value string. For
	// "=" form flags the binding is definitive; for a flag followed
	// by a bare word it is tentative until the caller confirms the
	// flag as value-taking.
	Params map[string]string

	// Positionals are the candidates in input order.
	Positionals *positional.List
}

// Scan classifies an argument vector in a single left-to-right pass.
// Every input is representable, so scanning is total: malformed or
// adversarial tokens never produce an error, only a classification.
func Scan(args []string) *Result {
	res := &Result{
		Flags:       make(map[string]int),
		Params:      make(map[string]string),
		Positionals: &positional.List{},
	}

	// lastFlag is the most recently seen flag still awaiting a
	// possible value; terminated latches once "--" is seen.
	var lastFlag string
	var terminated bool

	for _, arg := range args {
		if arg == "" {
			continue
		}

		if terminated {
			res.Positionals.Append(arg, "")

			continue
		}

		switch token.Classify(arg) {
		case token.Dash:
			res.Positionals.Append(arg, "")

			lastFlag = ""

		case token.Terminator:
			terminated = true
			lastFlag = ""

		case token.Flag:
			lastFlag = res.scanFlag(arg)

		case token.Word:
			res.scanWord(arg, lastFlag)

			lastFlag = ""
		}
	}

	return res
}

// scanFlag records a flag-shaped token and returns the flag that may
// claim the next word as its value, or empty when the token was
// self-contained.
func (res *Result) scanFlag(arg string) string {
	// An "=" form flag carries its own value and never consumes a
	// following token.
	if key, value, found := token.SplitAssign(arg); found {
		res.Flags[key]++
		res.Params[key] = value

		return ""
	}

	if token.IsLong(arg) {
		res.Flags[arg]++

		return arg
	}

	// Short option bundle: each letter is its own flag, and only the
	// last one can claim a following value ("-vo out.txt" binds
	// "out.txt" to "-o", not "-v").
	shorts := token.ExpandBundle(arg)
	for _, short := range shorts {
		res.Flags[short]++
	}

	return shorts[len(shorts)-1]
}

// scanWord records a bare word. When a flag is awaiting a value, the
// word is recorded both as that flag's tentative value and as a
// positional candidate owned by it; the ambiguity stands until the
// caller confirms the flag as a parameter.
func (res *Result) scanWord(arg, lastFlag string) {
	if lastFlag != "" {
		res.Params[lastFlag] = arg
	}

	res.Positionals.Append(arg, lastFlag)
}
