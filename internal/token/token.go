package token

import "strings"

// Kind is the shape of a single raw argument token, before any parse
// state (pending flag values, option terminators) is taken into account.
type Kind int

const (
	// Empty is the empty string, skipped entirely during scanning.
	Empty Kind = iota

	// Dash is a lone "-", by convention a stdin/stdout placeholder,
	// always treated as an ordinary positional argument.
	Dash

	// Terminator is "--", which ends option processing.
	Terminator

	// Flag is any other token of at least two characters starting
	// with a hyphen: a long option, a short option bundle, or either
	// form carrying an inline "=value".
	Flag

	// Word is anything else: a positional argument or the value of a
	// preceding flag.
	Word
)

// Classify determines the shape of a single token.
func Classify(arg string) Kind {
	switch {
	case arg == "":
		return Empty
	case arg == "-":
		return Dash
	case arg == "--":
		return Terminator
	case len(arg) >= 2 && arg[0] == '-':
		return Flag
	default:
		return Word
	}
}

// SplitAssign splits a flag token carrying an inline value at the first
// equals sign, as in "--output=file.txt". The reported key keeps its
// leading hyphens. Found is false when the token has no equals sign.
func SplitAssign(arg string) (key, value string, found bool) {
	idx := strings.Index(arg, "=")
	if idx < 0 {
		return "", "", false
	}

	return arg[:idx], arg[idx+1:], true
}

// IsLong reports whether a flag token is in long (double-hyphen) form.
func IsLong(arg string) bool {
	return strings.HasPrefix(arg, "--")
}

// ExpandBundle expands a short option bundle into its individual
// one-letter flag tokens: "-abc" yields "-a", "-b", "-c". A plain short
// option expands to itself.
func ExpandBundle(arg string) []string {
	shorts := make([]string, 0, len(arg)-1)
	for _, opt := range arg[1:] {
		shorts = append(shorts, "-"+string(opt))
	}

	return shorts
}
