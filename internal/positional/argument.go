package positional

// Arg is a single positional argument candidate: a token that is either
// a genuine positional argument, or the not-yet-resolved value of the
// flag that immediately preceded it. The scanner cannot tell these two
// cases apart on its own, so it records both interpretations and lets
// the caller resolve the ambiguity later by confirming the owner as a
// value-taking parameter.
type Arg struct {
	// Value is the literal token text.
	Value string

	// Owner is the flag token immediately preceding this candidate,
	// or empty for tokens with no preceding flag (the first word of
	// the vector, or any word after the "--" terminator).
	Owner string
}

// List holds the ordered positional candidates of one parse. Candidates
// appear in input order, and are only ever removed through RemoveOwned.
type List struct {
	args []Arg
}

// Append records a new candidate at the end of the list.
func (l *List) Append(value, owner string) {
	l.args = append(l.args, Arg{Value: value, Owner: owner})
}

// At returns the value of the candidate at the given index, or the
// empty string when the index is out of bounds. Indices shift when
// candidates are removed, so callers resolving parameters should do so
// before relying on stable positions.
func (l *List) At(index int) string {
	if index < 0 || index >= len(l.args) {
		return ""
	}

	return l.args[index].Value
}

// Len returns the current number of candidates.
func (l *List) Len() int {
	return len(l.args)
}

// Values returns the candidate values in order.
func (l *List) Values() []string {
	values := make([]string, len(l.args))
	for i, arg := range l.args {
		values[i] = arg.Value
	}

	return values
}

// RemoveOwned removes every candidate claimed by the given owner, and
// returns how many were removed. Repeated flags (or malformed input)
// can record several candidates under one owner, so all of them go.
// Removing an owner nobody claims is a no-op.
func (l *List) RemoveOwned(owner string) int {
	if owner == "" {
		return 0
	}

	kept := l.args[:0]
	removed := 0

	for _, arg := range l.args {
		if arg.Owner == owner {
			removed++

			continue
		}

		kept = append(kept, arg)
	}

	l.args = kept

	return removed
}
