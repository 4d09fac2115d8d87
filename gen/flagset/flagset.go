// Package flagset bridges a classified argument vector onto a declared
// pflag.FlagSet. The flag set supplies what the classifier alone cannot
// know: which flags take values. Confirm uses those declarations to
// resolve positional/value ambiguity in bulk, and Apply additionally
// pushes the classified values onto the set.
package flagset

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/shrimpster00/argh"
)

// ErrApply is returned when a classified value cannot be set on the
// flag set, typically because it fails the flag type's conversion.
var ErrApply = errors.New("cannot apply argument to flag set")

// Confirm marks every non-bool flag declared in the set, under both its
// long and shorthand spellings, as a value-taking parameter. Positional
// candidates claimed by those flags are removed, so positional indices
// reflect only genuine positionals afterwards.
func Confirm(args *argh.Args, flags *pflag.FlagSet) {
	flags.VisitAll(func(flag *pflag.Flag) {
		if flag.Value.Type() == "bool" {
			return
		}

		args.ConfirmParameter(spellings(flag)...)
	})
}

// Apply confirms value-taking flags as Confirm does, then sets the
// classified values onto the set: present bool flags are set to true,
// and parameters receive their recorded value. Declared flags absent
// from the vector keep their defaults. The first conversion failure
// aborts with an error wrapping ErrApply.
func Apply(args *argh.Args, flags *pflag.FlagSet) error {
	var applyErr error

	flags.VisitAll(func(flag *pflag.Flag) {
		if applyErr != nil {
			return
		}

		if flag.Value.Type() == "bool" {
			if args.HasFlag(spellings(flag)...) {
				applyErr = set(flags, flag.Name, "true")
			}

			return
		}

		if value, found := lookup(args, spellings(flag)); found {
			applyErr = set(flags, flag.Name, value)
		}
	})

	return applyErr
}

// spellings returns the command-line spellings of a declared flag:
// "--name", plus "-s" when a shorthand is declared.
func spellings(flag *pflag.Flag) []string {
	names := []string{"--" + flag.Name}
	if flag.Shorthand != "" {
		names = append(names, "-"+flag.Shorthand)
	}

	return names
}

func lookup(args *argh.Args, names []string) (string, bool) {
	for _, name := range names {
		if value, found := args.LookupParameter(name); found {
			return value, true
		}
	}

	return "", false
}

func set(flags *pflag.FlagSet, name, value string) error {
	if err := flags.Set(name, value); err != nil {
		return fmt.Errorf("%w: --%s: %v", ErrApply, name, err)
	}

	return nil
}
