// Package validator checks classified parameter values against
// go-playground/validator rule strings, so a caller can reject bad
// option values ("--port=banana") with the same rule vocabulary used
// elsewhere in its configuration.
package validator

import (
	"errors"
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"

	"github.com/shrimpster00/argh"
)

// ErrValidation wraps every rule failure reported by Check.
var ErrValidation = errors.New("invalid parameter value")

// Rules maps a flag spelling ("-o", "--output") to a validation rule
// string, e.g. "required,file". Refer to the go-playground/validator
// documentation for the rule vocabulary.
type Rules map[string]string

// New returns a fresh validator instance, exposed so callers can
// register custom validations before passing it to CheckWith.
func New() *validator.Validate {
	return validator.New()
}

// Check validates each flag's parameter value against its rule using a
// default validator. Looking a parameter up confirms the flag as
// value-taking, so positional indices may shift after a call. Absent
// parameters validate as the empty string, which "required" rejects.
func Check(args *argh.Args, rules Rules) error {
	return CheckWith(New(), args, rules)
}

// CheckWith is Check with a caller-supplied validator. Flags are
// checked in sorted order so the reported failure is deterministic.
func CheckWith(validate *validator.Validate, args *argh.Args, rules Rules) error {
	flags := make([]string, 0, len(rules))
	for flag := range rules {
		flags = append(flags, flag)
	}

	sort.Strings(flags)

	for _, flag := range flags {
		value, _ := args.LookupParameter(flag)

		if err := validate.Var(value, rules[flag]); err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrValidation, flag, value, err)
		}
	}

	return nil
}
