package main

import (
	"fmt"
	"os"

	"github.com/rsteube/carapace"
	"github.com/spf13/cobra"

	"github.com/shrimpster00/argh"
	"github.com/shrimpster00/argh/gen/flagset"
)

//
// A small demo: a cobra command that keeps cobra's help, completion and
// flag declarations, but classifies the argument vector with argh so
// that options may appear anywhere, bundled or not, before or after
// the file operands.
//

func main() {
	concat := &cobra.Command{
		Use:   "concat [flags] [file]...",
		Short: "Concatenate files, demonstrating query-driven argument classification",

		// argh does the parsing; cobra only carries declarations.
		DisableFlagParsing: true,

		RunE: run,
	}

	concat.Flags().BoolP("verbose", "v", false, "log each file as it is read")
	concat.Flags().BoolP("number", "n", false, "number output lines")
	concat.Flags().StringP("output", "o", "-", "write to file instead of stdout")

	// Standalone shell completions for the declared flags, and file
	// completion for the operands.
	comps := carapace.Gen(concat)
	comps.Standalone()
	comps.PositionalAnyCompletion(carapace.ActionFiles())

	if err := concat.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, rawArgs []string) error {
	args := argh.Parse(rawArgs)

	if args.HasFlag("-h", "--help") {
		return cmd.Help()
	}

	// The declared flag set knows which flags take values, so one
	// call resolves every value/positional ambiguity at once.
	if err := flagset.Apply(args, cmd.Flags()); err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	number, _ := cmd.Flags().GetBool("number")
	output, _ := cmd.Flags().GetString("output")

	fmt.Printf("verbose=%v number=%v output=%s\n", verbose, number, output)
	fmt.Printf("operands: %v\n", args.Positionals())

	return nil
}
