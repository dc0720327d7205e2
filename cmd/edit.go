package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// editCmd holds the flags for the 'edit' subcommand.
type editCmd struct {
	optionFlags
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "change an investment option" }
func (*editCmd) Usage() string {
	return `ffc edit [-name <name>] [-initial <amount>] [-amount <amount>] [-rate <percent>] [-start <year>] [-end <year>] <id>

  Changes the values of the option <id> given on the command line, the
  others are kept. <id> can be any unique prefix of the option ID.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) { c.register(f) }

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: edit expects exactly one option ID")
		return subcommands.ExitUsageError
	}

	s := openStore()
	opts := s.LoadOptions()
	o, err := resolveOption(opts, f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if o, err = c.apply(f, o); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	warnInvalid(o)

	if opts, err = opts.Update(o); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	s.SaveOptions(opts)

	fmt.Fprintf(stdout, "Updated option %s %q\n", o.ID.Short(), o.DisplayName())
	return subcommands.ExitSuccess
}
