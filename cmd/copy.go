package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type copyCmd struct {
	name string
}

func (*copyCmd) Name() string     { return "copy" }
func (*copyCmd) Synopsis() string { return "duplicate an investment option" }
func (*copyCmd) Usage() string {
	return `ffc copy [-name <name>] <id>

  Appends a copy of the option <id> with a new ID, to try a variation of it.
`
}

func (c *copyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the copy, the original name by default")
}

func (c *copyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: copy expects exactly one option ID")
		return subcommands.ExitUsageError
	}

	s := openStore()
	opts := s.LoadOptions()
	id, err := opts.Resolve(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	opts, dup, err := opts.Duplicate(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.name != "" {
		dup.Name = c.name
		// the copy is new, Update cannot fail.
		opts, _ = opts.Update(dup)
	}
	s.SaveOptions(opts)

	fmt.Fprintf(stdout, "Copied option %s to %s %q\n", id.Short(), dup.ID.Short(), dup.DisplayName())
	return subcommands.ExitSuccess
}
