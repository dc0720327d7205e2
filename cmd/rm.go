package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type rmCmd struct{}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "remove investment options" }
func (*rmCmd) Usage() string {
	return `ffc rm <id>...

  Removes the given options. Nothing is removed if any ID is unknown.
`
}

func (*rmCmd) SetFlags(*flag.FlagSet) {}

func (*rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: rm expects at least one option ID")
		return subcommands.ExitUsageError
	}

	s := openStore()
	opts := s.LoadOptions()
	var names []string
	for _, prefix := range f.Args() {
		o, err := resolveOption(opts, prefix)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		if opts, err = opts.Remove(o.ID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		names = append(names, fmt.Sprintf("%s %q", o.ID.Short(), o.DisplayName()))
	}
	s.SaveOptions(opts)

	for _, n := range names {
		fmt.Fprintf(stdout, "Removed option %s\n", n)
	}
	return subcommands.ExitSuccess
}
