package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type clearCmd struct {
	yes bool
}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "remove all investment options" }
func (*clearCmd) Usage() string {
	return `ffc clear -yes

  Removes all investment options from the store. The profile is kept.
`
}

func (c *clearCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "yes", false, "Confirm the removal")
}

func (c *clearCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.yes {
		fmt.Fprintln(os.Stderr, "Error: clear removes every investment option, confirm with -yes")
		return subcommands.ExitUsageError
	}
	openStore().ClearOptions()
	fmt.Fprintln(stdout, "Cleared!")
	return subcommands.ExitSuccess
}
