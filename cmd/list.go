package cmd

import (
	"context"
	"flag"

	"github.com/etnz/fortune/renderer"
	"github.com/google/subcommands"
)

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list investment options" }
func (*listCmd) Usage() string {
	return `ffc list

  Lists the investment options, with their settings.
`
}

func (*listCmd) SetFlags(*flag.FlagSet) {}

func (*listCmd) Execute(context.Context, *flag.FlagSet, ...interface{}) subcommands.ExitStatus {
	printMarkdown(renderer.OptionsMarkdown(openStore().LoadOptions(), *currency))
	return subcommands.ExitSuccess
}
