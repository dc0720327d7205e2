package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/fortune"
	"github.com/etnz/fortune/renderer"
	"github.com/google/subcommands"
)

type showCmd struct {
	projection bool
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "show an investment option" }
func (*showCmd) Usage() string {
	return `ffc show [-p] <id>

  Shows the settings of an investment option, and with -p its projection.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.projection, "p", false, "Add the projection of this option alone")
}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: show expects exactly one option ID")
		return subcommands.ExitUsageError
	}
	o, err := resolveOption(openStore().LoadOptions(), f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var b strings.Builder
	b.WriteString(renderer.OptionMarkdown(o, *currency))
	if c.projection {
		b.WriteString("\n")
		p := fortune.Project([]fortune.Option{o})
		b.WriteString(renderer.ProjectionMarkdown(p, renderer.ProjectionOptions{Currency: *currency, SkipOptions: true}))
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
