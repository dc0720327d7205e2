package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fortune/renderer"
	"github.com/google/subcommands"
)

type chartCmd struct {
	scenarioFlags
	height int
	width  int
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "draw the projected fortune over the years" }
func (*chartCmd) Usage() string {
	return `ffc chart [-height <rows>] [-width <columns>] [-in <file.json>]

  Draws the total fortune and the fortune of each option over the years.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	c.register(f)
	f.IntVar(&c.height, "height", 12, "Rows of the chart")
	f.IntVar(&c.width, "width", 3, "Columns per year")
}

func (c *chartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := c.project()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading options: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprint(stdout, renderer.Chart(p, renderer.ChartOptions{Height: c.height, ColumnWidth: c.width}))
	return subcommands.ExitSuccess
}
