package cmd

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/etnz/fortune"
	"github.com/etnz/fortune/renderer"
	"github.com/google/subcommands"
)

// scenarioFlags selects the options to project: the store ones, or a JSON file.
type scenarioFlags struct {
	in string
}

func (c *scenarioFlags) register(f *flag.FlagSet) {
	f.StringVar(&c.in, "in", "", "Project the options of this JSON file instead of the stored ones")
}

func (c *scenarioFlags) options() (fortune.Options, error) {
	if c.in == "" {
		return openStore().LoadOptions(), nil
	}
	file, err := os.Open(c.in)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	opts, err := fortune.DecodeOptions(file)
	if err != nil {
		return nil, fmt.Errorf("cannot decode %q: %w", c.in, err)
	}
	return opts, nil
}

// project computes the projection of the selected options.
func (c *scenarioFlags) project() (fortune.Projection, error) {
	opts, err := c.options()
	if err != nil {
		return fortune.Projection{}, err
	}
	if err := opts.Validate(); err != nil {
		slog.Warn("inconsistent investment options", "err", err)
	}
	return fortune.Project(opts), nil
}

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	scenarioFlags
	chart       bool
	toc         bool
	summary     bool
	optionsOnly bool
	json        bool
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display the projected fortune year by year" }
func (*reportCmd) Usage() string {
	return `ffc report [-chart] [-toc] [-summary] [-options-only] [-json] [-in <file.json>]

  Projects the investment options and displays the fortune, investment and
  profit of every year, in total and per option.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	c.register(f)
	f.BoolVar(&c.chart, "chart", false, "Add a chart of the fortune over the years")
	f.BoolVar(&c.toc, "toc", false, "Add a table of contents")
	f.BoolVar(&c.summary, "summary", false, "Only display the total, not each option")
	f.BoolVar(&c.optionsOnly, "options-only", false, "Only display the options settings, not their projection")
	f.BoolVar(&c.json, "json", false, "Print the projection as JSON")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.optionsOnly {
		opts, err := c.options()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading options: %v\n", err)
			return subcommands.ExitFailure
		}
		printMarkdown(renderer.OptionsMarkdown(opts, *currency))
		return subcommands.ExitSuccess
	}

	p, err := c.project()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading options: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.json {
		if err := fortune.EncodeProjection(stdout, p); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding projection: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	report := renderer.ProjectionMarkdown(p, renderer.ProjectionOptions{
		Currency:    *currency,
		Profile:     loadProfile(openStore()),
		Chart:       c.chart,
		SkipOptions: c.summary,
	})
	if c.toc {
		report = withTableOfContents(report)
	}
	printMarkdown(report)
	return subcommands.ExitSuccess
}

// withTableOfContents inserts the table of contents right after the title.
func withTableOfContents(report string) string {
	toc := renderer.TableOfContentsMarkdown(renderer.TableOfContents(report, 2, 3))
	if toc == "" {
		return report
	}
	title, body, _ := strings.Cut(report, "\n")
	return title + "\n\n**Contents**\n\n" + toc + body
}
