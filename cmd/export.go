package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/fortune"
	"github.com/etnz/fortune/renderer"
	"github.com/google/subcommands"
)

type exportCmd struct {
	scenarioFlags
	results bool
	json    bool
	output  string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export options or projection results to a file" }
func (*exportCmd) Usage() string {
	return `ffc export [-results] [-json] [-o <file>] [-in <file.json>]

  Exports the investment options, or with -results their projection, as CSV
  or JSON. The file is named after the content and today's date unless -o is
  given, '-o -' writes to the standard output.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	c.register(f)
	f.BoolVar(&c.results, "results", false, "Export the projection instead of the options")
	f.BoolVar(&c.json, "json", false, "Export as JSON instead of CSV")
	f.StringVar(&c.output, "o", "", "Output file")
}

// filename returns the default export file name.
func (c *exportCmd) filename() string {
	name, ext := "options", "csv"
	if c.results {
		name = "results"
	}
	if c.json {
		ext = "json"
	}
	return fmt.Sprintf("%s_%s.%s", name, now().Format("2006-01-02"), ext)
}

func (c *exportCmd) write(w io.Writer, opts fortune.Options) error {
	switch {
	case c.results && c.json:
		return fortune.EncodeProjection(w, fortune.Project(opts))
	case c.results:
		return renderer.ProjectionCSV(w, fortune.Project(opts))
	case c.json:
		return fortune.EncodeOptions(w, opts)
	default:
		return renderer.OptionsCSV(w, opts)
	}
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	opts, err := c.options()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading options: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(opts) == 0 {
		fmt.Fprintln(os.Stderr, "Warning: no investment option to export")
		return subcommands.ExitSuccess
	}

	if c.output == "-" {
		if err := c.write(stdout, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	filename := c.output
	if filename == "" {
		filename = c.filename()
	}
	file, err := os.Create(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	if err := c.write(file, opts); err != nil {
		file.Close()
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	if err := file.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(stdout, "Exported to %s\n", filename)
	return subcommands.ExitSuccess
}
