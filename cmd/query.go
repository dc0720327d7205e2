package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/fortune"
	"github.com/goccy/go-json"
	"github.com/google/subcommands"
)

type queryCmd struct {
	scenarioFlags
	onOptions bool
}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "extract values from the projection with a JSONPath" }
func (*queryCmd) Usage() string {
	return `ffc query [-options] [-in <file.json>] <jsonpath>

  Evaluates a JSONPath expression on the projection JSON, or on the options
  JSON with -options, and prints the result. For instance:

    ffc query '$.sumPerYear[-1:].fortune'
    ffc query '$.optionProjections[*].name'
`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {
	c.register(f)
	f.BoolVar(&c.onOptions, "options", false, "Query the options instead of the projection")
}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: query expects exactly one JSONPath expression")
		return subcommands.ExitUsageError
	}

	opts, err := c.options()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading options: %v\n", err)
		return subcommands.ExitFailure
	}
	var buf bytes.Buffer
	if c.onOptions {
		err = fortune.EncodeOptions(&buf, opts)
	} else {
		err = fortune.EncodeProjection(&buf, fortune.Project(opts))
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding: %v\n", err)
		return subcommands.ExitFailure
	}

	out, err := query(buf.Bytes(), f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(stdout, out)
	return subcommands.ExitSuccess
}

// query evaluates path on a JSON document. Strings are returned as is, other
// values as indented JSON.
func query(data []byte, path string) (string, error) {
	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		return "", err
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return "", fmt.Errorf("invalid query %q: %w", path, err)
	}
	if s, ok := jval.(string); ok {
		return s, nil
	}
	out, err := json.MarshalIndent(jval, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}
