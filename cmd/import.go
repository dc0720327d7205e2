package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fortune"
	"github.com/google/subcommands"
)

type importCmd struct {
	replace bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import investment options from a JSON file" }
func (*importCmd) Usage() string {
	return `ffc import [-replace] <file.json>

  Imports investment options from a JSON array, as written by 'ffc export -json'.
  Options are appended, or replace the current ones with -replace. Imported
  options whose ID is already known get a new ID.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.replace, "replace", false, "Replace the current options instead of appending")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: import expects exactly one file")
		return subcommands.ExitUsageError
	}
	file, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	imported, err := fortune.DecodeOptions(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}

	s := openStore()
	var opts fortune.Options
	if !c.replace {
		opts = s.LoadOptions()
	}
	for _, o := range imported {
		if _, found := opts.Find(o.ID); found || o.ID == "" {
			o.ID = fortune.NewID()
		}
		warnInvalid(o)
		opts = opts.Add(o)
	}
	s.SaveOptions(opts)

	fmt.Fprintf(stdout, "Imported %d options\n", len(imported))
	return subcommands.ExitSuccess
}
