package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fortune"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// optionFlags holds the flags describing an investment option, shared by
// 'add' and 'edit'.
type optionFlags struct {
	name       string
	initial    string
	amount     string
	rate       string
	volatility string
	start      int
	end        int
}

func (c *optionFlags) register(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the investment option")
	f.StringVar(&c.initial, "initial", "0", "Amount invested once, the first year")
	f.StringVar(&c.amount, "amount", "0", "Amount invested every year")
	f.StringVar(&c.rate, "rate", "0", "Expected yearly rate in percent, like 4.5 or 4.5%")
	f.StringVar(&c.volatility, "volatility", "0", "Expected volatility in percent, informative only")
	f.IntVar(&c.start, "start", currentYear(), "First year of investment")
	f.IntVar(&c.end, "end", 0, "Last year of investment, 10 years after the start by default")
}

// apply sets the fields of 'o' whose flag was set on the command line.
func (c *optionFlags) apply(f *flag.FlagSet, o fortune.Option) (fortune.Option, error) {
	var err error
	f.Visit(func(fl *flag.Flag) {
		if err != nil {
			return
		}
		switch fl.Name {
		case "name":
			o.Name = c.name
		case "initial":
			o.InitialAmount, err = parseAmount(fl.Name, c.initial)
		case "amount":
			o.Amount, err = parseAmount(fl.Name, c.amount)
		case "rate":
			o.Rate, err = parseRate(fl.Name, c.rate)
		case "volatility":
			o.Volatility, err = parseRate(fl.Name, c.volatility)
		case "start":
			o.StartYear = c.start
		case "end":
			o.EndYear = c.end
		}
	})
	return o, err
}

func parseAmount(name, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s %q: %w", name, s, err)
	}
	return d, nil
}

func parseRate(name, s string) (fortune.Percent, error) {
	p, err := fortune.ParsePercent(s)
	if err != nil {
		return fortune.Percent{}, fmt.Errorf("invalid %s %q: %w", name, s, err)
	}
	return p, nil
}

// warnInvalid prints a warning for an option the projection will skip.
func warnInvalid(o fortune.Option) {
	if err := o.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, this option contributes nothing to the projection\n", err)
	}
}

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	optionFlags
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add an investment option" }
func (*addCmd) Usage() string {
	return `ffc add [-name <name>] [-initial <amount>] [-amount <amount>] [-rate <percent>] [-start <year>] [-end <year>]

  Adds an investment option. Unset values are zero, the option starts this
  year and lasts 10 years.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) { c.register(f) }

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Fprintf(os.Stderr, "Error: unexpected arguments %q\n", f.Args())
		return subcommands.ExitUsageError
	}
	o, err := c.apply(f, fortune.NewOption(c.start))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	warnInvalid(o)

	s := openStore()
	s.SaveOptions(s.LoadOptions().Add(o))

	fmt.Fprintf(stdout, "Added option %s %q\n", o.ID.Short(), o.DisplayName())
	return subcommands.ExitSuccess
}
