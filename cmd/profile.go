package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fortune"
	"github.com/etnz/fortune/store"
	"github.com/google/subcommands"
)

type profileCmd struct {
	birthYear int
	clear     bool
}

func (*profileCmd) Name() string     { return "profile" }
func (*profileCmd) Synopsis() string { return "show or set the user profile" }
func (*profileCmd) Usage() string {
	return `ffc profile [-birth-year <year>] [-clear]

  Shows the user profile, or sets it. Once a birth year is known, reports show
  the user's age for every year.
`
}

func (c *profileCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.birthYear, "birth-year", 0, "Year of birth")
	f.BoolVar(&c.clear, "clear", false, "Forget the profile")
}

func (c *profileCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := openStore()
	year := currentYear()

	switch {
	case c.clear:
		s.Clear(store.KeyProfile)
		fmt.Fprintln(stdout, "Profile cleared")
		return subcommands.ExitSuccess

	case c.birthYear != 0:
		if c.birthYear > year {
			fmt.Fprintf(os.Stderr, "Error: birth year %d is in the future\n", c.birthYear)
			return subcommands.ExitUsageError
		}
		s.SaveProfile(fortune.Profile{BirthYear: c.birthYear})
	}

	p, ok := s.LoadProfile()
	if !ok {
		p = fortune.DefaultProfile(year)
		fmt.Fprintf(stdout, "No profile yet, assuming born in %d (%d years old). Set it with 'ffc profile -birth-year <year>'.\n", p.BirthYear, p.Age(year))
		return subcommands.ExitSuccess
	}
	fmt.Fprintf(stdout, "Born in %d, %d years old in %d\n", p.BirthYear, p.Age(year), year)
	return subcommands.ExitSuccess
}
