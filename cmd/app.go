// Package cmd implements the ffc command line application to plan investment
// options and project the fortune they could build.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/fortune"
	"github.com/etnz/fortune/store"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "options")
	c.Register(&editCmd{}, "options")
	c.Register(&copyCmd{}, "options")
	c.Register(&rmCmd{}, "options")
	c.Register(&clearCmd{}, "options")
	c.Register(&listCmd{}, "options")
	c.Register(&showCmd{}, "options")
	c.Register(&importCmd{}, "options")

	c.Register(&profileCmd{}, "profile")

	c.Register(&reportCmd{}, "projection")
	c.Register(&chartCmd{}, "projection")
	c.Register(&exportCmd{}, "projection")
	c.Register(&queryCmd{}, "projection")
	c.Register(&adviseCmd{}, "projection")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var config = LoadConfig()

var (
	storeDir    = flag.String("store", config.StoreDir, "Folder where investment options and profile are stored")
	currency    = flag.String("currency", config.Currency, "Currency used to present amounts")
	Verbose     = flag.Bool("v", false, "Verbose logging")
	rawMarkdown = flag.Bool("raw", false, "Print reports as plain markdown instead of rendering them for the terminal")
)

// stdout receives the commands output.
var stdout io.Writer = os.Stdout

// now is the current time, replaced in tests.
var now = time.Now

func currentYear() int { return now().Year() }

// InitLogger installs the default slog logger, at the configured level or
// debug level in verbose mode.
func InitLogger(w io.Writer) {
	level := new(slog.LevelVar)
	if err := level.UnmarshalText([]byte(config.LogLevel)); err != nil {
		level.Set(slog.LevelWarn)
	}
	if *Verbose {
		level.Set(slog.LevelDebug)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// openStore opens the app store folder.
func openStore() *store.Store {
	return store.Open(*storeDir)
}

// resolveOption finds the option matching an ID or a unique ID prefix.
func resolveOption(opts fortune.Options, prefix string) (fortune.Option, error) {
	id, err := opts.Resolve(prefix)
	if err != nil {
		return fortune.Option{}, err
	}
	o, _ := opts.Find(id)
	return o, nil
}

// loadProfile returns the stored profile, or nil if the user never set it.
func loadProfile(s *store.Store) *fortune.Profile {
	p, ok := s.LoadProfile()
	if !ok {
		return nil
	}
	return &p
}

// printMarkdown renders markdown for the terminal.
func printMarkdown(md string) {
	if *rawMarkdown {
		fmt.Fprint(stdout, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		slog.Debug("cannot create markdown renderer", "err", err)
		fmt.Fprint(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		slog.Debug("cannot render markdown", "err", err)
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}
