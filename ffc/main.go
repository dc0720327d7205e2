package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/fortune/cmd"
	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	// exits when the shell asks for completion.
	cmd.Complete(commander, flag.CommandLine, "ffc")

	flag.Parse()
	cmd.InitLogger(os.Stderr)

	if name := flag.Arg(0); name != "" && !cmd.Known(commander, name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}
