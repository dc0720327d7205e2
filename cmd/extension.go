package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"

	"github.com/google/subcommands"
)

// Environment variables passed to extensions, the ones Config reads.
const (
	EnvStoreDir = "FFC_STORE_DIR"
	EnvCurrency = "FFC_CURRENCY"
	EnvLogLevel = "FFC_LOG_LEVEL"
)

// Known reports whether 'name' is a subcommand registered on c.
func Known(c *subcommands.Commander, name string) bool {
	found := false
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		found = found || cmd.Name() == name
	})
	return found
}

// RunExtension attempts to find and execute an external ffc-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
//
// The extension receives the global flags as the environment variables read
// by LoadConfig, so it can share the store with ffc.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "ffc-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		slog.Debug("external command not found in PATH", "command", externalCmdName, "err", err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	level := config.LogLevel
	if *Verbose {
		level = "debug"
	}
	cmd.Env = append(os.Environ(),
		EnvStoreDir+"="+*storeDir,
		EnvCurrency+"="+*currency,
		EnvLogLevel+"="+level,
	)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}
