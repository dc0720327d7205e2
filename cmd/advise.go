package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/fortune/agent"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// adviseCmd is the subcommand for the AI advisor.
type adviseCmd struct {
	scenarioFlags
	interactive bool
	model       string
}

func (*adviseCmd) Name() string     { return "advise" }
func (*adviseCmd) Synopsis() string { return "ask Gemini about your investment options" }
func (*adviseCmd) Usage() string {
	return `ffc advise [-i] [-model <name>] [question]

  Asks Gemini a question about the investment options and their projection.
  Without a question, or with -i, starts an interactive session.

  The Gemini API key is read from GEMINI_API_KEY or GOOGLE_API_KEY.
`
}

func (c *adviseCmd) SetFlags(f *flag.FlagSet) {
	c.register(f)
	f.BoolVar(&c.interactive, "i", false, "Keep the session open after the question")
	f.StringVar(&c.model, "model", config.GeminiModel, "Gemini model")
}

func (c *adviseCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	opts, err := c.options()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading options: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(opts) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no investment option to talk about, add one with 'ffc add'")
		return subcommands.ExitFailure
	}

	question := strings.Join(f.Args(), " ")
	interactive := c.interactive || question == ""

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	advisor := agent.NewAdvisor(c.model, agent.Scenario{
		Options:  opts,
		Profile:  loadProfile(openStore()),
		Currency: *currency,
	})
	a := agent.New(stdout, os.Stdin, advisor)
	a.Print = func(_ io.Writer, answer string) { printMarkdown(answer) }

	if err := a.Run(ctx, client, interactive, question); err != nil {
		fmt.Fprintln(os.Stderr, "Advisor failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
