// Package agent runs a Gemini chat session that comments on the user's
// investment options and their projected fortune.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Agent is the AI assistant that handles the chat session.
type Agent struct {
	w       io.Writer
	r       *bufio.Reader
	Advisor *Expert
	// Print renders an answer, defaults to writing it as is.
	Print func(w io.Writer, answer string)
}

// New creates a new Agent talking to the user through w and r.
func New(w io.Writer, r io.Reader, advisor *Expert) *Agent {
	return &Agent{
		w:       w,
		r:       bufio.NewReader(r),
		Advisor: advisor,
		Print: func(w io.Writer, answer string) {
			fmt.Fprintln(w, answer)
		},
	}
}

const prompt = "advise> "

// Run starts the interactive session. The prompts are sent first, then the
// user is asked until "bye" or the end of input.
//
// When interactive is false, Run returns after the prompts.
func (a *Agent) Run(ctx context.Context, client *genai.Client, interactive bool, prompts ...string) error {
	if a.Advisor.chat == nil {
		if err := a.Advisor.Start(ctx, client); err != nil {
			return err
		}
	}

	if interactive {
		fmt.Fprintln(a.w, "Welcome to ffc advise. Type 'bye' to exit.")
	}

	for {
		var input string
		if len(prompts) > 0 {
			input, prompts = strings.TrimSpace(prompts[0]), prompts[1:]
			if input == "" {
				continue
			}
			if interactive {
				fmt.Fprintln(a.w, prompt+input)
			}
		} else {
			if !interactive {
				return nil
			}
			fmt.Fprint(a.w, prompt)
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Ctrl+D
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}

		content, err := a.Advisor.Ask(ctx, &genai.Part{Text: input})
		if err != nil {
			return err
		}
		a.Print(a.w, textOf(content))
	}
}

// textOf concatenates the text parts of a content.
func textOf(c *genai.Content) string {
	var b strings.Builder
	for _, p := range c.Parts {
		b.WriteString(p.Text)
	}
	return b.String()
}
