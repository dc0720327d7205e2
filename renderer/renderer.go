// Package renderer turns projections and investment options into markdown,
// terminal charts and CSV files.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/fortune"
)

//go:embed templates/*.md
var templatesFS embed.FS

var templates, _ = fs.Sub(templatesFS, "templates")

// optionView is the template model of an investment option.
type optionView struct {
	ID            string
	ShortID       string
	Name          string
	InitialAmount string
	Amount        string
	Rate          string
	Volatility    string
	StartYear     int
	EndYear       int
	Years         int
}

func newOptionView(o fortune.Option, currency string) optionView {
	v := optionView{
		ID:            string(o.ID),
		ShortID:       o.ID.Short(),
		Name:          o.DisplayName(),
		InitialAmount: fortune.M(o.InitialAmount, currency).String(),
		Amount:        fortune.M(o.Amount, currency).String(),
		Rate:          o.Rate.String(),
		StartYear:     o.StartYear,
		EndYear:       o.EndYear,
		Years:         o.Years(),
	}
	if !o.Volatility.IsZero() {
		v.Volatility = o.Volatility.String()
	}
	return v
}

// OptionMarkdown renders a single investment option as a markdown card.
func OptionMarkdown(o fortune.Option, currency string) string {
	partials := map[string]string{
		"option_card": "option_card.md",
	}
	return renderTemplate("option", "option.md", partials, newOptionView(o, currency))
}

// OptionsMarkdown renders the list of investment options.
func OptionsMarkdown(opts fortune.Options, currency string) string {
	views := make([]optionView, 0, len(opts))
	for _, o := range opts {
		views = append(views, newOptionView(o, currency))
	}
	partials := map[string]string{
		"option_card": "option_card.md",
	}
	return renderTemplate("options", "options.md", partials, views)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(templates, file)
			if readErr != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
