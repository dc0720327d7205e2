package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/etnz/fortune"
	"github.com/etnz/fortune/docs"
	"github.com/etnz/fortune/renderer"
	"github.com/shopspring/decimal"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Scenario is what the advisor knows about the user.
type Scenario struct {
	Options  fortune.Options
	Profile  *fortune.Profile
	Currency string
}

// NewAdvisor creates the expert that answers questions about the scenario.
func NewAdvisor(model string, s Scenario) *Expert {
	if model == "" {
		model = DefaultModel
	}
	lib := s.functions()
	return &Expert{
		Name:      "Advisor",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction()}}},
		},
		Library: NewLibrary(lib),
	}
}

func systemInstruction() string {
	var b strings.Builder
	b.WriteString(`
	You are a personal finance advisor. The user plans a few investment options and
	projects what their fortune could become over the years.

	Use the Tools to read the user's options and their projection before answering.
	Use the what_if tool to compare variations of the plan, and quote the figures it returns.
	Never pretend the projection is a prediction: rates are the user's own expectations.
	Answer in markdown, briefly.

	This is how the projection is computed:
	`)
	if topic, err := docs.GetTopic("projection"); err == nil {
		b.WriteString(topic)
	}
	return b.String()
}

func (s Scenario) functions() []Function {
	return []Function{
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "options",
				Description: "Lists the user's investment options with their amounts, expected rates and years.",
				Response: &genai.Schema{
					Type:        genai.TypeString,
					Description: "A markdown document describing every option.",
				},
			},
			Func: func(context.Context, map[string]any) (string, error) {
				return renderer.OptionsMarkdown(s.Options, s.Currency), nil
			},
		},
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "projection",
				Description: "Projects the user's options year by year: fortune, investment and profit, in total and per option.",
				Response: &genai.Schema{
					Type:        genai.TypeString,
					Description: "A markdown report of the projection.",
				},
			},
			Func: func(context.Context, map[string]any) (string, error) {
				p := fortune.Project(s.Options)
				return renderer.ProjectionMarkdown(p, renderer.ProjectionOptions{Currency: s.Currency, Profile: s.Profile}), nil
			},
		},
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "what_if",
				Description: "Projects a variation of the user's options and compares it with the current plan.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"rate_delta": {
							Type:        genai.TypeNumber,
							Description: "Percentage points added to every option rate, for instance -1.5.",
						},
						"amount_factor": {
							Type:        genai.TypeNumber,
							Description: "Factor applied to every yearly amount, 1 keeps them unchanged.",
						},
						"extra_years": {
							Type:        genai.TypeInteger,
							Description: "Years added to the end of every option.",
						},
					},
				},
				Response: &genai.Schema{
					Type:        genai.TypeString,
					Description: "The fortune, total investment and total profit of both plans.",
				},
			},
			Func: func(_ context.Context, args map[string]any) (string, error) {
				v := Variation{AmountFactor: 1}
				var err error
				if v.RateDelta, err = number(args, "rate_delta", 0); err != nil {
					return "", err
				}
				if v.AmountFactor, err = number(args, "amount_factor", 1); err != nil {
					return "", err
				}
				years, err := number(args, "extra_years", 0)
				if err != nil {
					return "", err
				}
				v.ExtraYears = int(years)
				return s.compare(v), nil
			},
		},
	}
}

// Variation describes a change applied to every option.
type Variation struct {
	RateDelta    float64 // percentage points
	AmountFactor float64
	ExtraYears   int
}

// Apply returns the options changed by v.
func (v Variation) Apply(opts fortune.Options) fortune.Options {
	res := make(fortune.Options, 0, len(opts))
	for _, o := range opts {
		o.Rate = fortune.P(o.Rate.Value().Add(decimal.NewFromFloat(v.RateDelta)))
		o.Amount = o.Amount.Mul(decimal.NewFromFloat(v.AmountFactor))
		o.EndYear += v.ExtraYears
		res = append(res, o)
	}
	return res
}

func (s Scenario) compare(v Variation) string {
	current := fortune.Project(s.Options)
	variant := fortune.Project(v.Apply(s.Options))
	money := func(d decimal.Decimal) string { return fortune.M(d, s.Currency).String() }

	var b strings.Builder
	fmt.Fprintf(&b, "| Plan | Fortune | Total investment | Total profit |\n")
	fmt.Fprintf(&b, "|------|--------:|-----------------:|-------------:|\n")
	fmt.Fprintf(&b, "| current | %s | %s | %s |\n", money(current.Fortune()), money(current.TotalInvestment), money(current.TotalProfit))
	fmt.Fprintf(&b, "| variation | %s | %s | %s |\n", money(variant.Fortune()), money(variant.TotalInvestment), money(variant.TotalProfit))
	return b.String()
}

// number reads a numeric argument of a function call.
func number(args map[string]any, name string, def float64) (float64, error) {
	v, ok := args[name]
	if !ok || v == nil {
		return def, nil
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("invalid type for %s got %T, expected a number", name, v)
	}
}
