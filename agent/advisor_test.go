package agent

import (
	"context"
	"strings"
	"testing"

	"github.com/etnz/fortune"
	"google.golang.org/genai"
)

func scenario() Scenario {
	return Scenario{
		Options: fortune.Options{{
			ID:            "a",
			Name:          "ETF",
			InitialAmount: fortune.D(1000),
			Amount:        fortune.D(100),
			Rate:          fortune.P(10),
			StartYear:     2020,
			EndYear:       2022,
		}},
		Currency: "USD",
	}
}

func call(t *testing.T, lib Library, name string, args map[string]any) map[string]any {
	t.Helper()
	resp := lib(context.Background(), &genai.FunctionCall{ID: "1", Name: name, Args: args})
	if resp.ID != "1" || resp.Name != name {
		t.Errorf("response to %s has ID %q and name %q", name, resp.ID, resp.Name)
	}
	return resp.Response
}

func TestAdvisorLibrary(t *testing.T) {
	advisor := NewAdvisor("", scenario())
	if advisor.ModelName != DefaultModel {
		t.Errorf("ModelName = %q, want %q", advisor.ModelName, DefaultModel)
	}
	decls := advisor.Config.Tools[0].FunctionDeclarations
	if len(decls) != 3 {
		t.Fatalf("got %d function declarations, want 3", len(decls))
	}

	tests := []struct {
		name     string
		function string
		args     map[string]any
		want     []string
	}{
		{
			name:     "options",
			function: "options",
			want:     []string{"## ETF", "10.00%"},
		},
		{
			name:     "projection",
			function: "projection",
			want:     []string{"# Future fortune", "$1,541.00"},
		},
		{
			name:     "what if rates drop",
			function: "what_if",
			args:     map[string]any{"rate_delta": -10.0},
			want: []string{
				"| current | $1,541.00 | $300.00 | $241.00 |",
				"| variation | $1,300.00 | $300.00 | $0.00 |",
			},
		},
		{
			name:     "what if it lasts longer",
			function: "what_if",
			args:     map[string]any{"extra_years": 1.0, "amount_factor": 1.0},
			want:     []string{"| variation | $1,795.10 | $400.00 | $395.10 |"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := call(t, advisor.Library, tt.function, tt.args)
			out, ok := resp["output"].(string)
			if !ok {
				t.Fatalf("no output in %v", resp)
			}
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("output does not contain %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestLibraryErrors(t *testing.T) {
	lib := NewAdvisor("gemini-test", scenario()).Library

	if resp := call(t, lib, "unknown", nil); resp["error"] != "unknown function unknown" {
		t.Errorf("unknown function response = %v", resp)
	}
	resp := call(t, lib, "what_if", map[string]any{"rate_delta": "a lot"})
	if msg, _ := resp["error"].(string); !strings.Contains(msg, "rate_delta") {
		t.Errorf("invalid argument response = %v", resp)
	}
}

func TestVariationApply(t *testing.T) {
	opts := scenario().Options
	got := Variation{RateDelta: 1.5, AmountFactor: 2, ExtraYears: 3}.Apply(opts)

	if !got[0].Rate.Equal(fortune.P(11.5)) {
		t.Errorf("Rate = %v, want 11.50%%", got[0].Rate)
	}
	if !got[0].Amount.Equal(fortune.D(200)) {
		t.Errorf("Amount = %v, want 200", got[0].Amount)
	}
	if got[0].EndYear != 2025 {
		t.Errorf("EndYear = %d, want 2025", got[0].EndYear)
	}
	if !opts[0].Amount.Equal(fortune.D(100)) {
		t.Error("Apply modified its input")
	}
}
