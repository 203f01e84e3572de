package agent

import (
	"context"
	"strings"
	"testing"

	"github.com/etnz/unicorns"
	"google.golang.org/genai"
)

func testDatabase() *unicorns.Database {
	return &unicorns.Database{Companies: []unicorns.Company{
		{
			Company:         "Stripe",
			Valuation:       unicorns.Valuation{AmountBillion: "$95.00"},
			Location:        unicorns.Location{Country: "United States"},
			Category:        "Fintech",
			SelectInvestors: []string{"Sequoia Capital"},
		},
		{
			Company:         "Klarna",
			Valuation:       unicorns.Valuation{AmountBillion: "$45.60"},
			Location:        unicorns.Location{Country: "Sweden"},
			Category:        "Fintech",
			SelectInvestors: []string{"Sequoia Capital"},
		},
	}}
}

func call(lib Library, name string, args map[string]any) *genai.FunctionResponse {
	return lib(context.Background(), &genai.FunctionCall{ID: "1", Name: name, Args: args})
}

func TestLibrary_Unknown(t *testing.T) {
	lib := NewLibrary(Tools(testDatabase()))
	resp := call(lib, "Nope", nil)
	if resp.Name != "Nope" || resp.ID != "1" {
		t.Errorf("response = %+v", resp)
	}
	if _, ok := resp.Response["error"]; !ok {
		t.Errorf("unknown function should answer an error, got %v", resp.Response)
	}
}

func TestLibrary_Tools(t *testing.T) {
	lib := NewLibrary(Tools(testDatabase()))

	tests := []struct {
		name string
		args map[string]any
		want string
	}{
		{"Countries", nil, "| Sweden | 1 |"},
		{"Categories", nil, "| Fintech | 2 |"},
		{"TopInvestors", map[string]any{"count": 1.0}, "| Sequoia Capital | 2 | Stripe, Klarna |"},
		{"InvestedBy", map[string]any{"investor": "sequoia"}, "# Invested by sequoia"},
		{"TopCompanies", map[string]any{"count": 1.0}, "| 1 | Stripe |"},
		{"Company", map[string]any{"name": "klarna"}, "# Klarna"},
	}
	for _, tt := range tests {
		resp := call(lib, tt.name, tt.args)
		output, ok := resp.Response["output"].(string)
		if !ok {
			t.Errorf("%s() = %v, want an output", tt.name, resp.Response)
			continue
		}
		if !strings.Contains(output, tt.want) {
			t.Errorf("%s() output does not contain %q:\n%s", tt.name, tt.want, output)
		}
	}
}

func TestLibrary_BadArguments(t *testing.T) {
	lib := NewLibrary(Tools(testDatabase()))
	for name, args := range map[string]map[string]any{
		"Company":      {"name": "Nope"},
		"InvestedBy":   {},
		"TopCompanies": {"count": "ten"},
	} {
		resp := call(lib, name, args)
		if _, ok := resp.Response["error"]; !ok {
			t.Errorf("%s(%v) = %v, want an error", name, args, resp.Response)
		}
	}
}

func TestNewDeclaration(t *testing.T) {
	decls := NewDeclaration(Tools(testDatabase()))
	if len(decls) != 6 {
		t.Fatalf("len(NewDeclaration()) = %d, want 6", len(decls))
	}
	analyst := NewAnalyst(testDatabase())
	if got := analyst.Declaration().Name; got != "Analyst" {
		t.Errorf("Declaration().Name = %q", got)
	}
}
