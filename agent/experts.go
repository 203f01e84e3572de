package agent

import (
	"context"
	"fmt"

	"github.com/etnz/unicorns"
	"github.com/etnz/unicorns/docs"
	"github.com/etnz/unicorns/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and keep context of your previous questions.

			The user is here to explore a dataset of companies valued above one billion dollars:
			where they are, what they do, how much they raised and who invested in them.

			Devise a plan of questions to ask to each expert and come up with the best response to the user's request.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewResearcher returns an expert grounded on Google Search.
func NewResearcher() *Expert {
	return &Expert{
		Name: "Researcher",
		Description: `This is an expert in startups and venture capital, aware of the latest news
		about companies and investors. Ask the Researcher whenever you need recent or grounding information
		that is not in the dataset.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in startups and venture capital, you can search and find about anything related to
			companies, funding rounds and investors. You leverage Google Search to ground your assertions.
			`}}},
		},
	}
}

// NewAnalyst returns an expert that computes figures on the dataset db.
func NewAnalyst(db *unicorns.Database) *Expert {
	lib := Tools(db)
	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst, in charge of the dataset of companies.
		It can group companies by country or category, rank them by valuation,
		and tell which companies an investor is associated with.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an analyst in charge of a dataset of companies valued above one billion dollars.
				Use the available tools to extract relevant information from the dataset.
				Here is how amounts are read:

				` + must(docs.GetTopic("amounts")) + `

				And how investors are counted:

				` + must(docs.GetTopic("investors")),
			}}},
		},
		Library: NewLibrary(lib),
	}
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// markdownResponse describes a tool returning a markdown document.
func markdownResponse(what string) *genai.Schema {
	return &genai.Schema{
		Type:        genai.TypeString,
		Description: "A markdown-formatted " + what + ".",
	}
}

// Tools returns the functions the analyst can call on db.
func Tools(db *unicorns.Database) []Function {
	return []Function{
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "Countries",
				Description: "Countries lists every country with its number of companies, their total funding and the most valued company.",
				Response:    markdownResponse("table of countries"),
			},
			Func: func(ctx context.Context, args map[string]any) (string, error) {
				return renderer.CountriesMarkdown(unicorns.GroupByCountry(db.Companies)), nil
			},
		},
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "Categories",
				Description: "Categories lists every industry category with its number of companies, their total funding and the most valued company.",
				Response:    markdownResponse("table of categories"),
			},
			Func: func(ctx context.Context, args map[string]any) (string, error) {
				return renderer.CategoriesMarkdown(unicorns.GroupByCategory(db.Companies)), nil
			},
		},
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "TopInvestors",
				Description: "TopInvestors lists the investors associated with the most companies.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"count": {Type: genai.TypeInteger, Description: "The number of investors to list, 20 by default."},
					},
				},
				Response: markdownResponse("table of investors"),
			},
			Func: func(ctx context.Context, args map[string]any) (string, error) {
				n, err := intArg(args, "count", 20)
				if err != nil {
					return "", err
				}
				return renderer.InvestorsMarkdown(unicorns.AnalyzeInvestorPortfolio(db.Companies), n), nil
			},
		},
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "InvestedBy",
				Description: "InvestedBy lists the companies having a select investor whose name contains the given term, ignoring case.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"investor": {Type: genai.TypeString, Description: "Part of the investor name, e.g. 'sequoia'."},
					},
					Required: []string{"investor"},
				},
				Response: markdownResponse("table of companies"),
			},
			Func: func(ctx context.Context, args map[string]any) (string, error) {
				term, err := stringArg(args, "investor")
				if err != nil {
					return "", err
				}
				return renderer.CompaniesMarkdown("Invested by "+term, unicorns.InvestedBy(db.Companies, term)), nil
			},
		},
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "TopCompanies",
				Description: "TopCompanies lists the most valued companies.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"count": {Type: genai.TypeInteger, Description: "The number of companies to list, 10 by default."},
					},
				},
				Response: markdownResponse("table of companies"),
			},
			Func: func(ctx context.Context, args map[string]any) (string, error) {
				n, err := intArg(args, "count", 10)
				if err != nil {
					return "", err
				}
				return renderer.CompaniesMarkdown("Most Valued Companies", unicorns.TopByValuation(db.Companies, n)), nil
			},
		},
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "Company",
				Description: "Company returns the full profile of a company: valuation, location, investors, funding history and business.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"name": {Type: genai.TypeString, Description: "The company name, case insensitive."},
					},
					Required: []string{"name"},
				},
				Response: markdownResponse("company profile"),
			},
			Func: func(ctx context.Context, args map[string]any) (string, error) {
				name, err := stringArg(args, "name")
				if err != nil {
					return "", err
				}
				c, ok := db.Find(name)
				if !ok {
					return "", fmt.Errorf("unknown company %q", name)
				}
				return renderer.CompanyMarkdown(c), nil
			},
		},
	}
}
