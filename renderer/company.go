package renderer

import (
	"io"
	"strings"

	"github.com/etnz/unicorns"
)

// CompanyMarkdown renders the full profile of a company.
func CompanyMarkdown(c unicorns.Company) string {
	var r markdown
	r.Printf("# %s\n\n", c.Company)
	if c.Business.Summary != "" {
		r.Printf("%s\n\n", c.Business.Summary)
	}

	r.Printf("| Field | Value |\n")
	r.Printf("|:---|:---|\n")
	r.Printf("| Valuation | %s |\n", billions(c.Valuation))
	r.Printf("| Joined | %s |\n", cell(c.Valuation.DateAdded))
	r.Printf("| Country | %s |\n", key(c.Location.Country))
	r.Printf("| Category | %s |\n", key(c.Category))
	r.Printf("| Select Investors | %s |\n", cell(strings.Join(c.SelectInvestors, ", ")))
	r.Printf("| Total Funding | %s |\n", millions(unicorns.TotalFunding(c)))

	ConditionalBlock(&r, func(w io.Writer) bool {
		var b markdown
		b.Printf("\n## Funding History\n\n")
		b.Printf("| Date | Amount | Currency | Investors |\n")
		b.Printf("|:---|---:|:---|:---|\n")
		for _, round := range c.FundingHistory {
			b.Printf("| %s | %s | %s | %s |\n", cell(round.Date), cell(round.Amount), cell(round.Currency), cell(strings.Join(round.Investors, ", ")))
		}
		io.WriteString(w, b.String())
		return len(c.FundingHistory) > 0
	})

	ConditionalBlock(&r, func(w io.Writer) bool {
		var b markdown
		b.Printf("\n## Details\n\n")
		for _, d := range c.Business.Details {
			b.Printf("- %s\n", d)
		}
		io.WriteString(w, b.String())
		return len(c.Business.Details) > 0
	})

	return r.String()
}
