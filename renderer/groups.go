package renderer

import (
	"math"

	"github.com/etnz/unicorns"
)

// CountriesMarkdown renders companies grouped by country.
func CountriesMarkdown(groups unicorns.Groups) string {
	return groupsMarkdown("Companies by Country", "Country", groups)
}

// CategoriesMarkdown renders companies grouped by category.
func CategoriesMarkdown(groups unicorns.Groups) string {
	return groupsMarkdown("Companies by Category", "Category", groups)
}

// groupsMarkdown renders one row per group, largest groups first.
func groupsMarkdown(title, header string, groups unicorns.Groups) string {
	var r markdown
	r.Printf("# %s\n\n", title)
	r.Printf("| %s | Companies | Total Funding | Most Valued |\n", header)
	r.Printf("|:---|---:|---:|:---|\n")

	for _, k := range groups.BySize() {
		group := groups[k]
		total := 0.0
		for _, c := range group {
			total += unicorns.TotalFunding(c)
		}
		top := unicorns.TopByValuation(group, 1)
		r.Printf("| %s | %d | %s | %s |\n", key(k), len(group), millions(total), cell(top[0].Company))
	}
	return r.String()
}

// CompaniesMarkdown renders a ranked list of companies.
func CompaniesMarkdown(title string, companies []unicorns.Company) string {
	var r markdown
	r.Printf("# %s\n\n", title)
	if len(companies) == 0 {
		r.Printf("No company.\n")
		return r.String()
	}
	r.Printf("| # | Company | Valuation | Country | Category | Total Funding |\n")
	r.Printf("|---:|:---|---:|:---|:---|---:|\n")
	for i, c := range companies {
		r.Printf("| %d | %s | %s | %s | %s | %s |\n",
			i+1,
			cell(c.Company),
			billions(c.Valuation),
			key(c.Location.Country),
			key(c.Category),
			millions(unicorns.TotalFunding(c)),
		)
	}

	rounds := unicorns.AverageRounds(companies)
	if !math.IsNaN(rounds) {
		r.Printf("\nAverage funding rounds: %.2f\n", rounds)
	}
	return r.String()
}
