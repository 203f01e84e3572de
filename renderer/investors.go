package renderer

import (
	"strings"

	"github.com/etnz/unicorns"
)

// InvestorsMarkdown renders the n most active investors of the portfolio. n <= 0 renders all of them.
func InvestorsMarkdown(p unicorns.InvestorPortfolio, n int) string {
	ranked := p.Ranked()
	if n > 0 && n < len(ranked) {
		ranked = ranked[:n]
	}

	var r markdown
	r.Printf("# Investors\n\n")
	r.Printf("| Investor | Investments | Companies |\n")
	r.Printf("|:---|---:|:---|\n")
	for _, name := range ranked {
		stats := p[name]
		r.Printf("| %s | %d | %s |\n", cell(name), stats.TotalInvestments, cell(strings.Join(stats.Companies, ", ")))
	}
	return r.String()
}
