package unicorns

import (
	"math"
	"slices"
	"strings"
)

// TopByValuation returns the n most valued companies, most valued first.
// Companies with the same valuation keep their input order, and unreadable
// valuations rank as zero. n <= 0 returns all the companies sorted.
//
// The input slice is left untouched.
func TopByValuation(companies []Company, n int) []Company {
	sorted := slices.Clone(companies)
	slices.SortStableFunc(sorted, func(a, b Company) int {
		return b.Valuation.Billions().Cmp(a.Valuation.Billions())
	})
	if n > 0 && n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// InvestedBy returns the companies having a select investor whose name
// contains term, ignoring case.
func InvestedBy(companies []Company, term string) []Company {
	term = strings.ToLower(term)
	var result []Company
	for _, c := range companies {
		if slices.ContainsFunc(c.SelectInvestors, func(investor string) bool {
			return strings.Contains(strings.ToLower(investor), term)
		}) {
			result = append(result, c)
		}
	}
	return result
}

// FundedIn returns the companies with at least one funding round whose date
// starts with prefix, e.g. "2021" or "2019.Apr".
func FundedIn(companies []Company, prefix string) []Company {
	var result []Company
	for _, c := range companies {
		if slices.ContainsFunc(c.FundingHistory, func(r FundingRound) bool {
			return strings.HasPrefix(r.Date, prefix)
		}) {
			result = append(result, c)
		}
	}
	return result
}

// AverageRounds returns the mean number of funding rounds per company.
// It is NaN when there is no company.
func AverageRounds(companies []Company) float64 {
	if len(companies) == 0 {
		return math.NaN()
	}
	rounds := 0
	for _, c := range companies {
		rounds += len(c.FundingHistory)
	}
	return float64(rounds) / float64(len(companies))
}

// CategoryFunding returns the total funding in millions of the companies in
// the given category.
func CategoryFunding(companies []Company, category string) float64 {
	total := 0.0
	for _, c := range companies {
		if c.Category == category {
			total += TotalFunding(c)
		}
	}
	return total
}
