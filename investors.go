package unicorns

import (
	"cmp"
	"slices"
)

// InvestorStats summarizes the companies an investor is associated with.
type InvestorStats struct {
	Companies        []string `json:"companies"`
	TotalInvestments int      `json:"total_investments"`
}

// InvestorPortfolio maps an investor name to its statistics.
type InvestorPortfolio map[string]*InvestorStats

// AnalyzeInvestorPortfolio computes the portfolio of every investor found in
// the select investors or in the funding rounds of the companies.
//
// An investor is credited at most once per company, no matter how many rounds
// mention it, and once for every distinct company record it appears in.
// Investor names are compared verbatim.
//
// For a given input the output is deterministic: within a company, the select
// investors come first, then the round investors in history order.
func AnalyzeInvestorPortfolio(companies []Company) InvestorPortfolio {
	portfolio := make(InvestorPortfolio)
	for _, c := range companies {
		for _, investor := range companyInvestors(c) {
			stats, exists := portfolio[investor]
			if !exists {
				stats = &InvestorStats{Companies: []string{}}
				portfolio[investor] = stats
			}
			stats.Companies = append(stats.Companies, c.Company)
			stats.TotalInvestments++
		}
	}
	return portfolio
}

// companyInvestors returns the distinct investors of a company in first-seen
// order.
func companyInvestors(c Company) []string {
	var set orderedSet
	set.Add(c.SelectInvestors...)
	for _, round := range c.FundingHistory {
		set.Add(round.Investors...)
	}
	return set.items
}

// orderedSet is a set of strings that remembers insertion order.
// Its zero value is ready to use.
type orderedSet struct {
	items []string
	seen  map[string]struct{}
}

// Add appends the values not already in the set.
func (s *orderedSet) Add(values ...string) {
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	for _, v := range values {
		if _, ok := s.seen[v]; ok {
			continue
		}
		s.seen[v] = struct{}{}
		s.items = append(s.items, v)
	}
}

// Ranked returns the investor names sorted by decreasing number of
// investments, ties broken alphabetically.
func (p InvestorPortfolio) Ranked() []string {
	names := SortedKeys(p)
	slices.SortStableFunc(names, func(a, b string) int {
		return cmp.Compare(p[b].TotalInvestments, p[a].TotalInvestments)
	})
	return names
}
