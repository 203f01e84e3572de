package unicorns

// company is a helper for tests to create a company record.
func company(name, country, category string, investors ...string) Company {
	return Company{
		Company:         name,
		Location:        Location{Country: country},
		Category:        category,
		SelectInvestors: investors,
	}
}

// round is a helper for tests to create a USD funding round.
func round(date, amount string, investors ...string) FundingRound {
	return FundingRound{Date: date, Amount: amount, Currency: "USD", Investors: investors}
}

// withRounds returns a copy of c with the given funding history.
func withRounds(c Company, rounds ...FundingRound) Company {
	c.FundingHistory = rounds
	return c
}

// withValuation returns a copy of c with the given valuation.
func withValuation(c Company, amount string) Company {
	c.Valuation = Valuation{AmountBillion: amount, DateAdded: "2020.1.1"}
	return c
}

// names returns the names of the companies, in order.
func names(companies []Company) []string {
	var result []string
	for _, c := range companies {
		result = append(result, c.Company)
	}
	return result
}

// sample returns a small dataset covering several countries and categories.
func sample() []Company {
	return []Company{
		withValuation(withRounds(company("ByteDance", "China", "Artificial intelligence", "Sequoia Capital China", "SIG Asia Investments"),
			round("2017", "2B", "General Atlantic"),
			round("2018", "3B", "SoftBank Group", "General Atlantic"),
		), "$140.00"),
		withValuation(withRounds(company("SpaceX", "United States", "Other", "Founders Fund", "Draper Fisher Jurvetson"),
			round("2019", "1.5B", "Founders Fund"),
		), "$100.30"),
		withValuation(withRounds(company("Stripe", "United States", "Fintech", "Khosla Ventures", "LowercaseCapital", "capitalG"),
			round("2021.Mar", "600M", "Sequoia Capital", "Fidelity"),
			round("2021", "250M"),
		), "$95.00"),
		withValuation(company("Klarna", "Sweden", "Fintech", "Institutional Venture Partners", "Sequoia Capital", "General Atlantic"), "$45.60"),
		withValuation(company("Canva", "Australia", "Internet software & services", "Sequoia Capital China", "Blackbird Ventures"), "$40.00"),
	}
}
