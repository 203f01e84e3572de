package unicorns

import "strings"

// FundingRound is one historical fundraising event of a company.
type FundingRound struct {
	Date      string   `json:"date" yaml:"date"`         // e.g. "2019" or "2019.Apr"
	Amount    string   `json:"amount" yaml:"amount"`     // e.g. "100M" or "1.5B"
	Currency  string   `json:"currency" yaml:"currency"` // USD, EUR, GBP, BRL...
	Investors []string `json:"investors" yaml:"investors"`
}

// BusinessInfo describes what the company does.
type BusinessInfo struct {
	Summary string   `json:"summary" yaml:"summary"`
	Details []string `json:"details" yaml:"details"`
}

// Valuation is the latest known valuation of a company.
type Valuation struct {
	AmountBillion string `json:"amount_billion" yaml:"amount_billion"` // e.g. "$140.00"
	DateAdded     string `json:"date_added" yaml:"date_added"`         // e.g. "2017.4.7"
}

// Billions returns the valuation in billions, or zero if it cannot be read.
func (v Valuation) Billions() Money {
	d, err := ParseValuation(v.AmountBillion)
	if err != nil {
		return M(0, "USD")
	}
	return M(d, "USD")
}

// Location is where the company is headquartered.
type Location struct {
	Country string `json:"country" yaml:"country"`
}

// Company is a single record of the dataset.
//
// The name is used as an identifier in the investor portfolio, but nothing
// enforces its uniqueness.
type Company struct {
	Company         string         `json:"company" yaml:"company"`
	Valuation       Valuation      `json:"valuation" yaml:"valuation"`
	Location        Location       `json:"location" yaml:"location"`
	Category        string         `json:"category" yaml:"category"`
	SelectInvestors []string       `json:"select_investors" yaml:"select_investors"`
	FundingHistory  []FundingRound `json:"funding_history" yaml:"funding_history"`
	Business        BusinessInfo   `json:"business" yaml:"business"`
}

// Structure documents the meaning of the nested objects of a company.
type Structure struct {
	Valuation      string `json:"valuation" yaml:"valuation"`
	Location       string `json:"location" yaml:"location"`
	FundingHistory string `json:"funding_history" yaml:"funding_history"`
	Business       string `json:"business" yaml:"business"`
}

// Metadata describes a dataset snapshot.
//
// TotalCompanies is informative only, it is not required to match the number
// of companies actually present.
type Metadata struct {
	TotalCompanies int       `json:"total_companies" yaml:"total_companies"`
	DataVersion    string    `json:"data_version" yaml:"data_version"`
	LastUpdated    string    `json:"last_updated" yaml:"last_updated"`
	Structure      Structure `json:"structure" yaml:"structure"`
}

// Database is a full dataset snapshot.
type Database struct {
	Metadata  Metadata  `json:"metadata" yaml:"metadata"`
	Companies []Company `json:"companies" yaml:"companies"`
}

// Find returns the first company with the given name, ignoring case.
func (db *Database) Find(name string) (Company, bool) {
	for _, c := range db.Companies {
		if strings.EqualFold(c.Company, name) {
			return c, true
		}
	}
	return Company{}, false
}
