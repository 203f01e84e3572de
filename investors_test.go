package unicorns

import (
	"reflect"
	"slices"
	"testing"
)

func TestAnalyzeInvestorPortfolio_SameCompany(t *testing.T) {
	a := withRounds(company("A", "France", "Fintech", "X"), round("2020", "10M", "X", "Y"))

	portfolio := AnalyzeInvestorPortfolio([]Company{a})

	for _, investor := range []string{"X", "Y"} {
		stats, ok := portfolio[investor]
		if !ok {
			t.Fatalf("portfolio[%q] is missing", investor)
		}
		if stats.TotalInvestments != 1 {
			t.Errorf("portfolio[%q].TotalInvestments = %d, want 1", investor, stats.TotalInvestments)
		}
		if want := []string{"A"}; !slices.Equal(stats.Companies, want) {
			t.Errorf("portfolio[%q].Companies = %v, want %v", investor, stats.Companies, want)
		}
	}
}

func TestAnalyzeInvestorPortfolio_AcrossCompanies(t *testing.T) {
	a := withRounds(company("A", "France", "Fintech", "Z"), round("2020", "10M", "Z"), round("2021", "20M", "Z", "Z"))
	b := company("B", "Germany", "Fintech", "Z", "Z")

	portfolio := AnalyzeInvestorPortfolio([]Company{a, b})

	z := portfolio["Z"]
	if z == nil {
		t.Fatal("portfolio[Z] is missing")
	}
	if z.TotalInvestments != 2 {
		t.Errorf("portfolio[Z].TotalInvestments = %d, want 2", z.TotalInvestments)
	}
	if want := []string{"A", "B"}; !slices.Equal(z.Companies, want) {
		t.Errorf("portfolio[Z].Companies = %v, want %v", z.Companies, want)
	}
}

func TestAnalyzeInvestorPortfolio_Verbatim(t *testing.T) {
	portfolio := AnalyzeInvestorPortfolio(sample())

	if got := portfolio["Sequoia Capital"].Companies; !slices.Equal(got, []string{"Stripe", "Klarna"}) {
		t.Errorf("portfolio[Sequoia Capital].Companies = %v", got)
	}
	if got := portfolio["Sequoia Capital China"].Companies; !slices.Equal(got, []string{"ByteDance", "Canva"}) {
		t.Errorf("portfolio[Sequoia Capital China].Companies = %v", got)
	}
	if got := portfolio["General Atlantic"].TotalInvestments; got != 2 {
		t.Errorf("portfolio[General Atlantic].TotalInvestments = %d, want 2", got)
	}
	if _, ok := portfolio["sequoia capital"]; ok {
		t.Errorf("investor names must not be normalized")
	}
}

func TestAnalyzeInvestorPortfolio_Consistency(t *testing.T) {
	portfolio := AnalyzeInvestorPortfolio(sample())
	for investor, stats := range portfolio {
		if stats.TotalInvestments != len(stats.Companies) {
			t.Errorf("portfolio[%q]: TotalInvestments = %d but %d companies", investor, stats.TotalInvestments, len(stats.Companies))
		}
	}
}

func TestAnalyzeInvestorPortfolio_Idempotent(t *testing.T) {
	companies := sample()
	first := AnalyzeInvestorPortfolio(companies)
	second := AnalyzeInvestorPortfolio(companies)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("AnalyzeInvestorPortfolio() is not idempotent:\n%v\n%v", first, second)
	}
	if !reflect.DeepEqual(companies, sample()) {
		t.Errorf("AnalyzeInvestorPortfolio() modified its input")
	}
}

func TestCompanyInvestors_Order(t *testing.T) {
	c := withRounds(company("A", "France", "Fintech", "S1", "S2"),
		round("2019", "1M", "R1", "S2"),
		round("2020", "1M", "R2", "R1"),
	)
	if got, want := companyInvestors(c), []string{"S1", "S2", "R1", "R2"}; !slices.Equal(got, want) {
		t.Errorf("companyInvestors() = %v, want %v", got, want)
	}
}

func TestInvestorPortfolio_Ranked(t *testing.T) {
	portfolio := AnalyzeInvestorPortfolio(sample())
	ranked := portfolio.Ranked()
	// General Atlantic, Sequoia Capital, Sequoia Capital China all have 2.
	if got, want := ranked[:3], []string{"General Atlantic", "Sequoia Capital", "Sequoia Capital China"}; !slices.Equal(got, want) {
		t.Errorf("Ranked()[:3] = %v, want %v", got, want)
	}
}
