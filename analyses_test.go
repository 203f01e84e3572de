package unicorns

import (
	"math"
	"reflect"
	"slices"
	"testing"
)

func TestTopByValuation(t *testing.T) {
	companies := slices.Clone(sample())
	slices.Reverse(companies)
	before := names(companies)

	if got, want := names(TopByValuation(companies, 3)), []string{"ByteDance", "SpaceX", "Stripe"}; !slices.Equal(got, want) {
		t.Errorf("TopByValuation(3) = %v, want %v", got, want)
	}
	if got := TopByValuation(companies, 0); len(got) != len(companies) {
		t.Errorf("len(TopByValuation(0)) = %d, want %d", len(got), len(companies))
	}
	if got := TopByValuation(companies, 100); len(got) != len(companies) {
		t.Errorf("len(TopByValuation(100)) = %d, want %d", len(got), len(companies))
	}
	if got := names(companies); !slices.Equal(got, before) {
		t.Errorf("TopByValuation() modified its input: %v", got)
	}
}

func TestTopByValuation_Idempotent(t *testing.T) {
	companies := sample()
	first := TopByValuation(companies, 0)
	second := TopByValuation(companies, 0)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("TopByValuation() is not idempotent:\n%v\n%v", names(first), names(second))
	}
	if !reflect.DeepEqual(companies, sample()) {
		t.Errorf("TopByValuation() modified its input")
	}
}

func TestTopByValuation_Unreadable(t *testing.T) {
	companies := []Company{
		withValuation(company("Unknown", "", ""), "n/a"),
		withValuation(company("Small", "", ""), "$1.00"),
		withValuation(company("Big", "", ""), "$1,200.50"),
	}
	if got, want := names(TopByValuation(companies, 0)), []string{"Big", "Small", "Unknown"}; !slices.Equal(got, want) {
		t.Errorf("TopByValuation() = %v, want %v", got, want)
	}
}

func TestInvestedBy(t *testing.T) {
	if got, want := names(InvestedBy(sample(), "sequoia")), []string{"ByteDance", "Klarna", "Canva"}; !slices.Equal(got, want) {
		t.Errorf("InvestedBy(sequoia) = %v, want %v", got, want)
	}
	if got := InvestedBy(sample(), "nobody"); len(got) != 0 {
		t.Errorf("InvestedBy(nobody) = %v, want none", names(got))
	}
}

func TestFundedIn(t *testing.T) {
	if got, want := names(FundedIn(sample(), "2021")), []string{"Stripe"}; !slices.Equal(got, want) {
		t.Errorf("FundedIn(2021) = %v, want %v", got, want)
	}
	if got, want := names(FundedIn(sample(), "201")), []string{"ByteDance", "SpaceX"}; !slices.Equal(got, want) {
		t.Errorf("FundedIn(201) = %v, want %v", got, want)
	}
}

func TestAverageRounds(t *testing.T) {
	// 2 + 1 + 2 + 0 + 0 rounds over 5 companies.
	if got, want := AverageRounds(sample()), 1.0; got != want {
		t.Errorf("AverageRounds() = %v, want %v", got, want)
	}
	if got := AverageRounds(nil); !math.IsNaN(got) {
		t.Errorf("AverageRounds(nil) = %v, want NaN", got)
	}
}

func TestCategoryFunding(t *testing.T) {
	if got, want := CategoryFunding(sample(), "Fintech"), 850.0; got != want {
		t.Errorf("CategoryFunding(Fintech) = %v, want %v", got, want)
	}
	if got := CategoryFunding(sample(), "Gaming"); got != 0 {
		t.Errorf("CategoryFunding(Gaming) = %v, want 0", got)
	}
}
