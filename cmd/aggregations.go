package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/unicorns"
	"github.com/etnz/unicorns/renderer"
	"github.com/google/subcommands"
)

type countriesCmd struct{}

func (*countriesCmd) Name() string     { return "countries" }
func (*countriesCmd) Synopsis() string { return "group companies by country" }
func (*countriesCmd) Usage() string {
	return `unicorn countries

  Lists every country with its number of companies, their total funding and
  its most valued company. Largest countries first.
`
}

func (c *countriesCmd) SetFlags(f *flag.FlagSet) {}

func (c *countriesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	db, err := DecodeDatabase()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading database: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.CountriesMarkdown(unicorns.GroupByCountry(db.Companies)))
	return subcommands.ExitSuccess
}

type categoriesCmd struct{}

func (*categoriesCmd) Name() string     { return "categories" }
func (*categoriesCmd) Synopsis() string { return "group companies by industry category" }
func (*categoriesCmd) Usage() string {
	return `unicorn categories

  Lists every category with its number of companies, their total funding and
  its most valued company. Largest categories first.
`
}

func (c *categoriesCmd) SetFlags(f *flag.FlagSet) {}

func (c *categoriesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	db, err := DecodeDatabase()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading database: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.CategoriesMarkdown(unicorns.GroupByCategory(db.Companies)))
	return subcommands.ExitSuccess
}

type investorsCmd struct {
	count int
}

func (*investorsCmd) Name() string     { return "investors" }
func (*investorsCmd) Synopsis() string { return "rank investors by number of companies" }
func (*investorsCmd) Usage() string {
	return `unicorn investors [-n <count>]

  Lists the investors associated with the most companies. An investor is
  counted once per company. See 'unicorn topic investors'.
`
}

func (c *investorsCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.count, "n", 20, "Number of investors to list, 0 for all")
}

func (c *investorsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	db, err := DecodeDatabase()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading database: %v\n", err)
		return subcommands.ExitFailure
	}
	portfolio := unicorns.AnalyzeInvestorPortfolio(db.Companies)
	Log.Debugf("%d distinct investors", len(portfolio))
	printMarkdown(renderer.InvestorsMarkdown(portfolio, c.count))
	return subcommands.ExitSuccess
}
