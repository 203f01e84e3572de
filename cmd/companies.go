package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/unicorns"
	"github.com/etnz/unicorns/renderer"
	"github.com/google/subcommands"
)

type companyCmd struct{}

func (*companyCmd) Name() string     { return "company" }
func (*companyCmd) Synopsis() string { return "display the profile of a company" }
func (*companyCmd) Usage() string {
	return `unicorn company <name>

  Displays the valuation, location, investors, funding history and business
  of a company. The name is case insensitive.
`
}

func (c *companyCmd) SetFlags(f *flag.FlagSet) {}

func (c *companyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: missing company name")
		return subcommands.ExitUsageError
	}
	name := strings.Join(f.Args(), " ")

	db, err := DecodeDatabase()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading database: %v\n", err)
		return subcommands.ExitFailure
	}

	company, ok := db.Find(name)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown company %q\n", name)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.CompanyMarkdown(company))
	return subcommands.ExitSuccess
}

type topCmd struct {
	count int
}

func (*topCmd) Name() string     { return "top" }
func (*topCmd) Synopsis() string { return "list the most valued companies" }
func (*topCmd) Usage() string {
	return `unicorn top [-n <count>]

  Lists the most valued companies, most valued first.
`
}

func (c *topCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.count, "n", 10, "Number of companies to list, 0 for all")
}

func (c *topCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	db, err := DecodeDatabase()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading database: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.CompaniesMarkdown("Most Valued Companies", unicorns.TopByValuation(db.Companies, c.count)))
	return subcommands.ExitSuccess
}

type investedCmd struct{}

func (*investedCmd) Name() string     { return "invested" }
func (*investedCmd) Synopsis() string { return "list the companies backed by an investor" }
func (*investedCmd) Usage() string {
	return `unicorn invested <term>

  Lists the companies having a select investor whose name contains <term>,
  ignoring case. "unicorn invested sequoia" matches "Sequoia Capital" and
  "Sequoia Capital China".
`
}

func (c *investedCmd) SetFlags(f *flag.FlagSet) {}

func (c *investedCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: missing investor")
		return subcommands.ExitUsageError
	}
	term := strings.Join(f.Args(), " ")

	db, err := DecodeDatabase()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading database: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.CompaniesMarkdown("Invested by "+term, unicorns.InvestedBy(db.Companies, term)))
	return subcommands.ExitSuccess
}

type fundedCmd struct {
	category string
}

func (*fundedCmd) Name() string     { return "funded" }
func (*fundedCmd) Synopsis() string { return "list the companies funded on a date" }
func (*fundedCmd) Usage() string {
	return `unicorn funded [-c <category>] <date prefix>

  Lists the companies with a funding round whose date starts with the given
  prefix, e.g. "2021" or "2019.Apr", optionally restricted to a category.
  With a category, the total funding of the whole category is reported too.
`
}

func (c *fundedCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "c", "", "Restrict to a category")
}

func (c *fundedCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expecting exactly one date prefix")
		return subcommands.ExitUsageError
	}
	prefix := f.Arg(0)

	db, err := DecodeDatabase()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading database: %v\n", err)
		return subcommands.ExitFailure
	}

	companies := db.Companies
	title := "Funded in " + prefix
	if c.category != "" {
		companies = unicorns.GroupByCategory(companies)[c.category]
		title = fmt.Sprintf("%s funded in %s", c.category, prefix)
	}

	md := renderer.CompaniesMarkdown(title, unicorns.FundedIn(companies, prefix))
	if c.category != "" {
		m, ok := unicorns.Millions(unicorns.CategoryFunding(db.Companies, c.category), "USD")
		total := "n/a"
		if ok {
			total = m.String() + "M"
		}
		md += fmt.Sprintf("\nTotal funding of %s, all dates: %s\n", c.category, total)
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}
