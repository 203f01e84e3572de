// Package cmd implements the CLI application to explore the unicorns dataset.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/unicorns"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&countriesCmd{}, "aggregations")
	c.Register(&categoriesCmd{}, "aggregations")
	c.Register(&investorsCmd{}, "aggregations")

	c.Register(&companyCmd{}, "companies")
	c.Register(&topCmd{}, "companies")
	c.Register(&investedCmd{}, "companies")
	c.Register(&fundedCmd{}, "companies")

	c.Register(&queryCmd{}, "data")
	c.Register(&exportCmd{}, "data")

	c.Register(&assistCmd{}, "help")
	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

// stdout receives the command results.
var stdout io.Writer = os.Stdout

// DecodeDatabase loads the dataset from the app database path.
func DecodeDatabase() (*unicorns.Database, error) {
	db, err := unicorns.LoadDatabase(*databasePath)
	if err != nil {
		return nil, err
	}
	Log.WithField("path", *databasePath).Debugf("loaded %d companies", len(db.Companies))
	if db.Metadata.TotalCompanies != 0 && db.Metadata.TotalCompanies != len(db.Companies) {
		Log.Debugf("metadata announces %d companies, found %d", db.Metadata.TotalCompanies, len(db.Companies))
	}
	return db, nil
}

// printMarkdown prints md on stdout, rendered for the terminal unless the
// plain output is requested.
func printMarkdown(md string) {
	if *plain {
		fmt.Fprint(stdout, md)
		return
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(config.Width),
	)
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Fprint(stdout, out)
			return
		}
	}
	Log.WithError(err).Warn("could not render markdown, printing it raw")
	fmt.Fprint(stdout, md)
}
