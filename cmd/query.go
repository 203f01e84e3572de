package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "evaluate a JSONPath expression over the dataset" }
func (*queryCmd) Usage() string {
	return `unicorn query <expression>

  Evaluates a JSONPath expression over the dataset and prints the result as
  JSON. See 'unicorn topic query'.

Usage Examples:
$ unicorn query '$.companies[*].company'
`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: missing JSONPath expression")
		return subcommands.ExitUsageError
	}
	expr := strings.Join(f.Args(), " ")

	db, err := DecodeDatabase()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading database: %v\n", err)
		return subcommands.ExitFailure
	}

	result, err := db.Query(expr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing result: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
