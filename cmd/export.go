package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/unicorns/export"
	"github.com/google/subcommands"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the dataset and its aggregations to an Excel workbook" }
func (*exportCmd) Usage() string {
	return `unicorn export [-o <file.xlsx>]

  Writes a workbook with the companies, and the groups by country, by
  category and by investor, one sheet each.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "unicorns.xlsx", "Output workbook")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	db, err := DecodeDatabase()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading database: %v\n", err)
		return subcommands.ExitFailure
	}

	write := func(w io.Writer) error { return export.WriteWorkbook(w, db) }
	if err := writeFile(c.output, write); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	Log.WithField("path", c.output).Info("workbook exported")
	fmt.Fprintf(stdout, "Successfully exported %d companies to %s\n", len(db.Companies), c.output)
	return subcommands.ExitSuccess
}

// writeFile creates path and fills it with write. On any error, including
// the final close, the file is removed.
func writeFile(path string, write func(io.Writer) error) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %q: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("could not close %q: %w", path, cerr)
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	if err := write(file); err != nil {
		return fmt.Errorf("could not write %q: %w", path, err)
	}
	return nil
}
