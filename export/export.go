// Package export writes the dataset and its aggregations as an Excel workbook.
package export

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/etnz/unicorns"
	"github.com/xuri/excelize/v2"
)

// Sheet names, in workbook order.
const (
	SheetCompanies  = "Companies"
	SheetCountries  = "Countries"
	SheetCategories = "Categories"
	SheetInvestors  = "Investors"
)

// WriteWorkbook writes an xlsx workbook with one sheet for the companies and
// one for each aggregation.
func WriteWorkbook(w io.Writer, db *unicorns.Database) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeCompanies(f, db.Companies); err != nil {
		return err
	}
	if err := writeGroups(f, SheetCountries, "Country", unicorns.GroupByCountry(db.Companies)); err != nil {
		return err
	}
	if err := writeGroups(f, SheetCategories, "Category", unicorns.GroupByCategory(db.Companies)); err != nil {
		return err
	}
	if err := writeInvestors(f, unicorns.AnalyzeInvestorPortfolio(db.Companies)); err != nil {
		return err
	}

	// the default sheet is created by NewFile.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("could not delete default sheet: %w", err)
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("could not write workbook: %w", err)
	}
	return nil
}

// sheet creates a sheet and writes its rows, starting with the header.
func sheet(f *excelize.File, name string, rows [][]any) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("could not create sheet %q: %w", name, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(name, cell, &row); err != nil {
			return fmt.Errorf("could not write row %d of sheet %q: %w", i+1, name, err)
		}
	}
	return nil
}

// funding returns the amount in millions, or nil for an unknown total so
// that the cell is left empty.
func funding(amount float64) any {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil
	}
	return amount
}

func writeCompanies(f *excelize.File, companies []unicorns.Company) error {
	rows := [][]any{{"Company", "Valuation ($B)", "Date Added", "Country", "Category", "Select Investors", "Funding Rounds", "Total Funding ($M)"}}
	for _, c := range companies {
		rows = append(rows, []any{
			c.Company,
			c.Valuation.Billions().AsFloat(),
			c.Valuation.DateAdded,
			c.Location.Country,
			c.Category,
			strings.Join(c.SelectInvestors, ", "),
			len(c.FundingHistory),
			funding(unicorns.TotalFunding(c)),
		})
	}
	return sheet(f, SheetCompanies, rows)
}

func writeGroups(f *excelize.File, name, header string, groups unicorns.Groups) error {
	rows := [][]any{{header, "Companies", "Total Funding ($M)"}}
	for _, k := range groups.BySize() {
		total := 0.0
		for _, c := range groups[k] {
			total += unicorns.TotalFunding(c)
		}
		rows = append(rows, []any{k, len(groups[k]), funding(total)})
	}
	return sheet(f, name, rows)
}

func writeInvestors(f *excelize.File, p unicorns.InvestorPortfolio) error {
	rows := [][]any{{"Investor", "Investments", "Companies"}}
	for _, name := range p.Ranked() {
		rows = append(rows, []any{name, p[name].TotalInvestments, strings.Join(p[name].Companies, ", ")})
	}
	return sheet(f, SheetInvestors, rows)
}
