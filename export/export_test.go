package export

import (
	"bytes"
	"testing"

	"github.com/etnz/unicorns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func testDatabase() *unicorns.Database {
	return &unicorns.Database{
		Metadata: unicorns.Metadata{TotalCompanies: 3},
		Companies: []unicorns.Company{
			{
				Company:         "ByteDance",
				Valuation:       unicorns.Valuation{AmountBillion: "$140.00"},
				Location:        unicorns.Location{Country: "China"},
				Category:        "Artificial intelligence",
				SelectInvestors: []string{"Sequoia Capital China"},
				FundingHistory:  []unicorns.FundingRound{{Date: "2018", Amount: "3B", Investors: []string{"SoftBank Group"}}},
			},
			{
				Company:         "Stripe",
				Valuation:       unicorns.Valuation{AmountBillion: "$95.00"},
				Location:        unicorns.Location{Country: "United States"},
				Category:        "Fintech",
				SelectInvestors: []string{"Sequoia Capital"},
				FundingHistory:  []unicorns.FundingRound{{Date: "2021", Amount: "600M"}},
			},
			{
				Company:         "Klarna",
				Valuation:       unicorns.Valuation{AmountBillion: "$45.60"},
				Location:        unicorns.Location{Country: "Sweden"},
				Category:        "Fintech",
				SelectInvestors: []string{"Sequoia Capital"},
				FundingHistory:  []unicorns.FundingRound{{Date: "2020", Amount: "unknown"}},
			},
		},
	}
}

func TestWriteWorkbook(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteWorkbook(&buf, testDatabase()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{SheetCompanies, SheetCountries, SheetCategories, SheetInvestors}, f.GetSheetList())

	rows, err := f.GetRows(SheetCompanies)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "Company", rows[0][0])
	assert.Equal(t, []string{"ByteDance", "140", "", "China", "Artificial intelligence", "Sequoia Capital China", "1", "3000"}, rows[1])

	assert.Equal(t, "Klarna", rows[3][0])

	rows, err = f.GetRows(SheetCategories)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.GreaterOrEqual(t, len(rows[1]), 2)
	assert.Equal(t, []string{"Fintech", "2"}, rows[1][:2])

	rows, err = f.GetRows(SheetInvestors)
	require.NoError(t, err)
	assert.Equal(t, []string{"Sequoia Capital", "2", "Stripe, Klarna"}, rows[1])
}

func TestWriteWorkbook_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteWorkbook(&buf, &unicorns.Database{}))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetInvestors)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
