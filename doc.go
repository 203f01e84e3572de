// Package unicorns provides the data model and the aggregation functions for a
// dataset of privately held companies valued above one billion dollars.
//
// The core functionalities include:
//   - Data Model: Companies with their valuation, location, category, select
//     investors, funding history and business description, as published in the
//     structured dataset (JSON or YAML).
//   - Aggregations: Grouping companies by country or by category, computing the
//     total funding raised by a company and the portfolio of every investor.
//   - Analyses: Ranking by valuation, filtering by investor or funding year, and
//     per-category funding totals.
//
// Every aggregation is a pure function over an immutable []Company: inputs are
// never modified, results are newly allocated, and no state is kept between
// calls.
//
// Funding amounts are expressed in millions. They are parsed with a best-effort
// reader (see ParseFundingAmount) that lets NaN flow into totals instead of
// failing: a single malformed amount turns the total of its company into NaN.
//
// This package serves as the foundational logic for the `unicorn` command-line
// tool.
package unicorns
