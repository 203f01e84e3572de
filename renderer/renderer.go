// Package renderer formats the results of the unicorns aggregations as
// markdown documents.
package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/unicorns"
)

// markdown is a strings.Builder with a Printf.
type markdown struct {
	strings.Builder
}

// Printf formats according to a format specifier and writes to the buffer.
func (r *markdown) Printf(format string, args ...any) {
	fmt.Fprintf(r, format, args...)
}

// cell escapes s to fit in a table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}

// key renders a grouping key, the empty key is explicit.
func key(s string) string {
	if s == "" {
		return "(none)"
	}
	return cell(s)
}

// millions renders an amount in millions of dollars. NaN totals are shown as
// "n/a" since a malformed amount makes the whole total unknown.
func millions(amount float64) string {
	m, ok := unicorns.Millions(amount, "USD")
	if !ok {
		return "n/a"
	}
	return m.String() + "M"
}

// billions renders a valuation.
func billions(v unicorns.Valuation) string {
	if _, err := unicorns.ParseValuation(v.AmountBillion); err != nil {
		return cell(v.AmountBillion)
	}
	return v.Billions().String() + "B"
}
