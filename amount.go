package unicorns

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ParseFundingAmount converts a funding amount like "100M" or "1.5B" into
// millions.
//
// Every 'M' and 'B' is removed before reading the number, and the value is
// multiplied by 1000 if the original string contains a 'B' anywhere. The
// number is read like a lenient float parser would: leading spaces are skipped
// and the longest numeric prefix is used, so "12.5 (est.)" reads 12.5.
//
// When no number can be read the result is NaN. It is not an error: NaN flows
// into totals so that a malformed amount stays visible instead of silently
// counting as zero.
func ParseFundingAmount(amount string) float64 {
	value := parseLeadingFloat(strings.NewReplacer("M", "", "B", "").Replace(amount))
	if strings.Contains(amount, "B") {
		return value * 1000
	}
	return value
}

// parseLeadingFloat returns the float value of the longest numeric prefix of s,
// or NaN if s does not start with a number.
func parseLeadingFloat(s string) float64 {
	s = strings.TrimLeftFunc(s, isNumberSpace)

	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if strings.HasPrefix(s[i:], "Infinity") {
		if s[0] == '-' {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return math.NaN()
	}
	end := i

	// the exponent only counts if it is complete.
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			end = k
		}
	}

	// the prefix is well formed, the only possible error is a range error and
	// v is then already ±Inf.
	v, _ := strconv.ParseFloat(s[:end], 64)
	return v
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// isNumberSpace reports whether r is skipped before a number: the ASCII
// spaces, line and paragraph separators, the byte order mark and the Zs
// category. U+0085 is not one of them.
func isNumberSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\ufeff', '\u2028', '\u2029':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

// TotalFunding returns the sum of all the funding rounds of a company, in
// millions. A company without funding history has a total of zero.
//
// If any round amount cannot be parsed the total is NaN.
func TotalFunding(c Company) float64 {
	total := 0.0
	for _, round := range c.FundingHistory {
		total += ParseFundingAmount(round.Amount)
	}
	return total
}
