package unicorns

import (
	"cmp"
	"slices"
)

// Groups maps a grouping key to the companies sharing it, in input order.
type Groups map[string][]Company

// GroupByCountry groups companies by their location country.
//
// Countries are used verbatim: no case or whitespace normalization, and a
// company with an empty country is grouped under "". Within a group, companies
// keep their relative input order.
func GroupByCountry(companies []Company) Groups {
	return groupBy(companies, func(c Company) string { return c.Location.Country })
}

// GroupByCategory groups companies by their industry category.
// It follows the same rules as GroupByCountry.
func GroupByCategory(companies []Company) Groups {
	return groupBy(companies, func(c Company) string { return c.Category })
}

// groupBy is a stable partition of companies by key.
func groupBy(companies []Company, key func(Company) string) Groups {
	groups := make(Groups)
	for _, c := range companies {
		k := key(c)
		groups[k] = append(groups[k], c)
	}
	return groups
}

// Keys returns the group keys sorted alphabetically.
func (g Groups) Keys() []string { return SortedKeys(g) }

// BySize returns the group keys sorted by decreasing number of companies, ties
// broken alphabetically.
func (g Groups) BySize() []string {
	keys := g.Keys()
	slices.SortStableFunc(keys, func(a, b string) int {
		return cmp.Compare(len(g[b]), len(g[a]))
	})
	return keys
}

// SortedKeys returns the keys of m in increasing order.
func SortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
