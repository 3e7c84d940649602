package catalog

import (
	"strings"

	"product-catalog/internal/model"
	"product-catalog/internal/synonym"
)

// Filter returns the baseline products matching the free-text query q.
//
// The query is split into lower-cased keywords. A product matches when any
// keyword appears in its name or description, or when a keyword is an intent
// word in table and one of its related terms appears there. A blank query
// returns the baseline itself. Baseline order is preserved.
func Filter(baseline []model.Product, q string, table synonym.Table) []model.Product {
	if strings.TrimSpace(q) == "" {
		return baseline
	}

	keywords := strings.Fields(strings.ToLower(q))
	results := make([]model.Product, 0, len(baseline))
	for _, p := range baseline {
		if matches(p, keywords, table) {
			results = append(results, p)
		}
	}
	return results
}

func matches(p model.Product, keywords []string, table synonym.Table) bool {
	name := strings.ToLower(p.Name)
	description := strings.ToLower(p.Description)

	for _, keyword := range keywords {
		if strings.Contains(name, keyword) || strings.Contains(description, keyword) {
			return true
		}
		for _, term := range table.Related(keyword) {
			if strings.Contains(name, term) || strings.Contains(description, term) {
				return true
			}
		}
	}
	return false
}
