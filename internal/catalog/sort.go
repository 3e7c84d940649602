package catalog

import (
	"fmt"
	"slices"

	"product-catalog/internal/model"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects the display order of products.
type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortOldest    SortKey = "oldest"
	SortPriceHigh SortKey = "price-high"
	SortPriceLow  SortKey = "price-low"
	SortName      SortKey = "name"
)

// SortKeys lists the accepted keys in menu order.
var SortKeys = []SortKey{SortNewest, SortOldest, SortPriceHigh, SortPriceLow, SortName}

// ParseSortKey validates a user-supplied sort key.
func ParseSortKey(s string) (SortKey, error) {
	key := SortKey(s)
	if slices.Contains(SortKeys, key) {
		return key, nil
	}
	return "", fmt.Errorf("unknown sort key %q (want one of %v)", s, SortKeys)
}

// Sort returns a stably sorted copy of products. The input is not modified and
// an unrecognised key returns the copy in input order.
func Sort(products []model.Product, key SortKey) []model.Product {
	sorted := slices.Clone(products)

	switch key {
	case SortNewest:
		slices.SortStableFunc(sorted, func(a, b model.Product) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	case SortOldest:
		slices.SortStableFunc(sorted, func(a, b model.Product) int {
			return a.CreatedAt.Compare(b.CreatedAt)
		})
	case SortPriceHigh:
		slices.SortStableFunc(sorted, func(a, b model.Product) int {
			return b.Price.Cmp(a.Price)
		})
	case SortPriceLow:
		slices.SortStableFunc(sorted, func(a, b model.Product) int {
			return a.Price.Cmp(b.Price)
		})
	case SortName:
		// Collators are not safe for concurrent use.
		c := collate.New(language.English, collate.IgnoreCase)
		slices.SortStableFunc(sorted, func(a, b model.Product) int {
			return c.CompareString(a.Name, b.Name)
		})
	}

	return sorted
}

// ViewMode selects how products are presented.
type ViewMode string

const (
	ViewGrid ViewMode = "grid"
	ViewList ViewMode = "list"
)

// ParseViewMode validates a user-supplied view mode.
func ParseViewMode(s string) (ViewMode, error) {
	switch mode := ViewMode(s); mode {
	case ViewGrid, ViewList:
		return mode, nil
	}
	return "", fmt.Errorf("unknown view mode %q (want grid or list)", s)
}
