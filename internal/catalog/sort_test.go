package catalog

import (
	"testing"
	"time"

	"product-catalog/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSort(t *testing.T) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	products := []model.Product{
		product(1, "banana", "", "20", base.Add(time.Hour)),
		product(2, "Apple", "", "10", base),
		product(3, "cherry", "", "30", base.Add(2*time.Hour)),
	}

	tests := []struct {
		name     string
		key      SortKey
		expected []string
	}{
		{name: "Newest first", key: SortNewest, expected: []string{"cherry", "banana", "Apple"}},
		{name: "Oldest first", key: SortOldest, expected: []string{"Apple", "banana", "cherry"}},
		{name: "Price high to low", key: SortPriceHigh, expected: []string{"cherry", "banana", "Apple"}},
		{name: "Price low to high", key: SortPriceLow, expected: []string{"Apple", "banana", "cherry"}},
		{name: "Name ignores case", key: SortName, expected: []string{"Apple", "banana", "cherry"}},
		{name: "Unknown key keeps order", key: SortKey("rating"), expected: []string{"banana", "Apple", "cherry"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, names(Sort(products, tt.key)))
			assert.Equal(t, []string{"banana", "Apple", "cherry"}, names(products), "input must not be modified")
		})
	}
}

func TestSort_PriceIsNumeric(t *testing.T) {
	now := time.Now()
	products := []model.Product{
		product(1, "a", "", "100", now),
		product(2, "b", "", "9.5", now),
		product(3, "c", "", "20", now),
	}

	var prices []string
	for _, p := range Sort(products, SortPriceLow) {
		prices = append(prices, p.Price.String())
	}
	assert.Equal(t, []string{"9.5", "20", "100"}, prices)
}

func TestSort_IsStable(t *testing.T) {
	now := time.Now()
	products := []model.Product{
		product(1, "first", "", "10", now),
		product(2, "second", "", "10", now),
		product(3, "third", "", "10", now),
	}

	for _, key := range SortKeys[:4] {
		assert.Equal(t, []string{"first", "second", "third"}, names(Sort(products, key)), string(key))
	}
}

func TestSort_Empty(t *testing.T) {
	assert.Empty(t, Sort(nil, SortName))
}

func TestParseSortKey(t *testing.T) {
	for _, key := range SortKeys {
		got, err := ParseSortKey(string(key))
		require.NoError(t, err)
		assert.Equal(t, key, got)
	}

	_, err := ParseSortKey("popular")
	assert.Error(t, err)
}

func TestParseViewMode(t *testing.T) {
	tests := []struct {
		input       string
		expected    ViewMode
		expectError bool
	}{
		{input: "grid", expected: ViewGrid},
		{input: "list", expected: ViewList},
		{input: "table", expectError: true},
		{input: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseViewMode(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
