package synonym

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	table := Default()

	assert.Equal(t, 19, table.Size())
	assert.Contains(t, table.Related("sit"), "sofa")
	assert.Contains(t, table.Related("store"), "shelf")
	assert.Contains(t, table.Related("light"), "light")
	assert.Nil(t, table.Related("need"))
	assert.Nil(t, table.Related("Sit"), "lookups are exact; callers lower-case keywords")
}

func TestNormalise(t *testing.T) {
	tests := []struct {
		name     string
		raw      map[string][]string
		expected Table
	}{
		{
			name:     "Lower-cases keys and terms",
			raw:      map[string][]string{"Sit": {"Chair", " SOFA "}},
			expected: Table{"sit": {"chair", "sofa"}},
		},
		{
			name:     "Drops empty terms and keys",
			raw:      map[string][]string{"sit": {"", "  ", "bench"}, " ": {"chair"}},
			expected: Table{"sit": {"bench"}},
		},
		{
			name:     "Key with no usable terms is dropped",
			raw:      map[string][]string{"sit": {""}},
			expected: Table{},
		},
		{
			name:     "Empty input",
			raw:      nil,
			expected: Table{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalise(tt.raw))
		})
	}
}

func TestNormalise_MergesCollidingKeys(t *testing.T) {
	table := normalise(map[string][]string{"Sit": {"chair"}, "sit": {"bench"}})

	assert.ElementsMatch(t, []string{"chair", "bench"}, table.Related("sit"))
}
