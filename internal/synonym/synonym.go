package synonym

import (
	"context"
	"strings"
)

// Table maps an intent word such as "sit" to the literal product terms it implies.
// A Table is built once and must not be modified afterwards.
type Table map[string][]string

// Loader defines the interface for loading a synonym table.
type Loader interface {
	// Load reads a JSON object of intent word to term list from name.
	Load(ctx context.Context, name string) (Table, error)
}

// Related returns the terms associated with keyword, or nil.
func (t Table) Related(keyword string) []string {
	return t[keyword]
}

// Size returns the number of intent words in the table.
func (t Table) Size() int {
	return len(t)
}

// normalise lower-cases keys and terms and drops empty entries.
// Keys that collide after lower-casing have their terms merged.
func normalise(raw map[string][]string) Table {
	table := make(Table, len(raw))
	for key, terms := range raw {
		key = strings.ToLower(strings.TrimSpace(key))
		if key == "" {
			continue
		}
		for _, term := range terms {
			term = strings.ToLower(strings.TrimSpace(term))
			if term != "" {
				table[key] = append(table[key], term)
			}
		}
	}
	return table
}

// Default returns the built-in table used when no synonym file is configured.
func Default() Table {
	return Table{
		// Seating
		"sit":         {"chair", "sofa", "couch", "bench", "stool", "seating"},
		"seat":        {"chair", "sofa", "couch", "bench", "stool", "seating"},
		"comfortable": {"sofa", "chair", "couch", "mattress", "bed", "pillow"},
		"relax":       {"sofa", "chair", "couch", "bed", "lounge"},

		// Storage
		"store":    {"shelf", "cabinet", "drawer", "storage", "box"},
		"organize": {"shelf", "cabinet", "drawer", "storage", "organizer"},

		// Display
		"display": {"tv", "monitor", "screen", "shelf", "stand"},
		"watch":   {"tv", "television", "monitor", "screen"},

		// Kitchen
		"cook": {"stove", "oven", "cooker", "pan", "pot", "kitchen"},
		"food": {"refrigerator", "fridge", "oven", "kitchen"},

		// Work
		"work":  {"desk", "table", "chair", "office", "computer"},
		"study": {"desk", "table", "chair", "book", "lamp"},

		// Price
		"cheap":     {"affordable", "budget", "inexpensive", "low-price"},
		"expensive": {"premium", "luxury", "high-end", "quality"},

		// Colour
		"dark":  {"black", "brown", "gray", "navy"},
		"light": {"white", "beige", "cream", "light"},

		// Material
		"wooden": {"wood", "timber", "oak", "pine", "maple"},
		"metal":  {"steel", "aluminum", "iron", "metallic"},

		"family": {"sofa", "dining", "table", "large", "spacious", "set"},
	}
}
