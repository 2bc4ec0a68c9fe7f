package classify

import (
	"encoding/json"
	"fmt"
	"os"
)

type catalogEntry struct {
	Category string            `json:"category"`
	Patterns map[string]string `json:"patterns"`
}

// LoadCatalog reads an event-pattern catalog from a JSON file. The file is
// an array so that its order defines classification precedence:
//
//	[{"category": "PointsAdded", "patterns": {"en": "...", "fr": "..."}}, ...]
//
// Every category name must be one of the built-in ones — the group semantics
// behind each category are fixed in code and only the patterns and their
// order are configurable.
func LoadCatalog(path string) ([]Category, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading pattern catalog: %w", err)
	}

	var entries []catalogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing pattern catalog: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("pattern catalog %s is empty", path)
	}

	catalog := make([]Category, 0, len(entries))
	for _, entry := range entries {
		cat, err := newCategory(entry.Category, entry.Patterns)
		if err != nil {
			return nil, err
		}
		catalog = append(catalog, cat)
	}
	return catalog, nil
}
