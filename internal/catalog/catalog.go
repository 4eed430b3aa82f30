// Package catalog loads the immutable gift-card catalog. Entries come
// from a YAML config read once at process start; they are never mutated
// at runtime.
package catalog

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/fennwick/TallyBot_Go/internal/domain"
)

// Entry describes one redeemable gift-card kind.
type Entry struct {
	DisplayName string `yaml:"display_name" json:"display_name"`
	Cost        int    `yaml:"cost" json:"cost"`
}

// Catalog maps gift-card kind to its entry.
type Catalog struct {
	entries map[string]Entry
}

type catalogFile struct {
	GiftCards map[string]Entry `yaml:"gift_cards"`
}

// Load reads and validates the catalog file at path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}
	if len(file.GiftCards) == 0 {
		return nil, fmt.Errorf("catalog file %s defines no gift cards", path)
	}

	for kind, entry := range file.GiftCards {
		if entry.Cost <= 0 {
			return nil, fmt.Errorf("gift card %q has non-positive cost %d", kind, entry.Cost)
		}
		if entry.DisplayName == "" {
			return nil, fmt.Errorf("gift card %q has no display name", kind)
		}
	}

	return &Catalog{entries: file.GiftCards}, nil
}

// Get looks up a gift-card kind.
func (c *Catalog) Get(kind string) (Entry, error) {
	entry, ok := c.entries[kind]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %s", domain.ErrUnknownCard, kind)
	}
	return entry, nil
}

// Kinds returns all kinds in sorted order.
func (c *Catalog) Kinds() []string {
	kinds := make([]string, 0, len(c.entries))
	for kind := range c.entries {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

// Entries returns a copy of the full catalog keyed by kind.
func (c *Catalog) Entries() map[string]Entry {
	out := make(map[string]Entry, len(c.entries))
	for kind, entry := range c.entries {
		out[kind] = entry
	}
	return out
}
