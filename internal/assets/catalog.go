package assets

import (
	"fmt"
	"strings"

	"github.com/alnah/go-ideagen/internal/yamlutil"
)

// Kind names one of the catalog lists.
type Kind string

const (
	KindNiche  Kind = "niche"
	KindBudget Kind = "budget"
	KindMarket Kind = "market"
)

// Kinds lists every catalog kind in display order.
var Kinds = []Kind{KindNiche, KindBudget, KindMarket}

// Option is one selectable catalog entry.
type Option struct {
	Key   string `yaml:"key"`
	Label string `yaml:"label"`
}

// Catalog holds the predefined request values.
type Catalog struct {
	Niches  []Option `yaml:"niches"`
	Budgets []Option `yaml:"budgets"`
	Markets []Option `yaml:"markets"`
}

// ParseCatalog decodes catalog YAML strictly and checks that every entry
// has a key and a label and that keys are unique within a list.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yamlutil.Decode(data, &c, yamlutil.Strict); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogParse, err)
	}
	for _, kind := range Kinds {
		seen := make(map[string]bool)
		for i, opt := range c.Options(kind) {
			if opt.Key == "" || opt.Label == "" {
				return nil, fmt.Errorf("%w: %s #%d needs key and label", ErrCatalogParse, kind, i+1)
			}
			key := strings.ToLower(opt.Key)
			if seen[key] {
				return nil, fmt.Errorf("%w: duplicate %s key %q", ErrCatalogParse, kind, opt.Key)
			}
			seen[key] = true
		}
	}
	return &c, nil
}

// Options returns the entries of one kind, or nil for an unknown kind.
func (c *Catalog) Options(kind Kind) []Option {
	switch kind {
	case KindNiche:
		return c.Niches
	case KindBudget:
		return c.Budgets
	case KindMarket:
		return c.Markets
	default:
		return nil
	}
}

// Lookup finds an entry by key, ignoring case.
func (c *Catalog) Lookup(kind Kind, key string) (Option, bool) {
	key = strings.TrimSpace(key)
	for _, opt := range c.Options(kind) {
		if strings.EqualFold(opt.Key, key) {
			return opt, true
		}
	}
	return Option{}, false
}

// Resolve returns the label for a known key. Any other value is free text
// entered by the user and comes back trimmed.
func (c *Catalog) Resolve(kind Kind, value string) string {
	if opt, ok := c.Lookup(kind, value); ok {
		return opt.Label
	}
	return strings.TrimSpace(value)
}
