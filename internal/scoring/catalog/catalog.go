// Package catalog holds the static intervention lookup table. The content is
// versioned data shipped with the binary, separate from scoring control flow,
// so it can be tested and updated independently.
package catalog

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/yungbote/longevity-backend/internal/scoring"
)

//go:embed catalog.yaml
var catalogYAML []byte

type entry struct {
	Pillar scoring.Pillar                                   `yaml:"pillar"`
	Topic  string                                           `yaml:"topic"`
	Bands  map[scoring.SeverityBand][]scoring.Candidate `yaml:"bands"`
}

type file struct {
	Version int     `yaml:"version"`
	Entries []entry `yaml:"entries"`
}

// Catalog is an immutable, read-only resolver over the embedded content.
type Catalog struct {
	version int
	table   map[string]map[scoring.SeverityBand][]scoring.Candidate
}

func key(p scoring.Pillar, topic string) string {
	return string(p) + "/" + topic
}

// Parse builds a Catalog from raw YAML. Exposed for tests over alternate
// content; production code uses Default.
func Parse(raw []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	table := make(map[string]map[scoring.SeverityBand][]scoring.Candidate, len(f.Entries))
	for _, e := range f.Entries {
		table[key(e.Pillar, e.Topic)] = e.Bands
	}
	return &Catalog{version: f.Version, table: table}, nil
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
	defaultErr  error
)

// Default returns the catalog embedded in the binary.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCat, defaultErr = Parse(catalogYAML)
	})
	return defaultCat, defaultErr
}

// Version reports the content version of the loaded catalog.
func (c *Catalog) Version() int { return c.version }

// Resolve returns the candidates for a (pillar, topic, band) triple. Unknown
// keys return an empty list so the merger can proceed with whatever topics
// are modeled.
func (c *Catalog) Resolve(pillar scoring.Pillar, topic string, band scoring.SeverityBand) []scoring.Candidate {
	if c == nil {
		return nil
	}
	bands, ok := c.table[key(pillar, topic)]
	if !ok {
		return nil
	}
	return bands[band]
}

var _ scoring.Resolver = (*Catalog)(nil)
