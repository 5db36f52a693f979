// Package catalog holds the static rule data of the engine: fix templates
// keyed by bug type, language and message, a language-agnostic fix table,
// and per-language best-practice lists. The data lives in an embedded YAML
// file and is decoded once; the decoded catalog is read-only.
package catalog

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"codecritic/src/model"
)

//go:embed data.yaml
var rawData []byte

// Catalog is the immutable rule data store
type Catalog struct {
	Fixes         map[model.BugType]map[model.Language]map[string]model.Fix `yaml:"fixes"`
	AgnosticFixes map[model.BugType]map[string]model.Fix                    `yaml:"agnostic_fixes"`
	BestPractices map[model.Language][]string                               `yaml:"best_practices"`
}

var (
	defaultCatalog *Catalog
	loadOnce       sync.Once
)

// Default returns the process-wide catalog, decoding the embedded data on
// first use. The data ships with the binary, so a decode failure is a
// build defect and panics.
func Default() *Catalog {
	loadOnce.Do(func() {
		c, err := Parse(rawData)
		if err != nil {
			panic(fmt.Sprintf("catalog: embedded data invalid: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Parse decodes catalog data from YAML
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing catalog data: %w", err)
	}
	return &c, nil
}

// FindFix looks up a fix template for (type, language, message). Precedence:
// exact per-language entry first, then the language-agnostic table. The
// second return value is false when both tables miss; the caller is expected
// to fall back to a generic fix.
func (c *Catalog) FindFix(t model.BugType, lang model.Language, message string) (model.Fix, bool) {
	if byLang, ok := c.Fixes[t]; ok {
		if byMsg, ok := byLang[lang]; ok {
			if fix, ok := byMsg[message]; ok {
				return fix, true
			}
		}
	}
	if byMsg, ok := c.AgnosticFixes[t]; ok {
		if fix, ok := byMsg[message]; ok {
			return fix, true
		}
	}
	return model.Fix{}, false
}

// BestPracticesFor returns the guidance list for a language. Languages
// without their own list get the javascript list.
func (c *Catalog) BestPracticesFor(lang model.Language) []string {
	if practices, ok := c.BestPractices[lang]; ok && len(practices) > 0 {
		return practices
	}
	return c.BestPractices[model.LanguageJavaScript]
}
