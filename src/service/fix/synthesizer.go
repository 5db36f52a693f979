// Package fix attaches a concrete Fix to every raw finding through an
// explicit ordered lookup: exact (type, language, message) entry, then the
// language-agnostic (type, message) table, then a generic templated fix.
// A lookup miss is never an error; the fallback guarantees that no finding
// leaves the engine with an empty fix.
package fix

import (
	"codecritic/src/catalog"
	"codecritic/src/model"
)

// genericBefore is the placeholder original shown by fallback fixes
const genericBefore = "Original code"

// Synthesizer resolves fixes against the rule catalog
type Synthesizer struct {
	catalog *catalog.Catalog
}

// NewSynthesizer creates a synthesizer backed by the given catalog
func NewSynthesizer(c *catalog.Catalog) *Synthesizer {
	return &Synthesizer{catalog: c}
}

// Resolve returns the fix for a finding. The lookup key is the literal
// message text, so checker messages and catalog keys must stay in sync;
// a drifted message silently resolves through the generic fallback.
func (s *Synthesizer) Resolve(t model.BugType, lang model.Language, message, hint string) model.Fix {
	if f, ok := s.catalog.FindFix(t, lang, message); ok {
		return f
	}
	return s.generic(message, hint)
}

func (s *Synthesizer) generic(message, hint string) model.Fix {
	if hint == "" {
		hint = "Review and correct: " + message
	}
	return model.Fix{
		Before:      genericBefore,
		After:       hint,
		Explanation: hint,
	}
}
