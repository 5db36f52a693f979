// Package checker implements the bug-finding pass: four checkers walking
// the scanned line sequence with language-specific and language-agnostic
// heuristics. The checkers do not parse syntax trees and do not execute
// code; every rule is a substring or pattern test with a defined trigger.
package checker

import (
	"codecritic/src/model"
	"codecritic/src/scanner"
)

// RawFinding is a detected defect before fix synthesis
type RawFinding struct {
	Type    model.BugType
	Message string
	Line    model.LineRef
	// FixHint is the checker's suggested remedy, used verbatim by the
	// generic fix fallback when the catalog has no entry for Message
	FixHint string
}

// Checker is the interface implemented by each bug checker category
type Checker interface {
	// Name returns the checker name
	Name() string

	// Type returns the bug category this checker emits
	Type() model.BugType

	// IsEnabled returns whether the checker is enabled
	IsEnabled() bool

	// Check walks the scanned source and returns raw findings
	Check(src *scanner.Source, lang model.Language) []RawFinding
}

// locate returns the first line containing needle, or the whole-unit
// reference when no line matches
func locate(src *scanner.Source, needle string) model.LineRef {
	if n, ok := src.FirstLineContaining(needle); ok {
		return model.LineAt(n)
	}
	return model.MultipleLines
}

// lineOfOffset converts a byte offset into a 1-based line number
func lineOfOffset(text string, offset int) int {
	line := 1
	for i := 0; i < offset && i < len(text); i++ {
		if text[i] == '\n' {
			line++
		}
	}
	return line
}
