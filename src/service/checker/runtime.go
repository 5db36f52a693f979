package checker

import (
	"regexp"
	"strings"

	"codecritic/src/model"
	"codecritic/src/scanner"
	"codecritic/src/util"
)

const (
	msgDivisionByZero = "Possible division by zero"
	msgNullPointer    = "Potential null pointer dereference"
	msgMemoryLeak     = "Memory allocated with 'new' but never freed"

	msgUndefinedVariablePrefix = "Potentially undefined variable: "
)

// RuntimeChecker applies deliberately coarse, language-specific runtime
// heuristics. The javascript undefined-variable rule scans every identifier
// token against declaration keywords anywhere in the unit with no scope
// awareness, so object properties, parameters and reserved words can all be
// flagged; that over-approximation is intended.
type RuntimeChecker struct {
	enabled bool
}

// NewRuntimeChecker creates a new runtime checker
func NewRuntimeChecker(enabled bool) *RuntimeChecker {
	return &RuntimeChecker{enabled: enabled}
}

// Name returns the checker name
func (c *RuntimeChecker) Name() string {
	return "runtime"
}

// Type returns the bug category
func (c *RuntimeChecker) Type() model.BugType {
	return model.BugRuntime
}

// IsEnabled returns whether the checker is enabled
func (c *RuntimeChecker) IsEnabled() bool {
	return c.enabled
}

// Check dispatches on language
func (c *RuntimeChecker) Check(src *scanner.Source, lang model.Language) []RawFinding {
	switch lang {
	case model.LanguageJavaScript:
		return c.undefinedVariables(src)
	case model.LanguagePython:
		return c.divisionByZero(src)
	case model.LanguageJava:
		return c.nullDereference(src)
	case model.LanguageCpp:
		return c.memoryLeak(src)
	default:
		return nil
	}
}

// undefinedVariables flags every unique identifier token that no declaration
// keyword introduces anywhere in the unit
func (c *RuntimeChecker) undefinedVariables(src *scanner.Source) []RawFinding {
	var findings []RawFinding
	for _, tok := range util.Identifiers(src.Text()) {
		declRe := regexp.MustCompile(`\b(var|let|const|function|class)\s+` + regexp.QuoteMeta(tok) + `\b`)
		if declRe.MatchString(src.Text()) {
			continue
		}
		findings = append(findings, RawFinding{
			Type:    model.BugRuntime,
			Message: msgUndefinedVariablePrefix + tok,
			Line:    locate(src, tok),
			FixHint: "Declare '" + tok + "' with const or let before using it",
		})
	}
	return findings
}

func (c *RuntimeChecker) divisionByZero(src *scanner.Source) []RawFinding {
	if !strings.Contains(src.Text(), "/") {
		return nil
	}
	return []RawFinding{{
		Type:    model.BugRuntime,
		Message: msgDivisionByZero,
		Line:    locate(src, "/"),
		FixHint: "Guard the division against a zero divisor",
	}}
}

// nullDereference fires on any member access when the unit never mentions
// null, a crude stand-in for missing null checks
func (c *RuntimeChecker) nullDereference(src *scanner.Source) []RawFinding {
	if !strings.Contains(src.Text(), ".") || strings.Contains(src.Text(), "null") {
		return nil
	}
	return []RawFinding{{
		Type:    model.BugRuntime,
		Message: msgNullPointer,
		Line:    locate(src, "."),
		FixHint: "Check references for null before dereferencing them",
	}}
}

func (c *RuntimeChecker) memoryLeak(src *scanner.Source) []RawFinding {
	if !strings.Contains(src.Text(), "new ") || strings.Contains(src.Text(), "delete ") {
		return nil
	}
	return []RawFinding{{
		Type:    model.BugRuntime,
		Message: msgMemoryLeak,
		Line:    locate(src, "new "),
		FixHint: "Pair every new with a delete, or use a smart pointer",
	}}
}
