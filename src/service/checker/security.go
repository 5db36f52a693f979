package checker

import (
	"strings"

	"codecritic/src/model"
	"codecritic/src/scanner"
)

const (
	msgSQLInjection = "Potential SQL injection vulnerability"
	msgXSS          = "Potential XSS vulnerability"
)

// SecurityChecker applies language-agnostic security heuristics
type SecurityChecker struct {
	enabled bool
}

// NewSecurityChecker creates a new security checker
func NewSecurityChecker(enabled bool) *SecurityChecker {
	return &SecurityChecker{enabled: enabled}
}

// Name returns the checker name
func (c *SecurityChecker) Name() string {
	return "security"
}

// Type returns the bug category
func (c *SecurityChecker) Type() model.BugType {
	return model.BugSecurity
}

// IsEnabled returns whether the checker is enabled
func (c *SecurityChecker) IsEnabled() bool {
	return c.enabled
}

// Check runs the security heuristics; they apply regardless of language
func (c *SecurityChecker) Check(src *scanner.Source, lang model.Language) []RawFinding {
	var findings []RawFinding
	findings = append(findings, c.sqlInjection(src)...)
	findings = append(findings, c.crossSiteScripting(src)...)
	return findings
}

// sqlInjection fires on the presence of SQL statement keywords
func (c *SecurityChecker) sqlInjection(src *scanner.Source) []RawFinding {
	for _, keyword := range []string{"SELECT", "INSERT", "UPDATE"} {
		if strings.Contains(src.Text(), keyword) {
			return []RawFinding{{
				Type:    model.BugSecurity,
				Message: msgSQLInjection,
				Line:    locate(src, keyword),
				FixHint: "Use parameterized queries instead of string concatenation",
			}}
		}
	}
	return nil
}

// crossSiteScripting fires on sinks that interpret markup
func (c *SecurityChecker) crossSiteScripting(src *scanner.Source) []RawFinding {
	for _, sink := range []string{"innerHTML", "document.write"} {
		if strings.Contains(src.Text(), sink) {
			return []RawFinding{{
				Type:    model.BugSecurity,
				Message: msgXSS,
				Line:    locate(src, sink),
				FixHint: "Use textContent or sanitize input before rendering it",
			}}
		}
	}
	return nil
}
