package util

import (
	"regexp"
	"strings"
)

// Shared lexical patterns used by the checkers, metrics and suggestion passes.
// All of them operate on raw text; none of them understand syntax trees.
var (
	// IdentifierPattern matches identifier-like tokens
	IdentifierPattern = regexp.MustCompile(`[A-Za-z_$][A-Za-z0-9_$]*`)

	// ParenGroupPattern matches a parenthesized group with no nested parens
	ParenGroupPattern = regexp.MustCompile(`\([^)]*\)`)

	// ControlKeywordPattern matches the keywords counted by the complexity score
	ControlKeywordPattern = regexp.MustCompile(`\b(if|else|for|while|switch|catch)\b`)

	// LoopKeywordPattern matches loop keywords
	LoopKeywordPattern = regexp.MustCompile(`\b(for|while)\b`)

	// NestedLoopPattern matches any two loop keywords in textual sequence.
	// Deliberately crude: two sequential sibling loops also match.
	NestedLoopPattern = regexp.MustCompile(`(?s)\b(for|while)\b.*\b(for|while)\b`)
)

var commentMarkers = []string{"//", "#", "/*", "*", "<!--"}

// IsCommentLine reports whether the trimmed line starts with a comment marker
func IsCommentLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	for _, marker := range commentMarkers {
		if strings.HasPrefix(trimmed, marker) {
			return true
		}
	}
	return false
}

// Identifiers returns the unique identifier-like tokens of text in first
// occurrence order
func Identifiers(text string) []string {
	seen := make(map[string]bool)
	var tokens []string
	for _, tok := range IdentifierPattern.FindAllString(text, -1) {
		if seen[tok] {
			continue
		}
		seen[tok] = true
		tokens = append(tokens, tok)
	}
	return tokens
}

// LeadingWhitespace returns the run of spaces and tabs starting the line
func LeadingWhitespace(line string) string {
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}

// ContainsAny reports whether text contains any of the given substrings
func ContainsAny(text string, needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(text, n) {
			return true
		}
	}
	return false
}
