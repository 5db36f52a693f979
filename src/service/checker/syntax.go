package checker

import (
	"regexp"
	"strings"

	"codecritic/src/model"
	"codecritic/src/scanner"
	"codecritic/src/util"
)

const (
	msgMissingSemicolon   = "Missing semicolon at end of statement"
	msgUnmatchedBraces    = "Unmatched curly braces"
	msgUnterminatedCall   = "Unterminated function call"
	msgUnterminatedString = "Unterminated string literal"
	msgBadIndentation     = "Incorrect indentation"
	msgMissingColon       = "Missing colon after control statement"
	msgMissingPublicClass = "Missing public class declaration"
	msgMissingMain        = "Missing main method"
	msgMissingIostream    = "Missing #include <iostream> for cout"
	msgMissingNamespace   = "Missing 'using namespace std;'"
)

var (
	// statement lines containing these keywords are exempt from the
	// semicolon rule
	controlStatementRe = regexp.MustCompile(`\b(if|for|while|function|class)\b`)

	// javascript declaration keywords at line start
	jsDeclarationRe = regexp.MustCompile(`^(const|let|var)\b`)

	// a call opened on a line with no closing paren before end of line
	unterminatedCallRe = regexp.MustCompile(`[A-Za-z_$][A-Za-z0-9_$]*\([^()\n]*$`)

	// python block-introducing keywords at line start
	pyControlRe = regexp.MustCompile(`^(if|for|while|def|class|else|elif)\b`)
)

// SyntaxChecker detects structural defects: missing terminators, unmatched
// braces, unterminated constructs, indentation faults and missing
// boilerplate declarations
type SyntaxChecker struct {
	enabled bool
}

// NewSyntaxChecker creates a new syntax checker
func NewSyntaxChecker(enabled bool) *SyntaxChecker {
	return &SyntaxChecker{enabled: enabled}
}

// Name returns the checker name
func (c *SyntaxChecker) Name() string {
	return "syntax"
}

// Type returns the bug category
func (c *SyntaxChecker) Type() model.BugType {
	return model.BugSyntax
}

// IsEnabled returns whether the checker is enabled
func (c *SyntaxChecker) IsEnabled() bool {
	return c.enabled
}

// Check dispatches on language
func (c *SyntaxChecker) Check(src *scanner.Source, lang model.Language) []RawFinding {
	switch lang {
	case model.LanguageJavaScript:
		var findings []RawFinding
		findings = append(findings, c.missingSemicolons(src, lang)...)
		findings = append(findings, c.unmatchedBraces(src)...)
		findings = append(findings, c.unterminatedCalls(src)...)
		findings = append(findings, c.unterminatedStrings(src)...)
		return findings
	case model.LanguagePython:
		return c.pythonIndentation(src)
	case model.LanguageJava:
		var findings []RawFinding
		findings = append(findings, c.missingSemicolons(src, lang)...)
		findings = append(findings, c.unmatchedBraces(src)...)
		findings = append(findings, c.javaDeclarations(src)...)
		return findings
	case model.LanguageCpp:
		var findings []RawFinding
		findings = append(findings, c.missingSemicolons(src, lang)...)
		findings = append(findings, c.unmatchedBraces(src)...)
		findings = append(findings, c.cppIncludes(src)...)
		return findings
	default:
		return nil
	}
}

// missingSemicolons flags non-empty statement lines without a terminator.
// Lines ending in ; { or }, lines containing control keywords, comment
// lines, and javascript declaration lines are exempt.
func (c *SyntaxChecker) missingSemicolons(src *scanner.Source, lang model.Language) []RawFinding {
	var findings []RawFinding
	for i, line := range src.Lines() {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasSuffix(trimmed, ";") || strings.HasSuffix(trimmed, "{") || strings.HasSuffix(trimmed, "}") {
			continue
		}
		if controlStatementRe.MatchString(trimmed) {
			continue
		}
		if util.IsCommentLine(line) {
			continue
		}
		if lang == model.LanguageJavaScript && jsDeclarationRe.MatchString(trimmed) {
			continue
		}
		findings = append(findings, RawFinding{
			Type:    model.BugSyntax,
			Message: msgMissingSemicolon,
			Line:    model.LineAt(i + 1),
			FixHint: "Add a semicolon at the end of the statement",
		})
	}
	return findings
}

// unmatchedBraces compares whole-unit brace counts and emits at most one
// finding regardless of the size of the imbalance
func (c *SyntaxChecker) unmatchedBraces(src *scanner.Source) []RawFinding {
	open := strings.Count(src.Text(), "{")
	closed := strings.Count(src.Text(), "}")
	if open == closed {
		return nil
	}
	return []RawFinding{{
		Type:    model.BugSyntax,
		Message: msgUnmatchedBraces,
		Line:    model.MultipleLines,
		FixHint: "Balance opening and closing curly braces",
	}}
}

func (c *SyntaxChecker) unterminatedCalls(src *scanner.Source) []RawFinding {
	var findings []RawFinding
	for i, line := range src.Lines() {
		if unterminatedCallRe.MatchString(line) {
			findings = append(findings, RawFinding{
				Type:    model.BugSyntax,
				Message: msgUnterminatedCall,
				Line:    model.LineAt(i + 1),
				FixHint: "Close the call with a matching parenthesis",
			})
		}
	}
	return findings
}

// unterminatedStrings flags lines with an odd number of quote characters,
// meaning a literal opened on the line has no closer before end of line
func (c *SyntaxChecker) unterminatedStrings(src *scanner.Source) []RawFinding {
	var findings []RawFinding
	for i, line := range src.Lines() {
		if strings.Count(line, `'`)%2 == 1 || strings.Count(line, `"`)%2 == 1 {
			findings = append(findings, RawFinding{
				Type:    model.BugSyntax,
				Message: msgUnterminatedString,
				Line:    model.LineAt(i + 1),
				FixHint: "Close the string literal with a matching quote",
			})
		}
	}
	return findings
}

// pythonIndentation flags leading whitespace that is not a multiple of four,
// block bodies that are not indented at all, and block-introducing statements
// missing their trailing colon
func (c *SyntaxChecker) pythonIndentation(src *scanner.Source) []RawFinding {
	var findings []RawFinding
	prevOpensBlock := false
	for i, line := range src.Lines() {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		lead := len(util.LeadingWhitespace(line))
		if lead%4 != 0 || (prevOpensBlock && lead == 0) {
			findings = append(findings, RawFinding{
				Type:    model.BugSyntax,
				Message: msgBadIndentation,
				Line:    model.LineAt(i + 1),
				FixHint: "Indent with a consistent 4 spaces per block level",
			})
		}
		if pyControlRe.MatchString(trimmed) && !strings.HasSuffix(trimmed, ":") {
			findings = append(findings, RawFinding{
				Type:    model.BugSyntax,
				Message: msgMissingColon,
				Line:    model.LineAt(i + 1),
				FixHint: "End the control statement with a colon",
			})
		}
		prevOpensBlock = strings.HasSuffix(trimmed, ":")
	}
	return findings
}

func (c *SyntaxChecker) javaDeclarations(src *scanner.Source) []RawFinding {
	var findings []RawFinding
	if !strings.Contains(src.Text(), "public class") {
		findings = append(findings, RawFinding{
			Type:    model.BugSyntax,
			Message: msgMissingPublicClass,
			Line:    model.LineAt(1),
			FixHint: "Declare the code inside a public class",
		})
	}
	if !strings.Contains(src.Text(), "public static void main") {
		findings = append(findings, RawFinding{
			Type:    model.BugSyntax,
			Message: msgMissingMain,
			Line:    model.MultipleLines,
			FixHint: "Add a public static void main(String[] args) entry point",
		})
	}
	return findings
}

// cppIncludes flags missing iostream boilerplate, but only when the unit
// actually uses cout
func (c *SyntaxChecker) cppIncludes(src *scanner.Source) []RawFinding {
	if !strings.Contains(src.Text(), "cout") {
		return nil
	}
	var findings []RawFinding
	if !strings.Contains(src.Text(), "#include <iostream>") {
		findings = append(findings, RawFinding{
			Type:    model.BugSyntax,
			Message: msgMissingIostream,
			Line:    model.LineAt(1),
			FixHint: "Add #include <iostream> before using cout",
		})
	}
	if !strings.Contains(src.Text(), "using namespace std;") {
		findings = append(findings, RawFinding{
			Type:    model.BugSyntax,
			Message: msgMissingNamespace,
			Line:    model.MultipleLines,
			FixHint: "Add 'using namespace std;' or qualify cout as std::cout",
		})
	}
	return findings
}
