package checker

import (
	"strings"

	"codecritic/src/model"
	"codecritic/src/scanner"
)

const (
	msgInfiniteLoop    = "Potential infinite loop"
	msgUnreachableCode = "Unreachable code after return statement"
)

// LogicalChecker applies language-agnostic control-flow heuristics
type LogicalChecker struct {
	enabled bool
}

// NewLogicalChecker creates a new logical checker
func NewLogicalChecker(enabled bool) *LogicalChecker {
	return &LogicalChecker{enabled: enabled}
}

// Name returns the checker name
func (c *LogicalChecker) Name() string {
	return "logical"
}

// Type returns the bug category
func (c *LogicalChecker) Type() model.BugType {
	return model.BugLogical
}

// IsEnabled returns whether the checker is enabled
func (c *LogicalChecker) IsEnabled() bool {
	return c.enabled
}

// Check runs the logical heuristics; they apply regardless of language
func (c *LogicalChecker) Check(src *scanner.Source, lang model.Language) []RawFinding {
	var findings []RawFinding
	findings = append(findings, c.infiniteLoops(src)...)
	findings = append(findings, c.unreachableCode(src)...)
	return findings
}

// infiniteLoops triggers on the literal loop-forever spellings
func (c *LogicalChecker) infiniteLoops(src *scanner.Source) []RawFinding {
	var findings []RawFinding
	for _, construct := range []string{"while(true)", "for(;;)"} {
		if !strings.Contains(src.Text(), construct) {
			continue
		}
		findings = append(findings, RawFinding{
			Type:    model.BugLogical,
			Message: msgInfiniteLoop,
			Line:    locate(src, construct),
			FixHint: "Loop on a condition that can become false, or add a break",
		})
	}
	return findings
}

// unreachableCode triggers when the literal substring "return" occurs a
// second time past the first occurrence. This can misfire across unrelated
// statements; the coarseness is intended and must not be silently
// strengthened.
func (c *LogicalChecker) unreachableCode(src *scanner.Source) []RawFinding {
	text := src.Text()
	first := strings.Index(text, "return")
	if first < 0 {
		return nil
	}
	rest := text[first+len("return"):]
	second := strings.Index(rest, "return")
	if second < 0 {
		return nil
	}
	offset := first + len("return") + second
	return []RawFinding{{
		Type:    model.BugLogical,
		Message: msgUnreachableCode,
		Line:    model.LineAt(lineOfOffset(text, offset)),
		FixHint: "Remove or relocate statements that follow an unconditional return",
	}}
}
