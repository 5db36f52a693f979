package model

import (
	"encoding/json"
	"fmt"
)

// BugType represents the category of a detected defect
type BugType string

const (
	BugSyntax   BugType = "syntax"
	BugRuntime  BugType = "runtime"
	BugLogical  BugType = "logical"
	BugSecurity BugType = "security"
)

// Level is a qualitative metric score
type Level string

const (
	LevelLow    Level = "Low"
	LevelMedium Level = "Medium"
	LevelHigh   Level = "High"
)

// LineRef locates a finding: either a single 1-based line number or the
// whole unit ("multiple"). It serializes as a JSON number or the string
// "multiple".
type LineRef struct {
	Multiple bool
	Number   int
}

// LineAt returns a reference to a single 1-based line
func LineAt(n int) LineRef {
	return LineRef{Number: n}
}

// MultipleLines references the whole unit rather than one line
var MultipleLines = LineRef{Multiple: true}

// MarshalJSON implements json.Marshaler
func (l LineRef) MarshalJSON() ([]byte, error) {
	if l.Multiple {
		return json.Marshal("multiple")
	}
	return json.Marshal(l.Number)
}

// UnmarshalJSON implements json.Unmarshaler
func (l *LineRef) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*l = LineRef{Number: n}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("line reference must be a number or \"multiple\": %w", err)
	}
	if s != "multiple" {
		return fmt.Errorf("unknown line reference %q", s)
	}
	*l = MultipleLines
	return nil
}

func (l LineRef) String() string {
	if l.Multiple {
		return "multiple"
	}
	return fmt.Sprintf("%d", l.Number)
}

// Fix is an illustrative before/after rewrite attached to a finding.
// After synthesis all three fields are non-empty.
type Fix struct {
	Before      string `json:"before" yaml:"before"`
	After       string `json:"after" yaml:"after"`
	Explanation string `json:"explanation" yaml:"explanation"`
}

// Complete reports whether every field of the fix is populated
func (f Fix) Complete() bool {
	return f.Before != "" && f.After != "" && f.Explanation != ""
}

// Finding is one suspected defect with its category, message, location
// and attached fix
type Finding struct {
	Type    BugType `json:"type"`
	Message string  `json:"message"`
	Line    LineRef `json:"line"`
	Fix     Fix     `json:"fix"`
}

// Example is a literal before/after pair illustrating a suggestion
type Example struct {
	Before string `json:"before" yaml:"before"`
	After  string `json:"after" yaml:"after"`
}

// Suggestion is one improvement recommendation, optionally illustrated
type Suggestion struct {
	Message string   `json:"message"`
	Example *Example `json:"example,omitempty"`
}

// CodeAnalysis contains whole-unit statistics
type CodeAnalysis struct {
	Language           string  `json:"language"`
	TotalLines         int     `json:"totalLines"`
	CommentLines       int     `json:"commentLines"`
	FunctionCount      int     `json:"functionCount"`
	Complexity         Level   `json:"complexity"`
	CodeToCommentRatio float64 `json:"codeToCommentRatio"`
}

// MetricSet holds the qualitative quality scores
type MetricSet struct {
	Maintainability Level `json:"maintainability"`
	Readability     Level `json:"readability"`
	Efficiency      Level `json:"efficiency"`
}

// BugTypeCounts is the per-category finding tally
type BugTypeCounts struct {
	Syntax   int `json:"syntax"`
	Runtime  int `json:"runtime"`
	Logical  int `json:"logical"`
	Security int `json:"security"`
}

// Debugging aggregates the findings of one analysis
type Debugging struct {
	Bugs     []Finding     `json:"bugs"`
	BugCount int           `json:"bugCount"`
	BugTypes BugTypeCounts `json:"bugTypes"`
}

// CountBugTypes tallies findings per category
func CountBugTypes(findings []Finding) BugTypeCounts {
	var c BugTypeCounts
	for _, f := range findings {
		switch f.Type {
		case BugSyntax:
			c.Syntax++
		case BugRuntime:
			c.Runtime++
		case BugLogical:
			c.Logical++
		case BugSecurity:
			c.Security++
		}
	}
	return c
}

// Report is the complete output of one analysis call
type Report struct {
	CodeAnalysis  CodeAnalysis `json:"codeAnalysis"`
	Suggestions   []Suggestion `json:"suggestions"`
	BestPractices []string     `json:"bestPractices"`
	Metrics       MetricSet    `json:"metrics"`
	Debugging     Debugging    `json:"debugging"`
}
