// Package scanner splits source text into an ordered, 1-indexed line
// sequence. Every checker locates findings through it so line numbering
// stays uniform across the engine.
package scanner

import "strings"

// Source is one scanned unit of source text
type Source struct {
	text  string
	lines []string
}

// Scan splits code into lines. Line numbers are 1-based and equal the
// position in the split sequence.
func Scan(code string) *Source {
	return &Source{
		text:  code,
		lines: strings.Split(code, "\n"),
	}
}

// Text returns the original source text
func (s *Source) Text() string {
	return s.text
}

// Lines returns the line sequence in order
func (s *Source) Lines() []string {
	return s.lines
}

// TotalLines returns the number of lines
func (s *Source) TotalLines() int {
	return len(s.lines)
}

// Line returns the 1-based line n, or the empty string when out of range
func (s *Source) Line(n int) string {
	if n < 1 || n > len(s.lines) {
		return ""
	}
	return s.lines[n-1]
}

// FirstLineContaining returns the 1-based index of the first line that
// contains needle. The second return value is false when no line matches.
func (s *Source) FirstLineContaining(needle string) (int, bool) {
	for i, line := range s.lines {
		if strings.Contains(line, needle) {
			return i + 1, true
		}
	}
	return 0, false
}
