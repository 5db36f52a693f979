// Package metrics computes the quality scores and whole-unit statistics of
// one analysis. Every score is a pure function of the source text; the
// calculator holds only configured thresholds.
package metrics

import (
	"math"
	"regexp"
	"strings"
	"unicode"

	"codecritic/src/config"
	"codecritic/src/model"
	"codecritic/src/scanner"
	"codecritic/src/util"
)

var (
	jsFunctionRe      = regexp.MustCompile(`\bfunction\b|=>`)
	pyFunctionRe      = regexp.MustCompile(`(?m)^\s*def\s`)
	genericFunctionRe = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_:<>~]*\s+[A-Za-z_][A-Za-z0-9_]*\s*\([^;)]*\)\s*\{`)
)

// Calculator computes metric scores from whole-source statistics
type Calculator struct {
	cfg config.MetricsConfig
}

// NewCalculator creates a calculator with the given thresholds
func NewCalculator(cfg config.MetricsConfig) *Calculator {
	return &Calculator{cfg: cfg}
}

// Complexity scores control keywords, opening braces and parenthesized
// groups. The score is monotonic in each of those counts.
func (c *Calculator) Complexity(src *scanner.Source) model.Level {
	score := len(util.ControlKeywordPattern.FindAllString(src.Text(), -1))
	score += strings.Count(src.Text(), "{")
	score += len(util.ParenGroupPattern.FindAllString(src.Text(), -1))

	switch {
	case score > c.cfg.Complexity.HighThreshold:
		return model.LevelHigh
	case score > c.cfg.Complexity.MediumThreshold:
		return model.LevelMedium
	default:
		return model.LevelLow
	}
}

// Maintainability scores average line length and the share of over-long lines
func (c *Calculator) Maintainability(src *scanner.Source) model.Level {
	lines := src.Lines()

	var totalLen, longLines int
	for _, line := range lines {
		totalLen += len(line)
		if len(line) > c.cfg.Maintainability.LongLineLength {
			longLines++
		}
	}
	avgLen := float64(totalLen) / float64(len(lines))
	longRatio := float64(longLines) / float64(len(lines))

	m := c.cfg.Maintainability
	switch {
	case avgLen > m.LowAvgLineLength || longRatio > m.LowLongLineRatio:
		return model.LevelLow
	case avgLen > m.MediumAvgLineLength || longRatio > m.MediumLongLineRatio:
		return model.LevelMedium
	default:
		return model.LevelHigh
	}
}

// Readability scores the share of descriptive identifiers (lowercase-leading
// tokens longer than the configured minimum). Inconsistent indentation caps
// the score at Medium.
func (c *Calculator) Readability(src *scanner.Source) model.Level {
	tokens := util.IdentifierPattern.FindAllString(src.Text(), -1)

	level := model.LevelHigh
	if len(tokens) > 0 {
		descriptive := 0
		for _, tok := range tokens {
			if len(tok) > c.cfg.Readability.MinDescriptiveLength && unicode.IsLower(rune(tok[0])) {
				descriptive++
			}
		}
		ratio := float64(descriptive) / float64(len(tokens))
		switch {
		case ratio < c.cfg.Readability.LowDescriptiveRatio:
			level = model.LevelLow
		case ratio < c.cfg.Readability.MediumDescriptiveRatio:
			level = model.LevelMedium
		}
	}

	if level == model.LevelHigh && !c.consistentIndentation(src) {
		level = model.LevelMedium
	}
	return level
}

// consistentIndentation reports whether every indented non-blank line starts
// with two spaces or a tab
func (c *Calculator) consistentIndentation(src *scanner.Source) bool {
	for _, line := range src.Lines() {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lead := util.LeadingWhitespace(line)
		if lead == "" {
			continue
		}
		if !strings.HasPrefix(lead, "  ") && !strings.HasPrefix(lead, "\t") {
			return false
		}
	}
	return true
}

// Efficiency scores loop usage: any textual adjacency of two loop keywords
// (a crude nested-loop signal) is Low, a loop-keyword count above the
// configured share of the line count is Medium, otherwise High
func (c *Calculator) Efficiency(src *scanner.Source) model.Level {
	if util.NestedLoopPattern.MatchString(src.Text()) {
		return model.LevelLow
	}
	loops := len(util.LoopKeywordPattern.FindAllString(src.Text(), -1))
	if float64(loops) > c.cfg.Efficiency.LoopDensityThreshold*float64(src.TotalLines()) {
		return model.LevelMedium
	}
	return model.LevelHigh
}

// Scores computes the three qualitative quality scores
func (c *Calculator) Scores(src *scanner.Source) model.MetricSet {
	return model.MetricSet{
		Maintainability: c.Maintainability(src),
		Readability:     c.Readability(src),
		Efficiency:      c.Efficiency(src),
	}
}

// CodeAnalysis computes whole-unit statistics. The code-to-comment ratio is
// comment lines over total lines as a percentage, reported as 0 for empty
// input rather than a non-finite value.
func (c *Calculator) CodeAnalysis(src *scanner.Source, language string, lang model.Language) model.CodeAnalysis {
	commentLines := 0
	for _, line := range src.Lines() {
		if util.IsCommentLine(line) && strings.TrimSpace(line) != "" {
			commentLines++
		}
	}

	ratio := 0.0
	if len(src.Text()) > 0 {
		ratio = float64(commentLines) / float64(src.TotalLines()) * 100
		if math.IsNaN(ratio) || math.IsInf(ratio, 0) {
			ratio = 0
		}
	}

	return model.CodeAnalysis{
		Language:           language,
		TotalLines:         src.TotalLines(),
		CommentLines:       commentLines,
		FunctionCount:      c.functionCount(src, lang),
		Complexity:         c.Complexity(src),
		CodeToCommentRatio: ratio,
	}
}

func (c *Calculator) functionCount(src *scanner.Source, lang model.Language) int {
	switch lang {
	case model.LanguageJavaScript:
		return len(jsFunctionRe.FindAllString(src.Text(), -1))
	case model.LanguagePython:
		return len(pyFunctionRe.FindAllString(src.Text(), -1))
	default:
		return len(genericFunctionRe.FindAllString(src.Text(), -1))
	}
}
