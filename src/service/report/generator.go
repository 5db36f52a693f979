package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"codecritic/src/config"
	"codecritic/src/model"
	"codecritic/src/util"
)

// Generator renders analysis reports in various formats
type Generator struct {
	cfg config.OutputConfig
}

// NewGenerator creates a new report generator
func NewGenerator(cfg config.OutputConfig) *Generator {
	return &Generator{cfg: cfg}
}

// Generate renders a report in the specified format
func (g *Generator) Generate(r *model.Report, format string) (string, error) {
	util.Debug("Generating report in %s format (%d findings)", format, r.Debugging.BugCount)
	switch format {
	case "json":
		return g.generateJSON(r)
	case "markdown", "md":
		return g.generateMarkdown(r)
	case "sarif":
		return g.generateSARIF(r)
	case "text":
		return g.generateText(r), nil
	default:
		util.Warn("Unsupported report format requested: %s", format)
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

func (g *Generator) generateJSON(r *model.Report) (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (g *Generator) generateMarkdown(r *model.Report) (string, error) {
	var sb strings.Builder

	sb.WriteString("# Code Review Report\n\n")

	sb.WriteString("## Code Analysis\n\n")
	sb.WriteString("| Statistic | Value |\n")
	sb.WriteString("|-----------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Language | %s |\n", r.CodeAnalysis.Language))
	sb.WriteString(fmt.Sprintf("| Total lines | %d |\n", r.CodeAnalysis.TotalLines))
	sb.WriteString(fmt.Sprintf("| Comment lines | %d |\n", r.CodeAnalysis.CommentLines))
	sb.WriteString(fmt.Sprintf("| Functions | %d |\n", r.CodeAnalysis.FunctionCount))
	sb.WriteString(fmt.Sprintf("| Complexity | %s |\n", r.CodeAnalysis.Complexity))
	sb.WriteString(fmt.Sprintf("| Code-to-comment ratio | %.1f%% |\n\n", r.CodeAnalysis.CodeToCommentRatio))

	if g.cfg.IncludeMetrics {
		sb.WriteString("## Metrics\n\n")
		sb.WriteString("| Metric | Score |\n")
		sb.WriteString("|--------|-------|\n")
		sb.WriteString(fmt.Sprintf("| Maintainability | %s |\n", r.Metrics.Maintainability))
		sb.WriteString(fmt.Sprintf("| Readability | %s |\n", r.Metrics.Readability))
		sb.WriteString(fmt.Sprintf("| Efficiency | %s |\n\n", r.Metrics.Efficiency))
	}

	sb.WriteString(fmt.Sprintf("## Bugs (%d)\n\n", r.Debugging.BugCount))
	for _, t := range []model.BugType{model.BugSyntax, model.BugRuntime, model.BugLogical, model.BugSecurity} {
		var bugs []model.Finding
		for _, b := range r.Debugging.Bugs {
			if b.Type == t {
				bugs = append(bugs, b)
			}
		}
		if len(bugs) == 0 {
			continue
		}

		sb.WriteString(fmt.Sprintf("### %s (%d)\n\n", strings.Title(string(t)), len(bugs)))
		for _, b := range bugs {
			sb.WriteString(fmt.Sprintf("#### %s (line %s)\n\n", b.Message, b.Line))
			sb.WriteString("```\n")
			sb.WriteString(b.Fix.Before)
			sb.WriteString("\n```\n\nbecomes\n\n```\n")
			sb.WriteString(b.Fix.After)
			sb.WriteString("\n```\n\n")
			sb.WriteString(b.Fix.Explanation)
			sb.WriteString("\n\n")
		}
	}

	if g.cfg.IncludeSuggestions && len(r.Suggestions) > 0 {
		sb.WriteString("## Suggestions\n\n")
		for _, s := range r.Suggestions {
			sb.WriteString(fmt.Sprintf("- %s\n", s.Message))
			if s.Example != nil {
				sb.WriteString(fmt.Sprintf("  - Before: `%s`\n", strings.ReplaceAll(s.Example.Before, "\n", " ")))
				sb.WriteString(fmt.Sprintf("  - After: `%s`\n", strings.ReplaceAll(s.Example.After, "\n", " ")))
			}
		}
		sb.WriteString("\n")
	}

	if g.cfg.IncludeBestPractices && len(r.BestPractices) > 0 {
		sb.WriteString("## Best Practices\n\n")
		for _, p := range r.BestPractices {
			sb.WriteString(fmt.Sprintf("- %s\n", p))
		}
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

func (g *Generator) generateText(r *model.Report) string {
	heading := color.New(color.Bold, color.Underline)
	if !g.cfg.Color {
		heading.DisableColor()
	}

	var sb strings.Builder

	sb.WriteString(heading.Sprintf("Code Analysis"))
	sb.WriteString(fmt.Sprintf("\n  language: %s  lines: %d  comments: %d  functions: %d\n",
		r.CodeAnalysis.Language, r.CodeAnalysis.TotalLines, r.CodeAnalysis.CommentLines, r.CodeAnalysis.FunctionCount))
	sb.WriteString(fmt.Sprintf("  complexity: %s  code-to-comment: %.1f%%\n\n",
		r.CodeAnalysis.Complexity, r.CodeAnalysis.CodeToCommentRatio))

	if g.cfg.IncludeMetrics {
		sb.WriteString(heading.Sprintf("Metrics"))
		sb.WriteString(fmt.Sprintf("\n  maintainability: %s  readability: %s  efficiency: %s\n\n",
			g.level(r.Metrics.Maintainability), g.level(r.Metrics.Readability), g.level(r.Metrics.Efficiency)))
	}

	sb.WriteString(heading.Sprintf("Bugs (%d)", r.Debugging.BugCount))
	sb.WriteString("\n")
	for _, b := range r.Debugging.Bugs {
		sb.WriteString(fmt.Sprintf("  %s line %s: %s\n", g.bugTag(b.Type), b.Line, b.Message))
		sb.WriteString(fmt.Sprintf("    fix: %s\n", b.Fix.Explanation))
	}
	sb.WriteString("\n")

	if g.cfg.IncludeSuggestions && len(r.Suggestions) > 0 {
		sb.WriteString(heading.Sprintf("Suggestions"))
		sb.WriteString("\n")
		for _, s := range r.Suggestions {
			sb.WriteString(fmt.Sprintf("  - %s\n", s.Message))
		}
		sb.WriteString("\n")
	}

	if g.cfg.IncludeBestPractices && len(r.BestPractices) > 0 {
		sb.WriteString(heading.Sprintf("Best Practices"))
		sb.WriteString("\n")
		for _, p := range r.BestPractices {
			sb.WriteString(fmt.Sprintf("  - %s\n", p))
		}
	}

	return sb.String()
}

func (g *Generator) level(l model.Level) string {
	if !g.cfg.Color {
		return string(l)
	}
	switch l {
	case model.LevelHigh:
		return color.GreenString(string(l))
	case model.LevelMedium:
		return color.YellowString(string(l))
	default:
		return color.RedString(string(l))
	}
}

func (g *Generator) bugTag(t model.BugType) string {
	tag := "[" + strings.ToUpper(string(t)) + "]"
	if !g.cfg.Color {
		return tag
	}
	switch t {
	case model.BugSecurity, model.BugRuntime:
		return color.RedString(tag)
	case model.BugSyntax:
		return color.YellowString(tag)
	default:
		return color.CyanString(tag)
	}
}

func (g *Generator) generateSARIF(r *model.Report) (string, error) {
	sarif := map[string]any{
		"$schema": "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json",
		"version": "2.1.0",
		"runs": []map[string]any{
			{
				"tool": map[string]any{
					"driver": map[string]any{
						"name":    "codecritic",
						"version": "1.0.0",
						"rules":   g.buildSARIFRules(r.Debugging.Bugs),
					},
				},
				"results": g.buildSARIFResults(r.Debugging.Bugs),
			},
		},
	}

	data, err := json.MarshalIndent(sarif, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (g *Generator) buildSARIFRules(bugs []model.Finding) []map[string]any {
	ruleMap := make(map[string]bool)
	var rules []map[string]any

	for _, b := range bugs {
		ruleID := string(b.Type) + "/" + b.Message
		if ruleMap[ruleID] {
			continue
		}
		ruleMap[ruleID] = true

		rules = append(rules, map[string]any{
			"id":   ruleID,
			"name": b.Message,
			"shortDescription": map[string]any{
				"text": b.Message,
			},
			"defaultConfiguration": map[string]any{
				"level": sarifLevel(b.Type),
			},
		})
	}

	return rules
}

func (g *Generator) buildSARIFResults(bugs []model.Finding) []map[string]any {
	var results []map[string]any

	for _, b := range bugs {
		startLine := 1
		if !b.Line.Multiple {
			startLine = b.Line.Number
		}

		results = append(results, map[string]any{
			"ruleId":  string(b.Type) + "/" + b.Message,
			"level":   sarifLevel(b.Type),
			"message": map[string]any{"text": b.Message},
			"locations": []map[string]any{
				{
					"physicalLocation": map[string]any{
						"region": map[string]any{
							"startLine": startLine,
						},
					},
				},
			},
			"fixes": []map[string]any{
				{
					"description": map[string]any{"text": b.Fix.Explanation},
				},
			},
		})
	}

	return results
}

func sarifLevel(t model.BugType) string {
	switch t {
	case model.BugSecurity, model.BugRuntime:
		return "error"
	case model.BugSyntax:
		return "warning"
	default:
		return "note"
	}
}
