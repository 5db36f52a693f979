package controller

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codecritic/src/catalog"
	"codecritic/src/config"
	"codecritic/src/model"
)

func newTestController() *AnalysisController {
	return NewAnalysisController(config.DefaultConfig())
}

func TestAnalyzeInfiniteLoopExample(t *testing.T) {
	c := newTestController()

	report := c.Analyze(AnalyzeRequest{
		Code:     "while(true) {\n console.log(1)\n}",
		Language: "javascript",
	})

	assert.GreaterOrEqual(t, report.Debugging.BugTypes.Logical, 1)
	assert.Equal(t, 3, report.CodeAnalysis.TotalLines)
	assert.Equal(t, model.LevelLow, report.CodeAnalysis.Complexity)
}

func TestAnalyzePythonIndentationExample(t *testing.T) {
	c := newTestController()

	report := c.Analyze(AnalyzeRequest{
		Code:     "def test():\nprint(\"test\")",
		Language: "python",
	})

	var found bool
	for _, b := range report.Debugging.Bugs {
		if b.Type == model.BugSyntax && b.Message == "Incorrect indentation" {
			found = true
			assert.Contains(t, b.Fix.After, "    ")
		}
	}
	assert.True(t, found, "expected an indentation finding")
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	c := newTestController()
	req := AnalyzeRequest{
		Code:     "var n = 1\nwhile(true) {\n  el.innerHTML = n\n}",
		Language: "javascript",
	}

	first := c.Analyze(req)
	second := c.Analyze(req)

	require.Equal(t, first, second)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, firstJSON, secondJSON)
}

func TestEveryFindingCarriesACompleteFix(t *testing.T) {
	c := newTestController()

	report := c.Analyze(AnalyzeRequest{
		Code:     "doWork()\nobj.query(\"SELECT 1\")\nwhile(true) {}",
		Language: "javascript",
	})

	require.NotEmpty(t, report.Debugging.Bugs)
	for _, b := range report.Debugging.Bugs {
		assert.NotEmpty(t, b.Fix.Before, "%s/%s", b.Type, b.Message)
		assert.NotEmpty(t, b.Fix.After, "%s/%s", b.Type, b.Message)
		assert.NotEmpty(t, b.Fix.Explanation, "%s/%s", b.Type, b.Message)
	}
}

func TestUnrecognizedLanguageGetsAgnosticChecksAndJSPractices(t *testing.T) {
	c := newTestController()

	report := c.Analyze(AnalyzeRequest{
		Code:     "missing semicolon here\nwhile(true) {}",
		Language: "cobol",
	})

	// No language-specific rules apply
	assert.Zero(t, report.Debugging.BugTypes.Syntax)
	assert.Zero(t, report.Debugging.BugTypes.Runtime)
	// Agnostic checks still run
	assert.GreaterOrEqual(t, report.Debugging.BugTypes.Logical, 1)
	// Best practices fall back to the javascript list
	assert.Equal(t, catalog.Default().BestPracticesFor(model.LanguageJavaScript), report.BestPractices)
	// The declared language is echoed back
	assert.Equal(t, "cobol", report.CodeAnalysis.Language)
}

func TestBugCountMatchesTypeTally(t *testing.T) {
	c := newTestController()

	report := c.Analyze(AnalyzeRequest{
		Code:     "doWork()\nwhile(true) {\n  el.innerHTML = row\n}",
		Language: "javascript",
	})

	tally := report.Debugging.BugTypes
	assert.Equal(t, report.Debugging.BugCount,
		tally.Syntax+tally.Runtime+tally.Logical+tally.Security)
	assert.Equal(t, report.Debugging.BugCount, len(report.Debugging.Bugs))
}

func TestAnalyzeBatchPreservesOrder(t *testing.T) {
	c := newTestController()

	reqs := []AnalyzeRequest{
		{Code: "run();", Language: "javascript"},
		{Code: "def go():\n    pass", Language: "python"},
		{Code: "cout << 1;", Language: "cpp"},
	}

	reports, err := c.AnalyzeBatch(context.Background(), reqs)

	require.NoError(t, err)
	require.Len(t, reports, 3)
	assert.Equal(t, "javascript", reports[0].CodeAnalysis.Language)
	assert.Equal(t, "python", reports[1].CodeAnalysis.Language)
	assert.Equal(t, "cpp", reports[2].CodeAnalysis.Language)
}

func TestAnalyzeBatchMatchesSequentialAnalyze(t *testing.T) {
	c := newTestController()

	reqs := []AnalyzeRequest{
		{Code: "while(true) {}", Language: "javascript"},
		{Code: "total = a / b", Language: "python"},
	}

	reports, err := c.AnalyzeBatch(context.Background(), reqs)

	require.NoError(t, err)
	for i, req := range reqs {
		assert.Equal(t, c.Analyze(req), reports[i])
	}
}

func TestAnalyzeBatchCanceled(t *testing.T) {
	c := newTestController()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.AnalyzeBatch(ctx, []AnalyzeRequest{{Code: "x", Language: "javascript"}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEmptyInputProducesZeroRatio(t *testing.T) {
	c := newTestController()

	report := c.Analyze(AnalyzeRequest{Code: "", Language: "javascript"})

	assert.Zero(t, report.CodeAnalysis.CodeToCommentRatio)
	assert.Equal(t, 1, report.CodeAnalysis.TotalLines)
}
