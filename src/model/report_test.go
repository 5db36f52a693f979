package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineRefMarshal(t *testing.T) {
	data, err := json.Marshal(LineAt(7))
	require.NoError(t, err)
	assert.Equal(t, "7", string(data))

	data, err = json.Marshal(MultipleLines)
	require.NoError(t, err)
	assert.Equal(t, `"multiple"`, string(data))
}

func TestLineRefUnmarshal(t *testing.T) {
	var l LineRef
	require.NoError(t, json.Unmarshal([]byte("3"), &l))
	assert.Equal(t, LineAt(3), l)

	require.NoError(t, json.Unmarshal([]byte(`"multiple"`), &l))
	assert.Equal(t, MultipleLines, l)

	assert.Error(t, json.Unmarshal([]byte(`"somewhere"`), &l))
}

func TestParseLanguage(t *testing.T) {
	assert.Equal(t, LanguageJavaScript, ParseLanguage("javascript"))
	assert.Equal(t, LanguagePython, ParseLanguage("python"))
	assert.Equal(t, LanguageJava, ParseLanguage("java"))
	assert.Equal(t, LanguageCpp, ParseLanguage("cpp"))

	// Matching is case-sensitive; anything else loses language-specific rules
	assert.Equal(t, LanguageOther, ParseLanguage("JavaScript"))
	assert.Equal(t, LanguageOther, ParseLanguage("rust"))
	assert.Equal(t, LanguageOther, ParseLanguage(""))
}

func TestCountBugTypes(t *testing.T) {
	findings := []Finding{
		{Type: BugSyntax},
		{Type: BugSyntax},
		{Type: BugLogical},
		{Type: BugSecurity},
	}

	counts := CountBugTypes(findings)

	assert.Equal(t, BugTypeCounts{Syntax: 2, Runtime: 0, Logical: 1, Security: 1}, counts)
}

func TestFixComplete(t *testing.T) {
	assert.True(t, Fix{Before: "a", After: "b", Explanation: "c"}.Complete())
	assert.False(t, Fix{Before: "a", After: "b"}.Complete())
	assert.False(t, Fix{}.Complete())
}

func TestReportJSONShape(t *testing.T) {
	r := Report{
		CodeAnalysis: CodeAnalysis{Language: "javascript", TotalLines: 3},
		Debugging: Debugging{
			Bugs: []Finding{{
				Type:    BugLogical,
				Message: "Potential infinite loop",
				Line:    MultipleLines,
				Fix:     Fix{Before: "a", After: "b", Explanation: "c"},
			}},
			BugCount: 1,
			BugTypes: BugTypeCounts{Logical: 1},
		},
	}

	data, err := json.Marshal(r)
	require.NoError(t, err)

	assert.Contains(t, string(data), `"codeAnalysis"`)
	assert.Contains(t, string(data), `"bugTypes"`)
	assert.Contains(t, string(data), `"line":"multiple"`)
}
