package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codecritic/src/model"
)

func TestDefaultCatalogLoads(t *testing.T) {
	c := Default()

	require.NotNil(t, c)
	assert.NotEmpty(t, c.Fixes)
	assert.NotEmpty(t, c.AgnosticFixes)
	assert.NotEmpty(t, c.BestPractices)
}

func TestFindFixExactEntry(t *testing.T) {
	c := Default()

	f, ok := c.FindFix(model.BugSyntax, model.LanguageJavaScript, "Missing semicolon at end of statement")

	require.True(t, ok)
	assert.True(t, f.Complete())
	assert.Contains(t, f.After, ";")
}

func TestFindFixFallsBackToAgnosticTable(t *testing.T) {
	c := Default()

	// No per-language logical entries exist; the agnostic table must serve
	// every language.
	for _, lang := range []model.Language{model.LanguageJavaScript, model.LanguagePython, model.LanguageOther} {
		f, ok := c.FindFix(model.BugLogical, lang, "Potential infinite loop")
		require.True(t, ok, "language %s", lang)
		assert.True(t, f.Complete())
	}
}

func TestFindFixMiss(t *testing.T) {
	c := Default()

	_, ok := c.FindFix(model.BugRuntime, model.LanguageJavaScript, "No such message")
	assert.False(t, ok)
}

func TestBestPracticesPerLanguage(t *testing.T) {
	c := Default()

	js := c.BestPracticesFor(model.LanguageJavaScript)
	py := c.BestPracticesFor(model.LanguagePython)

	assert.NotEmpty(t, js)
	assert.NotEmpty(t, py)
	assert.NotEqual(t, js, py)
}

func TestBestPracticesUnknownLanguageFallsBackToJavaScript(t *testing.T) {
	c := Default()

	assert.Equal(t, c.BestPracticesFor(model.LanguageJavaScript), c.BestPracticesFor(model.LanguageOther))
}

func TestParseRejectsMalformedData(t *testing.T) {
	_, err := Parse([]byte("fixes: [not, a, map"))
	assert.Error(t, err)
}

func TestEveryCatalogFixIsComplete(t *testing.T) {
	c := Default()

	for bugType, byLang := range c.Fixes {
		for lang, byMsg := range byLang {
			for msg, f := range byMsg {
				assert.True(t, f.Complete(), "%s/%s/%s", bugType, lang, msg)
			}
		}
	}
	for bugType, byMsg := range c.AgnosticFixes {
		for msg, f := range byMsg {
			assert.True(t, f.Complete(), "%s/%s", bugType, msg)
		}
	}
}
