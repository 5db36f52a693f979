package suggest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"codecritic/src/model"
	"codecritic/src/scanner"
)

func hasSuggestion(suggestions []model.Suggestion, fragment string) bool {
	for _, s := range suggestions {
		if strings.Contains(s.Message, fragment) {
			return true
		}
	}
	return false
}

func TestCommentSuggestion(t *testing.T) {
	g := NewGenerator()

	bare := g.Generate(scanner.Scan("run();"), model.LanguageJavaScript)
	assert.True(t, hasSuggestion(bare, "comments"))

	commented := g.Generate(scanner.Scan("// start\nrun();"), model.LanguageJavaScript)
	assert.False(t, hasSuggestion(commented, "comments"))
}

func TestErrorHandlingSuggestion(t *testing.T) {
	g := NewGenerator()

	bare := g.Generate(scanner.Scan("parse(input);"), model.LanguageJavaScript)
	assert.True(t, hasSuggestion(bare, "error handling"))

	guarded := g.Generate(scanner.Scan("try { parse(input); } catch (e) {}"), model.LanguageJavaScript)
	assert.False(t, hasSuggestion(guarded, "error handling"))
}

func TestMixedIndentationSuggestion(t *testing.T) {
	g := NewGenerator()

	mixed := g.Generate(scanner.Scan("\tfirst();\n  second();"), model.LanguageJavaScript)
	assert.True(t, hasSuggestion(mixed, "indentation"))
}

func TestShortNameSuggestion(t *testing.T) {
	g := NewGenerator()

	short := g.Generate(scanner.Scan("const n = users.length;"), model.LanguageJavaScript)
	assert.True(t, hasSuggestion(short, "descriptive"))

	long := g.Generate(scanner.Scan("const userCount = users.length;"), model.LanguageJavaScript)
	assert.False(t, hasSuggestion(long, "descriptive"))
}

func TestNestedLoopSuggestion(t *testing.T) {
	g := NewGenerator()

	nested := g.Generate(scanner.Scan("for (a of b) {\n  for (c of d) {}\n}"), model.LanguageJavaScript)
	assert.True(t, hasSuggestion(nested, "Nested loops"))
}

func TestDynamicEvaluationSuggestionIsLanguageAgnostic(t *testing.T) {
	g := NewGenerator()

	suggestions := g.Generate(scanner.Scan("eval(expression)"), model.LanguageOther)
	assert.True(t, hasSuggestion(suggestions, "dynamic code evaluation"))
}

func TestJavaScriptIdioms(t *testing.T) {
	g := NewGenerator()

	code := "var count = 0;\nitems.map(function(item) { return item; });\nif (count == max) {}"
	suggestions := g.Generate(scanner.Scan(code), model.LanguageJavaScript)

	assert.True(t, hasSuggestion(suggestions, "const or let"))
	assert.True(t, hasSuggestion(suggestions, "arrow functions"))
	assert.True(t, hasSuggestion(suggestions, "strict equality"))
}

func TestStrictEqualityNotFlaggedForTripleEquals(t *testing.T) {
	g := NewGenerator()

	suggestions := g.Generate(scanner.Scan("if (value === null) {}"), model.LanguageJavaScript)
	assert.False(t, hasSuggestion(suggestions, "strict equality"))
}

func TestPythonIdioms(t *testing.T) {
	g := NewGenerator()

	code := "print(\"status\")\nglobal counter"
	suggestions := g.Generate(scanner.Scan(code), model.LanguagePython)

	assert.True(t, hasSuggestion(suggestions, "logging"))
	assert.True(t, hasSuggestion(suggestions, "global"))
}

func TestJavaIdiom(t *testing.T) {
	g := NewGenerator()

	bare := g.Generate(scanner.Scan("void run() { }"), model.LanguageJava)
	assert.True(t, hasSuggestion(bare, "public class"))

	declared := g.Generate(scanner.Scan("public class App { }"), model.LanguageJava)
	assert.False(t, hasSuggestion(declared, "public class"))
}

func TestCppIdiom(t *testing.T) {
	g := NewGenerator()

	using := g.Generate(scanner.Scan("using namespace std;\ncout << 1;"), model.LanguageCpp)
	assert.True(t, hasSuggestion(using, "std::"))
}

func TestExamplesAreTemplates(t *testing.T) {
	g := NewGenerator()

	suggestions := g.Generate(scanner.Scan("var mySpecialCounter = 0;"), model.LanguageJavaScript)

	for _, s := range suggestions {
		if s.Example == nil {
			continue
		}
		assert.NotEmpty(t, s.Example.Before)
		assert.NotEmpty(t, s.Example.After)
		// Illustrations come from fixed templates, never the caller's code
		assert.NotContains(t, s.Example.Before, "mySpecialCounter")
	}
}
