// Package suggest produces improvement suggestions with fixed illustrative
// before/after examples. It is a second rule pass, independent of the bug
// checkers: its output recommends better style, not suspected defects, and
// the examples are templates rather than rewrites of the caller's code.
package suggest

import (
	"regexp"
	"strings"

	"codecritic/src/model"
	"codecritic/src/scanner"
	"codecritic/src/util"
)

var (
	looseEqualityRe = regexp.MustCompile(`[^=!<>]==[^=]`)
	shortNameRe     = regexp.MustCompile(`\b(var|let|const)\s+[A-Za-z_]{1,2}\b`)
)

// Generator emits suggestions for one scanned unit
type Generator struct{}

// NewGenerator creates a suggestion generator
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate runs the language-agnostic checks followed by the
// language-specific idiom checks
func (g *Generator) Generate(src *scanner.Source, lang model.Language) []model.Suggestion {
	var suggestions []model.Suggestion
	suggestions = append(suggestions, g.generic(src)...)
	suggestions = append(suggestions, g.idioms(src, lang)...)
	return suggestions
}

func (g *Generator) generic(src *scanner.Source) []model.Suggestion {
	var suggestions []model.Suggestion
	text := src.Text()

	hasComment := false
	for _, line := range src.Lines() {
		if util.IsCommentLine(line) {
			hasComment = true
			break
		}
	}
	if !hasComment {
		suggestions = append(suggestions, model.Suggestion{
			Message: "Add comments to explain the intent of non-obvious code",
			Example: &model.Example{
				Before: "const limit = items.length - 1;",
				After:  "// skip the sentinel element at the end\nconst limit = items.length - 1;",
			},
		})
	}

	if !strings.Contains(text, "try") {
		suggestions = append(suggestions, model.Suggestion{
			Message: "Add error handling around operations that can fail",
			Example: &model.Example{
				Before: "const data = JSON.parse(input);",
				After:  "try {\n  const data = JSON.parse(input);\n} catch (err) {\n  handleError(err);\n}",
			},
		})
	}

	if g.mixedIndentation(src) {
		suggestions = append(suggestions, model.Suggestion{
			Message: "Use consistent indentation; mixing tabs and spaces hurts readability",
			Example: &model.Example{
				Before: "if (ready) {\n\tstart();\n  stop();\n}",
				After:  "if (ready) {\n  start();\n  stop();\n}",
			},
		})
	}

	if shortNameRe.MatchString(text) {
		suggestions = append(suggestions, model.Suggestion{
			Message: "Use descriptive variable names instead of one or two letter names",
			Example: &model.Example{
				Before: "const n = users.length;",
				After:  "const userCount = users.length;",
			},
		})
	}

	if util.NestedLoopPattern.MatchString(text) {
		suggestions = append(suggestions, model.Suggestion{
			Message: "Nested loops multiply iteration cost; consider a lookup table or a single pass",
			Example: &model.Example{
				Before: "for (const a of left) {\n  for (const b of right) {\n    if (a.id === b.id) match(a, b);\n  }\n}",
				After:  "const byID = new Map(right.map(b => [b.id, b]));\nfor (const a of left) {\n  if (byID.has(a.id)) match(a, byID.get(a.id));\n}",
			},
		})
	}

	if util.ContainsAny(text, "eval(", "exec(", "new Function(") {
		suggestions = append(suggestions, model.Suggestion{
			Message: "Avoid dynamic code evaluation; it executes arbitrary input",
			Example: &model.Example{
				Before: "eval(userExpression);",
				After:  "const handler = handlers[userExpression];\nif (handler) handler();",
			},
		})
	}

	return suggestions
}

func (g *Generator) mixedIndentation(src *scanner.Source) bool {
	hasSpace, hasTab := false, false
	for _, line := range src.Lines() {
		lead := util.LeadingWhitespace(line)
		if strings.HasPrefix(lead, " ") {
			hasSpace = true
		}
		if strings.HasPrefix(lead, "\t") {
			hasTab = true
		}
	}
	return hasSpace && hasTab
}

func (g *Generator) idioms(src *scanner.Source, lang model.Language) []model.Suggestion {
	switch lang {
	case model.LanguageJavaScript:
		return g.javascriptIdioms(src)
	case model.LanguagePython:
		return g.pythonIdioms(src)
	case model.LanguageJava:
		return g.javaIdioms(src)
	case model.LanguageCpp:
		return g.cppIdioms(src)
	default:
		return nil
	}
}

func (g *Generator) javascriptIdioms(src *scanner.Source) []model.Suggestion {
	var suggestions []model.Suggestion
	text := src.Text()

	if strings.Contains(text, "var ") {
		suggestions = append(suggestions, model.Suggestion{
			Message: "Use const or let instead of var for block scoping",
			Example: &model.Example{
				Before: "var count = 0;",
				After:  "let count = 0;",
			},
		})
	}

	if util.ContainsAny(text, "function(", "function (") {
		suggestions = append(suggestions, model.Suggestion{
			Message: "Use arrow functions for anonymous callbacks",
			Example: &model.Example{
				Before: "items.map(function(item) { return item.id; });",
				After:  "items.map(item => item.id);",
			},
		})
	}

	if looseEqualityRe.MatchString(text) {
		suggestions = append(suggestions, model.Suggestion{
			Message: "Use strict equality (===) to avoid implicit type coercion",
			Example: &model.Example{
				Before: "if (value == null) { }",
				After:  "if (value === null) { }",
			},
		})
	}

	return suggestions
}

func (g *Generator) pythonIdioms(src *scanner.Source) []model.Suggestion {
	var suggestions []model.Suggestion
	text := src.Text()

	if strings.Contains(text, "print(") {
		suggestions = append(suggestions, model.Suggestion{
			Message: "Use the logging module instead of print for diagnostics",
			Example: &model.Example{
				Before: "print(\"processing\", item)",
				After:  "logger.info(\"processing %s\", item)",
			},
		})
	}

	if strings.Contains(text, "global ") {
		suggestions = append(suggestions, model.Suggestion{
			Message: "Avoid the global statement; pass state explicitly",
			Example: &model.Example{
				Before: "def reset():\n    global counter\n    counter = 0",
				After:  "def reset(state):\n    state.counter = 0",
			},
		})
	}

	return suggestions
}

func (g *Generator) javaIdioms(src *scanner.Source) []model.Suggestion {
	if strings.Contains(src.Text(), "public class") {
		return nil
	}
	return []model.Suggestion{{
		Message: "Declare code inside a public class",
		Example: &model.Example{
			Before: "void run() { }",
			After:  "public class App {\n    void run() { }\n}",
		},
	}}
}

func (g *Generator) cppIdioms(src *scanner.Source) []model.Suggestion {
	if !strings.Contains(src.Text(), "using namespace std;") {
		return nil
	}
	return []model.Suggestion{{
		Message: "Prefer the std:: prefix over 'using namespace std;'",
		Example: &model.Example{
			Before: "using namespace std;\ncout << value;",
			After:  "std::cout << value;",
		},
	}}
}
