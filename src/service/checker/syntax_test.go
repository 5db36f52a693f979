package checker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codecritic/src/model"
	"codecritic/src/scanner"
)

func messages(findings []RawFinding) []string {
	var msgs []string
	for _, f := range findings {
		msgs = append(msgs, f.Message)
	}
	return msgs
}

func findByMessage(findings []RawFinding, msg string) []RawFinding {
	var out []RawFinding
	for _, f := range findings {
		if f.Message == msg {
			out = append(out, f)
		}
	}
	return out
}

func TestMissingSemicolonPerLine(t *testing.T) {
	c := NewSyntaxChecker(true)
	src := scanner.Scan("const a = 1\nfoo();\nbar()")

	findings := c.Check(src, model.LanguageJavaScript)

	semis := findByMessage(findings, msgMissingSemicolon)
	require.Len(t, semis, 1)
	assert.Equal(t, model.LineAt(3), semis[0].Line)
}

func TestSemicolonExemptions(t *testing.T) {
	c := NewSyntaxChecker(true)
	cases := []string{
		"if (ready) doWork()",  // control keyword
		"// plain comment",     // comment marker
		"const total = a + b",  // javascript declaration
		"function run() {",     // ends with brace
		"};",                   // ends with semicolon
	}

	for _, line := range cases {
		src := scanner.Scan(line)
		findings := c.Check(src, model.LanguageJavaScript)
		assert.NotContains(t, messages(findings), msgMissingSemicolon, "line %q", line)
	}
}

func TestUnmatchedBracesIsSingleFinding(t *testing.T) {
	c := NewSyntaxChecker(true)

	// One finding no matter how large the imbalance
	for _, code := range []string{"{", "{\n{\n{\n{", "}\n}"} {
		src := scanner.Scan(code)
		findings := c.Check(src, model.LanguageJavaScript)

		braces := findByMessage(findings, msgUnmatchedBraces)
		require.Len(t, braces, 1, "code %q", code)
		assert.Equal(t, model.MultipleLines, braces[0].Line)
	}
}

func TestBalancedBracesNotFlagged(t *testing.T) {
	c := NewSyntaxChecker(true)
	src := scanner.Scan("function f() {\n  g();\n}")

	findings := c.Check(src, model.LanguageJavaScript)

	assert.Empty(t, findByMessage(findings, msgUnmatchedBraces))
}

func TestUnterminatedCall(t *testing.T) {
	c := NewSyntaxChecker(true)
	src := scanner.Scan("first();\nconsole.log('done'")

	findings := c.Check(src, model.LanguageJavaScript)

	calls := findByMessage(findings, msgUnterminatedCall)
	require.Len(t, calls, 1)
	assert.Equal(t, model.LineAt(2), calls[0].Line)
}

func TestUnterminatedString(t *testing.T) {
	c := NewSyntaxChecker(true)
	src := scanner.Scan("const name = 'Alice")

	findings := c.Check(src, model.LanguageJavaScript)

	strs := findByMessage(findings, msgUnterminatedString)
	require.Len(t, strs, 1)
	assert.Equal(t, model.LineAt(1), strs[0].Line)
}

func TestPythonIndentationNotMultipleOfFour(t *testing.T) {
	c := NewSyntaxChecker(true)
	src := scanner.Scan("def run():\n   do()")

	findings := c.Check(src, model.LanguagePython)

	indents := findByMessage(findings, msgBadIndentation)
	require.Len(t, indents, 1)
	assert.Equal(t, model.LineAt(2), indents[0].Line)
}

func TestPythonUnindentedBlockBody(t *testing.T) {
	c := NewSyntaxChecker(true)
	src := scanner.Scan("def test():\nprint(\"test\")")

	findings := c.Check(src, model.LanguagePython)

	indents := findByMessage(findings, msgBadIndentation)
	require.Len(t, indents, 1)
	assert.Equal(t, model.LineAt(2), indents[0].Line)
}

func TestPythonMissingColon(t *testing.T) {
	c := NewSyntaxChecker(true)
	src := scanner.Scan("if count > 0\n    process()")

	findings := c.Check(src, model.LanguagePython)

	assert.Contains(t, messages(findings), msgMissingColon)
}

func TestPythonWellFormedNotFlagged(t *testing.T) {
	c := NewSyntaxChecker(true)
	src := scanner.Scan("def run():\n    if ready:\n        do()")

	findings := c.Check(src, model.LanguagePython)

	assert.Empty(t, findings)
}

func TestJavaMissingDeclarations(t *testing.T) {
	c := NewSyntaxChecker(true)
	src := scanner.Scan("int x = 5;")

	findings := c.Check(src, model.LanguageJava)

	classes := findByMessage(findings, msgMissingPublicClass)
	require.Len(t, classes, 1)
	assert.Equal(t, model.LineAt(1), classes[0].Line)

	mains := findByMessage(findings, msgMissingMain)
	require.Len(t, mains, 1)
	assert.Equal(t, model.MultipleLines, mains[0].Line)
}

func TestJavaCompleteProgramNotFlagged(t *testing.T) {
	c := NewSyntaxChecker(true)
	code := strings.Join([]string{
		"public class App {",
		"    public static void main(String[] args) {",
		"        run();",
		"    }",
		"}",
	}, "\n")

	findings := c.Check(scanner.Scan(code), model.LanguageJava)

	assert.Empty(t, findByMessage(findings, msgMissingPublicClass))
	assert.Empty(t, findByMessage(findings, msgMissingMain))
}

func TestCppIncludesOnlyCheckedWhenCoutUsed(t *testing.T) {
	c := NewSyntaxChecker(true)

	without := c.Check(scanner.Scan("int x = 5;"), model.LanguageCpp)
	assert.Empty(t, findByMessage(without, msgMissingIostream))
	assert.Empty(t, findByMessage(without, msgMissingNamespace))

	with := c.Check(scanner.Scan("cout << x;"), model.LanguageCpp)
	assert.Len(t, findByMessage(with, msgMissingIostream), 1)
	assert.Len(t, findByMessage(with, msgMissingNamespace), 1)
}

func TestSyntaxSkipsUnknownLanguage(t *testing.T) {
	c := NewSyntaxChecker(true)
	src := scanner.Scan("some text without terminator")

	assert.Empty(t, c.Check(src, model.LanguageOther))
}
