package model

// Language identifies the declared source language of an analysis unit
type Language string

const (
	LanguageJavaScript Language = "javascript"
	LanguagePython     Language = "python"
	LanguageJava       Language = "java"
	LanguageCpp        Language = "cpp"
	LanguageOther      Language = "other"
)

// ParseLanguage maps a declared language string onto the closed Language set.
// Matching is case-sensitive; anything unrecognized maps to LanguageOther,
// which disables language-specific rules but keeps the agnostic checks.
func ParseLanguage(s string) Language {
	switch Language(s) {
	case LanguageJavaScript, LanguagePython, LanguageJava, LanguageCpp:
		return Language(s)
	default:
		return LanguageOther
	}
}

// Known reports whether the language has language-specific rule tables
func (l Language) Known() bool {
	return l != LanguageOther
}
