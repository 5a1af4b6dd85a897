package readme

import (
	"strings"
	"unicode"
)

// standardVocabulary is the ordered list of section names treated as
// generator-owned. Matching is symmetric substring containment over
// normalized titles, so "Installation Guide" and "Install" both resolve to
// the installation entry. The heuristic is deliberately imprecise: false
// positives and negatives are possible, but classification is deterministic.
var standardVocabulary = []string{
	"table of contents",
	"contents",
	"about",
	"overview",
	"introduction",
	"getting started",
	"quick start",
	"prerequisites",
	"requirements",
	"installation",
	"usage",
	"features",
	"configuration",
	"api",
	"documentation",
	"examples",
	"testing",
	"tests",
	"deployment",
	"built with",
	"tech stack",
	"roadmap",
	"changelog",
	"contributing",
	"license",
	"authors",
	"acknowledgments",
	"support",
	"faq",
	"troubleshooting",
	"security",
}

// NormalizeTitle lowercases a title, strips non-alphanumeric runes, and
// collapses whitespace. Titles are matched across documents in this form.
func NormalizeTitle(title string) string {
	var b strings.Builder
	prevSpace := true
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			prevSpace = false
			continue
		}
		if !prevSpace {
			b.WriteByte(' ')
			prevSpace = true
		}
	}
	return strings.TrimSpace(b.String())
}

// IsStandardTitle reports whether a normalized title matches the standard
// vocabulary in either containment direction.
func IsStandardTitle(normalized string) bool {
	if normalized == "" {
		return false
	}
	for _, entry := range standardVocabulary {
		if strings.Contains(normalized, entry) || strings.Contains(entry, normalized) {
			return true
		}
	}
	return false
}

// isCustomSection reports whether a section is user-authored content to
// preserve across regenerations. Only level 1-2 sections qualify; deeper
// subsections belong to whichever top-level section precedes them.
func isCustomSection(sec Section) bool {
	if sec.Level > 2 {
		return false
	}
	return !IsStandardTitle(NormalizeTitle(sec.Title))
}
