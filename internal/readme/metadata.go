package readme

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/mod/semver"
)

var (
	imageLinkRe = regexp.MustCompile(`!\[([^\]]*)\]\(([^)\s]+)(?:\s+"[^"]*")?\)`)
	mdLinkRe    = regexp.MustCompile(`\[([^\]]+)\]\(([^)\s]+)(?:\s+"[^"]*")?\)`)
	schemeRe    = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*://`)

	// "version" keyword followed by a dotted triple, tolerating a short run
	// of punctuation in between ("Version: 1.2.0", "version badge 1.2.0").
	versionKeywordRe = regexp.MustCompile(`(?i)version[^0-9\n]{0,12}(\d+\.\d+\.\d+)`)
	bareVersionRe    = regexp.MustCompile(`\bv(\d+\.\d+\.\d+)\b`)
)

// extractMetadata pulls badges, the first version-like token, absolute and
// anchor links, and the table-of-contents flag out of raw markdown. Every
// "no match" is a normal outcome, never an error.
func extractMetadata(content string, sections []Section) Metadata {
	meta := Metadata{
		Badges:  extractBadges(content),
		Version: detectVersion(content),
		Links:   extractLinks(content),
	}

	for _, sec := range sections {
		if sec.Level > 2 {
			continue
		}
		switch NormalizeTitle(sec.Title) {
		case "table of contents", "contents":
			meta.HasTableOfContents = true
		}
	}
	return meta
}

// extractBadges records every image-link construct in document order,
// duplicates kept. Markdown images come first, then HTML <img> tags found
// anywhere in the document (badge walls are often authored in HTML).
func extractBadges(content string) []Badge {
	var badges []Badge
	for _, m := range imageLinkRe.FindAllStringSubmatch(content, -1) {
		badges = append(badges, Badge{AltText: m[1], URL: m[2]})
	}
	badges = append(badges, extractHTMLBadges(content)...)
	return badges
}

func extractHTMLBadges(content string) []Badge {
	if !strings.Contains(content, "<img") {
		return nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil
	}
	var badges []Badge
	doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		src, ok := s.Attr("src")
		if !ok || src == "" {
			return
		}
		alt, _ := s.Attr("alt")
		badges = append(badges, Badge{AltText: alt, URL: src})
	})
	return badges
}

// detectVersion returns the first version-like token: a "version" keyword
// followed by a dotted triple wins, a bare vX.Y.Z is the fallback. Absence
// yields the empty string.
func detectVersion(content string) string {
	if m := versionKeywordRe.FindStringSubmatch(content); m != nil {
		if semver.IsValid("v" + m[1]) {
			return m[1]
		}
	}
	if m := bareVersionRe.FindStringSubmatch(content); m != nil {
		if semver.IsValid("v" + m[1]) {
			return m[1]
		}
	}
	return ""
}

// extractLinks records link constructs whose target is an absolute URL or
// an in-document anchor. Relative file links are excluded. Image links are
// skipped; those are badges.
func extractLinks(content string) []Link {
	var links []Link
	seen := make(map[string]bool)
	for _, idx := range mdLinkRe.FindAllStringSubmatchIndex(content, -1) {
		if idx[0] > 0 && content[idx[0]-1] == '!' {
			continue
		}
		text := content[idx[2]:idx[3]]
		url := content[idx[4]:idx[5]]
		if !schemeRe.MatchString(url) && !strings.HasPrefix(url, "#") {
			continue
		}
		key := text + "\x00" + url
		if seen[key] {
			continue
		}
		seen[key] = true
		links = append(links, Link{Text: text, URL: url})
	}
	return links
}
