package readme

import (
	"bufio"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Parse splits raw markdown into a header blob plus ATX-heading-delimited
// sections and extracts metadata and structure flags. It never fails:
// degenerate input yields a valid, possibly-empty Analysis.
//
// Only ATX headings (1-6 leading # characters, a space, non-empty text) are
// recognized. Setext underlined headings are a known limitation and fall
// through as plain body text.
func Parse(content string) *Analysis {
	header, sections := splitSections(content)

	a := &Analysis{
		Exists:   true,
		Content:  content,
		Header:   header,
		Sections: sections,
		Metadata: extractMetadata(content, sections),
	}
	a.Structure = buildStructureFlags(content, header, a.Metadata)

	for _, sec := range sections {
		if isCustomSection(sec) {
			a.CustomSections = append(a.CustomSections, sec)
		}
	}
	return a
}

// headingLine reports whether line is an ATX heading and returns its level
// and title text. A heading needs 1-6 # marks, at least one space, and
// non-empty remaining text.
func headingLine(line string) (level int, title string, ok bool) {
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level == 0 || level > 6 {
		return 0, "", false
	}
	rest := line[level:]
	if !strings.HasPrefix(rest, " ") {
		return 0, "", false
	}
	title = strings.TrimSpace(rest)
	if title == "" {
		return 0, "", false
	}
	return level, title, true
}

func splitSections(content string) (string, []Section) {
	if content == "" {
		return "", nil
	}

	var sections []Section
	var headerLines []string
	var current *Section
	var body []string

	closeCurrent := func(endLine int) {
		if current == nil {
			return
		}
		current.Content = strings.TrimSpace(strings.Join(body, "\n"))
		current.EndLine = endLine
		if current.EndLine < current.StartLine {
			current.EndLine = current.StartLine
		}
		sections = append(sections, *current)
		current = nil
		body = nil
	}

	scanner := bufio.NewScanner(strings.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		if level, title, ok := headingLine(line); ok {
			closeCurrent(lineNo - 1)
			current = &Section{
				Level:     level,
				Title:     title,
				RawTitle:  line,
				StartLine: lineNo,
			}
			continue
		}

		if current == nil {
			headerLines = append(headerLines, line)
		} else {
			body = append(body, line)
		}
	}
	closeCurrent(lineNo)

	return strings.TrimSpace(strings.Join(headerLines, "\n")), sections
}

var (
	fenceRe     = regexp.MustCompile("^\\s*```")
	tableRowRe  = regexp.MustCompile(`^\s*\|?\s*:?-{2,}:?\s*(\|\s*:?-{2,}:?\s*)+\|?\s*$`)
	htmlBlockRe = regexp.MustCompile(`(?i)<(h1|h2|p|div|img|a|center|picture)[\s>/]`)
)

func buildStructureFlags(content, header string, meta Metadata) StructureFlags {
	lines := strings.Split(content, "\n")

	flags := StructureFlags{
		TotalLines:  len(lines),
		HasHeader:   header != "",
		HeaderStyle: HeaderStyleMarkdown,
		HasBadges:   len(meta.Badges) > 0,
	}
	if content == "" {
		flags.TotalLines = 0
	}

	fences := 0
	for _, line := range lines {
		if fenceRe.MatchString(line) {
			fences++
		}
		if tableRowRe.MatchString(line) {
			flags.HasTables = true
		}
	}
	flags.CodeBlockCount = fences / 2
	flags.HasCodeBlocks = flags.CodeBlockCount > 0
	flags.HasEmojis = containsEmoji(content)

	if header != "" && isHTMLHeader(header) {
		flags.HeaderStyle = HeaderStyleHTML
	}
	return flags
}

// isHTMLHeader parses the header region as an HTML fragment and checks for
// the tags README headers are typically built from.
func isHTMLHeader(header string) bool {
	if !htmlBlockRe.MatchString(header) {
		return false
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(header))
	if err != nil {
		return false
	}
	return doc.Find("h1, h2, img, picture, center, p[align], div[align]").Length() > 0
}

func containsEmoji(s string) bool {
	for _, r := range s {
		switch {
		case r >= 0x1F300 && r <= 0x1FAFF: // pictographs, transport, supplemental
			return true
		case r >= 0x2600 && r <= 0x27BF: // misc symbols and dingbats
			return true
		case r >= 0x1F1E6 && r <= 0x1F1FF: // regional indicators
			return true
		}
	}
	return false
}
