package badge

import (
	"fmt"
	"strings"

	"readmegen/internal/project"
)

// Badges are assembled as shields.io static badge URLs. Static badges
// encode label-message-color path segments with their own escaping rules:
// dashes double, underscores double, spaces become underscores.

const baseURL = "https://img.shields.io/badge"

func shieldEscape(s string) string {
	s = strings.ReplaceAll(s, "-", "--")
	s = strings.ReplaceAll(s, "_", "__")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}

// Static builds a shields.io static badge URL.
func Static(label, message, color string) string {
	return fmt.Sprintf("%s/%s-%s-%s", baseURL, shieldEscape(label), shieldEscape(message), color)
}

// Version builds the version badge for v.
func Version(v string) string {
	return Static("version", strings.TrimPrefix(v, "v"), "blue")
}

// License builds the license badge.
func License(name string) string {
	return Static("license", name, "green")
}

// Language builds the primary-language badge.
func Language(lang string) string {
	return Static("language", lang, "informational")
}

// Markdown renders a badge URL as a markdown image.
func Markdown(alt, url string) string {
	return fmt.Sprintf("![%s](%s)", alt, url)
}

// ForProject assembles the badge lines for a project header, in a stable
// order: version, license, language. Fields the project lacks are skipped.
func ForProject(info project.Info) []string {
	var badges []string
	if info.Version != "" {
		badges = append(badges, Markdown("version", Version(info.Version)))
	}
	if info.License != "" {
		badges = append(badges, Markdown("license", License(info.License)))
	}
	if info.Language != "" {
		badges = append(badges, Markdown("language", Language(info.Language)))
	}
	return badges
}
