package readme

import (
	"regexp"
	"strings"
)

var (
	badgeVersionRe = regexp.MustCompile(`(img\.shields\.io/badge/(?:npm|version|release)-v?)(\d+\.\d+\.\d+)`)
	npmBadgePathRe = regexp.MustCompile(`(img\.shields\.io/npm/v/[^/)\s]+/)(\d+\.\d+\.\d+)`)
	keywordPatchRe = regexp.MustCompile(`(?i)(version[^0-9\n]{0,12})(\d+\.\d+\.\d+)`)
	barePatchRe    = regexp.MustCompile(`\bv\d+\.\d+\.\d+\b`)
)

// PatchVersion replaces every version token in raw with version: the
// trailing version segment of version-badge URLs, dotted triples following
// a "version" keyword, and bare vX.Y.Z tokens. Surrounding text is
// preserved exactly. Applying the patch twice with the same version is a
// no-op the second time.
func PatchVersion(raw, version string) string {
	version = strings.TrimPrefix(strings.TrimSpace(version), "v")
	if version == "" {
		return raw
	}

	out := badgeVersionRe.ReplaceAllString(raw, "${1}"+version)
	out = npmBadgePathRe.ReplaceAllString(out, "${1}"+version)
	out = keywordPatchRe.ReplaceAllString(out, "${1}"+version)
	out = barePatchRe.ReplaceAllString(out, "v"+version)
	return out
}
