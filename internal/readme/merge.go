package readme

import (
	"fmt"
	"strings"
)

type sectionOrigin string

const (
	originExisting sectionOrigin = "existing"
	originNew      sectionOrigin = "new"
)

type mergedSection struct {
	Section
	origin sectionOrigin
}

// Merge combines an existing README with freshly generated markdown under
// the given policy and returns the merged text, always ending with exactly
// one trailing newline. The generated text is treated as untrusted freeform
// markdown; a malformed new document degrades to however it parses, never
// to an error. The only error case is an unknown policy mode.
//
// The full policy follows the generated document: every matched section
// takes the new content unless it is custom, and unmatched custom sections
// are appended. The selective policy follows the existing document: only
// sections named in SectionsToUpdate take generated content, everything
// else (header included) stays as-is, so a generated document carrying
// only the listed sections is a valid input.
//
// Matching is by normalized title; heading level is ignored unless
// MatchLevels is set, so a level-2 "Installation" matches a level-3 one.
func Merge(existingRaw, newRaw string, policy MergePolicy) (string, error) {
	switch policy.Mode {
	case ModeVersionOnly:
		return finalizeDocument(PatchVersion(existingRaw, policy.Version)), nil
	case ModeFull:
		return mergeFull(Parse(existingRaw), Parse(newRaw), policy), nil
	case ModeSelective:
		return mergeSelective(Parse(existingRaw), Parse(newRaw), policy), nil
	default:
		return "", fmt.Errorf("unknown merge mode %q", policy.Mode)
	}
}

func mergeFull(existing, fresh *Analysis, policy MergePolicy) string {
	header := fresh.Header
	if policy.PreserveHeader && existing.Header != "" {
		header = existing.Header
	}

	consumed := make([]bool, len(existing.Sections))
	var merged []mergedSection

	for _, sec := range fresh.Sections {
		idx := matchSection(existing.Sections, consumed, sec, policy.MatchLevels)
		if idx < 0 {
			merged = append(merged, mergedSection{Section: sec, origin: originNew})
			continue
		}
		consumed[idx] = true
		old := existing.Sections[idx]
		if isCustomSection(old) {
			merged = append(merged, mergedSection{Section: old, origin: originExisting})
		} else {
			merged = append(merged, mergedSection{Section: sec, origin: originNew})
		}
	}

	// Unconsumed custom sections survive the refresh, appended in their
	// original order.
	for i, sec := range existing.Sections {
		if consumed[i] || !isCustomSection(sec) {
			continue
		}
		merged = append(merged, mergedSection{Section: sec, origin: originExisting})
	}

	return renderMerged(header, merged)
}

// mergeSelective walks the existing document in order, swapping in generated
// content only for sections named in the update list. Custom sections keep
// their existing content even when listed. Listed sections the existing
// document lacks are appended from the generated text; unlisted generated
// sections are discarded.
func mergeSelective(existing, fresh *Analysis, policy MergePolicy) string {
	header := existing.Header
	if header == "" {
		header = fresh.Header
	}

	updateSet := make(map[string]bool, len(policy.SectionsToUpdate))
	for _, name := range policy.SectionsToUpdate {
		updateSet[NormalizeTitle(name)] = true
	}

	consumed := make([]bool, len(fresh.Sections))
	var merged []mergedSection

	for _, old := range existing.Sections {
		idx := matchSection(fresh.Sections, consumed, old, policy.MatchLevels)
		if idx >= 0 {
			consumed[idx] = true
		}
		if idx >= 0 && updateSet[NormalizeTitle(old.Title)] && !isCustomSection(old) {
			merged = append(merged, mergedSection{Section: fresh.Sections[idx], origin: originNew})
		} else {
			merged = append(merged, mergedSection{Section: old, origin: originExisting})
		}
	}

	for i, sec := range fresh.Sections {
		if consumed[i] || !updateSet[NormalizeTitle(sec.Title)] {
			continue
		}
		merged = append(merged, mergedSection{Section: sec, origin: originNew})
	}

	return renderMerged(header, merged)
}

// matchSection finds the first unconsumed existing section with the same
// normalized title, optionally requiring the heading level to agree.
func matchSection(sections []Section, consumed []bool, target Section, matchLevels bool) int {
	norm := NormalizeTitle(target.Title)
	for i, sec := range sections {
		if consumed[i] {
			continue
		}
		if NormalizeTitle(sec.Title) != norm {
			continue
		}
		if matchLevels && sec.Level != target.Level {
			continue
		}
		return i
	}
	return -1
}

func renderMerged(header string, sections []mergedSection) string {
	var sb strings.Builder
	if header != "" {
		sb.WriteString(header)
		sb.WriteString("\n\n")
	}
	for _, sec := range sections {
		sb.WriteString(sec.RawTitle)
		sb.WriteString("\n")
		if sec.Content != "" {
			sb.WriteString("\n")
			sb.WriteString(sec.Content)
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}
	return finalizeDocument(sb.String())
}

func finalizeDocument(s string) string {
	return strings.TrimSpace(s) + "\n"
}
