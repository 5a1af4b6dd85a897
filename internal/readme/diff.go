package readme

// Diff compares two raw markdown documents section-by-section, matching by
// normalized title. Every section of either document lands in exactly one
// bucket. Added and modified entries follow the new document's order,
// removed entries the old document's order.
func Diff(oldRaw, newRaw string) DiffSummary {
	oldDoc := Parse(oldRaw)
	newDoc := Parse(newRaw)

	consumed := make([]bool, len(oldDoc.Sections))
	var summary DiffSummary

	for _, sec := range newDoc.Sections {
		idx := matchSection(oldDoc.Sections, consumed, sec, false)
		if idx < 0 {
			summary.Added = append(summary.Added, sec.Title)
			continue
		}
		consumed[idx] = true
		if oldDoc.Sections[idx].Content != sec.Content {
			summary.Modified = append(summary.Modified, sec.Title)
		} else {
			summary.Unchanged = append(summary.Unchanged, sec.Title)
		}
	}

	for i, sec := range oldDoc.Sections {
		if !consumed[i] {
			summary.Removed = append(summary.Removed, sec.Title)
		}
	}
	return summary
}
