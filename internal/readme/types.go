package readme

// Section is a heading-delimited region of a markdown document. The
// StartLine..EndLine ranges of consecutive sections tile the document:
// every line after the header region belongs to exactly one section.
type Section struct {
	Level     int    `json:"level"`
	Title     string `json:"title"`      // heading text with the # marks stripped
	RawTitle  string `json:"raw_title"`  // original heading line, verbatim
	Content   string `json:"content"`    // trimmed body between this heading and the next
	StartLine int    `json:"start_line"` // 1-based line of the heading
	EndLine   int    `json:"end_line"`   // line before the next heading, or the final line
}

// Analysis is the parsed view of a README. It is built once per Parse call
// and never mutated afterwards.
type Analysis struct {
	Exists         bool
	Content        string
	Header         string // text before the first heading, trimmed
	Sections       []Section
	CustomSections []Section // level <= 2 sections outside the standard vocabulary
	Metadata       Metadata
	Structure      StructureFlags
}

// Badge is an image-link construct, markdown or HTML.
type Badge struct {
	AltText string
	URL     string
}

// Link is a markdown link with an absolute URL or in-document anchor target.
type Link struct {
	Text string
	URL  string
}

// Metadata holds the structured signals extracted from raw markdown.
type Metadata struct {
	Badges             []Badge
	Version            string // empty when no version-like token was found
	Links              []Link
	HasTableOfContents bool
}

// HeaderStyle describes how the pre-heading header region is authored.
type HeaderStyle string

const (
	HeaderStyleMarkdown HeaderStyle = "markdown"
	HeaderStyleHTML     HeaderStyle = "html"
)

// StructureFlags are descriptive facts about the document shape, consumed
// by the prompt builder as style hints.
type StructureFlags struct {
	TotalLines     int
	HasHeader      bool
	HeaderStyle    HeaderStyle
	HasBadges      bool
	HasCodeBlocks  bool
	CodeBlockCount int
	HasEmojis      bool
	HasTables      bool
}

// IssueKind identifies the staleness rule that produced an Issue.
type IssueKind string

const (
	IssueVersion         IssueKind = "version"
	IssueMissingScript   IssueKind = "missing-script"
	IssueDependencyCount IssueKind = "dependency-count"
)

// Severity ranks how urgently an Issue or Suggestion should be acted on.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Issue is a detected mismatch between README content and live project
// metadata. Issues are informational, never fatal.
type Issue struct {
	Kind     IssueKind
	Severity Severity
	Message  string
	Current  string // value found in the document, when applicable
	Expected string // value derived from the project, when applicable
}

// Suggestion names a section worth reviewing, with the reason it was flagged.
type Suggestion struct {
	Name     string
	Reason   string
	Priority Severity
}

// DiffSummary buckets section titles by how they changed between two
// documents. Matching is by normalized title.
type DiffSummary struct {
	Added     []string
	Removed   []string
	Modified  []string
	Unchanged []string
}

// MergeMode selects the merge strategy.
type MergeMode string

const (
	// ModeFull replaces every matched section with newly generated content,
	// except sections classified custom, which keep their existing text.
	ModeFull MergeMode = "full"
	// ModeSelective regenerates only the sections named in SectionsToUpdate;
	// everything else, the header region included, keeps its existing text.
	// The generated input may carry only the listed sections.
	ModeSelective MergeMode = "selective"
	// ModeVersionOnly patches version tokens in place and touches nothing else.
	ModeVersionOnly MergeMode = "version-only"
)

// MergePolicy configures Merge. The zero value is not valid; Mode is required.
type MergePolicy struct {
	Mode MergeMode

	// SectionsToUpdate names sections to regenerate under ModeSelective,
	// matched by normalized title. Sections not listed keep their existing
	// content when a match exists.
	SectionsToUpdate []string

	// PreserveHeader keeps the existing document's pre-heading header region
	// instead of the freshly generated one.
	PreserveHeader bool

	// MatchLevels requires heading levels to agree before two same-titled
	// sections are considered a match. Off by default: a level-2
	// "Installation" matches a level-3 "Installation".
	MatchLevels bool

	// Version is the target version for ModeVersionOnly.
	Version string
}

// NotFound represents a README that does not exist on disk. Callers branch
// on Exists to decide between generating fresh and updating.
func NotFound() *Analysis {
	return &Analysis{Exists: false}
}
