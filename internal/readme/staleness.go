package readme

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"

	"readmegen/internal/project"
)

// importantScripts are the manifest scripts a README is expected to mention.
var importantScripts = []string{"test", "build", "start", "dev"}

// scriptMentionRes match a script name as a whole word, so "latest" does not
// count as a mention of the "test" script.
var scriptMentionRes = func() map[string]*regexp.Regexp {
	res := make(map[string]*regexp.Regexp, len(importantScripts))
	for _, name := range importantScripts {
		res[name] = regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\b`)
	}
	return res
}()

var depCountRe = regexp.MustCompile(`(?i)(\d+)\s+dependencies`)

// DetectIssues compares a parsed README against live project metadata and
// returns every staleness issue found. The rules are independent; no rule
// short-circuits another. An empty result is a normal outcome.
func DetectIssues(a *Analysis, info project.Info) []Issue {
	if a == nil || !a.Exists {
		return nil
	}

	var issues []Issue
	issues = append(issues, versionIssues(a, info)...)
	issues = append(issues, scriptIssues(a, info)...)
	issues = append(issues, dependencyCountIssues(a, info)...)
	return issues
}

func versionIssues(a *Analysis, info project.Info) []Issue {
	current := a.Metadata.Version
	expected := info.Version
	if current == "" || expected == "" || current == expected {
		return nil
	}

	severity := SeverityMedium
	if semver.IsValid("v"+current) && semver.IsValid("v"+expected) &&
		semver.Major("v"+current) != semver.Major("v"+expected) {
		severity = SeverityHigh
	}
	return []Issue{{
		Kind:     IssueVersion,
		Severity: severity,
		Message:  fmt.Sprintf("README mentions version %s but the project is at %s", current, expected),
		Current:  current,
		Expected: expected,
	}}
}

func scriptIssues(a *Analysis, info project.Info) []Issue {
	lower := strings.ToLower(a.Content)

	var issues []Issue
	for _, name := range importantScripts {
		if _, ok := info.Scripts[name]; !ok {
			continue
		}
		if scriptMentionRes[name].MatchString(lower) {
			continue
		}
		issues = append(issues, Issue{
			Kind:     IssueMissingScript,
			Severity: SeverityLow,
			Message:  fmt.Sprintf("the %q script is defined but never mentioned in the README", name),
			Expected: name,
		})
	}
	return issues
}

func dependencyCountIssues(a *Analysis, info project.Info) []Issue {
	m := depCountRe.FindStringSubmatch(a.Content)
	if m == nil {
		return nil
	}
	claimed, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	actual := len(info.Dependencies)
	if claimed == actual {
		return nil
	}
	return []Issue{{
		Kind:     IssueDependencyCount,
		Severity: SeverityLow,
		Message:  fmt.Sprintf("README claims %d dependencies, the project has %d", claimed, actual),
		Current:  strconv.Itoa(claimed),
		Expected: strconv.Itoa(actual),
	}}
}

// SuggestSectionsToReview maps detected issues and structural gaps to the
// sections a maintainer should look at. Duplicates collapse to the first
// (highest-context) suggestion for a given section name.
func SuggestSectionsToReview(a *Analysis, info project.Info) []Suggestion {
	if a == nil || !a.Exists {
		return nil
	}

	var out []Suggestion
	seen := make(map[string]bool)
	add := func(s Suggestion) {
		if seen[s.Name] {
			return
		}
		seen[s.Name] = true
		out = append(out, s)
	}

	for _, issue := range DetectIssues(a, info) {
		switch issue.Kind {
		case IssueVersion:
			add(Suggestion{Name: "Header", Reason: issue.Message, Priority: issue.Severity})
		case IssueMissingScript:
			add(Suggestion{Name: "Usage", Reason: issue.Message, Priority: issue.Severity})
		case IssueDependencyCount:
			add(Suggestion{Name: "Installation", Reason: issue.Message, Priority: issue.Severity})
		}
	}

	if len(info.Dependencies) > 0 && !hasSectionMatching(a, "installation") {
		add(Suggestion{
			Name:     "Installation",
			Reason:   "the project declares dependencies but the README has no installation section",
			Priority: SeverityMedium,
		})
	}
	if len(info.Scripts) > 0 && !hasSectionMatching(a, "usage") {
		add(Suggestion{
			Name:     "Usage",
			Reason:   "the project defines scripts but the README has no usage section",
			Priority: SeverityMedium,
		})
	}
	if (info.License != "" || info.HasLicenseFile) && !hasSectionMatching(a, "license") {
		add(Suggestion{
			Name:     "License",
			Reason:   "the project carries a license but the README has no license section",
			Priority: SeverityLow,
		})
	}
	return out
}

func hasSectionMatching(a *Analysis, vocab string) bool {
	for _, sec := range a.Sections {
		norm := NormalizeTitle(sec.Title)
		if norm == "" {
			continue
		}
		if strings.Contains(norm, vocab) || strings.Contains(vocab, norm) {
			return true
		}
	}
	return false
}
