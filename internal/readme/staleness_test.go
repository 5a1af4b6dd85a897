package readme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"readmegen/internal/project"
)

func TestDetectIssues_VersionDrift(t *testing.T) {
	a := Parse("# Project\n\nVersion 1.2.0 of the tool.\n")
	info := project.Info{Version: "1.3.0"}

	issues := DetectIssues(a, info)

	require.Len(t, issues, 1)
	assert.Equal(t, IssueVersion, issues[0].Kind)
	assert.Equal(t, SeverityMedium, issues[0].Severity)
	assert.Equal(t, "1.2.0", issues[0].Current)
	assert.Equal(t, "1.3.0", issues[0].Expected)
}

func TestDetectIssues_MajorVersionDriftIsHigh(t *testing.T) {
	a := Parse("# Project\n\nVersion 1.2.0 of the tool.\n")
	issues := DetectIssues(a, project.Info{Version: "2.0.0"})

	require.Len(t, issues, 1)
	assert.Equal(t, SeverityHigh, issues[0].Severity)
}

func TestDetectIssues_MatchingVersionIsQuiet(t *testing.T) {
	a := Parse("# Project\n\nVersion 1.3.0.\n")
	assert.Empty(t, DetectIssues(a, project.Info{Version: "1.3.0"}))
}

func TestDetectIssues_MissingScript(t *testing.T) {
	a := Parse("# Project\n\nA tool that does things.\n")
	info := project.Info{Scripts: map[string]string{"test": "jest"}}

	issues := DetectIssues(a, info)

	require.Len(t, issues, 1)
	assert.Equal(t, IssueMissingScript, issues[0].Kind)
	assert.Equal(t, SeverityLow, issues[0].Severity)
	assert.Equal(t, "test", issues[0].Expected)
}

func TestDetectIssues_MentionedScriptIsQuiet(t *testing.T) {
	a := Parse("# Project\n\nRun `npm run build` to compile.\n")
	info := project.Info{Scripts: map[string]string{"build": "tsc"}}

	assert.Empty(t, DetectIssues(a, info))
}

func TestDetectIssues_ScriptMentionIsWholeWord(t *testing.T) {
	// "latest" must not pass for a mention of the "test" script.
	a := Parse("# Project\n\nGrab the latest release.\n")
	info := project.Info{Scripts: map[string]string{"test": "jest"}}

	issues := DetectIssues(a, info)
	require.Len(t, issues, 1)
	assert.Equal(t, IssueMissingScript, issues[0].Kind)

	a = Parse("# Project\n\nRun `npm test` before pushing.\n")
	assert.Empty(t, DetectIssues(a, info))
}

func TestDetectIssues_DependencyCountDrift(t *testing.T) {
	a := Parse("# Project\n\nShips with only 3 dependencies.\n")
	info := project.Info{Dependencies: map[string]string{
		"left-pad": "^1.0.0",
		"lodash":   "^4.0.0",
	}}

	issues := DetectIssues(a, info)

	require.Len(t, issues, 1)
	assert.Equal(t, IssueDependencyCount, issues[0].Kind)
	assert.Equal(t, "3", issues[0].Current)
	assert.Equal(t, "2", issues[0].Expected)
}

func TestDetectIssues_RulesAreIndependent(t *testing.T) {
	a := Parse("# Project\n\nVersion 1.0.0, with 5 dependencies.\n")
	info := project.Info{
		Version:      "1.1.0",
		Scripts:      map[string]string{"start": "node index.js"},
		Dependencies: map[string]string{"express": "^4.0.0"},
	}

	issues := DetectIssues(a, info)

	require.Len(t, issues, 3)
	assert.Equal(t, IssueVersion, issues[0].Kind)
	assert.Equal(t, IssueMissingScript, issues[1].Kind)
	assert.Equal(t, IssueDependencyCount, issues[2].Kind)
}

func TestDetectIssues_MissingReadme(t *testing.T) {
	assert.Empty(t, DetectIssues(NotFound(), project.Info{Version: "1.0.0"}))
}

func TestSuggestSectionsToReview(t *testing.T) {
	a := Parse("# Project\n\nVersion 1.0.0.\n\n## Features\n\n- fast\n")
	info := project.Info{
		Version:      "1.2.0",
		Scripts:      map[string]string{"test": "jest"},
		Dependencies: map[string]string{"express": "^4.0.0"},
		License:      "MIT",
	}

	suggestions := SuggestSectionsToReview(a, info)

	names := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		names = append(names, s.Name)
	}
	assert.Contains(t, names, "Header")       // version drift
	assert.Contains(t, names, "Usage")        // missing test script mention
	assert.Contains(t, names, "Installation") // deps but no installation section
	assert.Contains(t, names, "License")      // license but no license section

	for _, s := range suggestions {
		assert.NotEmpty(t, s.Reason)
		assert.NotEmpty(t, s.Priority)
	}
}
