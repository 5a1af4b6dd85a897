package readme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiff_Buckets(t *testing.T) {
	oldDoc := `# Intro

hello

## Installation

old install

## Legacy Notes

going away
`
	newDoc := `# Intro

hello

## Installation

new install

## Usage

run it
`

	summary := Diff(oldDoc, newDoc)

	assert.Equal(t, []string{"Usage"}, summary.Added)
	assert.Equal(t, []string{"Legacy Notes"}, summary.Removed)
	assert.Equal(t, []string{"Installation"}, summary.Modified)
	assert.Equal(t, []string{"Intro"}, summary.Unchanged)
}

func TestDiff_MatchesAcrossLevelsAndFormatting(t *testing.T) {
	summary := Diff("## Installation\n\nsame\n", "### 🔧 Installation!\n\nsame\n")

	assert.Empty(t, summary.Added)
	assert.Empty(t, summary.Removed)
	assert.Empty(t, summary.Modified)
	assert.Equal(t, []string{"🔧 Installation!"}, summary.Unchanged)
}

// Every old title lands in exactly one of removed/modified/unchanged and
// every new title in exactly one of added/modified/unchanged.
func TestDiff_Completeness(t *testing.T) {
	oldDoc := "# A\n\n1\n\n## B\n\n2\n\n## C\n\n3\n"
	newDoc := "# A\n\n1\n\n## C\n\nchanged\n\n## D\n\n4\n"

	summary := Diff(oldDoc, newDoc)

	oldCount := len(summary.Removed) + len(summary.Modified) + len(summary.Unchanged)
	newCount := len(summary.Added) + len(summary.Modified) + len(summary.Unchanged)
	assert.Equal(t, 3, oldCount)
	assert.Equal(t, 3, newCount)

	assert.Equal(t, []string{"D"}, summary.Added)
	assert.Equal(t, []string{"B"}, summary.Removed)
	assert.Equal(t, []string{"C"}, summary.Modified)
	assert.Equal(t, []string{"A"}, summary.Unchanged)
}

func TestDiff_EmptyDocuments(t *testing.T) {
	summary := Diff("", "")
	assert.Empty(t, summary.Added)
	assert.Empty(t, summary.Removed)
	assert.Empty(t, summary.Modified)
	assert.Empty(t, summary.Unchanged)
}
