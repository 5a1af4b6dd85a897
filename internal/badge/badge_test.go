package badge

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"readmegen/internal/project"
)

func TestShieldEscape(t *testing.T) {
	assert.Equal(t, "my--tool", shieldEscape("my-tool"))
	assert.Equal(t, "snake__case", shieldEscape("snake_case"))
	assert.Equal(t, "two_words", shieldEscape("two words"))
	assert.Equal(t, "a--b__c_d", shieldEscape("a-b_c d"))
}

func TestVersion_StripsLeadingV(t *testing.T) {
	assert.Equal(t, "https://img.shields.io/badge/version-1.2.0-blue", Version("v1.2.0"))
	assert.Equal(t, "https://img.shields.io/badge/version-1.2.0-blue", Version("1.2.0"))
}

func TestLicense(t *testing.T) {
	assert.Equal(t, "https://img.shields.io/badge/license-MIT-green", License("MIT"))
	assert.Equal(t, "https://img.shields.io/badge/license-Apache--2.0-green", License("Apache-2.0"))
}

func TestMarkdown(t *testing.T) {
	assert.Equal(t, "![version](https://example.com/b)", Markdown("version", "https://example.com/b"))
}

func TestForProject_OrderAndSkipping(t *testing.T) {
	var info project.Info
	info.Name = "my-tool"
	info.Version = "1.2.0"
	info.Language = "go"

	badges := ForProject(info)
	assert.Len(t, badges, 2)
	assert.Contains(t, badges[0], "version-1.2.0-blue")
	assert.Contains(t, badges[1], "language-go-informational")
}

func TestForProject_EmptyProject(t *testing.T) {
	assert.Empty(t, ForProject(project.Info{}))
}
