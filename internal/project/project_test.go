package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestLoad_PackageJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "package.json", `{
		"name": "my-tool",
		"version": "1.2.0",
		"description": "does things",
		"license": "MIT",
		"scripts": {"test": "jest", "build": "tsc"},
		"dependencies": {"express": "^4.18.0"},
		"devDependencies": {"jest": "^29.0.0"}
	}`)

	info, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "my-tool", info.Name)
	assert.Equal(t, "1.2.0", info.Version)
	assert.Equal(t, "does things", info.Description)
	assert.Equal(t, "MIT", info.License)
	assert.Equal(t, "javascript", info.Language)
	assert.Equal(t, "jest", info.Scripts["test"])
	assert.Len(t, info.Dependencies, 1)
	assert.Len(t, info.DevDependencies, 1)
}

func TestLoad_GoModFallback(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module github.com/acme/widget\n\ngo 1.24\n\nrequire (\n\tgithub.com/spf13/cobra v1.8.1\n\tgithub.com/spf13/pflag v1.0.5 // indirect\n)\n")

	info, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "widget", info.Name)
	assert.Equal(t, "go", info.Language)
	require.Len(t, info.Dependencies, 1)
	assert.Equal(t, "v1.8.1", info.Dependencies["github.com/spf13/cobra"])
}

func TestLoad_EmptyDirectoryIsNotAnError(t *testing.T) {
	dir := t.TempDir()

	info, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Base(dir), info.Name)
	assert.Empty(t, info.Version)
	assert.Empty(t, info.Dependencies)
	assert.False(t, info.HasLicenseFile)
}

func TestLoad_LicenseFileDetection(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "LICENSE", "MIT License\n")

	info, err := Load(dir)
	require.NoError(t, err)
	assert.True(t, info.HasLicenseFile)
}

func TestNormalizeRemote(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"git@github.com:acme/widget.git", "https://github.com/acme/widget"},
		{"ssh://git@github.com/acme/widget.git", "https://github.com/acme/widget"},
		{"https://github.com/acme/widget.git", "https://github.com/acme/widget"},
		{"https://github.com/acme/widget", "https://github.com/acme/widget"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, normalizeRemote(tc.in), "input %q", tc.in)
	}
}
