package scanner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestScan_ExtractsGoSymbols(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "widget.go", `package widget

// Widget does things.
type Widget struct{}

func NewWidget() *Widget { return &Widget{} }

func internalHelper() {}
`)

	result, err := New().Scan(context.Background(), dir)
	require.NoError(t, err)

	names := symbolNames(result.Symbols)
	assert.Contains(t, names, "Widget")
	assert.Contains(t, names, "NewWidget")
	assert.NotContains(t, names, "internalHelper")
	assert.Equal(t, 1, result.Languages[".go"])
}

func TestScan_ExtractsJavaScriptSymbols(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "index.js", `function greet(name) {
  return "hi " + name;
}

class Greeter {
  greet() { return "hi"; }
}
`)

	result, err := New().Scan(context.Background(), dir)
	require.NoError(t, err)

	names := symbolNames(result.Symbols)
	assert.Contains(t, names, "greet")
	assert.Contains(t, names, "Greeter")
}

func TestScan_SkipsIgnoredDirsAndTests(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "main.go", "package main\n\nfunc Main() {}\n")
	writeFile(t, dir, "main_test.go", "package main\n\nfunc TestMain2() {}\n")
	writeFile(t, dir, filepath.Join("node_modules", "dep", "index.js"), "function hidden() {}\n")
	writeFile(t, dir, filepath.Join("vendor", "lib.go"), "package lib\n\nfunc Vendored() {}\n")

	result, err := New().Scan(context.Background(), dir)
	require.NoError(t, err)

	names := symbolNames(result.Symbols)
	assert.Contains(t, names, "Main")
	assert.NotContains(t, names, "TestMain2")
	assert.NotContains(t, names, "hidden")
	assert.NotContains(t, names, "Vendored")
}

func TestScan_TopLevelInventory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "main.go", "package main\n")
	writeFile(t, dir, "README.md", "# hi\n")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "internal"), 0755))

	result, err := New().Scan(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"README.md", "internal", "main.go"}, result.TopLevel)
	assert.Contains(t, result.Files, "README.md")
}

func symbolNames(symbols []Symbol) []string {
	names := make([]string, 0, len(symbols))
	for _, s := range symbols {
		names = append(names, s.Name)
	}
	return names
}
