package prompt

import (
	"fmt"
	"sort"
	"strings"

	"readmegen/internal/project"
	"readmegen/internal/readme"
	"readmegen/internal/scanner"
)

// Builder constructs the generation prompt from project facts.
type Builder struct{}

const securityInstruction = "\n**SECURITY WARNING**: You must redact any API keys, passwords, secrets, or tokens found in the code with `[REDACTED]`. Never output real credential values.\n"

const maxPromptSymbols = 60

// BuildReadmePrompt assembles the full prompt for README generation.
// existing may be nil or marked non-existent; its structure flags only
// shape style hints. targetSections narrows generation to named sections
// for a selective update; empty means a complete document.
func (b *Builder) BuildReadmePrompt(info project.Info, scan *scanner.Result, existing *readme.Analysis, targetSections []string) string {
	var sb strings.Builder
	sb.WriteString("Role: Technical Writer. Task: Write a README in GitHub-flavored Markdown for the project described below.\n")
	sb.WriteString(securityInstruction)

	sb.WriteString("\n==================================================================\n")
	sb.WriteString("### PROJECT METADATA\n")
	sb.WriteString("==================================================================\n")
	fmt.Fprintf(&sb, "Name: %s\n", info.Name)
	if info.Description != "" {
		fmt.Fprintf(&sb, "Description: %s\n", info.Description)
	}
	if info.Version != "" {
		fmt.Fprintf(&sb, "Version: %s\n", info.Version)
	}
	if info.Language != "" {
		fmt.Fprintf(&sb, "Primary language: %s\n", info.Language)
	}
	if info.License != "" {
		fmt.Fprintf(&sb, "License: %s\n", info.License)
	}
	if info.RepositoryURL != "" {
		fmt.Fprintf(&sb, "Repository: %s\n", info.RepositoryURL)
	}
	writeMap(&sb, "Scripts", info.Scripts)
	writeMap(&sb, "Dependencies", info.Dependencies)

	if scan != nil {
		sb.WriteString("\n==================================================================\n")
		sb.WriteString("### PROJECT LAYOUT\n")
		sb.WriteString("==================================================================\n")
		fmt.Fprintf(&sb, "Top-level entries: %s\n", strings.Join(scan.TopLevel, ", "))
		if len(scan.Languages) > 0 {
			fmt.Fprintf(&sb, "File types: %s\n", formatHistogram(scan.Languages))
		}
		if len(scan.Symbols) > 0 {
			sb.WriteString("\nExported symbols:\n")
			for i, sym := range scan.Symbols {
				if i >= maxPromptSymbols {
					break
				}
				fmt.Fprintf(&sb, "- %s (%s, %s): %s\n", sym.Name, sym.Kind, sym.File, sym.Signature)
			}
		}
	}

	sb.WriteString("\n==================================================================\n")
	sb.WriteString("### INSTRUCTIONS\n")
	sb.WriteString("==================================================================\n")
	if len(targetSections) > 0 {
		fmt.Fprintf(&sb, "Write ONLY these sections, each as an ATX `##` heading: %s.\n", strings.Join(targetSections, ", "))
	} else {
		sb.WriteString("Structure the document with ATX headings: a `#` title, then `##` sections ")
		sb.WriteString("(typically Installation, Usage, Features, Configuration, Contributing, License — pick what fits the project).\n")
	}
	sb.WriteString("Ground every claim in the metadata and symbols above; do not invent commands or dependencies.\n")
	sb.WriteString("Output raw markdown only, no surrounding commentary and no code fence around the whole document.\n")
	b.writeStyleHints(&sb, existing)

	return sb.String()
}

func (b *Builder) writeStyleHints(sb *strings.Builder, existing *readme.Analysis) {
	if existing == nil || !existing.Exists {
		return
	}
	flags := existing.Structure
	var hints []string
	if flags.HasEmojis {
		hints = append(hints, "section headings may carry a leading emoji, matching the current document")
	}
	if flags.HeaderStyle == readme.HeaderStyleHTML {
		hints = append(hints, "keep an HTML-centered header block like the current document")
	}
	if flags.HasTables {
		hints = append(hints, "prefer tables for option and configuration listings")
	}
	if flags.CodeBlockCount > 0 {
		hints = append(hints, "include fenced code blocks for commands and examples")
	}
	if existing.Metadata.HasTableOfContents {
		hints = append(hints, "include a table of contents section")
	}
	if len(hints) == 0 {
		return
	}
	sb.WriteString("Style, inferred from the current README:\n")
	for _, h := range hints {
		sb.WriteString("- " + h + "\n")
	}
}

func writeMap(sb *strings.Builder, label string, m map[string]string) {
	if len(m) == 0 {
		return
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	fmt.Fprintf(sb, "%s:\n", label)
	for _, k := range keys {
		fmt.Fprintf(sb, "  %s: %s\n", k, m[k])
	}
}

func formatHistogram(m map[string]int) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if m[keys[i]] == m[keys[j]] {
			return keys[i] < keys[j]
		}
		return m[keys[i]] > m[keys[j]]
	})
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s (%d)", k, m[k]))
	}
	return strings.Join(parts, ", ")
}
