package scanner

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/javascript"
)

const (
	maxFiles   = 200
	maxSymbols = 200
)

// Symbol is an exported declaration extracted from a source file, used to
// ground the generation prompt in real code.
type Symbol struct {
	Name      string
	Kind      string // function, method, type, class
	File      string // path relative to the scan root
	Signature string // declaration line
}

// Result is the bounded inventory of a project tree.
type Result struct {
	Files     []string       // relative source/doc file paths, capped
	TopLevel  []string       // entries directly under the root
	Languages map[string]int // extension histogram over scanned files
	Symbols   []Symbol
}

// Scanner walks a project directory and extracts symbols from supported
// languages with tree-sitter.
type Scanner struct {
	ignored map[string]bool
}

func New() *Scanner {
	return &Scanner{
		ignored: map[string]bool{
			".git":         true,
			"node_modules": true,
			"vendor":       true,
			"dist":         true,
			"build":        true,
			"testdata":     true,
		},
	}
}

type language struct {
	lang  *sitter.Language
	query string
}

var languages = map[string]language{
	".go": {
		lang: golang.GetLanguage(),
		query: `
			(function_declaration) @function
			(method_declaration) @method
			(type_spec) @type
		`,
	},
	".js": {
		lang: javascript.GetLanguage(),
		query: `
			(function_declaration) @function
			(class_declaration) @class
			(method_definition) @method
		`,
	},
	".mjs": {
		lang: javascript.GetLanguage(),
		query: `
			(function_declaration) @function
			(class_declaration) @class
			(method_definition) @method
		`,
	},
}

// Scan walks root and returns its inventory. Files that fail to read or
// parse are skipped; the scan itself only fails on a broken walk.
func (s *Scanner) Scan(ctx context.Context, root string) (*Result, error) {
	result := &Result{Languages: map[string]int{}}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		result.TopLevel = append(result.TopLevel, e.Name())
	}
	sort.Strings(result.TopLevel)

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if s.ignored[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(d.Name(), "_test.go") || strings.Contains(d.Name(), ".test.") {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(d.Name()))
		if !interestingExt(ext) {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}
		if len(result.Files) < maxFiles {
			result.Files = append(result.Files, rel)
		}
		result.Languages[ext]++

		if spec, ok := languages[ext]; ok && len(result.Symbols) < maxSymbols {
			symbols, exErr := extractSymbols(ctx, path, rel, spec)
			if exErr == nil {
				result.Symbols = append(result.Symbols, symbols...)
				if len(result.Symbols) > maxSymbols {
					result.Symbols = result.Symbols[:maxSymbols]
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func interestingExt(ext string) bool {
	switch ext {
	case ".go", ".js", ".mjs", ".ts", ".tsx", ".jsx", ".py", ".rb", ".rs", ".java", ".md", ".json", ".yaml", ".yml":
		return true
	}
	return false
}

func extractSymbols(ctx context.Context, path, rel string, spec language) ([]Symbol, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	parser := sitter.NewParser()
	parser.SetLanguage(spec.lang)
	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, err
	}

	query, err := sitter.NewQuery([]byte(spec.query), spec.lang)
	if err != nil {
		return nil, err
	}

	qc := sitter.NewQueryCursor()
	qc.Exec(query, tree.RootNode())

	var symbols []Symbol
	for {
		m, ok := qc.NextMatch()
		if !ok {
			break
		}
		for _, c := range m.Captures {
			kind := query.CaptureNameForId(c.Index)
			nameNode := c.Node.ChildByFieldName("name")
			if nameNode == nil {
				continue
			}
			name := nameNode.Content(source)
			if name == "" || !exportedName(name, rel) {
				continue
			}
			symbols = append(symbols, Symbol{
				Name:      name,
				Kind:      kind,
				File:      rel,
				Signature: firstLine(c.Node.Content(source)),
			})
		}
	}
	return symbols, nil
}

// exportedName keeps Go symbols starting with an upper-case rune and skips
// underscore-prefixed names elsewhere.
func exportedName(name, rel string) bool {
	if strings.HasSuffix(rel, ".go") {
		r, _ := utf8.DecodeRuneInString(name)
		return unicode.IsUpper(r)
	}
	return !strings.HasPrefix(name, "_")
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimRight(strings.TrimSpace(s), "{ ")
}
