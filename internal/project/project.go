package project

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/tidwall/gjson"
	"golang.org/x/mod/modfile"
)

// Info is the live project metadata the README is checked against.
type Info struct {
	Name            string
	Version         string
	Description     string
	License         string
	RepositoryURL   string
	Language        string
	Scripts         map[string]string
	Dependencies    map[string]string
	DevDependencies map[string]string
	HasLicenseFile  bool
}

// Load introspects the project at root. A missing or unreadable manifest is
// not an error; fields the project does not declare stay zero-valued.
func Load(root string) (Info, error) {
	info := Info{
		Scripts:         map[string]string{},
		Dependencies:    map[string]string{},
		DevDependencies: map[string]string{},
	}

	if data, err := os.ReadFile(filepath.Join(root, "package.json")); err == nil {
		loadPackageJSON(&info, data)
	} else if data, err := os.ReadFile(filepath.Join(root, "go.mod")); err == nil {
		loadGoMod(&info, data)
	}

	if info.Name == "" {
		abs, err := filepath.Abs(root)
		if err == nil {
			info.Name = filepath.Base(abs)
		}
	}

	info.HasLicenseFile = hasLicenseFile(root)
	info.RepositoryURL = originURL(root)
	return info, nil
}

func loadPackageJSON(info *Info, data []byte) {
	doc := gjson.ParseBytes(data)
	info.Language = "javascript"
	info.Name = doc.Get("name").String()
	info.Version = doc.Get("version").String()
	info.Description = doc.Get("description").String()
	info.License = doc.Get("license").String()

	doc.Get("scripts").ForEach(func(k, v gjson.Result) bool {
		info.Scripts[k.String()] = v.String()
		return true
	})
	doc.Get("dependencies").ForEach(func(k, v gjson.Result) bool {
		info.Dependencies[k.String()] = v.String()
		return true
	})
	doc.Get("devDependencies").ForEach(func(k, v gjson.Result) bool {
		info.DevDependencies[k.String()] = v.String()
		return true
	})
}

func loadGoMod(info *Info, data []byte) {
	f, err := modfile.Parse("go.mod", data, nil)
	if err != nil {
		return
	}
	info.Language = "go"
	if f.Module != nil {
		info.Name = path.Base(f.Module.Mod.Path)
	}
	for _, req := range f.Require {
		if req.Indirect {
			continue
		}
		info.Dependencies[req.Mod.Path] = req.Mod.Version
	}
}

func hasLicenseFile(root string) bool {
	for _, name := range []string{"LICENSE", "LICENSE.md", "LICENSE.txt", "COPYING"} {
		if st, err := os.Stat(filepath.Join(root, name)); err == nil && !st.IsDir() {
			return true
		}
	}
	return false
}

// originURL resolves the origin remote of the enclosing git repository and
// normalizes SSH-style remotes to https.
func originURL(root string) string {
	repo, err := git.PlainOpenWithOptions(root, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return ""
	}
	remote, err := repo.Remote("origin")
	if err != nil {
		return ""
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return ""
	}
	return normalizeRemote(urls[0])
}

func normalizeRemote(url string) string {
	url = strings.TrimSuffix(url, ".git")
	if rest, ok := strings.CutPrefix(url, "git@"); ok {
		return "https://" + strings.Replace(rest, ":", "/", 1)
	}
	if rest, ok := strings.CutPrefix(url, "ssh://git@"); ok {
		return "https://" + rest
	}
	return url
}
