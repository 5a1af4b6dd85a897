package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"readmegen/internal/badge"
	"readmegen/internal/cache"
	"readmegen/internal/config"
	"readmegen/internal/llm"
	"readmegen/internal/project"
	"readmegen/internal/prompt"
	"readmegen/internal/readme"
	"readmegen/internal/scanner"
)

var generateForce bool

var generateCmd = &cobra.Command{
	Use:   "generate [path]",
	Short: "Generate a fresh README for the project",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := projectRoot(args)
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		outPath := filepath.Join(root, cfg.Output.File)
		if _, err := os.Stat(outPath); err == nil && !generateForce {
			return fmt.Errorf("%s already exists; run `readmegen update` or pass --force", outPath)
		}

		ctx := cmd.Context()
		generated, _, err := generateReadme(ctx, cfg, root, readme.NotFound(), nil)
		if err != nil {
			return err
		}

		if err := os.WriteFile(outPath, []byte(generated), 0644); err != nil {
			return err
		}
		log.Infof("wrote %s", outPath)
		return nil
	},
}

func init() {
	generateCmd.Flags().BoolVar(&generateForce, "force", false, "overwrite an existing README")
	rootCmd.AddCommand(generateCmd)
}

// generateReadme runs the scan → prompt → model pipeline and returns the
// generated markdown plus the project info it was derived from.
func generateReadme(ctx context.Context, cfg *config.Config, root string, existing *readme.Analysis, targetSections []string) (string, project.Info, error) {
	info, err := project.Load(root)
	if err != nil {
		return "", info, err
	}
	log.Debugf("project %q, %d dependencies, %d scripts", info.Name, len(info.Dependencies), len(info.Scripts))

	scan, err := scanner.New().Scan(ctx, root)
	if err != nil {
		return "", info, fmt.Errorf("project scan failed: %w", err)
	}
	log.Debugf("scanned %d files, %d symbols", len(scan.Files), len(scan.Symbols))

	builder := &prompt.Builder{}
	promptText := builder.BuildReadmePrompt(info, scan, existing, targetSections)

	text, err := callModel(ctx, cfg, promptText)
	if err != nil {
		return "", info, err
	}
	return decorateHeader(text, existing, info), info, nil
}

// callModel asks the cache first, then the Gemini API.
func callModel(ctx context.Context, cfg *config.Config, promptText string) (string, error) {
	if cfg.AI.APIKey == "" {
		return "", fmt.Errorf("no API key configured (set READMEGEN_API_KEY or ai.api_key)")
	}

	var store *cache.Store
	if cfg.Cache.Enabled {
		path := cfg.Cache.Path
		if path == "" {
			var err error
			if path, err = cache.DefaultPath(); err != nil {
				path = ""
			}
		}
		if path != "" {
			if s, err := cache.Open(path); err == nil {
				store = s
				defer store.Close()
			} else {
				log.Debugf("cache unavailable: %v", err)
			}
		}
	}

	key := cache.Key(cfg.AI.Model, promptText)
	if store != nil {
		if cached, ok, err := store.Get(ctx, key); err == nil && ok {
			log.Debug("using cached model response")
			return cached, nil
		}
	}

	client, err := llm.NewClient(ctx, cfg.AI.APIKey, cfg.AI.Model)
	if err != nil {
		return "", err
	}
	log.Infof("asking %s for a README", cfg.AI.Model)
	text, err := client.Generate(ctx, promptText)
	if err != nil {
		return "", err
	}

	if store != nil {
		if err := store.Put(ctx, key, cfg.AI.Model, text); err != nil {
			log.Debugf("cache write failed: %v", err)
		}
	}
	return text, nil
}

// decorateHeader prepends a badge wall when the model did not produce one
// and the existing README did not carry its own.
func decorateHeader(text string, existing *readme.Analysis, info project.Info) string {
	if strings.Contains(text, "img.shields.io") {
		return text
	}
	if existing != nil && existing.Exists && existing.Structure.HasBadges {
		return text
	}
	badges := badge.ForProject(info)
	if len(badges) == 0 {
		return text
	}
	return strings.Join(badges, "\n") + "\n\n" + text
}
