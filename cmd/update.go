package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"readmegen/internal/config"
	"readmegen/internal/project"
	"readmegen/internal/readme"
)

var (
	updateMode           string
	updateSections       []string
	updatePreserveHeader bool
	updateMatchLevels    bool
	updateDryRun         bool
)

var updateCmd = &cobra.Command{
	Use:   "update [path]",
	Short: "Refresh an existing README, preserving user-authored sections",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := projectRoot(args)
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		outPath := filepath.Join(root, cfg.Output.File)
		raw, err := os.ReadFile(outPath)
		if os.IsNotExist(err) {
			return fmt.Errorf("%s does not exist; run `readmegen generate`", outPath)
		}
		if err != nil {
			return err
		}
		existingRaw := string(raw)
		analysis := readme.Parse(existingRaw)

		policy := readme.MergePolicy{
			Mode:             readme.MergeMode(updateMode),
			SectionsToUpdate: updateSections,
			PreserveHeader:   updatePreserveHeader,
			MatchLevels:      updateMatchLevels,
		}

		var merged string
		switch policy.Mode {
		case readme.ModeVersionOnly:
			info, err := project.Load(root)
			if err != nil {
				return err
			}
			if info.Version == "" {
				return fmt.Errorf("project declares no version to patch in")
			}
			policy.Version = info.Version
			reportIssues(analysis, info)
			if merged, err = readme.Merge(existingRaw, "", policy); err != nil {
				return err
			}
		case readme.ModeFull, readme.ModeSelective:
			if policy.Mode == readme.ModeSelective && len(policy.SectionsToUpdate) == 0 {
				return fmt.Errorf("selective mode needs --sections")
			}
			generated, info, err := generateReadme(cmd.Context(), cfg, root, analysis, policy.SectionsToUpdate)
			if err != nil {
				return err
			}
			reportIssues(analysis, info)
			if merged, err = readme.Merge(existingRaw, generated, policy); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown mode %q", updateMode)
		}

		reportDiff(readme.Diff(existingRaw, merged))

		if updateDryRun {
			fmt.Print(merged)
			return nil
		}
		if err := os.WriteFile(outPath, []byte(merged), 0644); err != nil {
			return err
		}
		log.Infof("updated %s", outPath)
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateMode, "mode", string(readme.ModeFull), "merge mode: full, selective, version-only")
	updateCmd.Flags().StringSliceVar(&updateSections, "sections", nil, "sections to regenerate in selective mode")
	updateCmd.Flags().BoolVar(&updatePreserveHeader, "preserve-header", false, "keep the existing pre-heading header region")
	updateCmd.Flags().BoolVar(&updateMatchLevels, "match-levels", false, "require heading levels to agree when matching sections")
	updateCmd.Flags().BoolVar(&updateDryRun, "dry-run", false, "print the merged README instead of writing it")
	rootCmd.AddCommand(updateCmd)
}

func reportIssues(analysis *readme.Analysis, info project.Info) {
	for _, issue := range readme.DetectIssues(analysis, info) {
		log.Warnf("[%s/%s] %s", issue.Kind, issue.Severity, issue.Message)
	}
}

func reportDiff(summary readme.DiffSummary) {
	if len(summary.Added) > 0 {
		log.Infof("added: %s", strings.Join(summary.Added, ", "))
	}
	if len(summary.Removed) > 0 {
		log.Infof("removed: %s", strings.Join(summary.Removed, ", "))
	}
	if len(summary.Modified) > 0 {
		log.Infof("modified: %s", strings.Join(summary.Modified, ", "))
	}
	log.Debugf("unchanged: %d sections", len(summary.Unchanged))
}
