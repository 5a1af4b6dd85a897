package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"readmegen/internal/config"
	"readmegen/internal/project"
	"readmegen/internal/readme"
)

var checkCmd = &cobra.Command{
	Use:   "check [path]",
	Short: "Report README staleness without calling the model",
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

		info, err := project.Load(root)
		if err != nil {
			return err
		}

		analysis := readme.Parse(string(raw))
		log.Debugf("%d sections, %d custom, %d badges",
			len(analysis.Sections), len(analysis.CustomSections), len(analysis.Metadata.Badges))

		issues := readme.DetectIssues(analysis, info)
		for _, issue := range issues {
			log.Warnf("[%s/%s] %s", issue.Kind, issue.Severity, issue.Message)
		}
		for _, s := range readme.SuggestSectionsToReview(analysis, info) {
			log.Infof("review %s (%s): %s", s.Name, s.Priority, s.Reason)
		}

		if len(issues) > 0 {
			return fmt.Errorf("%d staleness issue(s) found", len(issues))
		}
		log.Info("README is up to date")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
