package cmd

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	cfgFile  string
	logLevel string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "readmegen",
	Short: "Generate and maintain README files with the Gemini API.",
	Long: `readmegen analyzes a local project (manifest, file tree, exported
symbols), asks the Gemini API for a README in markdown, and writes the
result. When a README already exists it performs a section-aware merge that
refreshes generated content while preserving user-authored sections.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := log.ParseLevel(logLevel)
		if err != nil {
			level = log.InfoLevel
		}
		log.SetLevel(level)
	},
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "readmegen.yaml", "config file")
	rootCmd.PersistentFlags().StringVarP(&logLevel, "loglevel", "l", "info", "log level: debug, info, warn, error")
}

// projectRoot resolves the positional path argument, defaulting to the
// current directory.
func projectRoot(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}
