package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-forage/packages/forage-build/internal/app"
	"github.com/firefly-engineering/firefly-forage/packages/forage-build/internal/logging"
)

var (
	verbose    bool
	jsonOutput bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "forage-build",
	Short: "Detect project types and derive their build and run commands",
	Long: `forage-build inspects a checked-out project directory, classifies it
by the files at its top level, and derives the shell commands that build
it and run the result.

Supported project types:
  - Node.js and TypeScript (npm)
  - Go, Rust, Gradle and C# (.NET)

Commands are printed or written to a build script. forage-build never
executes them.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.Setup(verbose, jsonOutput, os.Stderr)

		a, err := app.Load(configPath)
		if err != nil {
			return err
		}
		app.SetDefault(a)
		return nil
	},
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		logError("%v", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config.toml (default: user config directory)")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceErrors = true
}

// Helper aliases for user-facing output (delegates to logging package)
var (
	logSuccess = logging.UserSuccess
	logError   = logging.UserError
)
