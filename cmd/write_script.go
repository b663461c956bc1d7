package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-forage/packages/forage-build/internal/app"
)

var writeScriptType typeFlag

var writeScriptCmd = &cobra.Command{
	Use:   "write-script <dir>",
	Short: "Write the build commands to a new script in the project directory",
	Long: `Write the project's build commands, one per line, to a new file with a
unique name inside the project directory and print the file name.

The script is not executable and is never run or removed by forage-build.`,
	Args: cobra.ExactArgs(1),
	RunE: runWriteScript,
}

func init() {
	writeScriptType.register(writeScriptCmd)
	rootCmd.AddCommand(writeScriptCmd)
}

func runWriteScript(cmd *cobra.Command, args []string) error {
	opts, err := writeScriptType.options()
	if err != nil {
		return err
	}

	f, err := openFolder(args[0])
	if err != nil {
		return err
	}

	artifact, err := planner().WriteScript(f, opts)
	if err != nil {
		return err
	}

	app.Default.RecordScript(artifact)

	fmt.Fprintln(cmd.OutOrStdout(), artifact.Name)
	return nil
}
