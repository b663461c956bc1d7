package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var runCommandType typeFlag

var runCommandCmd = &cobra.Command{
	Use:   "run-command <dir>",
	Short: "Print the command that runs a built project",
	Long: `Print the shell command that runs the project's built artifact.

Gradle, Rust and C# projects must be built first: their run command
points at build output.`,
	Args: cobra.ExactArgs(1),
	RunE: runRunCommand,
}

func init() {
	runCommandType.register(runCommandCmd)
	rootCmd.AddCommand(runCommandCmd)
}

func runRunCommand(cmd *cobra.Command, args []string) error {
	opts, err := runCommandType.options()
	if err != nil {
		return err
	}

	f, err := openFolder(args[0])
	if err != nil {
		return err
	}

	command, err := planner().RunCommand(f, opts)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), command)
	return nil
}
