package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var buildCommandsType typeFlag

var buildCommandsCmd = &cobra.Command{
	Use:   "build-commands <dir>",
	Short: "Print the commands that build a project, one per line",
	Args:  cobra.ExactArgs(1),
	RunE:  runBuildCommands,
}

func init() {
	buildCommandsType.register(buildCommandsCmd)
	rootCmd.AddCommand(buildCommandsCmd)
}

func runBuildCommands(cmd *cobra.Command, args []string) error {
	opts, err := buildCommandsType.options()
	if err != nil {
		return err
	}

	f, err := openFolder(args[0])
	if err != nil {
		return err
	}

	commands, err := planner().BuildCommands(f, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, c := range commands {
		fmt.Fprintln(out, c)
	}
	return nil
}
