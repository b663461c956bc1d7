package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-forage/packages/forage-build/internal/project"
)

var detectExplain bool

var detectCmd = &cobra.Command{
	Use:   "detect <dir>",
	Short: "Print the project type of a directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runDetect,
}

func init() {
	detectCmd.Flags().BoolVar(&detectExplain, "explain", false, "Also print the entry that decided the type")
	rootCmd.AddCommand(detectCmd)
}

func runDetect(cmd *cobra.Command, args []string) error {
	f, err := openFolder(args[0])
	if err != nil {
		return err
	}

	m, err := project.DetectMatch(f)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if detectExplain {
		fmt.Fprintf(out, "%s (%s, matched %s)\n", m.Type, m.Type.DisplayName(), m.Marker)
		return nil
	}
	fmt.Fprintln(out, m.Type)
	return nil
}
