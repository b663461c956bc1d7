package cmd

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-forage/packages/forage-build/internal/app"
	"github.com/firefly-engineering/firefly-forage/packages/forage-build/internal/errors"
)

var historyClear bool

var historyCmd = &cobra.Command{
	Use:   "history [dir]",
	Short: "List recorded plans and build scripts",
	Long: `List the plans computed and build scripts written while history is
enabled ([history] enabled = true in config.toml). With a directory, only
its entries are shown.

forage-build never removes the scripts it writes; use this list to find them.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "Delete the recorded history")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	history := app.Default.History
	if history == nil {
		return errors.ValidationError("history is disabled; set [history] enabled = true in config.toml")
	}

	if historyClear {
		if err := history.Clear(); err != nil {
			return fmt.Errorf("failed to clear history: %w", err)
		}
		logSuccess("Cleared %s", history.Path())
		return nil
	}

	folder := ""
	if len(args) == 1 {
		folder = args[0]
	}

	events, err := history.Events(folder)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tEVENT\tTYPE\tSCRIPT\tFOLDER")
	fmt.Fprintln(w, "----\t-----\t----\t------\t------")

	for _, e := range events {
		projectType := e.ProjectType
		if projectType == "" {
			projectType = "-"
		}
		script := e.Script
		if script == "" {
			script = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", e.Timestamp.Format(time.DateTime), e.Type, projectType, script, e.Folder)
	}

	return w.Flush()
}
