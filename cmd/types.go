package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-forage/packages/forage-build/internal/project"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List project types and the entries that identify them",
	Long: `List project types in detection order. The first type whose marker is
present at the top level of a directory wins.`,
	RunE: runTypes,
}

func init() {
	rootCmd.AddCommand(typesCmd)
}

func runTypes(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRIORITY\tTYPE\tNAME\tMARKERS")
	fmt.Fprintln(w, "--------\t----\t----\t-------")

	detected := make(map[project.ProjectType]bool)
	for i, r := range project.Rules() {
		detected[r.Type] = true

		markers := append([]string(nil), r.Markers...)
		if r.Suffix != "" {
			markers = append(markers, "*"+r.Suffix)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i+1, r.Type, r.Type.DisplayName(), strings.Join(markers, ", "))
	}

	for _, t := range project.AllProjectTypes() {
		if !detected[t] {
			fmt.Fprintf(w, "-\t%s\t%s\t-\n", t, t.DisplayName())
		}
	}

	return w.Flush()
}
