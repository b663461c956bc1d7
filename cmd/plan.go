package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-forage/packages/forage-build/internal/app"
	"github.com/firefly-engineering/firefly-forage/packages/forage-build/internal/config"
	"github.com/firefly-engineering/firefly-forage/packages/forage-build/internal/errors"
	"github.com/firefly-engineering/firefly-forage/packages/forage-build/internal/plan"
)

var (
	planType      typeFlag
	planWrite     bool
	planBuildOnly bool
	planOutput    string
)

var planCmd = &cobra.Command{
	Use:   "plan <dir>",
	Short: "Detect a project and print its run and build commands",
	Long: `Detect the project type and print everything derived from it: the run
command, the build commands and, with --write, the build script written.

Use --build-only on projects that have not been built yet, since Gradle,
Rust and C# run commands point at build output.`,
	Args: cobra.ExactArgs(1),
	RunE: runPlan,
}

var (
	planLabelStyle = lipgloss.NewStyle().Bold(true).Width(8)
	planTypeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	planCmdStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	planDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func init() {
	planType.register(planCmd)
	planCmd.Flags().BoolVar(&planWrite, "write", false, "Write the build commands to a script in the project directory")
	planCmd.Flags().BoolVar(&planBuildOnly, "build-only", false, "Skip the run command")
	planCmd.Flags().StringVarP(&planOutput, "output", "o", "", "Output format: text or json (default from config)")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	format := app.Default.Config.Output.Format
	if cmd.Flags().Changed("output") {
		format = planOutput
	}
	if format != config.FormatText && format != config.FormatJSON {
		return errors.ValidationError(fmt.Sprintf("invalid output format: %s (must be text or json)", format))
	}

	opts, err := planType.options()
	if err != nil {
		return err
	}
	opts.SkipRunCommand = planBuildOnly
	opts.WriteScript = planWrite

	f, err := openFolder(args[0])
	if err != nil {
		return err
	}

	result, err := planner().Plan(f, opts)
	if err != nil {
		return err
	}

	app.Default.RecordScript(result.Script)
	app.Default.RecordPlan(result)

	if format == config.FormatJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printPlan(cmd.OutOrStdout(), result)
	if result.Script != nil {
		logSuccess("Wrote build script %s", result.Script.Path)
	}
	return nil
}

func printPlan(w io.Writer, p *plan.Plan) {
	fmt.Fprintf(w, "%s %s\n", planLabelStyle.Render("Folder"), p.Folder)

	typeLine := planTypeStyle.Render(p.Type.String())
	if p.Marker != "" {
		typeLine += planDimStyle.Render(fmt.Sprintf(" (%s, matched %s)", p.Type.DisplayName(), p.Marker))
	}
	fmt.Fprintf(w, "%s %s\n", planLabelStyle.Render("Type"), typeLine)

	if p.RunCommand != "" {
		fmt.Fprintf(w, "%s %s\n", planLabelStyle.Render("Run"), planCmdStyle.Render(p.RunCommand))
	}

	fmt.Fprintln(w, planLabelStyle.Render("Build"))
	for _, c := range p.BuildCommands {
		fmt.Fprintf(w, "  %s\n", planCmdStyle.Render(c))
	}

	if p.Script != nil {
		fmt.Fprintf(w, "%s %s\n", planLabelStyle.Render("Script"), p.Script.Name)
	}
}
