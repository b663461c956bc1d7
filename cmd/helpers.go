package cmd

import (
	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-forage/packages/forage-build/internal/app"
	"github.com/firefly-engineering/firefly-forage/packages/forage-build/internal/folder"
	"github.com/firefly-engineering/firefly-forage/packages/forage-build/internal/plan"
	"github.com/firefly-engineering/firefly-forage/packages/forage-build/internal/project"
)

// typeFlag holds the --type override shared by the command subcommands.
type typeFlag struct {
	value string
}

func (f *typeFlag) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.value, "type", "t", "", "Project type to use instead of detecting it")
}

// options converts the flag into plan options.
func (f *typeFlag) options() (plan.Options, error) {
	if f.value == "" {
		return plan.Options{}, nil
	}
	t, err := project.ParseProjectType(f.value)
	if err != nil {
		return plan.Options{}, err
	}
	return plan.Options{Type: &t}, nil
}

// planner returns the application planner.
func planner() *plan.Planner {
	return app.Default.Planner
}

// openFolder opens the project folder named on the command line.
func openFolder(path string) (folder.Folder, error) {
	return app.Default.OpenFolder(path)
}
