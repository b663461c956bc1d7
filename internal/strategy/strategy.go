package strategy

import (
	"fmt"

	"github.com/firefly-engineering/firefly-forage/packages/forage-build/internal/errors"
	"github.com/firefly-engineering/firefly-forage/packages/forage-build/internal/folder"
	"github.com/firefly-engineering/firefly-forage/packages/forage-build/internal/project"
)

// RunCommandFunc yields the single shell command that starts a built project.
type RunCommandFunc func(f folder.Folder) (string, error)

// BuildCommandsFunc yields the ordered shell commands that build a project.
type BuildCommandsFunc func(f folder.Folder) ([]string, error)

type providers struct {
	run   RunCommandFunc
	build BuildCommandsFunc
}

// Strategy is the pair of providers for one archetype.
type Strategy struct {
	Type project.ProjectType
	providers
}

// RunCommand returns the run command for the folder.
func (s Strategy) RunCommand(f folder.Folder) (string, error) {
	return s.run(f)
}

// BuildCommands returns the build command list for the folder.
func (s Strategy) BuildCommands(f folder.Folder) ([]string, error) {
	return s.build(f)
}

// registry has exactly one entry per archetype, indexed by ProjectType.
// It is filled at init and never modified afterwards.
var registry [project.NumTypes]Strategy

func init() {
	entries := map[project.ProjectType]providers{
		project.Docker:     {unsupportedDocker, unsupportedDockerBuild},
		project.NodeJS:     {nodeRunCommand, nodeBuild(false)},
		project.TypeScript: {nodeRunCommand, nodeBuild(true)},
		project.Gradle:     {gradleRunCommand, gradleBuild},
		project.Maven:      comingSoon(project.Maven),
		project.Python:     comingSoon(project.Python),
		project.PHP:        comingSoon(project.PHP),
		project.Ruby:       comingSoon(project.Ruby),
		project.Go:         {goRunCommand, goBuild},
		project.Scala:      comingSoon(project.Scala),
		project.Clojure:    comingSoon(project.Clojure),
		project.Rust:       {rustRunCommand, rustBuild},
		project.CSharp:     {csharpRunCommand, csharpBuild},
	}

	for _, t := range project.AllProjectTypes() {
		e, ok := entries[t]
		if !ok || e.run == nil || e.build == nil {
			panic(fmt.Sprintf("strategy: no providers registered for %s", t))
		}
		registry[t] = Strategy{Type: t, providers: e}
	}
}

// For returns the strategy for t.
func For(t project.ProjectType) (Strategy, error) {
	if !t.Valid() {
		return Strategy{}, errors.ValidationError(fmt.Sprintf("invalid project type %d", int(t)))
	}
	return registry[t], nil
}

// RunCommand looks up t's strategy and returns the folder's run command.
func RunCommand(t project.ProjectType, f folder.Folder) (string, error) {
	s, err := For(t)
	if err != nil {
		return "", err
	}
	return s.RunCommand(f)
}

// BuildCommands looks up t's strategy and returns the folder's build commands.
func BuildCommands(t project.ProjectType, f folder.Folder) ([]string, error) {
	s, err := For(t)
	if err != nil {
		return nil, err
	}
	return s.BuildCommands(f)
}
