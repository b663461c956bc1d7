package plan

import (
	"github.com/firefly-engineering/firefly-forage/packages/forage-build/internal/folder"
	"github.com/firefly-engineering/firefly-forage/packages/forage-build/internal/logging"
	"github.com/firefly-engineering/firefly-forage/packages/forage-build/internal/project"
	"github.com/firefly-engineering/firefly-forage/packages/forage-build/internal/script"
	"github.com/firefly-engineering/firefly-forage/packages/forage-build/internal/strategy"
)

// Plan is everything forage-build derives for one folder.
type Plan struct {
	Folder        string              `json:"folder"`
	Type          project.ProjectType `json:"type"`
	Marker        string              `json:"marker,omitempty"`
	RunCommand    string              `json:"runCommand,omitempty"`
	BuildCommands []string            `json:"buildCommands"`
	Script        *script.Artifact    `json:"script,omitempty"`
}

// Options controls what Plan computes.
type Options struct {
	// Type skips classification when set.
	Type *project.ProjectType

	// SkipRunCommand leaves RunCommand empty. Gradle, rust and csharp run
	// commands need build output, which does not exist before the build.
	SkipRunCommand bool

	// WriteScript materializes the build commands into the folder.
	WriteScript bool
}

// Planner chains classification, strategy lookup and script writing.
type Planner struct {
	writer *script.Writer
}

// New creates a Planner writing scripts with w.
func New(w *script.Writer) *Planner {
	if w == nil {
		w = script.NewWriter()
	}
	return &Planner{writer: w}
}

// Resolve returns opts.Type if set, otherwise the folder's classification.
func (p *Planner) Resolve(f folder.Folder, opts Options) (project.Match, error) {
	if opts.Type != nil {
		return project.Match{Type: *opts.Type}, nil
	}
	return project.DetectMatch(f)
}

// RunCommand classifies f (unless overridden) and returns its run command.
func (p *Planner) RunCommand(f folder.Folder, opts Options) (string, error) {
	m, err := p.Resolve(f, opts)
	if err != nil {
		return "", err
	}
	return strategy.RunCommand(m.Type, f)
}

// BuildCommands classifies f (unless overridden) and returns its build commands.
func (p *Planner) BuildCommands(f folder.Folder, opts Options) ([]string, error) {
	m, err := p.Resolve(f, opts)
	if err != nil {
		return nil, err
	}
	return strategy.BuildCommands(m.Type, f)
}

// WriteScript classifies f (unless overridden) and writes its build script.
func (p *Planner) WriteScript(f folder.Folder, opts Options) (*script.Artifact, error) {
	commands, err := p.BuildCommands(f, opts)
	if err != nil {
		return nil, err
	}
	return p.writer.Write(commands, f)
}

// Plan computes the full plan. Any failing step fails the whole plan;
// the script is written last so a failed plan leaves the folder untouched.
func (p *Planner) Plan(f folder.Folder, opts Options) (*Plan, error) {
	m, err := p.Resolve(f, opts)
	if err != nil {
		return nil, err
	}

	s, err := strategy.For(m.Type)
	if err != nil {
		return nil, err
	}

	result := &Plan{
		Folder: f.Path(),
		Type:   m.Type,
		Marker: m.Marker,
	}

	if !opts.SkipRunCommand {
		result.RunCommand, err = s.RunCommand(f)
		if err != nil {
			return nil, err
		}
	}

	result.BuildCommands, err = s.BuildCommands(f)
	if err != nil {
		return nil, err
	}

	if opts.WriteScript {
		result.Script, err = p.writer.Write(result.BuildCommands, f)
		if err != nil {
			return nil, err
		}
	}

	logging.ForFolder(f.Path()).Debug("planned build",
		"type", m.Type,
		"buildCommands", len(result.BuildCommands),
		"script", result.Script != nil,
	)

	return result, nil
}
