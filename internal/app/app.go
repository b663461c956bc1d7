// Package app provides the application context for forage-build.
// It allows dependency injection for testing.
package app

import (
	"github.com/firefly-engineering/firefly-forage/packages/forage-build/internal/audit"
	"github.com/firefly-engineering/firefly-forage/packages/forage-build/internal/config"
	"github.com/firefly-engineering/firefly-forage/packages/forage-build/internal/errors"
	"github.com/firefly-engineering/firefly-forage/packages/forage-build/internal/folder"
	"github.com/firefly-engineering/firefly-forage/packages/forage-build/internal/logging"
	"github.com/firefly-engineering/firefly-forage/packages/forage-build/internal/plan"
	"github.com/firefly-engineering/firefly-forage/packages/forage-build/internal/script"
)

// Opener opens a project folder by path
type Opener func(path string) (folder.Folder, error)

// App holds the application dependencies
type App struct {
	// Config is the loaded tool configuration
	Config *config.Config

	// Planner classifies folders and derives their commands
	Planner *plan.Planner

	// Open opens project folders
	Open Opener

	// History records written scripts; nil when disabled
	History *audit.Logger
}

// Option is a function that configures the App
type Option func(*App)

// WithConfig sets a custom configuration
func WithConfig(cfg *config.Config) Option {
	return func(a *App) {
		a.Config = cfg
	}
}

// WithPlanner sets a custom planner
func WithPlanner(p *plan.Planner) Option {
	return func(a *App) {
		a.Planner = p
	}
}

// WithOpener sets a custom folder opener
func WithOpener(open Opener) Option {
	return func(a *App) {
		a.Open = open
	}
}

// WithHistory sets a custom history logger
func WithHistory(l *audit.Logger) Option {
	return func(a *App) {
		a.History = l
	}
}

// New creates a new App with the given options.
// If no planner is provided, one is built from the script configuration.
func New(opts ...Option) *App {
	app := &App{
		Config: config.Default(),
		Open:   openOS,
	}

	for _, opt := range opts {
		opt(app)
	}

	if app.Planner == nil {
		w, err := script.FromConfig(app.Config.Script)
		if err != nil {
			logging.Debug("falling back to default script writer", "error", err)
			w = script.NewWriter()
		}
		app.Planner = plan.New(w)
	}

	return app
}

// Load creates an App from the configuration file at path.
// An empty path uses the default location.
func Load(path string, opts ...Option) (*App, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, errors.ConfigError("failed to load configuration", err)
	}

	w, err := script.FromConfig(cfg.Script)
	if err != nil {
		return nil, err
	}

	base := []Option{WithConfig(cfg), WithPlanner(plan.New(w))}

	if cfg.History.Enabled {
		dir, err := cfg.History.HistoryDir()
		if err != nil {
			return nil, errors.ConfigError("failed to resolve history directory", err)
		}
		base = append(base, WithHistory(audit.NewLogger(dir)))
	}

	return New(append(base, opts...)...), nil
}

// OpenFolder opens the project folder at path
func (a *App) OpenFolder(path string) (folder.Folder, error) {
	f, err := a.Open(path)
	if err != nil {
		return nil, errors.FolderError("open", err)
	}
	return f, nil
}

// RecordScript adds a written script to the history, if enabled.
// History failures are logged and never fail the command.
func (a *App) RecordScript(artifact *script.Artifact) {
	if a.History == nil || artifact == nil {
		return
	}
	if err := a.History.LogScript(artifact); err != nil {
		logging.Warn("failed to record build script", "path", artifact.Path, "error", err)
	}
}

// RecordPlan adds a computed plan to the history, if enabled.
func (a *App) RecordPlan(p *plan.Plan) {
	if a.History == nil || p == nil {
		return
	}
	if err := a.History.LogPlan(p); err != nil {
		logging.Warn("failed to record plan", "path", p.Folder, "error", err)
	}
}

func openOS(path string) (folder.Folder, error) {
	return folder.Open(path)
}

// Default is the default application instance
var Default = New()

// SetDefault sets the default application instance (used for testing)
func SetDefault(app *App) {
	Default = app
}

// ResetDefault resets to the default application instance
func ResetDefault() {
	Default = New()
}
