// Package app provides the application context for forage-build.
//
// This package manages application-wide dependencies using the functional
// options pattern, enabling easy testing through dependency injection.
//
// # App Context
//
// The App struct holds core dependencies:
//
//	type App struct {
//	    Config  *config.Config // Tool configuration
//	    Planner *plan.Planner  // Classification and command derivation
//	    Open    Opener         // Project folder access
//	    History *audit.Logger  // Written script history, nil when disabled
//	}
//
// # Creating an App
//
//	// From the configuration file
//	a, err := app.Load(configPath)
//
//	// Testing with custom dependencies
//	a := app.New(
//	    app.WithConfig(testConfig),
//	    app.WithOpener(func(string) (folder.Folder, error) { return mock, nil }),
//	)
//
// # Available Options
//
//	WithConfig(cfg)     // Custom configuration
//	WithPlanner(p)      // Custom planner
//	WithOpener(open)    // Custom folder opener
//	WithHistory(l)      // Custom history logger
package app
