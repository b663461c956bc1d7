// Package strategy holds the per-archetype command strategies.
//
// Every project.ProjectType has exactly one Strategy with two providers:
//
//   - RunCommand: the shell command that starts the built artifact
//   - BuildCommands: the ordered shell commands that build it
//
// The registry is filled once at init and checked there, so a type
// without both providers panics at startup rather than at lookup.
// Archetypes without an implementation fail with UnsupportedProjectType
// ("<Type> support is coming soon"); docker fails with
// UnsupportedConfiguration.
//
//	cmd, err := strategy.RunCommand(project.Go, f)     // "./app"
//	cmds, err := strategy.BuildCommands(project.Rust, f) // ["cargo build --release"]
//
// Providers only read the folder. Node run commands come from
// package.json (scripts.start, then server.js, app.js, main); gradle,
// rust and csharp run commands point at the build output found on disk.
package strategy
