// Package testutil provides test fixtures and project folder builders.
//
// # Fixtures
//
// package.json fixtures are embedded using go:embed:
//
//	fixtures/package_start.json       // scripts.start set
//	fixtures/package_empty.json       // {}
//	fixtures/package_main.json        // main only
//	fixtures/package_install.json     // scripts.install set
//	fixtures/package_typescript.json  // TypeScript app
//
// # Project Layouts
//
// Project describes a folder layout. Ready-made layouts exist for each
// supported archetype (NodeProject, GoProject, RustProject, ...):
//
//	f := testutil.GoProject().Mock("/src/app")        // in memory
//	f, dir := testutil.TempProject(t, testutil.RustProject()) // on disk
//
// Layouts are defined in code rather than embedded directories because
// a fixture tree holding a go.mod would be a separate module to embed.
package testutil
