// Package folder provides access to a checked-out project directory.
//
// Folder is the read-only view classification and command synthesis run
// against, plus CreateExclusive for build script materialization:
//
//	f, err := folder.Open("/srv/checkouts/app")
//	entries, err := f.Entries()
//	data, err := f.ReadFile("package.json")
//
// OSFolder resolves every relative path with filepath-securejoin, so
// ".." components and symlinks inside the project cannot reach outside
// the folder root. Listings are sorted by name, which makes "first entry"
// lookups deterministic.
//
// MockFolder is an in-memory implementation with error injection for tests.
package folder
