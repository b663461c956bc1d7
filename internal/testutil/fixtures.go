package testutil

import (
	"embed"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/firefly-engineering/firefly-forage/packages/forage-build/internal/folder"
)

//go:embed fixtures/*.json
var fixturesFS embed.FS

// LoadFixture loads a fixture file by name.
func LoadFixture(name string) ([]byte, error) {
	return fixturesFS.ReadFile("fixtures/" + name)
}

// MustFixture loads a fixture file and fails the test if it is missing.
func MustFixture(t *testing.T, name string) string {
	t.Helper()
	data, err := LoadFixture(name)
	if err != nil {
		t.Fatalf("Failed to load fixture %s: %v", name, err)
	}
	return string(data)
}

// Project is a project folder layout: file paths (slash-separated,
// relative to the folder) to contents, plus empty directories.
type Project struct {
	Files map[string]string
	Dirs  []string
}

// Mock builds a MockFolder holding the project.
func (p Project) Mock(path string) *folder.MockFolder {
	m := folder.NewMockFolder(path)
	for _, name := range p.paths() {
		m.AddFile(name, []byte(p.Files[name]))
	}
	for _, dir := range p.Dirs {
		m.AddDir(dir)
	}
	return m
}

// Write creates the project under dir.
func (p Project) Write(t *testing.T, dir string) {
	t.Helper()

	for _, name := range p.paths() {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("Failed to create directory for %s: %v", name, err)
		}
		if err := os.WriteFile(path, []byte(p.Files[name]), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}
	for _, d := range p.Dirs {
		if err := os.MkdirAll(filepath.Join(dir, filepath.FromSlash(d)), 0755); err != nil {
			t.Fatalf("Failed to create directory %s: %v", d, err)
		}
	}
}

// TempProject writes the project into a fresh temp directory and opens it.
func TempProject(t *testing.T, p Project) (*folder.OSFolder, string) {
	t.Helper()

	dir := t.TempDir()
	p.Write(t, dir)

	f, err := folder.Open(dir)
	if err != nil {
		t.Fatalf("Failed to open project folder: %v", err)
	}
	return f, dir
}

func (p Project) paths() []string {
	names := make([]string, 0, len(p.Files))
	for name := range p.Files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func mustLoad(name string) string {
	data, err := LoadFixture(name)
	if err != nil {
		panic("testutil: missing fixture " + name)
	}
	return string(data)
}

// NodeProject is a Node.js project with a start script.
func NodeProject() Project {
	return Project{Files: map[string]string{
		"package.json": mustLoad("package_start.json"),
		"index.js":     "require('http').createServer().listen(8080)\n",
	}}
}

// NodeInstallProject is a Node.js project with an install script.
func NodeInstallProject() Project {
	return Project{Files: map[string]string{
		"package.json": mustLoad("package_install.json"),
		"server.js":    "",
	}}
}

// TypeScriptProject is a TypeScript project.
func TypeScriptProject() Project {
	return Project{Files: map[string]string{
		"package.json":  mustLoad("package_typescript.json"),
		"tsconfig.json": `{"compilerOptions":{"outDir":"dist"}}`,
		"src/index.ts":  "",
	}}
}

// DockerProject is a containerized Node.js project.
func DockerProject() Project {
	return Project{Files: map[string]string{
		"dockerfile":   "FROM node:20\n",
		"package.json": mustLoad("package_start.json"),
	}}
}

// GoProject is a Go module.
func GoProject() Project {
	return Project{Files: map[string]string{
		"go.mod":  "module example.com/app\n\ngo 1.22\n",
		"main.go": "package main\n\nfunc main() {}\n",
	}}
}

// RustProject is a built Cargo project with a Windows executable.
func RustProject() Project {
	return Project{Files: map[string]string{
		"Cargo.toml":             "[package]\nname = \"app\"\nversion = \"0.1.0\"\n",
		"src/main.rs":            "fn main() {}\n",
		"target/release/app.exe": "MZ",
	}}
}

// GradleProject is a built Gradle project.
func GradleProject() Project {
	return Project{Files: map[string]string{
		"gradlew":                      "#!/bin/sh\n",
		"settings.gradle":              "rootProject.name = 'demo'\n",
		"build/install/demo/bin/demo":  "#!/bin/sh\n",
		"build/install/demo/lib/a.jar": "",
	}}
}

// CSharpProject is a built .NET project.
func CSharpProject() Project {
	return Project{Files: map[string]string{
		"App.csproj":                     "<Project Sdk=\"Microsoft.NET.Sdk\"></Project>\n",
		"bin/Release/net8.0/App":         "",
		"bin/Release/net8.0/App.dll":     "",
		"bin/Release/net8.0/App.pdb":     "",
		"bin/Release/net8.0/appsettings": "",
	}}
}

// PythonProject is a Python project.
func PythonProject() Project {
	return Project{Files: map[string]string{
		"requirements.txt": "flask==3.0.0\n",
		"app.py":           "",
	}}
}
