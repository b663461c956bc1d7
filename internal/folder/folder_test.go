package folder

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func newOSFolder(t *testing.T) (*OSFolder, string) {
	t.Helper()
	dir := t.TempDir()
	f, err := Open(dir)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	return f, dir
}

func TestOpen_NotDirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Open(file); err == nil {
		t.Error("Open() should fail for a regular file")
	}
	if _, err := Open(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("Open() should fail for a missing path")
	}
}

func TestOSFolder_EntriesSorted(t *testing.T) {
	f, dir := newOSFolder(t)

	for _, name := range []string{"package.json", "Cargo.toml", "go.mod"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.MkdirAll(filepath.Join(dir, "bin", "Debug"), 0755); err != nil {
		t.Fatal(err)
	}

	entries, err := f.Entries()
	if err != nil {
		t.Fatalf("Entries() error: %v", err)
	}

	want := []string{"Cargo.toml", "bin", "go.mod", "package.json"}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("Entries() = %v, want %v", entries, want)
	}

	sub, err := f.ReadDir("bin")
	if err != nil {
		t.Fatalf("ReadDir() error: %v", err)
	}
	if !reflect.DeepEqual(sub, []string{"Debug"}) {
		t.Errorf("ReadDir(bin) = %v, want [Debug]", sub)
	}
}

func TestOSFolder_ReadAndExists(t *testing.T) {
	f, dir := newOSFolder(t)

	if err := os.WriteFile(filepath.Join(dir, "package.json"), []byte(`{}`), 0644); err != nil {
		t.Fatal(err)
	}

	if !f.Exists("package.json") {
		t.Error("Exists(package.json) should be true")
	}
	if f.Exists("server.js") {
		t.Error("Exists(server.js) should be false")
	}

	data, err := f.ReadFile("package.json")
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("ReadFile() = %q, want %q", data, "{}")
	}
}

func TestOSFolder_StaysInsideRoot(t *testing.T) {
	outside := t.TempDir()
	if err := os.WriteFile(filepath.Join(outside, "secret"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	f, dir := newOSFolder(t)
	if err := os.Symlink(outside, filepath.Join(dir, "link")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	if f.Exists("link/secret") {
		t.Error("symlink should not resolve outside the folder")
	}
	rel, _ := filepath.Rel(dir, filepath.Join(outside, "secret"))
	if _, err := f.ReadFile(rel); err == nil {
		t.Error("ReadFile with .. should not escape the folder")
	}
}

func TestOSFolder_CreateExclusive(t *testing.T) {
	f, dir := newOSFolder(t)

	if err := f.CreateExclusive("f123", []byte("a\nb"), 0644); err != nil {
		t.Fatalf("CreateExclusive() error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "f123"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "a\nb" {
		t.Errorf("contents = %q, want %q", data, "a\nb")
	}

	info, err := os.Stat(filepath.Join(dir, "f123"))
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm()&0111 != 0 {
		t.Errorf("file should not be executable, mode %v", info.Mode())
	}

	err = f.CreateExclusive("f123", []byte("other"), 0644)
	if !errors.Is(err, fs.ErrExist) {
		t.Errorf("second CreateExclusive() error = %v, want fs.ErrExist", err)
	}

	data, _ = os.ReadFile(filepath.Join(dir, "f123"))
	if string(data) != "a\nb" {
		t.Errorf("existing file was overwritten: %q", data)
	}

	if err := f.CreateExclusive("../escape", nil, 0644); err == nil {
		t.Error("CreateExclusive() should reject names with separators")
	}
}

func TestMockFolder(t *testing.T) {
	m := NewMockFolder("/src/app")
	m.AddFile("package.json", []byte(`{}`)).
		AddFile("bin/Release/net8.0/app", []byte("elf")).
		AddDir("build/install")

	if m.Path() != "/src/app" {
		t.Errorf("Path() = %q", m.Path())
	}

	entries, err := m.Entries()
	if err != nil {
		t.Fatalf("Entries() error: %v", err)
	}
	want := []string{"bin", "build", "package.json"}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("Entries() = %v, want %v", entries, want)
	}

	names, err := m.ReadDir("bin/Release")
	if err != nil {
		t.Fatalf("ReadDir() error: %v", err)
	}
	if !reflect.DeepEqual(names, []string{"net8.0"}) {
		t.Errorf("ReadDir(bin/Release) = %v", names)
	}

	names, err = m.ReadDir("build/install")
	if err != nil {
		t.Fatalf("ReadDir(empty dir) error: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("ReadDir(build/install) = %v, want empty", names)
	}

	if _, err := m.ReadDir("missing"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadDir(missing) error = %v, want fs.ErrNotExist", err)
	}
	if !m.Exists("build/install") || m.Exists("target") {
		t.Error("Exists() mismatch")
	}
}

func TestMockFolder_CreateExclusive(t *testing.T) {
	m := NewMockFolder("/src/app")
	m.Taken["f1"] = true

	if err := m.CreateExclusive("f1", nil, 0644); !errors.Is(err, fs.ErrExist) {
		t.Errorf("CreateExclusive(taken) error = %v, want fs.ErrExist", err)
	}
	if err := m.CreateExclusive("f2", []byte("x"), 0600); err != nil {
		t.Fatalf("CreateExclusive() error: %v", err)
	}

	data, mode, ok := m.GetFile("f2")
	if !ok || string(data) != "x" || mode != 0600 {
		t.Errorf("GetFile(f2) = %q, %o, %v", data, mode, ok)
	}
	if !reflect.DeepEqual(m.CreateCalls, []string{"f1", "f2"}) {
		t.Errorf("CreateCalls = %v", m.CreateCalls)
	}
}

func TestOSFolder_CreateExclusive_WriteFailure(t *testing.T) {
	f, dir := newOSFolder(t)

	orig := writeData
	defer func() { writeData = orig }()
	diskFull := errors.New("no space left on device")
	writeData = func(file *os.File, data []byte) error {
		file.Write(data[:1])
		return diskFull
	}

	err := f.CreateExclusive("f7", []byte("npm ci"), 0644)
	if !errors.Is(err, diskFull) {
		t.Fatalf("CreateExclusive() error = %v, want the write error", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "f7")); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("partial script left behind: stat error = %v", err)
	}

	// The name is free again
	writeData = orig
	if err := f.CreateExclusive("f7", []byte("npm ci"), 0644); err != nil {
		t.Errorf("CreateExclusive() after cleanup error: %v", err)
	}
}
