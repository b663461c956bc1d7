package folder

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	securejoin "github.com/cyphar/filepath-securejoin"
)

// Folder is read access to a checked-out project directory plus the one
// write forage-build ever performs: exclusive creation of a new file.
// Relative paths are resolved inside the folder root.
type Folder interface {
	// Path returns the folder path as given by the caller.
	Path() string

	// Entries returns the immediate child names (files and directories), sorted.
	Entries() ([]string, error)

	// Exists reports whether rel exists inside the folder.
	Exists(rel string) bool

	// ReadFile reads the file at rel.
	ReadFile(rel string) ([]byte, error)

	// ReadDir returns the sorted child names of the directory at rel.
	ReadDir(rel string) ([]string, error)

	// CreateExclusive creates a new file named name with data.
	// It fails with an error matching fs.ErrExist if name is already present.
	CreateExclusive(name string, data []byte, perm fs.FileMode) error
}

// writeData writes a new file's contents; tests replace it to simulate
// a failing disk.
var writeData = func(file *os.File, data []byte) error {
	_, err := file.Write(data)
	return err
}

// OSFolder implements Folder on the real filesystem.
type OSFolder struct {
	path string
	root string
}

// Open returns an OSFolder for path, which must be an existing directory.
func Open(path string) (*OSFolder, error) {
	root, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("invalid folder path %s: %w", path, err)
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", path)
	}

	return &OSFolder{path: path, root: root}, nil
}

func (f *OSFolder) Path() string {
	return f.path
}

// resolve joins rel onto the root without letting ".." or symlinks escape it.
func (f *OSFolder) resolve(rel string) (string, error) {
	return securejoin.SecureJoin(f.root, rel)
}

func (f *OSFolder) Entries() ([]string, error) {
	return f.ReadDir(".")
}

func (f *OSFolder) Exists(rel string) bool {
	p, err := f.resolve(rel)
	if err != nil {
		return false
	}
	_, err = os.Stat(p)
	return err == nil
}

func (f *OSFolder) ReadFile(rel string) ([]byte, error) {
	p, err := f.resolve(rel)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(p)
}

func (f *OSFolder) ReadDir(rel string) ([]string, error) {
	p, err := f.resolve(rel)
	if err != nil {
		return nil, err
	}

	// os.ReadDir returns entries sorted by name
	entries, err := os.ReadDir(p)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}

func (f *OSFolder) CreateExclusive(name string, data []byte, perm fs.FileMode) error {
	if filepath.Base(name) != name {
		return fmt.Errorf("invalid file name %q: must be a single path element", name)
	}

	p, err := f.resolve(name)
	if err != nil {
		return err
	}

	file, err := os.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return err
	}

	if err := writeData(file, data); err != nil {
		file.Close()
		// The name is ours alone, so a partial file is removed
		os.Remove(p)
		return err
	}
	if err := file.Close(); err != nil {
		os.Remove(p)
		return err
	}
	return nil
}
