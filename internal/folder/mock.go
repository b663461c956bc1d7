package folder

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
)

// MockFolder implements Folder in memory for testing.
// Paths are slash-separated and relative to the folder root.
type MockFolder struct {
	mu    sync.RWMutex
	path  string
	files map[string]*mockFile
	dirs  map[string]bool

	// Error injection
	EntriesErr  error
	ReadFileErr error
	ReadDirErr  error
	CreateErr   error

	// Taken lists names CreateExclusive treats as already present without
	// them showing up in Entries, simulating a concurrent writer.
	Taken map[string]bool

	// CreateCalls records every name passed to CreateExclusive.
	CreateCalls []string
}

type mockFile struct {
	data []byte
	mode fs.FileMode
}

// NewMockFolder creates an empty MockFolder reporting the given path.
func NewMockFolder(p string) *MockFolder {
	return &MockFolder{
		path:  p,
		files: make(map[string]*mockFile),
		dirs:  make(map[string]bool),
		Taken: make(map[string]bool),
	}
}

func clean(rel string) string {
	return strings.TrimPrefix(path.Clean("/"+rel), "/")
}

// AddFile adds a file, creating its parent directories.
func (m *MockFolder) AddFile(rel string, data []byte) *MockFolder {
	m.mu.Lock()
	defer m.mu.Unlock()
	rel = clean(rel)
	m.files[rel] = &mockFile{data: data, mode: 0644}
	m.addParents(rel)
	return m
}

// AddDir adds a directory, creating its parents.
func (m *MockFolder) AddDir(rel string) *MockFolder {
	m.mu.Lock()
	defer m.mu.Unlock()
	rel = clean(rel)
	if rel != "" {
		m.dirs[rel] = true
	}
	m.addParents(rel)
	return m
}

func (m *MockFolder) addParents(rel string) {
	for dir := path.Dir(rel); dir != "." && dir != "/"; dir = path.Dir(dir) {
		m.dirs[dir] = true
	}
}

// GetFile returns the contents and mode of a file.
func (m *MockFolder) GetFile(rel string) ([]byte, fs.FileMode, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	f, ok := m.files[clean(rel)]
	if !ok {
		return nil, 0, false
	}
	return f.data, f.mode, true
}

func (m *MockFolder) Path() string {
	return m.path
}

func (m *MockFolder) Entries() ([]string, error) {
	if m.EntriesErr != nil {
		return nil, m.EntriesErr
	}
	return m.ReadDir(".")
}

func (m *MockFolder) Exists(rel string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rel = clean(rel)
	if rel == "" {
		return true
	}
	_, fileOk := m.files[rel]
	return fileOk || m.dirs[rel]
}

func (m *MockFolder) ReadFile(rel string) ([]byte, error) {
	if m.ReadFileErr != nil {
		return nil, m.ReadFileErr
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	f, ok := m.files[clean(rel)]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: rel, Err: fs.ErrNotExist}
	}
	return f.data, nil
}

func (m *MockFolder) ReadDir(rel string) ([]string, error) {
	if m.ReadDirErr != nil {
		return nil, m.ReadDirErr
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	dir := clean(rel)
	if dir != "" && !m.dirs[dir] {
		return nil, &fs.PathError{Op: "open", Path: rel, Err: fs.ErrNotExist}
	}

	parentOf := func(p string) string {
		d := path.Dir(p)
		if d == "." {
			return ""
		}
		return d
	}

	var names []string
	for p := range m.files {
		if parentOf(p) == dir {
			names = append(names, path.Base(p))
		}
	}
	for p := range m.dirs {
		if parentOf(p) == dir {
			names = append(names, path.Base(p))
		}
	}
	sort.Strings(names)
	return names, nil
}

func (m *MockFolder) CreateExclusive(name string, data []byte, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CreateCalls = append(m.CreateCalls, name)

	if m.CreateErr != nil {
		return m.CreateErr
	}
	if path.Base(name) != name {
		return fmt.Errorf("invalid file name %q: must be a single path element", name)
	}
	if _, ok := m.files[name]; ok || m.dirs[name] || m.Taken[name] {
		return &fs.PathError{Op: "open", Path: name, Err: fs.ErrExist}
	}

	m.files[name] = &mockFile{data: append([]byte(nil), data...), mode: perm}
	return nil
}
