package script

import (
	"fmt"
	"io/fs"
	"math/rand/v2"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/firefly-engineering/firefly-forage/packages/forage-build/internal/config"
	"github.com/firefly-engineering/firefly-forage/packages/forage-build/internal/errors"
	"github.com/firefly-engineering/firefly-forage/packages/forage-build/internal/folder"
	"github.com/firefly-engineering/firefly-forage/packages/forage-build/internal/logging"
)

// Artifact is a materialized build script.
type Artifact struct {
	Name     string        `json:"name"`
	Path     string        `json:"path"`
	Folder   folder.Folder `json:"-"`
	Contents string        `json:"-"`
}

// Commands splits the contents back into the command list Write was given.
func (a *Artifact) Commands() []string {
	return strings.Split(a.Contents, "\n")
}

// Writer writes build command lists into uniquely named files.
type Writer struct {
	prefix      string
	mode        fs.FileMode
	maxAttempts int
	suffix      func() uint64
}

// Option configures a Writer
type Option func(*Writer)

// WithPrefix sets the file name prefix
func WithPrefix(prefix string) Option {
	return func(w *Writer) {
		w.prefix = prefix
	}
}

// WithMode sets the permissions of created scripts
func WithMode(mode fs.FileMode) Option {
	return func(w *Writer) {
		w.mode = mode
	}
}

// WithMaxAttempts bounds how many names are tried before giving up
func WithMaxAttempts(n int) Option {
	return func(w *Writer) {
		w.maxAttempts = n
	}
}

// WithSuffixSource replaces the random suffix generator
func WithSuffixSource(next func() uint64) Option {
	return func(w *Writer) {
		w.suffix = next
	}
}

// NewWriter creates a Writer with the default configuration and the given options.
func NewWriter(opts ...Option) *Writer {
	w := &Writer{
		prefix:      config.DefaultScriptPrefix,
		mode:        0644,
		maxAttempts: config.DefaultScriptMaxAttempts,
		suffix:      rand.Uint64,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// FromConfig creates a Writer from the [script] configuration section.
func FromConfig(cfg config.ScriptConfig, opts ...Option) (*Writer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.ConfigError("invalid script configuration", err)
	}
	mode, err := cfg.FileMode()
	if err != nil {
		return nil, errors.ConfigError("invalid script configuration", err)
	}

	base := []Option{WithPrefix(cfg.Prefix), WithMode(mode), WithMaxAttempts(cfg.MaxAttempts)}
	return NewWriter(append(base, opts...)...), nil
}

func (w *Writer) candidate() string {
	return w.prefix + strconv.FormatUint(w.suffix(), 10)
}

// Write stores commands joined by newlines in a new file inside f and
// returns the artifact. The name is absent from f's listing and is
// created exclusively, so a concurrent writer can never be overwritten.
// The script is not made executable and is not run.
func (w *Writer) Write(commands []string, f folder.Folder) (*Artifact, error) {
	if len(commands) == 0 {
		return nil, errors.ValidationError("no build commands to write")
	}

	entries, err := f.Entries()
	if err != nil {
		return nil, errors.ScriptWriteFailed(f.Path(), err)
	}

	taken := make(map[string]bool, len(entries))
	for _, e := range entries {
		taken[e] = true
	}

	contents := strings.Join(commands, "\n")
	log := logging.ForFolder(f.Path())

	for attempt := 0; attempt < w.maxAttempts; attempt++ {
		name := w.candidate()
		if taken[name] {
			continue
		}

		err := f.CreateExclusive(name, []byte(contents), w.mode)
		if errors.Is(err, fs.ErrExist) {
			// Created by someone else after we listed the folder
			log.Debug("build script name taken, retrying", "name", name)
			taken[name] = true
			continue
		}
		if err != nil {
			return nil, errors.ScriptWriteFailed(f.Path(), err)
		}

		log.Debug("wrote build script", "name", name, "commands", len(commands))
		return &Artifact{
			Name:     name,
			Path:     filepath.Join(f.Path(), name),
			Folder:   f,
			Contents: contents,
		}, nil
	}

	return nil, errors.ScriptWriteFailed(f.Path(), fmt.Errorf("no free file name after %d attempts", w.maxAttempts))
}
