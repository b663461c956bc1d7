// Package manifest reads project manifests with every field optional.
package manifest

import (
	"encoding/json"
	"path/filepath"

	"github.com/firefly-engineering/firefly-forage/packages/forage-build/internal/errors"
	"github.com/firefly-engineering/firefly-forage/packages/forage-build/internal/folder"
)

// PackageJSONFile is the Node manifest file name
const PackageJSONFile = "package.json"

// PackageJSON holds the package.json fields forage-build reads.
// A field holding a value of the wrong JSON type reads as absent.
type PackageJSON struct {
	Main    *string
	Scripts Scripts
}

// Scripts is the package.json "scripts" object
type Scripts struct {
	Start *string

	// HasInstall is set when an "install" key exists, whatever its value
	HasInstall bool
}

// UnmarshalJSON decodes the document, which must be a JSON object.
// Only the top level is strict; the fields inside are read leniently.
func (p *PackageJSON) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	*p = PackageJSON{Main: optionalString(fields["main"])}

	var scripts map[string]json.RawMessage
	if raw, ok := fields["scripts"]; ok && json.Unmarshal(raw, &scripts) == nil {
		p.Scripts.Start = optionalString(scripts["start"])
		_, p.Scripts.HasInstall = scripts["install"]
	}
	return nil
}

// optionalString returns raw as a string, or nil when it is missing or not a string
func optionalString(raw json.RawMessage) *string {
	var s string
	if raw == nil || json.Unmarshal(raw, &s) != nil {
		return nil
	}
	return &s
}

// StartScript returns scripts.start when it is set to a non-empty value
func (p *PackageJSON) StartScript() (string, bool) {
	return nonEmpty(p.Scripts.Start)
}

// MainEntry returns main when it is set to a non-empty value
func (p *PackageJSON) MainEntry() (string, bool) {
	return nonEmpty(p.Main)
}

// HasInstallScript reports whether scripts.install is present, even if
// empty or null
func (p *PackageJSON) HasInstallScript() bool {
	return p.Scripts.HasInstall
}

func nonEmpty(s *string) (string, bool) {
	if s == nil || *s == "" {
		return "", false
	}
	return *s, true
}

// ParsePackageJSON decodes package.json content.
func ParsePackageJSON(data []byte) (*PackageJSON, error) {
	var pkg PackageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, err
	}
	return &pkg, nil
}

// LoadPackageJSON reads and parses the folder's package.json
func LoadPackageJSON(f folder.Folder) (*PackageJSON, error) {
	p := filepath.Join(f.Path(), PackageJSONFile)

	data, err := f.ReadFile(PackageJSONFile)
	if err != nil {
		return nil, errors.ManifestError(p, err)
	}

	pkg, err := ParsePackageJSON(data)
	if err != nil {
		return nil, errors.ManifestError(p, err)
	}
	return pkg, nil
}
