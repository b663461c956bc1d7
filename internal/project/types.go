package project

import (
	"fmt"

	"github.com/firefly-engineering/firefly-forage/packages/forage-build/internal/errors"
)

// ProjectType is a project archetype. The set is closed.
type ProjectType int

const (
	Docker ProjectType = iota
	NodeJS
	TypeScript
	Gradle
	Maven
	Python
	PHP
	Ruby
	Go
	Scala
	Clojure
	Rust
	CSharp

	// NumTypes is the number of archetypes; it is not itself a type.
	NumTypes
)

var typeNames = [NumTypes]string{
	Docker:     "docker",
	NodeJS:     "nodejs",
	TypeScript: "typescript",
	Gradle:     "gradle",
	Maven:      "maven",
	Python:     "python",
	PHP:        "php",
	Ruby:       "ruby",
	Go:         "go",
	Scala:      "scala",
	Clojure:    "clojure",
	Rust:       "rust",
	CSharp:     "csharp",
}

// displayNames are used in user-facing messages
var displayNames = [NumTypes]string{
	Docker:     "Docker",
	NodeJS:     "Node.js",
	TypeScript: "TypeScript",
	Gradle:     "Gradle",
	Maven:      "Maven",
	Python:     "Python",
	PHP:        "Php",
	Ruby:       "Ruby",
	Go:         "Go",
	Scala:      "Scala",
	Clojure:    "Clojure",
	Rust:       "Rust",
	CSharp:     "C#",
}

// Valid reports whether t is one of the declared archetypes
func (t ProjectType) Valid() bool {
	return t >= 0 && t < NumTypes
}

func (t ProjectType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("ProjectType(%d)", int(t))
	}
	return typeNames[t]
}

// DisplayName returns the capitalized name used in messages
func (t ProjectType) DisplayName() string {
	if !t.Valid() {
		return t.String()
	}
	return displayNames[t]
}

func (t ProjectType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid project type %d", int(t))
	}
	return []byte(typeNames[t]), nil
}

func (t *ProjectType) UnmarshalText(text []byte) error {
	parsed, err := ParseProjectType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseProjectType converts a lowercase archetype name to a ProjectType
func ParseProjectType(s string) (ProjectType, error) {
	for i, name := range typeNames {
		if name == s {
			return ProjectType(i), nil
		}
	}
	return 0, errors.ValidationError(fmt.Sprintf("invalid project type %q", s))
}

// AllProjectTypes returns every archetype in declaration order
func AllProjectTypes() []ProjectType {
	types := make([]ProjectType, 0, NumTypes)
	for t := ProjectType(0); t < NumTypes; t++ {
		types = append(types, t)
	}
	return types
}
