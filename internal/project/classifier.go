package project

import (
	"strings"

	"github.com/firefly-engineering/firefly-forage/packages/forage-build/internal/errors"
	"github.com/firefly-engineering/firefly-forage/packages/forage-build/internal/folder"
	"github.com/firefly-engineering/firefly-forage/packages/forage-build/internal/logging"
)

// Rule maps marker entries to an archetype.
// A rule matches when any marker is an entry name, or when any entry
// ends in Suffix (if set). Matching is case-sensitive.
type Rule struct {
	Type    ProjectType
	Markers []string
	Suffix  string
}

// rules is ordered by precedence: marker sets overlap (a TypeScript
// project also has package.json, a containerized one has a dockerfile).
// No rule yields Scala.
var rules = []Rule{
	{Type: Docker, Markers: []string{"dockerfile"}},
	{Type: TypeScript, Markers: []string{"tsconfig.json"}},
	{Type: NodeJS, Markers: []string{"package.json"}},
	{Type: Gradle, Markers: []string{"gradlew", "build.gradle", "settings.gradle"}},
	{Type: Maven, Markers: []string{"pom.xml"}},
	{Type: Python, Markers: []string{"requirements.txt", "setup.py", "Pipfile"}},
	{Type: PHP, Markers: []string{"composer.json", "index.php"}},
	{Type: Ruby, Markers: []string{"Gemfile"}},
	{Type: Go, Markers: []string{"go.mod"}},
	{Type: Clojure, Markers: []string{"project.clj"}},
	{Type: Rust, Markers: []string{"Cargo.toml"}},
	{Type: CSharp, Suffix: ".csproj"},
}

// Rules returns a copy of the ordered rule table
func Rules() []Rule {
	out := make([]Rule, len(rules))
	for i, r := range rules {
		out[i] = Rule{Type: r.Type, Markers: append([]string(nil), r.Markers...), Suffix: r.Suffix}
	}
	return out
}

// match returns the entry that satisfies the rule
func (r Rule) match(entries map[string]bool, names []string) (string, bool) {
	for _, m := range r.Markers {
		if entries[m] {
			return m, true
		}
	}
	if r.Suffix != "" {
		for _, name := range names {
			if strings.HasSuffix(name, r.Suffix) {
				return name, true
			}
		}
	}
	return "", false
}

// Match is a classification result with the entry that decided it
type Match struct {
	Type   ProjectType
	Marker string
}

// Explain returns the first matching rule's type and marker.
// ok is false when no rule matches.
func Explain(entries []string) (Match, bool) {
	set := make(map[string]bool, len(entries))
	for _, e := range entries {
		set[e] = true
	}

	for _, r := range rules {
		if marker, ok := r.match(set, entries); ok {
			return Match{Type: r.Type, Marker: marker}, true
		}
	}
	return Match{}, false
}

// Classify maps an entry-name set to its archetype.
// folderPath is only used in the UnknownProjectType error.
func Classify(folderPath string, entries []string) (ProjectType, error) {
	m, ok := Explain(entries)
	if !ok {
		return 0, errors.UnknownProjectType(folderPath)
	}
	return m.Type, nil
}

// Detect lists the folder's immediate entries and classifies them
func Detect(f folder.Folder) (ProjectType, error) {
	m, err := DetectMatch(f)
	if err != nil {
		return 0, err
	}
	return m.Type, nil
}

// DetectMatch is Detect, also returning the deciding marker
func DetectMatch(f folder.Folder) (Match, error) {
	entries, err := f.Entries()
	if err != nil {
		return Match{}, errors.FolderError("list", err)
	}

	log := logging.ForFolder(f.Path())

	m, ok := Explain(entries)
	if !ok {
		log.Debug("no project rule matched", "entries", len(entries))
		return Match{}, errors.UnknownProjectType(f.Path())
	}

	log.Debug("classified project", "type", m.Type, "marker", m.Marker)
	return m, nil
}
