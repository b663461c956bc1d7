// Package project classifies a project folder into a ProjectType.
//
// Classification looks only at the folder's immediate entry names and
// walks an ordered rule table, returning the first match:
//
//	docker      dockerfile
//	typescript  tsconfig.json
//	nodejs      package.json
//	gradle      gradlew, build.gradle, settings.gradle
//	maven       pom.xml
//	python      requirements.txt, setup.py, Pipfile
//	php         composer.json, index.php
//	ruby        Gemfile
//	go          go.mod
//	clojure     project.clj
//	rust        Cargo.toml
//	csharp      *.csproj
//
// The result is a pure function of the entry-name set. A folder matching
// no rule fails with an UnknownProjectType error.
//
//	t, err := project.Detect(f)
package project
