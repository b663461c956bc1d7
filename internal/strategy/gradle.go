package strategy

import (
	"path"

	shellquote "github.com/kballard/go-shellquote"

	"github.com/firefly-engineering/firefly-forage/packages/forage-build/internal/errors"
	"github.com/firefly-engineering/firefly-forage/packages/forage-build/internal/folder"
)

// gradleInstallDirs are checked in order; the second covers the
// layout "gradle init" generates with an app subproject.
var gradleInstallDirs = []string{"build/install", "app/build/install"}

func gradleRunCommand(f folder.Folder) (string, error) {
	installDir := ""
	for _, dir := range gradleInstallDirs {
		if f.Exists(dir) {
			installDir = dir
			break
		}
	}
	if installDir == "" {
		return "", errors.MissingBuildOutput(f.Path(), "could not locate build/install folder")
	}

	names, err := f.ReadDir(installDir)
	if err != nil {
		return "", errors.FolderError("list "+installDir, err)
	}
	// Single-project builds install exactly one distribution
	if len(names) == 0 {
		return "", errors.MissingExecutable(path.Join(f.Path(), installDir))
	}
	name := names[0]

	return shellquote.Join("./" + path.Join(installDir, name, "bin", name)), nil
}

func gradleBuild(folder.Folder) ([]string, error) {
	return []string{"./gradlew install"}, nil
}
