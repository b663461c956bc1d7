package strategy

import (
	"path"
	"strings"

	shellquote "github.com/kballard/go-shellquote"

	"github.com/firefly-engineering/firefly-forage/packages/forage-build/internal/errors"
	"github.com/firefly-engineering/firefly-forage/packages/forage-build/internal/folder"
	"github.com/firefly-engineering/firefly-forage/packages/forage-build/internal/logging"
)

// csharpRunCommand walks bin/<configuration>/<target>/ and returns the
// apphost executable found there: a file with no extension (Linux, macOS)
// or ending in .exe (Windows).
func csharpRunCommand(f folder.Folder) (string, error) {
	if !f.Exists("bin") {
		return "", errors.MissingBuildOutput(f.Path(), "could not locate bin folder")
	}

	configuration, err := firstEntry(f, "bin")
	if err != nil {
		return "", err
	}
	targetDir := path.Join("bin", configuration)

	target, err := firstEntry(f, targetDir)
	if err != nil {
		return "", err
	}
	outputDir := path.Join(targetDir, target)

	names, err := f.ReadDir(outputDir)
	if err != nil {
		return "", errors.FolderError("list "+outputDir, err)
	}
	for _, name := range names {
		if !strings.Contains(name, ".") || strings.HasSuffix(name, ".exe") {
			logging.ForFolder(f.Path()).Debug("found csharp executable", "executable", name)
			return shellquote.Join("./" + path.Join(outputDir, name)), nil
		}
	}

	return "", errors.MissingExecutable(path.Join(f.Path(), outputDir))
}

// firstEntry returns the first name in dir, failing if dir is empty.
func firstEntry(f folder.Folder, dir string) (string, error) {
	names, err := f.ReadDir(dir)
	if err != nil {
		return "", errors.FolderError("list "+dir, err)
	}
	if len(names) == 0 {
		return "", errors.MissingBuildOutput(f.Path(), dir+" is empty")
	}
	return names[0], nil
}

func csharpBuild(folder.Folder) ([]string, error) {
	return []string{"dotnet build --nologo -v q --property WarningLevel=0 /clp:ErrorsOnly"}, nil
}
