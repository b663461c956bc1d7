package strategy

import (
	"path"

	"github.com/firefly-engineering/firefly-forage/packages/forage-build/internal/errors"
	"github.com/firefly-engineering/firefly-forage/packages/forage-build/internal/folder"
)

// goBinary is the fixed output name goBuild produces.
const goBinary = "app"

func goRunCommand(folder.Folder) (string, error) {
	return "./" + goBinary, nil
}

func goBuild(folder.Folder) ([]string, error) {
	return []string{
		`CGO_ENABLED=0 go build -o ` + goBinary + ` -ldflags="-extldflags=-static"`,
	}, nil
}

var rustExecutables = []string{"target/release/app", "target/release/app.exe"}

func rustRunCommand(f folder.Folder) (string, error) {
	for _, exe := range rustExecutables {
		if f.Exists(exe) {
			return "./" + exe, nil
		}
	}
	return "", errors.MissingExecutable(path.Join(f.Path(), rustExecutables[0]))
}

func rustBuild(folder.Folder) ([]string, error) {
	return []string{"cargo build --release"}, nil
}
