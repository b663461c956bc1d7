package strategy

import (
	shellquote "github.com/kballard/go-shellquote"

	"github.com/firefly-engineering/firefly-forage/packages/forage-build/internal/errors"
	"github.com/firefly-engineering/firefly-forage/packages/forage-build/internal/folder"
	"github.com/firefly-engineering/firefly-forage/packages/forage-build/internal/logging"
	"github.com/firefly-engineering/firefly-forage/packages/forage-build/internal/manifest"
)

// npmEnv silences the update notifier and everything below error level.
const npmEnv = "NPM_CONFIG_UPDATE_NOTIFIER=false npm_config_loglevel=error"

const (
	npmCleanInstall = npmEnv + " npm ci"
	npmInstallRun   = npmEnv + " npm run install"
	tscCompile      = "tsc"
)

// nodeRunCommand resolves, in order: scripts.start, server.js, app.js, main.
func nodeRunCommand(f folder.Folder) (string, error) {
	pkg, err := manifest.LoadPackageJSON(f)
	if err != nil {
		return "", err
	}
	log := logging.ForFolder(f.Path())

	if start, ok := pkg.StartScript(); ok {
		log.Debug("using scripts.start")
		return start, nil
	}

	for _, entry := range []string{"server.js", "app.js"} {
		if f.Exists(entry) {
			log.Debug("using entry file", "entry", entry)
			return shellquote.Join("node", entry), nil
		}
	}

	if main, ok := pkg.MainEntry(); ok {
		log.Debug("using package main", "main", main)
		return shellquote.Join("node", main), nil
	}

	return "", errors.MissingStartCommand(f.Path())
}

// nodeBuild returns the npm build provider, with a tsc step for TypeScript.
func nodeBuild(typescript bool) BuildCommandsFunc {
	return func(f folder.Folder) ([]string, error) {
		commands := []string{npmCleanInstall}
		if typescript {
			commands = append(commands, tscCompile)
		}

		pkg, err := manifest.LoadPackageJSON(f)
		if err != nil {
			return nil, err
		}
		if pkg.HasInstallScript() {
			commands = append(commands, npmInstallRun)
		}
		return commands, nil
	}
}
