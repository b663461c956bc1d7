package strategy

import (
	"github.com/firefly-engineering/firefly-forage/packages/forage-build/internal/errors"
	"github.com/firefly-engineering/firefly-forage/packages/forage-build/internal/folder"
	"github.com/firefly-engineering/firefly-forage/packages/forage-build/internal/project"
)

const dockerUnsupportedMessage = "custom Dockerfiles are not supported"

func unsupportedDocker(folder.Folder) (string, error) {
	return "", errors.UnsupportedConfiguration(dockerUnsupportedMessage)
}

func unsupportedDockerBuild(folder.Folder) ([]string, error) {
	return nil, errors.UnsupportedConfiguration(dockerUnsupportedMessage)
}

// comingSoon returns providers that always fail for an archetype that
// is recognized but has no strategy yet.
func comingSoon(t project.ProjectType) providers {
	fail := func() error {
		return errors.UnsupportedProjectType(t.String(), t.DisplayName()+" support is coming soon")
	}
	return providers{
		run:   func(folder.Folder) (string, error) { return "", fail() },
		build: func(folder.Folder) ([]string, error) { return nil, fail() },
	}
}
