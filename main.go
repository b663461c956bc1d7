package main

import (
	"os"

	"github.com/firefly-engineering/firefly-forage/packages/forage-build/cmd"
	"github.com/firefly-engineering/firefly-forage/packages/forage-build/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
