package main

import (
	"errors"
	"os"

	"github.com/rgoodwin/dps/internal/cli"
	"github.com/rgoodwin/dps/internal/docker"
	"github.com/rgoodwin/dps/internal/ui"
)

const version = "1.0.0"

func main() {
	cmd := cli.New(version)
	if err := cmd.Execute(); err != nil {
		ui.Fail("%v", err)
		if errors.Is(err, docker.ErrSourceUnavailable) {
			ui.Info("Is the Docker daemon running?")
		}
		os.Exit(1)
	}
}
