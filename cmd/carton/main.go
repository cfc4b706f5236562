package main

import (
	"os"

	"github.com/jakoblorz/carton/internal/cli"
	cerrors "github.com/jakoblorz/carton/internal/errors"
)

// Version is set at link time with -ldflags "-X main.Version=..."
var Version = "dev"

func main() {
	if err := cli.Execute(Version); err != nil {
		os.Exit(cerrors.ExitCode(err))
	}
}
