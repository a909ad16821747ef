// Package ratelctl contains the application logic behind the ratelctl
// command line tool.
package ratelctl

import (
	"io"
	"os"

	"github.com/ratelproject/ratel-runner/internal/configuration"
	"github.com/ratelproject/ratel-runner/internal/flux"
)

type App struct {
	// Parameters passed to the CLI by the user.
	Params *Params
	// Out is used to write the output. Defaults to standard out, but can be
	// overridden in tests to make assertions on the application's output.
	Out io.Writer
}

// Params struct holds all user-customizable parameters. Using a single
// struct for all CLI commands ensures that all flags are distinct and that
// they can be provided either dynamically on a command line, or statically
// in a config file that's reused between command runs.
type Params struct {
	Config *configuration.RunnerConfig
	Client *flux.Client
}

// New instantiates an App with default parameters and standard output.
func New() *App {
	defaults := configuration.DefaultRunnerConfig()
	return &App{
		Params: &Params{
			Config: &defaults,
			Client: flux.NewClient(),
		},
		Out: os.Stdout,
	}
}
