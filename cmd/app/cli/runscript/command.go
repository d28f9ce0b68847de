package runscript

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	cliapp "github.com/marquee-live/backoffice/cmd/app/cli"
	script_materialize_horizon "github.com/marquee-live/backoffice/cmd/app/cli/runscript/scripts/materialize_horizon"
)

func depsFn[T any]() func() T {
	return func() T {
		var deps T
		cliapp.Start(fx.Populate(&deps))
		return deps
	}
}

func Command() *cli.Command {
	return &cli.Command{
		Name:        "run-script",
		Description: "run maintenance go scripts",
		Subcommands: []*cli.Command{
			script_materialize_horizon.Command(depsFn[script_materialize_horizon.CommandDeps]()),
		},
	}
}
