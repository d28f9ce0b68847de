package script_materialize_horizon

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	"github.com/marquee-live/backoffice/internal/repo"
	"github.com/marquee-live/backoffice/internal/service"
)

type CommandDeps struct {
	fx.In

	OrgRepo              *repo.Org
	EventRepo            *repo.Event
	EventInstanceService *service.EventInstance
}

func Command(depsFn func() CommandDeps) *cli.Command {
	return &cli.Command{
		Name:        "materialize_horizon",
		Description: "materialize all weekly events of one organization out to a horizon",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "org",
				Usage:    "slug of the organization to materialize",
				Required: true,
			},
			&cli.IntFlag{
				Name:  "days",
				Usage: "horizon in days ahead of today",
				Value: 90,
			},
		},
		Action: func(ctx *cli.Context) error {
			return run(ctx, depsFn())
		},
	}
}
