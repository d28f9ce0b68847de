package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/marquee-live/backoffice/cmd/app/cli/runscript"
	"github.com/marquee-live/backoffice/cmd/app/server"
	"github.com/marquee-live/backoffice/internal/pkg/bininfo"
)

func Run() {
	app := &cli.App{
		Name:        "marquee-backoffice",
		Description: "The Marquee agency back office. Built with Go, fiber, bun and go.uber.org/fx. Uses NATS as MQ and Redis as cache.",
		Version:     bininfo.Version,
		Commands: []*cli.Command{
			server.Command(),
			runscript.Command(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
