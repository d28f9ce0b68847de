package server

import (
	"go.uber.org/fx"

	"github.com/marquee-live/backoffice/internal/server/httpserver"
	"github.com/marquee-live/backoffice/internal/server/svr"
)

func Module() fx.Option {
	return fx.Module("server",
		fx.Provide(httpserver.Create),
		fx.Provide(svr.CreateEndpointGroups))
}
