package cli

import (
	"context"

	"go.uber.org/fx"

	"github.com/marquee-live/backoffice/internal/app"
	"github.com/marquee-live/backoffice/internal/app/appcontext"
)

func Start(module fx.Option) {
	app.New(appcontext.Declare(appcontext.EnvCLI), module).Start(context.Background())
}
