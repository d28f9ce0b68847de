package svr

import (
	"github.com/gofiber/fiber/v2"

	"github.com/marquee-live/backoffice/internal/pkg/middlewares"
	"github.com/marquee-live/backoffice/internal/repo"
)

// V1 is the org-scoped API surface. Every route registered on it runs behind
// the tenant middleware, so handlers can assume a resolved org id in locals.
type V1 struct {
	fiber.Router
}

// Meta carries unauthenticated service endpoints such as health and version.
type Meta struct {
	fiber.Router
}

func CreateEndpointGroups(app *fiber.App, orgRepo *repo.Org) (*V1, *Meta) {
	v1 := app.Group("/api/v1", middlewares.Tenant(orgRepo))
	meta := app.Group("/api/_")

	return &V1{Router: v1}, &Meta{Router: meta}
}
