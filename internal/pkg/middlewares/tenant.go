package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"github.com/marquee-live/backoffice/internal/constant"
	"github.com/marquee-live/backoffice/internal/pkg/cachectrl"
	"github.com/marquee-live/backoffice/internal/pkg/flog"
	"github.com/marquee-live/backoffice/internal/pkg/mqerr"
	"github.com/marquee-live/backoffice/internal/repo"
)

// Tenant resolves the organization slug forwarded by the gateway into the
// owning org and stores its id in the request locals. Identity and membership
// have already been verified upstream; an unresolvable slug is treated the
// same as a missing one.
func Tenant(orgRepo *repo.Org) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		slug := ctx.Get(constant.OrgHeader)
		if slug == "" {
			return mqerr.ErrUnauthorized
		}

		org, err := orgRepo.GetOrgBySlug(ctx.UserContext(), slug)
		if err != nil {
			flog.WarnFrom(ctx).
				Str("evt.name", "tenant.resolve").
				Str("org_slug", slug).
				Msg("failed to resolve organization from gateway header")
			return mqerr.ErrUnauthorized
		}

		ctx.Locals(constant.ContextKeyOrgID, org.OrgID)

		// org-scoped responses must never land in shared caches
		cachectrl.OptOut(ctx)
		return ctx.Next()
	}
}

// OrgID returns the org id resolved by the Tenant middleware.
func OrgID(ctx *fiber.Ctx) int {
	id, _ := ctx.Locals(constant.ContextKeyOrgID).(int)
	return id
}
