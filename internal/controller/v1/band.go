package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/marquee-live/backoffice/internal/model/types"
	"github.com/marquee-live/backoffice/internal/pkg/middlewares"
	"github.com/marquee-live/backoffice/internal/server/svr"
	"github.com/marquee-live/backoffice/internal/service"
	"github.com/marquee-live/backoffice/internal/util/rekuest"
)

type Band struct {
	fx.In

	BandService *service.Band
}

func RegisterBand(v1 *svr.V1, c Band) {
	v1.Get("/bands", c.GetBands)
	v1.Post("/bands", c.CreateBand)
	v1.Get("/bands/:bandId", c.GetBandByID)
	v1.Put("/bands/:bandId", c.UpdateBand)
	v1.Delete("/bands/:bandId", c.DeleteBand)
}

func (c *Band) GetBands(ctx *fiber.Ctx) error {
	bands, err := c.BandService.GetBands(ctx.UserContext(), middlewares.OrgID(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(bands)
}

func (c *Band) GetBandByID(ctx *fiber.Ctx) error {
	bandID, err := pathID(ctx, "bandId")
	if err != nil {
		return err
	}
	band, err := c.BandService.GetBandByID(ctx.UserContext(), middlewares.OrgID(ctx), bandID)
	if err != nil {
		return err
	}
	return ctx.JSON(band)
}

func (c *Band) CreateBand(ctx *fiber.Ctx) error {
	var req types.BandRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}
	band, err := c.BandService.CreateBand(ctx.UserContext(), middlewares.OrgID(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(band)
}

func (c *Band) UpdateBand(ctx *fiber.Ctx) error {
	bandID, err := pathID(ctx, "bandId")
	if err != nil {
		return err
	}
	var req types.BandRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}
	band, err := c.BandService.UpdateBand(ctx.UserContext(), middlewares.OrgID(ctx), bandID, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(band)
}

func (c *Band) DeleteBand(ctx *fiber.Ctx) error {
	bandID, err := pathID(ctx, "bandId")
	if err != nil {
		return err
	}
	if err := c.BandService.DeleteBand(ctx.UserContext(), middlewares.OrgID(ctx), bandID); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
