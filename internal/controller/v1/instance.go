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

type EventInstance struct {
	fx.In

	EventInstanceService *service.EventInstance
	LineupService        *service.Lineup
}

func RegisterEventInstance(v1 *svr.V1, c EventInstance) {
	v1.Get("/instances/:instanceId", c.GetInstanceByID)
	v1.Put("/instances/:instanceId", c.UpdateInstance)
	v1.Delete("/instances/:instanceId", c.DeleteInstance)

	v1.Get("/instances/:instanceId/lineup", c.GetEffectiveLineup)
	v1.Put("/instances/:instanceId/lineup", c.SetLineup)
}

func (c *EventInstance) GetInstanceByID(ctx *fiber.Ctx) error {
	instanceID, err := pathID(ctx, "instanceId")
	if err != nil {
		return err
	}
	instance, err := c.EventInstanceService.GetInstanceByID(ctx.UserContext(), middlewares.OrgID(ctx), instanceID)
	if err != nil {
		return err
	}
	return ctx.JSON(instance)
}

func (c *EventInstance) UpdateInstance(ctx *fiber.Ctx) error {
	instanceID, err := pathID(ctx, "instanceId")
	if err != nil {
		return err
	}
	var req types.UpdateInstanceRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}
	instance, err := c.EventInstanceService.UpdateInstance(ctx.UserContext(), middlewares.OrgID(ctx), instanceID, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(instance)
}

func (c *EventInstance) DeleteInstance(ctx *fiber.Ctx) error {
	instanceID, err := pathID(ctx, "instanceId")
	if err != nil {
		return err
	}
	if err := c.EventInstanceService.DeleteInstance(ctx.UserContext(), middlewares.OrgID(ctx), instanceID); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (c *EventInstance) GetEffectiveLineup(ctx *fiber.Ctx) error {
	instanceID, err := pathID(ctx, "instanceId")
	if err != nil {
		return err
	}
	lineup, err := c.LineupService.GetEffectiveLineup(ctx.UserContext(), middlewares.OrgID(ctx), instanceID)
	if err != nil {
		return err
	}
	return ctx.JSON(lineup)
}

func (c *EventInstance) SetLineup(ctx *fiber.Ctx) error {
	instanceID, err := pathID(ctx, "instanceId")
	if err != nil {
		return err
	}
	var req types.SetLineupRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}
	lineup, err := c.LineupService.SetInstanceLineup(ctx.UserContext(), middlewares.OrgID(ctx), instanceID, req.BandIDs)
	if err != nil {
		return err
	}
	return ctx.JSON(lineup)
}
