package v1

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/marquee-live/backoffice/internal/model/types"
	"github.com/marquee-live/backoffice/internal/pkg/middlewares"
	"github.com/marquee-live/backoffice/internal/pkg/mqerr"
	"github.com/marquee-live/backoffice/internal/pkg/observability"
	"github.com/marquee-live/backoffice/internal/server/svr"
	"github.com/marquee-live/backoffice/internal/service"
	"github.com/marquee-live/backoffice/internal/util/rekuest"
)

type Event struct {
	fx.In

	EventService         *service.Event
	EventInstanceService *service.EventInstance
	LineupService        *service.Lineup
}

func RegisterEvent(v1 *svr.V1, c Event) {
	v1.Get("/events", c.GetEvents)
	v1.Post("/events", c.CreateEvent)
	v1.Get("/events/:eventId", c.GetEventByID)
	v1.Put("/events/:eventId", c.UpdateEvent)
	v1.Delete("/events/:eventId", c.DeleteEvent)

	v1.Post("/events/:eventId/materialize", c.Materialize)
	v1.Get("/events/:eventId/instances", c.GetInstances)

	v1.Put("/events/:eventId/lineup", c.SetLineup)
}

func (c *Event) GetEvents(ctx *fiber.Ctx) error {
	events, err := c.EventService.GetEvents(ctx.UserContext(), middlewares.OrgID(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(events)
}

func (c *Event) GetEventByID(ctx *fiber.Ctx) error {
	eventID, err := pathID(ctx, "eventId")
	if err != nil {
		return err
	}
	event, err := c.EventService.GetEventByID(ctx.UserContext(), middlewares.OrgID(ctx), eventID)
	if err != nil {
		return err
	}
	return ctx.JSON(event)
}

func (c *Event) CreateEvent(ctx *fiber.Ctx) error {
	var req types.CreateEventRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}
	event, err := c.EventService.CreateEvent(ctx.UserContext(), middlewares.OrgID(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(event)
}

func (c *Event) UpdateEvent(ctx *fiber.Ctx) error {
	eventID, err := pathID(ctx, "eventId")
	if err != nil {
		return err
	}
	var req types.UpdateEventRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}
	event, err := c.EventService.UpdateEvent(ctx.UserContext(), middlewares.OrgID(ctx), eventID, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(event)
}

func (c *Event) DeleteEvent(ctx *fiber.Ctx) error {
	eventID, err := pathID(ctx, "eventId")
	if err != nil {
		return err
	}
	if err := c.EventService.DeleteEvent(ctx.UserContext(), middlewares.OrgID(ctx), eventID); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (c *Event) Materialize(ctx *fiber.Ctx) error {
	eventID, err := pathID(ctx, "eventId")
	if err != nil {
		return err
	}
	var req types.MaterializeRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	begin := time.Now()
	created, err := c.EventInstanceService.Materialize(
		ctx.UserContext(), middlewares.OrgID(ctx), eventID, req.StartDate, req.EndDate)
	if err != nil {
		return err
	}
	observability.MaterializeDuration.WithLabelValues("api").Observe(time.Since(begin).Seconds())
	observability.MaterializedInstances.WithLabelValues("api").Add(float64(len(created)))

	return ctx.JSON(types.MaterializeResponse{
		Created:   len(created),
		Instances: created,
	})
}

func (c *Event) GetInstances(ctx *fiber.Ctx) error {
	eventID, err := pathID(ctx, "eventId")
	if err != nil {
		return err
	}
	instances, err := c.EventInstanceService.ListInstances(ctx.UserContext(), middlewares.OrgID(ctx), eventID)
	if err != nil {
		return err
	}
	return ctx.JSON(instances)
}

func (c *Event) SetLineup(ctx *fiber.Ctx) error {
	eventID, err := pathID(ctx, "eventId")
	if err != nil {
		return err
	}
	var req types.SetLineupRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}
	lineup, err := c.LineupService.SetEventLineup(ctx.UserContext(), middlewares.OrgID(ctx), eventID, req.BandIDs)
	if err != nil {
		return err
	}
	return ctx.JSON(lineup)
}

// pathID parses a positive integer path parameter.
func pathID(ctx *fiber.Ctx, name string) (int, error) {
	id, err := ctx.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, mqerr.ErrInvalidReq.Msg("invalid %s", name)
	}
	return id, nil
}
