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

type Client struct {
	fx.In

	ClientService *service.Client
}

func RegisterClient(v1 *svr.V1, c Client) {
	v1.Get("/clients", c.GetClients)
	v1.Post("/clients", c.CreateClient)
	v1.Get("/clients/:clientId", c.GetClientByID)
	v1.Put("/clients/:clientId", c.UpdateClient)
	v1.Delete("/clients/:clientId", c.DeleteClient)
}

func (c *Client) GetClients(ctx *fiber.Ctx) error {
	clients, err := c.ClientService.GetClients(ctx.UserContext(), middlewares.OrgID(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(clients)
}

func (c *Client) GetClientByID(ctx *fiber.Ctx) error {
	clientID, err := pathID(ctx, "clientId")
	if err != nil {
		return err
	}
	client, err := c.ClientService.GetClientByID(ctx.UserContext(), middlewares.OrgID(ctx), clientID)
	if err != nil {
		return err
	}
	return ctx.JSON(client)
}

func (c *Client) CreateClient(ctx *fiber.Ctx) error {
	var req types.ClientRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}
	client, err := c.ClientService.CreateClient(ctx.UserContext(), middlewares.OrgID(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(client)
}

func (c *Client) UpdateClient(ctx *fiber.Ctx) error {
	clientID, err := pathID(ctx, "clientId")
	if err != nil {
		return err
	}
	var req types.ClientRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}
	client, err := c.ClientService.UpdateClient(ctx.UserContext(), middlewares.OrgID(ctx), clientID, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(client)
}

func (c *Client) DeleteClient(ctx *fiber.Ctx) error {
	clientID, err := pathID(ctx, "clientId")
	if err != nil {
		return err
	}
	if err := c.ClientService.DeleteClient(ctx.UserContext(), middlewares.OrgID(ctx), clientID); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
