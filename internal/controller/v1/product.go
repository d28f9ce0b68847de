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

type Product struct {
	fx.In

	ProductService *service.Product
}

func RegisterProduct(v1 *svr.V1, c Product) {
	v1.Get("/products", c.GetProducts)
	v1.Post("/products", c.CreateProduct)
	v1.Get("/products/:productId", c.GetProductByID)
	v1.Put("/products/:productId", c.UpdateProduct)
	v1.Delete("/products/:productId", c.DeleteProduct)
}

func (c *Product) GetProducts(ctx *fiber.Ctx) error {
	products, err := c.ProductService.GetProducts(ctx.UserContext(), middlewares.OrgID(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(products)
}

func (c *Product) GetProductByID(ctx *fiber.Ctx) error {
	productID, err := pathID(ctx, "productId")
	if err != nil {
		return err
	}
	product, err := c.ProductService.GetProductByID(ctx.UserContext(), middlewares.OrgID(ctx), productID)
	if err != nil {
		return err
	}
	return ctx.JSON(product)
}

func (c *Product) CreateProduct(ctx *fiber.Ctx) error {
	var req types.ProductRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}
	product, err := c.ProductService.CreateProduct(ctx.UserContext(), middlewares.OrgID(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(product)
}

func (c *Product) UpdateProduct(ctx *fiber.Ctx) error {
	productID, err := pathID(ctx, "productId")
	if err != nil {
		return err
	}
	var req types.ProductRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}
	product, err := c.ProductService.UpdateProduct(ctx.UserContext(), middlewares.OrgID(ctx), productID, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(product)
}

func (c *Product) DeleteProduct(ctx *fiber.Ctx) error {
	productID, err := pathID(ctx, "productId")
	if err != nil {
		return err
	}
	if err := c.ProductService.DeleteProduct(ctx.UserContext(), middlewares.OrgID(ctx), productID); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
