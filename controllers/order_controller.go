package controllers

import (
	"pos-service/models"
	"pos-service/services"

	"github.com/gofiber/fiber/v2"
)

// OrderController handles HTTP requests for the order lifecycle.
type OrderController struct {
	orderService services.IOrderService
}

// NewOrderController creates a new OrderController instance.
func NewOrderController(svc services.IOrderService) *OrderController {
	return &OrderController{orderService: svc}
}

// SubmitCart handles POST /orders.
func (c *OrderController) SubmitCart(ctx *fiber.Ctx) error {
	var req models.CartRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badBody(ctx)
	}

	orderID, err := c.orderService.SubmitCart(&req)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(fiber.Map{"success": true, "orderId": orderID})
}

// Fire handles POST /orders/fire.
func (c *OrderController) Fire(ctx *fiber.Ctx) error {
	var req models.FireRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badBody(ctx)
	}

	if err := c.orderService.FireItems(req.ItemIDs); err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(fiber.Map{"success": true})
}

// SubmitToFollow handles POST /orders/to-follow.
func (c *OrderController) SubmitToFollow(ctx *fiber.Ctx) error {
	var req models.CartRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badBody(ctx)
	}

	orderID, err := c.orderService.SubmitToFollow(&req)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(fiber.Map{"success": true, "orderId": orderID})
}

// OpenOrder handles GET /orders/open?tableId=.
func (c *OrderController) OpenOrder(ctx *fiber.Ctx) error {
	tableID := ctx.QueryInt("tableId")
	order, err := c.orderService.OpenOrderForTable(uint(tableID))
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(order)
}

// SplitItem handles POST /order-items/split.
func (c *OrderController) SplitItem(ctx *fiber.Ctx) error {
	var req models.SplitRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badBody(ctx)
	}

	items, err := c.orderService.SplitItem(req.ItemID, req.OfferQuantity, req.ServerID, req.ComplimentaryReason)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(fiber.Map{"success": true, "items": items})
}

// MergeItems handles POST /order-items/merge.
func (c *OrderController) MergeItems(ctx *fiber.Ctx) error {
	var req models.MergeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badBody(ctx)
	}

	item, err := c.orderService.MergeItems(req.OriginalItemID, req.ComplimentaryItemID)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(fiber.Map{"success": true, "item": item})
}

// RemoveItem handles DELETE /order-items/:id.
func (c *OrderController) RemoveItem(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return badParam(ctx, "id")
	}
	if err := c.orderService.RemoveItem(uint(id)); err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(fiber.Map{"success": true})
}
