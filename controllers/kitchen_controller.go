package controllers

import (
	"pos-service/models"
	"pos-service/services"

	"github.com/gofiber/fiber/v2"
)

// KitchenController handles HTTP requests from the kitchen and bar screens.
type KitchenController struct {
	ticketService services.ITicketService
}

// NewKitchenController creates a new KitchenController instance.
func NewKitchenController(svc services.ITicketService) *KitchenController {
	return &KitchenController{ticketService: svc}
}

// ListTickets handles GET /kitchen/tickets?type=kitchen|bar&status=.
func (c *KitchenController) ListTickets(ctx *fiber.Ctx) error {
	tickets, err := c.ticketService.ListTickets(ctx.Query("type"), ctx.Query("status"))
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(tickets)
}

// UpdateTicket handles PATCH /kitchen/tickets/:id.
func (c *KitchenController) UpdateTicket(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return badParam(ctx, "id")
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := ctx.BodyParser(&req); err != nil {
		return badBody(ctx)
	}
	if req.Status != models.TicketCompleted {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "status can only move to completed"})
	}

	ticket, err := c.ticketService.CompleteTicket(uint(id))
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(ticket)
}
