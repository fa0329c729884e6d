package controllers

import (
	"time"

	"pos-service/models"
	"pos-service/services"

	"github.com/gofiber/fiber/v2"
)

// ReservationController handles HTTP requests for the reservation ledger.
type ReservationController struct {
	reservationService services.IReservationService
}

// NewReservationController creates a new ReservationController instance.
func NewReservationController(svc services.IReservationService) *ReservationController {
	return &ReservationController{reservationService: svc}
}

// Book handles POST /reservations.
func (c *ReservationController) Book(ctx *fiber.Ctx) error {
	var req models.ReservationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badBody(ctx)
	}

	res, err := c.reservationService.Book(&req)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(res)
}

// ListByDate handles GET /reservations?date=YYYY-MM-DD.
func (c *ReservationController) ListByDate(ctx *fiber.Ctx) error {
	day, err := time.Parse("2006-01-02", ctx.Query("date"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "date must be YYYY-MM-DD"})
	}

	out, err := c.reservationService.ListByDate(day)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(out)
}

// Update handles PATCH /reservations/:id with {"action": "cancel"|"seat"}.
func (c *ReservationController) Update(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return badParam(ctx, "id")
	}

	var req struct {
		Action string `json:"action"`
	}
	if err := ctx.BodyParser(&req); err != nil {
		return badBody(ctx)
	}

	var res *models.Reservation
	switch req.Action {
	case "cancel":
		res, err = c.reservationService.Cancel(uint(id))
	case "seat":
		res, err = c.reservationService.Seat(uint(id))
	default:
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "action must be cancel or seat"})
	}
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(res)
}
