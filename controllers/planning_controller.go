package controllers

import (
	"time"

	"pos-service/models"
	"pos-service/services"

	"github.com/gofiber/fiber/v2"
)

// PlanningController handles HTTP requests for staff planning.
type PlanningController struct {
	planningService services.IPlanningService
}

// NewPlanningController creates a new PlanningController instance.
func NewPlanningController(svc services.IPlanningService) *PlanningController {
	return &PlanningController{planningService: svc}
}

// Week handles GET /planning?week=YYYY-MM-DD (any day of the wanted week).
func (c *PlanningController) Week(ctx *fiber.Ctx) error {
	day, err := time.Parse("2006-01-02", ctx.Query("week"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "week must be YYYY-MM-DD"})
	}

	shifts, err := c.planningService.Week(day)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(shifts)
}

// CreateShift handles POST /planning.
func (c *PlanningController) CreateShift(ctx *fiber.Ctx) error {
	var shift models.Shift
	if err := ctx.BodyParser(&shift); err != nil {
		return badBody(ctx)
	}
	if err := c.planningService.CreateShift(&shift); err != nil {
		return fail(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(shift)
}

// DeleteShift handles DELETE /planning/:id.
func (c *PlanningController) DeleteShift(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return badParam(ctx, "id")
	}
	if err := c.planningService.DeleteShift(uint(id)); err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(fiber.Map{"success": true})
}
