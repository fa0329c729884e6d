package controllers

import (
	"pos-service/models"
	"pos-service/services"

	"github.com/gofiber/fiber/v2"
)

// TableController handles HTTP requests for the table registry.
type TableController struct {
	tableService services.ITableService
}

// NewTableController creates a new TableController instance.
func NewTableController(svc services.ITableService) *TableController {
	return &TableController{tableService: svc}
}

// ListTables handles GET /tables.
func (c *TableController) ListTables(ctx *fiber.Ctx) error {
	tables, err := c.tableService.ListTables(ctx.QueryBool("includeArchived"))
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(tables)
}

// CreateTable handles POST /tables.
func (c *TableController) CreateTable(ctx *fiber.Ctx) error {
	var req struct {
		Number int `json:"number"`
		Seats  int `json:"seats"`
	}
	if err := ctx.BodyParser(&req); err != nil {
		return badBody(ctx)
	}

	table, err := c.tableService.CreateTable(req.Number, req.Seats)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(table)
}

// UpdateTable handles PATCH /tables/:id.
func (c *TableController) UpdateTable(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return badParam(ctx, "id")
	}

	var req struct {
		Seats  *int `json:"seats"`
		Number *int `json:"number"`
	}
	if err := ctx.BodyParser(&req); err != nil {
		return badBody(ctx)
	}

	table, err := c.tableService.UpdateTable(uint(id), req.Seats, req.Number)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(table)
}

// ArchiveTable handles POST /tables/:id/archive.
func (c *TableController) ArchiveTable(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return badParam(ctx, "id")
	}
	if err := c.tableService.ArchiveTable(uint(id)); err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(fiber.Map{"success": true})
}

// Transfer handles POST /tables/transfer.
func (c *TableController) Transfer(ctx *fiber.Ctx) error {
	var req models.TransferRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badBody(ctx)
	}
	if err := c.tableService.Transfer(&req); err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(fiber.Map{"success": true})
}
