package controllers

import (
	"pos-service/models"
	"pos-service/services"

	"github.com/gofiber/fiber/v2"
)

// MenuController handles HTTP requests for the menu catalog.
type MenuController struct {
	menuService services.IMenuService
}

// NewMenuController creates a new MenuController instance.
func NewMenuController(svc services.IMenuService) *MenuController {
	return &MenuController{menuService: svc}
}

// ListCategories handles GET /menu/categories.
func (c *MenuController) ListCategories(ctx *fiber.Ctx) error {
	cats, err := c.menuService.ListCategories()
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(cats)
}

// ListItems handles GET /menu/items.
func (c *MenuController) ListItems(ctx *fiber.Ctx) error {
	items, err := c.menuService.ListItems(ctx.QueryBool("includeArchived"))
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(items)
}

// CreateItem handles POST /menu/items.
func (c *MenuController) CreateItem(ctx *fiber.Ctx) error {
	var item models.MenuItem
	if err := ctx.BodyParser(&item); err != nil {
		return badBody(ctx)
	}
	if err := c.menuService.CreateItem(&item); err != nil {
		return fail(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(item)
}

// UpdateItem handles PATCH /menu/items/:id.
func (c *MenuController) UpdateItem(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return badParam(ctx, "id")
	}

	var patch models.MenuItem
	if err := ctx.BodyParser(&patch); err != nil {
		return badBody(ctx)
	}

	item, err := c.menuService.UpdateItem(uint(id), &patch)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(item)
}

// ArchiveItem handles DELETE /menu/items/:id.
func (c *MenuController) ArchiveItem(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return badParam(ctx, "id")
	}
	if err := c.menuService.ArchiveItem(uint(id)); err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(fiber.Map{"success": true})
}
