package controllers

import (
	"pos-service/models"
	"pos-service/services"

	"github.com/gofiber/fiber/v2"
)

// PaymentController handles HTTP requests for settlement and reporting.
type PaymentController struct {
	paymentService services.IPaymentService
}

// NewPaymentController creates a new PaymentController instance.
func NewPaymentController(svc services.IPaymentService) *PaymentController {
	return &PaymentController{paymentService: svc}
}

// RecordPayment handles POST /payments.
func (c *PaymentController) RecordPayment(ctx *fiber.Ctx) error {
	var req models.PaymentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badBody(ctx)
	}

	result, err := c.paymentService.RecordPayment(&req)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(result)
}

// ListPayments handles GET /payments?orderId=.
func (c *PaymentController) ListPayments(ctx *fiber.Ctx) error {
	orderID := ctx.QueryInt("orderId")
	payments, err := c.paymentService.ListByOrder(uint(orderID))
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(payments)
}

// DailyReport handles GET /reports/daily?date=YYYY-MM-DD.
func (c *PaymentController) DailyReport(ctx *fiber.Ctx) error {
	report, err := c.paymentService.DailyReport(ctx.Query("date"))
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(report)
}
