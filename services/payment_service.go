package services

import (
	"errors"
	"log/slog"

	"pos-service/apperrors"
	"pos-service/models"
	"pos-service/repository"

	"gorm.io/gorm"
)

// settleEpsilon absorbs rounding noise when comparing cumulative payments
// to the order total, in currency units.
const settleEpsilon = 0.01

// IPaymentService defines the interface for settlement operations.
type IPaymentService interface {
	RecordPayment(req *models.PaymentRequest) (*models.PaymentResult, error)
	ListByOrder(orderID uint) ([]models.Payment, error)
	DailyReport(date string) (*models.DailyReport, error)
}

// PaymentService implements IPaymentService.
type PaymentService struct {
	paymentRepo repository.IPaymentRepository
	orderRepo   repository.IOrderRepository
	tableRepo   repository.ITableRepository
}

// NewPaymentService creates a new PaymentService instance.
func NewPaymentService(
	paymentRepo repository.IPaymentRepository,
	orderRepo repository.IOrderRepository,
	tableRepo repository.ITableRepository,
) IPaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		orderRepo:   orderRepo,
		tableRepo:   tableRepo,
	}
}

var paymentMethods = map[string]bool{
	models.PayCash:  true,
	models.PayCard:  true,
	models.PayOther: true,
}

// RecordPayment persists a settlement event and closes the order once the
// cumulative payments cover the total.
func (s *PaymentService) RecordPayment(req *models.PaymentRequest) (*models.PaymentResult, error) {
	if req.OrderID == 0 {
		return nil, apperrors.Validation("orderId is required")
	}
	if req.Amount < 0 || req.Tip < 0 || req.Discount < 0 {
		return nil, apperrors.Validation("amounts must not be negative")
	}
	if !paymentMethods[req.PaymentMethod] {
		return nil, apperrors.Validation("unknown payment method %q", req.PaymentMethod)
	}

	order, err := s.orderRepo.FindOrderByID(req.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("order %d", req.OrderID)
		}
		return nil, apperrors.Storage("load order", err)
	}
	if order.Status != models.OrderOpen {
		return nil, apperrors.Validation("order %d is already closed", order.ID)
	}

	// Empty-order cleanup: closing a tab with nothing on it deletes the
	// order instead of writing a zero snapshot. Money tendered against an
	// empty order has nothing to settle and would vanish, so it is refused.
	if len(order.Items) == 0 && len(order.Supplements) == 0 {
		if req.Amount > 0 || req.Tip > 0 || req.Discount > 0 {
			return nil, apperrors.Validation("order %d has no items to pay for", order.ID)
		}
		if err := s.orderRepo.DeleteOrder(order.ID); err != nil {
			return nil, apperrors.Storage("delete empty order", err)
		}
		if err := s.tableRepo.SetStatus(order.TableID, models.TableAvailable, nil); err != nil {
			return nil, apperrors.Storage("free table", err)
		}
		return &models.PaymentResult{Success: true, IsFullyPaid: true}, nil
	}

	total := orderTotal(order)

	payment := &models.Payment{
		OrderID:  order.ID,
		TableID:  order.TableID,
		Amount:   req.Amount,
		Tip:      req.Tip,
		Discount: req.Discount,
		Method:   req.PaymentMethod,
	}
	for _, split := range req.ItemQuantities {
		payment.Splits = append(payment.Splits, models.PaymentSplit{
			OrderItemID: split.OrderItemID,
			Quantity:    split.Quantity,
		})
	}
	if err := s.paymentRepo.Create(payment); err != nil {
		return nil, apperrors.Storage("record payment", err)
	}
	paymentsRecorded.Inc()

	paid, tips, discounts, err := s.paymentRepo.SumByOrder(order.ID)
	if err != nil {
		return nil, apperrors.Storage("sum payments", err)
	}

	remaining := total - paid - discounts
	fullyPaid := remaining <= settleEpsilon
	if fullyPaid {
		snapshot := &models.DailySales{
			// Dated by the order's creation so reports follow the service
			// date, not the settlement date.
			Date:    order.CreatedAt.Format("2006-01-02"),
			OrderID: order.ID,
			Total:   total,
			Tips:    tips,
			Covers:  order.Covers,
		}
		if err := s.paymentRepo.Settle(order, snapshot); err != nil {
			return nil, apperrors.Storage("settle order", err)
		}
		ordersClosed.Inc()
		slog.Info("order settled", "order", order.ID, "table", order.TableID, "total", total)
		remaining = 0
	}

	return &models.PaymentResult{
		Success:         true,
		IsFullyPaid:     fullyPaid,
		PaidTotal:       paid,
		RemainingAmount: remaining,
		OrderTotal:      total,
	}, nil
}

// ListByOrder lists the payments recorded against an order.
func (s *PaymentService) ListByOrder(orderID uint) ([]models.Payment, error) {
	if orderID == 0 {
		return nil, apperrors.Validation("orderId is required")
	}
	payments, err := s.paymentRepo.ListByOrder(orderID)
	if err != nil {
		return nil, apperrors.Storage("list payments", err)
	}
	return payments, nil
}

// DailyReport aggregates the sales snapshots of one service date.
func (s *PaymentService) DailyReport(date string) (*models.DailyReport, error) {
	if date == "" {
		return nil, apperrors.Validation("date is required")
	}
	report, err := s.paymentRepo.DailyReport(date)
	if err != nil {
		return nil, apperrors.Storage("daily report", err)
	}
	return report, nil
}

// orderTotal sums the live, non-complimentary lines of an order.
func orderTotal(order *models.Order) float64 {
	var total float64
	for _, item := range order.Items {
		if item.IsComplimentary || item.Status == models.ItemDeleted {
			continue
		}
		total += item.Price * float64(item.Quantity)
	}
	for _, supp := range order.Supplements {
		if supp.IsComplimentary {
			continue
		}
		total += supp.Amount
	}
	return total
}
