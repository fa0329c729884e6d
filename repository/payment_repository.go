package repository

import (
	"time"

	"pos-service/models"

	"gorm.io/gorm"
)

// IPaymentRepository defines the interface for payment and settlement data
// operations.
type IPaymentRepository interface {
	Create(payment *models.Payment) error
	ListByOrder(orderID uint) ([]models.Payment, error)
	SumByOrder(orderID uint) (amount, tips, discounts float64, err error)
	HasSplitReference(orderItemID uint) (bool, error)
	Settle(order *models.Order, snapshot *models.DailySales) error
	DailyReport(date string) (*models.DailyReport, error)
}

// PaymentRepository implements IPaymentRepository for GORM.
type PaymentRepository struct {
	DB *gorm.DB
}

// NewPaymentRepository creates a new PaymentRepository instance.
func NewPaymentRepository(db *gorm.DB) IPaymentRepository {
	return &PaymentRepository{DB: db}
}

// Create persists a payment with its item splits.
func (r *PaymentRepository) Create(payment *models.Payment) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(payment).Error
	})
}

// ListByOrder lists the payments recorded against an order.
func (r *PaymentRepository) ListByOrder(orderID uint) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.DB.Preload("Splits").Where("order_id = ?", orderID).
		Order("created_at asc").Find(&payments).Error
	return payments, err
}

// SumByOrder returns the cumulative amount, tips and discounts recorded
// against an order.
func (r *PaymentRepository) SumByOrder(orderID uint) (float64, float64, float64, error) {
	var row struct {
		Amount    float64
		Tips      float64
		Discounts float64
	}
	err := r.DB.Model(&models.Payment{}).
		Select("COALESCE(SUM(amount),0) AS amount, COALESCE(SUM(tip),0) AS tips, COALESCE(SUM(discount),0) AS discounts").
		Where("order_id = ?", orderID).
		Scan(&row).Error
	return row.Amount, row.Tips, row.Discounts, err
}

// HasSplitReference reports whether any recorded payment attributes money to
// the given order item.
func (r *PaymentRepository) HasSplitReference(orderItemID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&models.PaymentSplit{}).
		Where("order_item_id = ?", orderItemID).
		Count(&count).Error
	return count > 0, err
}

// Settle closes a fully paid order: the order row is closed, the table is
// freed, and the daily snapshot is written, all in one transaction.
func (r *PaymentRepository) Settle(order *models.Order, snapshot *models.DailySales) error {
	now := time.Now()
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Order{}).Where("id = ?", order.ID).
			Updates(map[string]any{"status": models.OrderClosed, "closed_at": now}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Table{}).Where("id = ?", order.TableID).
			Updates(map[string]any{"status": models.TableAvailable, "opened_by": nil}).Error; err != nil {
			return err
		}
		if snapshot != nil {
			return tx.Create(snapshot).Error
		}
		return nil
	})
}

// DailyReport aggregates the sales snapshots of one service date.
func (r *PaymentRepository) DailyReport(date string) (*models.DailyReport, error) {
	var report models.DailyReport
	err := r.DB.Model(&models.DailySales{}).
		Select("COUNT(*) AS orders_count, COALESCE(SUM(total),0) AS revenue, COALESCE(SUM(tips),0) AS tips, COALESCE(SUM(covers),0) AS covers").
		Where("date = ?", date).
		Scan(&report).Error
	if err != nil {
		return nil, err
	}
	report.Date = date
	return &report, nil
}
