package repository

import (
	"errors"
	"time"

	"pos-service/models"

	"gorm.io/gorm"
)

// ErrVersionMismatch is returned by UpdateItemVersioned when the row's
// version does not match the expected one.
var ErrVersionMismatch = errors.New("order item version mismatch")

// IOrderRepository defines the interface for order data operations.
type IOrderRepository interface {
	FindOpenOrderByTable(tableID uint) (*models.Order, error)
	FindOrderByID(id uint) (*models.Order, error)
	CreateOrder(order *models.Order) error
	SaveOrder(order *models.Order) error
	DeleteOrder(id uint) error

	FindItemByID(id uint) (*models.OrderItem, error)
	FindItemsByIDs(ids []uint) ([]models.OrderItem, error)
	CreateItems(items []*models.OrderItem) error
	SaveItem(item *models.OrderItem) error
	UpdateItemVersioned(item *models.OrderItem, expectedVersion int) error
	DeleteItem(id uint) error
	FindUnplannedToFollowItems(orderID uint) ([]models.OrderItem, error)
	StampPrinted(planIDs, firedIDs []uint, firedCartIDs []string, now time.Time) error

	CreateSupplements(supps []*models.Supplement) error

	SplitItem(src, comp *models.OrderItem) error
	MergeItems(keep *models.OrderItem, removeID uint) error
}

// OrderRepository implements IOrderRepository for GORM.
type OrderRepository struct {
	DB *gorm.DB
}

// NewOrderRepository creates a new OrderRepository instance.
func NewOrderRepository(db *gorm.DB) IOrderRepository {
	return &OrderRepository{DB: db}
}

// FindOpenOrderByTable retrieves the single open order of a table, if any.
func (r *OrderRepository) FindOpenOrderByTable(tableID uint) (*models.Order, error) {
	var order models.Order
	err := r.DB.Preload("Items").Preload("Supplements").
		Where("table_id = ? AND status = ?", tableID, models.OrderOpen).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// FindOrderByID retrieves an order with its items and supplements.
func (r *OrderRepository) FindOrderByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.DB.Preload("Items").Preload("Supplements").First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// CreateOrder persists a new order.
func (r *OrderRepository) CreateOrder(order *models.Order) error {
	return r.DB.Create(order).Error
}

// SaveOrder persists changes to an order row, without touching associations.
func (r *OrderRepository) SaveOrder(order *models.Order) error {
	return r.DB.Omit("Items", "Supplements").Save(order).Error
}

// DeleteOrder soft-deletes an order and its lines.
func (r *OrderRepository) DeleteOrder(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", id).Delete(&models.Supplement{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Order{}, id).Error
	})
}

// FindItemByID retrieves one order item.
func (r *OrderRepository) FindItemByID(id uint) (*models.OrderItem, error) {
	var item models.OrderItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// FindItemsByIDs retrieves the given order items.
func (r *OrderRepository) FindItemsByIDs(ids []uint) ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := r.DB.Where("id IN ?", ids).Find(&items).Error
	return items, err
}

// CreateItems inserts new order item rows.
func (r *OrderRepository) CreateItems(items []*models.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.DB.Create(items).Error
}

// SaveItem persists changes to an item row unconditionally.
func (r *OrderRepository) SaveItem(item *models.OrderItem) error {
	return r.DB.Save(item).Error
}

// UpdateItemVersioned persists changes to an item row only if its stored
// version still matches expectedVersion; the write bumps the version.
func (r *OrderRepository) UpdateItemVersioned(item *models.OrderItem, expectedVersion int) error {
	item.Version = expectedVersion + 1
	res := r.DB.Model(&models.OrderItem{}).
		Where("id = ? AND version = ?", item.ID, expectedVersion).
		Select("menu_item_id", "quantity", "price", "status", "notes",
			"is_complimentary", "complimentary_reason", "version",
			"printed_plan_at", "printed_fired_at", "fired_at").
		Updates(item)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrVersionMismatch
	}
	return nil
}

// DeleteItem soft-deletes one order item row.
func (r *OrderRepository) DeleteItem(id uint) error {
	return r.DB.Delete(&models.OrderItem{}, id).Error
}

// FindUnplannedToFollowItems returns the order's to-follow items that were
// never put on a ticket.
func (r *OrderRepository) FindUnplannedToFollowItems(orderID uint) ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := r.DB.
		Where("order_id = ? AND status IN ? AND printed_plan_at IS NULL",
			orderID, []string{models.ItemToFollow1, models.ItemToFollow2}).
		Find(&items).Error
	return items, err
}

// StampPrinted marks dispatched rows so they are never dispatched twice.
// Fired rows created in the same request may not have carried a persisted id
// when the ticket was built; those are matched by cart id.
func (r *OrderRepository) StampPrinted(planIDs, firedIDs []uint, firedCartIDs []string, now time.Time) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if len(planIDs) > 0 {
			if err := tx.Model(&models.OrderItem{}).
				Where("id IN ?", planIDs).
				Update("printed_plan_at", now).Error; err != nil {
				return err
			}
		}
		if len(firedIDs) > 0 {
			if err := tx.Model(&models.OrderItem{}).
				Where("id IN ?", firedIDs).
				Update("printed_fired_at", now).Error; err != nil {
				return err
			}
		}
		if len(firedCartIDs) > 0 {
			if err := tx.Model(&models.OrderItem{}).
				Where("cart_item_id IN ? AND printed_fired_at IS NULL", firedCartIDs).
				Update("printed_fired_at", now).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// CreateSupplements inserts supplement rows.
func (r *OrderRepository) CreateSupplements(supps []*models.Supplement) error {
	if len(supps) == 0 {
		return nil
	}
	return r.DB.Create(supps).Error
}

// SplitItem persists the two halves of a complimentary split in one
// transaction: the decremented source row and the new comped row.
func (r *OrderRepository) SplitItem(src, comp *models.OrderItem) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(src).Error; err != nil {
			return err
		}
		return tx.Create(comp).Error
	})
}

// MergeItems persists a merge in one transaction: the surviving row with the
// recombined quantity, and the removal of the comped row.
func (r *OrderRepository) MergeItems(keep *models.OrderItem, removeID uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(keep).Error; err != nil {
			return err
		}
		return tx.Delete(&models.OrderItem{}, removeID).Error
	})
}
