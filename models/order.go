package models

import (
	"time"

	"gorm.io/gorm"
)

// Order statuses.
const (
	OrderOpen   = "open"
	OrderClosed = "closed"
)

// Order item statuses. An item moves pending → to_follow_* → fired →
// completed; completed and deleted are terminal.
const (
	ItemPending   = "pending"
	ItemToFollow1 = "to_follow_1"
	ItemToFollow2 = "to_follow_2"
	ItemFired     = "fired"
	ItemCompleted = "completed"
	ItemDeleted   = "deleted"
)

// Order is one open tab for one table. At most one open order exists per
// table at any time.
type Order struct {
	gorm.Model
	TableID     uint         `json:"table_id" gorm:"not null;index"`
	ServerID    uint         `json:"server_id" gorm:"not null"`
	Status      string       `json:"status" gorm:"type:varchar(10);not null;default:'open';index"`
	Covers      int          `json:"covers" gorm:"default:0"`
	ClosedAt    *time.Time   `json:"closed_at"`
	Items       []OrderItem  `json:"items" gorm:"foreignKey:OrderID"`
	Supplements []Supplement `json:"supplements" gorm:"foreignKey:OrderID"`
}

// OrderItem is one line on an order. A partially complimentary quantity is
// represented by two rows sharing the same CartItemID, one comped and one
// paid.
type OrderItem struct {
	gorm.Model
	OrderID    uint `json:"order_id" gorm:"not null;index"`
	MenuItemID uint `json:"menu_item_id" gorm:"not null"`
	// CartItemID correlates optimistic client-side lines with persisted rows.
	CartItemID          string  `json:"cart_item_id" gorm:"type:varchar(36);index"`
	Quantity            int     `json:"quantity" gorm:"not null;default:1"`
	Price               float64 `json:"price" gorm:"type:decimal(10,2);not null"`
	Status              string  `json:"status" gorm:"type:varchar(15);not null;default:'pending'"`
	Notes               string  `json:"notes" gorm:"type:text"`
	IsComplimentary     bool    `json:"is_complimentary" gorm:"default:false"`
	ComplimentaryReason string  `json:"complimentary_reason" gorm:"type:varchar(255)"`
	// Version supports conditional updates so concurrent cart submits
	// surface a conflict instead of clobbering each other.
	Version int `json:"version" gorm:"not null;default:0"`
	// Dispatch idempotency stamps: set once when the line lands on a ticket.
	PrintedPlanAt  *time.Time `json:"printed_plan_at"`
	PrintedFiredAt *time.Time `json:"printed_fired_at"`
	FiredAt        *time.Time `json:"fired_at"`
}

// IsToFollow reports whether the item is staged for a later course.
func (i *OrderItem) IsToFollow() bool {
	return i.Status == ItemToFollow1 || i.Status == ItemToFollow2
}

// IsTerminal reports whether the item status admits no further transition.
func (i *OrderItem) IsTerminal() bool {
	return i.Status == ItemCompleted || i.Status == ItemDeleted
}

// Supplement is a non-menu charge line on an order, e.g. a manual add-on.
type Supplement struct {
	gorm.Model
	OrderID             uint    `json:"order_id" gorm:"not null;index"`
	Name                string  `json:"name" gorm:"not null"`
	Amount              float64 `json:"amount" gorm:"type:decimal(10,2);not null"`
	TaxRate             float64 `json:"tax_rate" gorm:"type:decimal(5,2);default:10.00"`
	IsComplimentary     bool    `json:"is_complimentary" gorm:"default:false"`
	ComplimentaryReason string  `json:"complimentary_reason" gorm:"type:varchar(255)"`
}
