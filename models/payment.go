package models

import "gorm.io/gorm"

// Payment methods.
const (
	PayCash  = "cash"
	PayCard  = "card"
	PayOther = "other"
)

// Payment records one settlement event against an order.
type Payment struct {
	gorm.Model
	OrderID  uint           `json:"order_id" gorm:"not null;index"`
	TableID  uint           `json:"table_id" gorm:"not null"`
	Amount   float64        `json:"amount" gorm:"type:decimal(10,2);not null"`
	Tip      float64        `json:"tip" gorm:"type:decimal(10,2);default:0.00"`
	Discount float64        `json:"discount" gorm:"type:decimal(10,2);default:0.00"`
	Method   string         `json:"method" gorm:"type:varchar(10);not null"`
	Splits   []PaymentSplit `json:"splits" gorm:"foreignKey:PaymentID"`
}

// PaymentSplit attributes part of a payment to a specific order item.
type PaymentSplit struct {
	gorm.Model
	PaymentID   uint `json:"payment_id" gorm:"not null;index"`
	OrderItemID uint `json:"order_item_id" gorm:"not null;index"`
	Quantity    int  `json:"quantity" gorm:"not null"`
}

// DailySales is a denormalized snapshot written when an order settles. The
// date comes from the order's creation time so reporting aligns with the
// service date rather than the payment date.
type DailySales struct {
	gorm.Model
	Date    string  `json:"date" gorm:"type:varchar(10);not null;index"`
	OrderID uint    `json:"order_id" gorm:"not null;uniqueIndex"`
	Total   float64 `json:"total" gorm:"type:decimal(10,2);not null"`
	Tips    float64 `json:"tips" gorm:"type:decimal(10,2);default:0.00"`
	Covers  int     `json:"covers" gorm:"default:0"`
}
