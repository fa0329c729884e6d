package models

import "time"

// Request payloads, one typed struct per endpoint, validated at the boundary
// before they reach the services.

// CartLine is one desired line in a cart submission. ID is zero for lines
// the client has not persisted yet; those carry only a CartItemID.
type CartLine struct {
	ID                  uint    `json:"id"`
	CartItemID          string  `json:"cartItemId"`
	MenuItemID          uint    `json:"menuItemId"`
	Quantity            int     `json:"quantity"`
	Price               float64 `json:"price"`
	Status              string  `json:"status"`
	Notes               string  `json:"notes"`
	IsComplimentary     bool    `json:"isComplimentary"`
	ComplimentaryReason string  `json:"complimentaryReason"`
	Version             int     `json:"version"`
}

// SupplementLine is a non-menu charge submitted with a cart.
type SupplementLine struct {
	Name                string  `json:"name"`
	Amount              float64 `json:"amount"`
	TaxRate             float64 `json:"taxRate"`
	IsComplimentary     bool    `json:"isComplimentary"`
	ComplimentaryReason string  `json:"complimentaryReason"`
}

// CartRequest is the full desired state of a table's cart.
type CartRequest struct {
	TableID     uint             `json:"tableId"`
	ServerID    uint             `json:"serverId"`
	OrderID     uint             `json:"orderId"`
	Covers      int              `json:"covers"`
	Items       []CartLine       `json:"items"`
	Supplements []SupplementLine `json:"supplements"`
}

// FireRequest fires existing items to the kitchen or bar.
type FireRequest struct {
	ItemIDs []uint `json:"itemIds"`
}

// SplitRequest moves part of an item's quantity onto a complimentary line.
type SplitRequest struct {
	ItemID              uint   `json:"itemId"`
	OfferQuantity       int    `json:"offerQuantity"`
	ServerID            uint   `json:"serverId"`
	ComplimentaryReason string `json:"complimentaryReason"`
}

// MergeRequest recombines a complimentary line with its paid sibling.
type MergeRequest struct {
	OriginalItemID      uint `json:"originalItemId"`
	ComplimentaryItemID uint `json:"complimentaryItemId"`
}

// PaymentRequest records a settlement event against an order.
type PaymentRequest struct {
	OrderID        uint           `json:"orderId"`
	TableID        uint           `json:"tableId"`
	Amount         float64        `json:"amount"`
	Tip            float64        `json:"tip"`
	Discount       float64        `json:"discount"`
	PaymentMethod  string         `json:"paymentMethod"`
	SplitMode      string         `json:"splitMode"`
	ItemQuantities []PaymentSplit `json:"itemQuantities"`
}

// PaymentResult reports the settlement state after a payment.
type PaymentResult struct {
	Success         bool    `json:"success"`
	IsFullyPaid     bool    `json:"isFullyPaid"`
	PaidTotal       float64 `json:"paidTotal"`
	RemainingAmount float64 `json:"remainingAmount"`
	OrderTotal      float64 `json:"orderTotal"`
}

// TransferRequest moves an open order from one table to another.
type TransferRequest struct {
	FromTableID uint `json:"fromTableId"`
	ToTableID   uint `json:"toTableId"`
}

// ReservationRequest books a table hold.
type ReservationRequest struct {
	TableID      uint      `json:"tableId"`
	CustomerName string    `json:"customerName"`
	Phone        string    `json:"phone"`
	PartySize    int       `json:"partySize"`
	StartsAt     time.Time `json:"startsAt"`
	EndsAt       time.Time `json:"endsAt"`
	Notes        string    `json:"notes"`
}

// DailyReport aggregates the sales snapshots of one service date.
type DailyReport struct {
	Date        string  `json:"date"`
	OrdersCount int     `json:"ordersCount"`
	Revenue     float64 `json:"revenue"`
	Tips        float64 `json:"tips"`
	Covers      int     `json:"covers"`
}
