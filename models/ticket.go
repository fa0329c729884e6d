package models

import "gorm.io/gorm"

// Ticket statuses and line phases.
const (
	TicketPending   = "pending"
	TicketCompleted = "completed"

	PhaseDirect    = "direct"
	PhaseToFollow1 = "to_follow_1"
	PhaseToFollow2 = "to_follow_2"
)

// KitchenTicket is an immutable dispatch document for one destination.
// Once created its lines never change; only the status moves to completed
// when the kitchen or bar acknowledges it.
type KitchenTicket struct {
	gorm.Model
	OrderID uint `json:"order_id" gorm:"not null;index"`
	// TableNumber is denormalized at creation time so the ticket stays
	// readable even if the order later moves tables.
	TableNumber int          `json:"table_number" gorm:"not null"`
	Destination string       `json:"destination" gorm:"type:varchar(10);not null;index"`
	Status      string       `json:"status" gorm:"type:varchar(10);not null;default:'pending';index"`
	Lines       []TicketLine `json:"lines" gorm:"foreignKey:TicketID"`
}

// TicketLine is one line to prepare on a ticket.
type TicketLine struct {
	gorm.Model
	TicketID uint   `json:"ticket_id" gorm:"not null;index"`
	Name     string `json:"name" gorm:"not null"`
	Quantity int    `json:"quantity" gorm:"not null"`
	Notes    string `json:"notes" gorm:"type:text"`
	Phase    string `json:"phase" gorm:"type:varchar(15);not null;default:'direct'"`
}
