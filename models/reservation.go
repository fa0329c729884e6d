package models

import (
	"time"

	"gorm.io/gorm"
)

// Reservation statuses.
const (
	ReservationBooked    = "booked"
	ReservationSeated    = "seated"
	ReservationCancelled = "cancelled"
)

// Reservation is a table hold over a time window, independent of orders.
type Reservation struct {
	gorm.Model
	TableID      uint      `json:"table_id" gorm:"not null;index"`
	CustomerName string    `json:"customer_name" gorm:"not null"`
	Phone        string    `json:"phone" gorm:"type:varchar(30)"`
	PartySize    int       `json:"party_size" gorm:"not null"`
	StartsAt     time.Time `json:"starts_at" gorm:"not null;index"`
	EndsAt       time.Time `json:"ends_at" gorm:"not null"`
	Status       string    `json:"status" gorm:"type:varchar(10);not null;default:'booked'"`
	Notes        string    `json:"notes" gorm:"type:text"`
}
