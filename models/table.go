package models

import "gorm.io/gorm"

// Table statuses.
const (
	TableAvailable = "available"
	TableOccupied  = "occupied"
	TableReserved  = "reserved"
)

// Table is a physical table on the floor plan. Its status is driven by the
// order, payment and reservation flows, never set directly by clients.
type Table struct {
	gorm.Model
	Number   int    `json:"number" gorm:"uniqueIndex;not null"`
	Seats    int    `json:"seats" gorm:"not null;default:2"`
	Status   string `json:"status" gorm:"type:varchar(10);not null;default:'available'"`
	OpenedBy *uint  `json:"opened_by"`
	Archived bool   `json:"archived" gorm:"default:false"`
}
