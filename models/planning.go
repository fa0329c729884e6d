package models

import (
	"time"

	"gorm.io/gorm"
)

// Shift is one staff planning entry: who works when, in which role.
type Shift struct {
	gorm.Model
	ServerID uint      `json:"server_id" gorm:"not null;index"`
	Role     string    `json:"role" gorm:"type:varchar(20);not null;default:'service'"`
	StartsAt time.Time `json:"starts_at" gorm:"not null;index"`
	EndsAt   time.Time `json:"ends_at" gorm:"not null"`
	Notes    string    `json:"notes" gorm:"type:text"`
}
