package models

import "gorm.io/gorm"

// Routing destinations for produced items.
const (
	RouteKitchen = "kitchen"
	RouteBar     = "bar"
)

// MenuCategory groups menu items for display ordering.
type MenuCategory struct {
	gorm.Model
	Name     string     `json:"name" gorm:"not null"`
	Position int        `json:"position" gorm:"default:0"`
	Items    []MenuItem `json:"items" gorm:"foreignKey:CategoryID"`
}

// MenuItem is a sellable dish or drink.
type MenuItem struct {
	gorm.Model
	CategoryID uint    `json:"category_id" gorm:"not null"`
	Name       string  `json:"name" gorm:"not null"`
	Price      float64 `json:"price" gorm:"type:decimal(10,2);not null"`
	TaxRate    float64 `json:"tax_rate" gorm:"type:decimal(5,2);default:10.00"`
	// Route decides whether fired lines land on a kitchen or a bar ticket.
	Route     string `json:"route" gorm:"type:varchar(10);not null;default:'kitchen'"`
	Allergens string `json:"allergens" gorm:"type:text"`
	// KidsMenuIncluded marks beverages that are free when bundled with a
	// kids' menu; the cart flow zeroes their price in that case.
	KidsMenuIncluded bool `json:"kids_menu_included" gorm:"default:false"`
	Archived         bool `json:"archived" gorm:"default:false"`
}
