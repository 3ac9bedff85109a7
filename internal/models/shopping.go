package models

import (
	"time"
)

// ShoppingEntry is a line on the household's shopping list. Checked is a
// manual toggle; converting an entry into an inventory item is a separate,
// explicit completion action.
type ShoppingEntry struct {
	BaseModel
	HouseholdID uint      `gorm:"index;not null" json:"household_id"`
	ItemName    string    `gorm:"type:varchar(255);not null" json:"item_name"`
	Quantity    int       `gorm:"default:1" json:"quantity"`
	Checked     bool      `gorm:"default:false" json:"checked"`
	AddedAt     time.Time `gorm:"autoCreateTime;index" json:"added_at"`
}
