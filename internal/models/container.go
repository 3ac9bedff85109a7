package models

type Container struct {
	BaseModel
	HouseholdID uint    `gorm:"index;not null" json:"household_id"`
	Name        string  `gorm:"type:varchar(255);not null" json:"name"`
	Location    *string `gorm:"type:varchar(255)" json:"location,omitempty"`
	Color       *string `gorm:"type:varchar(50)" json:"color,omitempty"`
}
