package models

import (
	"time"

	"gorm.io/datatypes"
)

type Item struct {
	BaseModel
	HouseholdID    uint                        `gorm:"index;not null" json:"household_id"`
	Name           string                      `gorm:"type:varchar(255);not null" json:"name"`
	Quantity       *int                        `json:"quantity"`
	Tags           datatypes.JSONSlice[string] `json:"tags"`
	ContainerID    *uint                       `gorm:"index" json:"container_id,omitempty"`
	ExpirationDate *time.Time                  `json:"expiration_date,omitempty"`
}
