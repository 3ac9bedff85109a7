package models

type Household struct {
	BaseModel
	Name    string            `gorm:"type:varchar(255);not null" json:"name"`
	Members []HouseholdMember `gorm:"foreignKey:HouseholdID" json:"members,omitempty"`
}

// HouseholdMember links an identity-provider user to a household.
// Role is informational only; no role-based checks are enforced.
type HouseholdMember struct {
	BaseModel
	HouseholdID uint   `gorm:"index;not null" json:"household_id"`
	UserID      string `gorm:"type:varchar(64);index;not null" json:"user_id"`
	Role        string `gorm:"type:varchar(50);not null" json:"role"`
}
