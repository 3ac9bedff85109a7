package dto

type ItemGetDTO struct {
	ID             uint     `json:"id"`
	HouseholdID    uint     `json:"household_id"`
	Name           string   `json:"name"`
	Quantity       int      `json:"quantity"`
	Tags           []string `json:"tags"`
	ContainerID    *uint    `json:"container_id,omitempty"`
	ExpirationDate string   `json:"expiration_date,omitempty"`
}
