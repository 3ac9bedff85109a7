package mapper

import (
	"Stocked/internal/dto"
	"Stocked/internal/models"
)

const dateLayout = "2006-01-02"

func ToItemGetDTO(item *models.Item) *dto.ItemGetDTO {
	quantity := 0
	if item.Quantity != nil {
		quantity = *item.Quantity
	}
	tags := []string(item.Tags)
	if tags == nil {
		tags = []string{}
	}
	itemDTO := &dto.ItemGetDTO{
		ID:          item.ID,
		HouseholdID: item.HouseholdID,
		Name:        item.Name,
		Quantity:    quantity,
		Tags:        tags,
		ContainerID: item.ContainerID,
	}
	if item.ExpirationDate != nil {
		itemDTO.ExpirationDate = item.ExpirationDate.Format(dateLayout)
	}
	return itemDTO
}

func ToItemGetDTOs(items []models.Item) []*dto.ItemGetDTO {
	itemDTOs := make([]*dto.ItemGetDTO, 0, len(items))
	for i := range items {
		itemDTOs = append(itemDTOs, ToItemGetDTO(&items[i]))
	}
	return itemDTOs
}
