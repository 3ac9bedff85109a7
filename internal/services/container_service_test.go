package services

import (
	"Stocked/internal/models"
	"Stocked/internal/repository"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newContainerService(db *gorm.DB) ContainerService {
	return NewContainerService(db, repository.NewContainerRepository(db), &stubBroadcaster{})
}

func strPtr(s string) *string {
	return &s
}

func TestContainerService_UpdateContainer_BlankClearsOptionalFields(t *testing.T) {
	db := setupServiceDB(t)
	service := newContainerService(db)

	container, err := service.CreateContainer(1, "Pantry", strPtr("Kitchen"), strPtr("#fff"))
	assert.NoError(t, err)

	updated, err := service.UpdateContainer(container.ID, "Pantry", nil, nil)
	assert.NoError(t, err)
	assert.Nil(t, updated.Location)
	assert.Nil(t, updated.Color)
}

func TestContainerService_DeleteContainer_DetachesItems(t *testing.T) {
	db := setupServiceDB(t)
	service := newContainerService(db)
	itemRepo := repository.NewItemRepository(db)

	container, err := service.CreateContainer(1, "Pantry", nil, nil)
	assert.NoError(t, err)

	one := 1
	item := &models.Item{HouseholdID: 1, Name: "Rice", Quantity: &one, ContainerID: &container.ID}
	assert.NoError(t, itemRepo.Create(item))

	err = service.DeleteContainer(container.ID)
	assert.NoError(t, err)

	gone, err := service.GetContainerByID(container.ID)
	assert.NoError(t, err)
	assert.Nil(t, gone)

	// The item survives without its container reference
	kept, err := itemRepo.FindByID(item.ID)
	assert.NoError(t, err)
	assert.NotNil(t, kept)
	assert.Nil(t, kept.ContainerID)
}
