package services

import (
	"Stocked/internal/models"
	"Stocked/internal/repository"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newHouseholdService(db *gorm.DB) HouseholdService {
	return NewHouseholdService(
		db,
		repository.NewHouseholdRepository(db),
		repository.NewMemberRepository(db),
		&stubBroadcaster{},
		testLogService(),
	)
}

func TestHouseholdService_CreateHousehold_AddsOwnerMembership(t *testing.T) {
	db := setupServiceDB(t)
	service := newHouseholdService(db)

	household, err := service.CreateHousehold("user-1", "Lake House")

	assert.NoError(t, err)
	assert.NotZero(t, household.ID)

	member, err := service.IsMember("user-1", household.ID)
	assert.NoError(t, err)
	assert.True(t, member)

	other, err := service.IsMember("user-2", household.ID)
	assert.NoError(t, err)
	assert.False(t, other)
}

func TestHouseholdService_GetHouseholdsForUser_OnlyMemberships(t *testing.T) {
	db := setupServiceDB(t)
	service := newHouseholdService(db)

	_, err := service.CreateHousehold("user-1", "Bravo")
	assert.NoError(t, err)
	_, err = service.CreateHousehold("user-1", "Alpha")
	assert.NoError(t, err)
	_, err = service.CreateHousehold("user-2", "Charlie")
	assert.NoError(t, err)

	households, err := service.GetHouseholdsForUser("user-1")

	assert.NoError(t, err)
	assert.Len(t, households, 2)
	assert.Equal(t, "Alpha", households[0].Name)
	assert.Equal(t, "Bravo", households[1].Name)
}

func TestHouseholdService_EnsureDefault_FirstLogin(t *testing.T) {
	db := setupServiceDB(t)
	service := newHouseholdService(db)

	household, err := service.EnsureDefault("user-1", "anna@example.com")

	assert.NoError(t, err)
	assert.NotNil(t, household)
	assert.Equal(t, "anna's Inventory", household.Name)

	// Already provisioned users get nothing new
	again, err := service.EnsureDefault("user-1", "anna@example.com")
	assert.NoError(t, err)
	assert.Nil(t, again)

	households, err := service.GetHouseholdsForUser("user-1")
	assert.NoError(t, err)
	assert.Len(t, households, 1)
}

func TestHouseholdService_DeleteHousehold_CascadesAllRows(t *testing.T) {
	db := setupServiceDB(t)
	service := newHouseholdService(db)

	household, err := service.CreateHousehold("user-1", "Home")
	assert.NoError(t, err)
	keep, err := service.CreateHousehold("user-1", "Cabin")
	assert.NoError(t, err)

	containerRepo := repository.NewContainerRepository(db)
	itemRepo := repository.NewItemRepository(db)
	shoppingRepo := repository.NewShoppingRepository(db)

	container := &models.Container{HouseholdID: household.ID, Name: "Pantry"}
	assert.NoError(t, containerRepo.Create(container))
	one := 1
	assert.NoError(t, itemRepo.Create(&models.Item{HouseholdID: household.ID, Name: "Rice", Quantity: &one}))
	assert.NoError(t, itemRepo.Create(&models.Item{HouseholdID: keep.ID, Name: "Salt", Quantity: &one}))
	assert.NoError(t, shoppingRepo.Create(&models.ShoppingEntry{HouseholdID: household.ID, ItemName: "Beans", Quantity: 1}))

	err = service.DeleteHousehold(household.ID)
	assert.NoError(t, err)

	gone, err := service.GetHouseholdByID(household.ID)
	assert.NoError(t, err)
	assert.Nil(t, gone)

	member, err := service.IsMember("user-1", household.ID)
	assert.NoError(t, err)
	assert.False(t, member)

	containers, err := containerRepo.FindByHouseholdID(household.ID)
	assert.NoError(t, err)
	assert.Empty(t, containers)

	items, err := itemRepo.FindByHouseholdID(household.ID, "", nil)
	assert.NoError(t, err)
	assert.Empty(t, items)

	entries, err := shoppingRepo.FindByHouseholdID(household.ID)
	assert.NoError(t, err)
	assert.Empty(t, entries)

	// The other household keeps its rows
	kept, err := itemRepo.FindByHouseholdID(keep.ID, "", nil)
	assert.NoError(t, err)
	assert.Len(t, kept, 1)
}

func TestHouseholdService_RenameHousehold(t *testing.T) {
	db := setupServiceDB(t)
	service := newHouseholdService(db)

	household, err := service.CreateHousehold("user-1", "Home")
	assert.NoError(t, err)

	renamed, err := service.RenameHousehold(household.ID, "Apartment")
	assert.NoError(t, err)
	assert.Equal(t, "Apartment", renamed.Name)

	missing, err := service.RenameHousehold(9999, "Nowhere")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestDefaultHouseholdName(t *testing.T) {
	assert.Equal(t, "anna's Inventory", DefaultHouseholdName("anna@example.com"))
	assert.Equal(t, "My Inventory", DefaultHouseholdName(""))
	assert.Equal(t, "My Inventory", DefaultHouseholdName("not-an-email"))
}

func TestResolveActive(t *testing.T) {
	households := []models.Household{
		{BaseModel: models.BaseModel{ID: 1}, Name: "Alpha"},
		{BaseModel: models.BaseModel{ID: 2}, Name: "Bravo"},
	}

	// Saved ID still valid
	active := ResolveActive(2, households)
	assert.NotNil(t, active)
	assert.Equal(t, uint(2), active.ID)

	// Stale saved ID falls back to the first household
	active = ResolveActive(99, households)
	assert.NotNil(t, active)
	assert.Equal(t, uint(1), active.ID)

	// No saved ID
	active = ResolveActive(0, households)
	assert.NotNil(t, active)
	assert.Equal(t, uint(1), active.ID)

	// No households at all
	assert.Nil(t, ResolveActive(1, nil))
}
