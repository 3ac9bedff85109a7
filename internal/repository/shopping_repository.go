package repository

import (
	"Stocked/internal/models"

	"gorm.io/gorm"
)

type ShoppingRepository interface {
	GenericRepository[models.ShoppingEntry]
	FindByHouseholdID(householdID uint) ([]models.ShoppingEntry, error)
	DeleteByHouseholdID(householdID uint) error
}

type ShoppingRepositoryImpl[T models.ShoppingEntry] struct {
	GenericRepository[models.ShoppingEntry]
	db *gorm.DB
}

func NewShoppingRepository(db *gorm.DB) ShoppingRepository {
	return &ShoppingRepositoryImpl[models.ShoppingEntry]{
		GenericRepository: NewGenericRepository[models.ShoppingEntry](db),
		db:                db,
	}
}

// FindByHouseholdID returns entries newest first, the shopping list's
// display order.
func (r *ShoppingRepositoryImpl[T]) FindByHouseholdID(householdID uint) ([]models.ShoppingEntry, error) {
	var entries []models.ShoppingEntry
	err := r.db.Where("household_id = ?", householdID).Order("added_at DESC").Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *ShoppingRepositoryImpl[T]) DeleteByHouseholdID(householdID uint) error {
	return r.db.Where("household_id = ?", householdID).Delete(&models.ShoppingEntry{}).Error
}
