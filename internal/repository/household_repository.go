package repository

import (
	"Stocked/internal/models"

	"gorm.io/gorm"
)

type HouseholdRepository interface {
	GenericRepository[models.Household]
	FindByIDs(ids []uint) ([]models.Household, error)
}

type HouseholdRepositoryImpl[T models.Household] struct {
	GenericRepository[models.Household]
	db *gorm.DB
}

func NewHouseholdRepository(db *gorm.DB) HouseholdRepository {
	return &HouseholdRepositoryImpl[models.Household]{
		GenericRepository: NewGenericRepository[models.Household](db),
		db:                db,
	}
}

// FindByIDs returns the named households ordered by name, the order every
// household selector displays them in.
func (r *HouseholdRepositoryImpl[T]) FindByIDs(ids []uint) ([]models.Household, error) {
	var households []models.Household
	if len(ids) == 0 {
		return households, nil
	}
	err := r.db.Where("id IN ?", ids).Order("name").Find(&households).Error
	if err != nil {
		return nil, err
	}
	return households, nil
}
