package repository

import (
	"Stocked/internal/models"

	"gorm.io/gorm"
)

type ContainerRepository interface {
	GenericRepository[models.Container]
	FindByHouseholdID(householdID uint) ([]models.Container, error)
	DeleteByHouseholdID(householdID uint) error
}

type ContainerRepositoryImpl[T models.Container] struct {
	GenericRepository[models.Container]
	db *gorm.DB
}

func NewContainerRepository(db *gorm.DB) ContainerRepository {
	return &ContainerRepositoryImpl[models.Container]{
		GenericRepository: NewGenericRepository[models.Container](db),
		db:                db,
	}
}

func (r *ContainerRepositoryImpl[T]) FindByHouseholdID(householdID uint) ([]models.Container, error) {
	var containers []models.Container
	err := r.db.Where("household_id = ?", householdID).Order("name").Find(&containers).Error
	if err != nil {
		return nil, err
	}
	return containers, nil
}

func (r *ContainerRepositoryImpl[T]) DeleteByHouseholdID(householdID uint) error {
	return r.db.Where("household_id = ?", householdID).Delete(&models.Container{}).Error
}
