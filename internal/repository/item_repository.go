package repository

import (
	"Stocked/internal/models"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

type ItemRepository interface {
	GenericRepository[models.Item]
	FindByHouseholdID(householdID uint, search string, containerID *uint) ([]models.Item, error)
	FindFirstByNameFold(householdID uint, name string) (*models.Item, error)
	UpdateFields(id uint, fields map[string]interface{}) error
	DetachContainer(containerID uint) error
	DeleteByHouseholdID(householdID uint) error
	FindExpiredBefore(cutoff time.Time) ([]models.Item, error)
}

type ItemRepositoryImpl[T models.Item] struct {
	GenericRepository[models.Item]
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &ItemRepositoryImpl[models.Item]{
		GenericRepository: NewGenericRepository[models.Item](db),
		db:                db,
	}
}

func (r *ItemRepositoryImpl[T]) FindByHouseholdID(householdID uint, search string, containerID *uint) ([]models.Item, error) {
	var items []models.Item
	query := r.db.Where("household_id = ?", householdID)
	if search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	if containerID != nil {
		query = query.Where("container_id = ?", *containerID)
	}
	err := query.Order("name").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// FindFirstByNameFold matches the item name case-insensitively, exact match
// only. Returns (nil, nil) when no item matches.
func (r *ItemRepositoryImpl[T]) FindFirstByNameFold(householdID uint, name string) (*models.Item, error) {
	var item models.Item
	err := r.db.Where("household_id = ? AND LOWER(name) = ?", householdID, strings.ToLower(name)).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// UpdateFields writes only the given columns. Callers rely on the
// omitted-vs-null distinction: a key left out of the map preserves the
// stored value.
func (r *ItemRepositoryImpl[T]) UpdateFields(id uint, fields map[string]interface{}) error {
	return r.db.Model(&models.Item{}).Where("id = ?", id).Updates(fields).Error
}

// DetachContainer clears container_id on every item in the container, used
// when the container itself is deleted.
func (r *ItemRepositoryImpl[T]) DetachContainer(containerID uint) error {
	return r.db.Model(&models.Item{}).Where("container_id = ?", containerID).
		Update("container_id", nil).Error
}

func (r *ItemRepositoryImpl[T]) DeleteByHouseholdID(householdID uint) error {
	return r.db.Where("household_id = ?", householdID).Delete(&models.Item{}).Error
}

func (r *ItemRepositoryImpl[T]) FindExpiredBefore(cutoff time.Time) ([]models.Item, error) {
	var items []models.Item
	err := r.db.Where("expiration_date IS NOT NULL AND expiration_date < ?", cutoff).
		Order("household_id").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
