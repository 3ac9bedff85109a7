package services

import (
	"Stocked/internal/models"
	"Stocked/internal/realtime"
	"Stocked/internal/repository"
	"sort"
	"time"

	"gorm.io/datatypes"
)

type ItemService interface {
	GetItems(householdID uint, search string, containerID *uint) ([]models.Item, error)
	GetItemByID(id uint) (*models.Item, error)
	CreateItem(householdID uint, name string, quantity int, tags []string, containerID *uint, expirationDate *time.Time) (*models.Item, error)
	UpdateItem(id uint, name string, quantity int, tags []string, containerID *uint, expirationDate *time.Time) (*models.Item, error)
	DeleteItem(id uint) error
	GetTags(householdID uint) ([]string, error)
	FindExpiredBefore(cutoff time.Time) ([]models.Item, error)
}

type itemServiceImpl struct {
	itemRepo    repository.ItemRepository
	broadcaster Broadcaster
}

func NewItemService(itemRepo repository.ItemRepository, broadcaster Broadcaster) ItemService {
	return &itemServiceImpl{itemRepo: itemRepo, broadcaster: broadcaster}
}

func (s *itemServiceImpl) GetItems(householdID uint, search string, containerID *uint) ([]models.Item, error) {
	return s.itemRepo.FindByHouseholdID(householdID, search, containerID)
}

func (s *itemServiceImpl) GetItemByID(id uint) (*models.Item, error) {
	return s.itemRepo.FindByID(id)
}

func (s *itemServiceImpl) CreateItem(householdID uint, name string, quantity int, tags []string, containerID *uint, expirationDate *time.Time) (*models.Item, error) {
	if quantity < 1 {
		quantity = 1
	}
	item := &models.Item{
		HouseholdID:    householdID,
		Name:           name,
		Quantity:       &quantity,
		Tags:           datatypes.NewJSONSlice(dedupeTags(tags)),
		ContainerID:    containerID,
		ExpirationDate: expirationDate,
	}
	if err := s.itemRepo.Create(item); err != nil {
		return nil, err
	}
	s.broadcaster.Broadcast(realtime.NewEvent("items", "insert", householdID, item.ID))
	return item, nil
}

// UpdateItem overwrites the editable fields. A nil expirationDate preserves
// the stored date; the editor cannot clear a date, only replace it.
func (s *itemServiceImpl) UpdateItem(id uint, name string, quantity int, tags []string, containerID *uint, expirationDate *time.Time) (*models.Item, error) {
	item, err := s.itemRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	if quantity < 0 {
		quantity = 0
	}
	fields := map[string]interface{}{
		"name":         name,
		"quantity":     quantity,
		"tags":         datatypes.NewJSONSlice(dedupeTags(tags)),
		"container_id": containerID,
	}
	if expirationDate != nil {
		fields["expiration_date"] = expirationDate
	}
	if err := s.itemRepo.UpdateFields(id, fields); err != nil {
		return nil, err
	}
	updated, err := s.itemRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	s.broadcaster.Broadcast(realtime.NewEvent("items", "update", item.HouseholdID, id))
	return updated, nil
}

func (s *itemServiceImpl) DeleteItem(id uint) error {
	item, err := s.itemRepo.FindByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return nil
	}
	if err := s.itemRepo.Delete(id); err != nil {
		return err
	}
	s.broadcaster.Broadcast(realtime.NewEvent("items", "delete", item.HouseholdID, id))
	return nil
}

// GetTags collects the distinct tags in use across the household's items,
// sorted, for the tag suggestion list.
func (s *itemServiceImpl) GetTags(householdID uint) ([]string, error) {
	items, err := s.itemRepo.FindByHouseholdID(householdID, "", nil)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	tags := make([]string, 0)
	for _, item := range items {
		for _, tag := range item.Tags {
			if _, ok := seen[tag]; !ok {
				seen[tag] = struct{}{}
				tags = append(tags, tag)
			}
		}
	}
	sort.Strings(tags)
	return tags, nil
}

func (s *itemServiceImpl) FindExpiredBefore(cutoff time.Time) ([]models.Item, error) {
	return s.itemRepo.FindExpiredBefore(cutoff)
}

func dedupeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	result := make([]string, 0, len(tags))
	for _, tag := range tags {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		result = append(result, tag)
	}
	return result
}
