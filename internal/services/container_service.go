package services

import (
	"Stocked/internal/models"
	"Stocked/internal/realtime"
	"Stocked/internal/repository"

	"gorm.io/gorm"
)

type ContainerService interface {
	GetContainers(householdID uint) ([]models.Container, error)
	GetContainerByID(id uint) (*models.Container, error)
	CreateContainer(householdID uint, name string, location, color *string) (*models.Container, error)
	UpdateContainer(id uint, name string, location, color *string) (*models.Container, error)
	DeleteContainer(id uint) error
}

type containerServiceImpl struct {
	db            *gorm.DB
	containerRepo repository.ContainerRepository
	broadcaster   Broadcaster
}

func NewContainerService(db *gorm.DB, containerRepo repository.ContainerRepository, broadcaster Broadcaster) ContainerService {
	return &containerServiceImpl{db: db, containerRepo: containerRepo, broadcaster: broadcaster}
}

func (s *containerServiceImpl) GetContainers(householdID uint) ([]models.Container, error) {
	return s.containerRepo.FindByHouseholdID(householdID)
}

func (s *containerServiceImpl) GetContainerByID(id uint) (*models.Container, error) {
	return s.containerRepo.FindByID(id)
}

func (s *containerServiceImpl) CreateContainer(householdID uint, name string, location, color *string) (*models.Container, error) {
	container := &models.Container{
		HouseholdID: householdID,
		Name:        name,
		Location:    location,
		Color:       color,
	}
	if err := s.containerRepo.Create(container); err != nil {
		return nil, err
	}
	s.broadcaster.Broadcast(realtime.NewEvent("containers", "insert", householdID, container.ID))
	return container, nil
}

// UpdateContainer overwrites all editable fields; a nil location or color
// clears the stored value, matching the editor's blank-means-remove rule.
func (s *containerServiceImpl) UpdateContainer(id uint, name string, location, color *string) (*models.Container, error) {
	container, err := s.containerRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if container == nil {
		return nil, nil
	}
	container.Name = name
	container.Location = location
	container.Color = color
	if err := s.containerRepo.Update(container); err != nil {
		return nil, err
	}
	s.broadcaster.Broadcast(realtime.NewEvent("containers", "update", container.HouseholdID, container.ID))
	return container, nil
}

// DeleteContainer removes the container and detaches its items so no item
// references a container that no longer exists.
func (s *containerServiceImpl) DeleteContainer(id uint) error {
	container, err := s.containerRepo.FindByID(id)
	if err != nil {
		return err
	}
	if container == nil {
		return nil
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := repository.NewItemRepository(tx).DetachContainer(id); err != nil {
			return err
		}
		return repository.NewContainerRepository(tx).Delete(id)
	})
	if err != nil {
		return err
	}
	s.broadcaster.Broadcast(realtime.NewEvent("containers", "delete", container.HouseholdID, container.ID))
	s.broadcaster.Broadcast(realtime.NewEvent("items", "update", container.HouseholdID, 0))
	return nil
}
