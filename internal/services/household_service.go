package services

import (
	"Stocked/internal/models"
	"Stocked/internal/realtime"
	"Stocked/internal/repository"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type HouseholdService interface {
	GetHouseholdsForUser(userID string) ([]models.Household, error)
	GetHouseholdByID(id uint) (*models.Household, error)
	CreateHousehold(userID, name string) (*models.Household, error)
	RenameHousehold(id uint, name string) (*models.Household, error)
	DeleteHousehold(id uint) error
	EnsureDefault(userID, email string) (*models.Household, error)
	IsMember(userID string, householdID uint) (bool, error)
}

type householdServiceImpl struct {
	db            *gorm.DB
	householdRepo repository.HouseholdRepository
	memberRepo    repository.MemberRepository
	broadcaster   Broadcaster
	logService    LogService
}

func NewHouseholdService(
	db *gorm.DB,
	householdRepo repository.HouseholdRepository,
	memberRepo repository.MemberRepository,
	broadcaster Broadcaster,
	logService LogService,
) HouseholdService {
	return &householdServiceImpl{
		db:            db,
		householdRepo: householdRepo,
		memberRepo:    memberRepo,
		broadcaster:   broadcaster,
		logService:    logService,
	}
}

// GetHouseholdsForUser returns the households the user belongs to, ordered
// by name.
func (s *householdServiceImpl) GetHouseholdsForUser(userID string) ([]models.Household, error) {
	members, err := s.memberRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.HouseholdID)
	}
	return s.householdRepo.FindByIDs(ids)
}

func (s *householdServiceImpl) GetHouseholdByID(id uint) (*models.Household, error) {
	return s.householdRepo.FindByID(id)
}

// CreateHousehold creates the household and an owner membership for the
// creating user in one transaction.
func (s *householdServiceImpl) CreateHousehold(userID, name string) (*models.Household, error) {
	household := &models.Household{Name: name}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := repository.NewHouseholdRepository(tx).Create(household); err != nil {
			return err
		}
		member := &models.HouseholdMember{
			HouseholdID: household.ID,
			UserID:      userID,
			Role:        "owner",
		}
		return repository.NewMemberRepository(tx).Create(member)
	})
	if err != nil {
		return nil, err
	}
	s.broadcaster.Broadcast(realtime.NewEvent("households", "insert", household.ID, household.ID))
	return household, nil
}

func (s *householdServiceImpl) RenameHousehold(id uint, name string) (*models.Household, error) {
	household, err := s.householdRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if household == nil {
		return nil, nil
	}
	household.Name = name
	if err := s.householdRepo.Update(household); err != nil {
		return nil, err
	}
	s.broadcaster.Broadcast(realtime.NewEvent("households", "update", household.ID, household.ID))
	return household, nil
}

// DeleteHousehold removes the household and every row referencing it.
// Dependent tables go first so foreign keys never dangle: shopping entries,
// items, containers, memberships, then the household row.
func (s *householdServiceImpl) DeleteHousehold(id uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := repository.NewShoppingRepository(tx).DeleteByHouseholdID(id); err != nil {
			return err
		}
		if err := repository.NewItemRepository(tx).DeleteByHouseholdID(id); err != nil {
			return err
		}
		if err := repository.NewContainerRepository(tx).DeleteByHouseholdID(id); err != nil {
			return err
		}
		if err := repository.NewMemberRepository(tx).DeleteByHouseholdID(id); err != nil {
			return err
		}
		return repository.NewHouseholdRepository(tx).Delete(id)
	})
	if err != nil {
		return err
	}
	s.logService.Log.WithFields(logrus.Fields{
		"household": id,
	}).Info("household deleted")
	s.broadcaster.Broadcast(realtime.NewEvent("households", "delete", id, id))
	return nil
}

// EnsureDefault guarantees the signed-in user belongs to at least one
// household, creating one on first login.
func (s *householdServiceImpl) EnsureDefault(userID, email string) (*models.Household, error) {
	count, err := s.memberRepo.CountByUserID(userID)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, nil
	}
	return s.CreateHousehold(userID, DefaultHouseholdName(email))
}

func (s *householdServiceImpl) IsMember(userID string, householdID uint) (bool, error) {
	return s.memberRepo.IsMember(userID, householdID)
}

// DefaultHouseholdName derives a first-login household name from the user's
// email address.
func DefaultHouseholdName(email string) string {
	local, _, found := strings.Cut(email, "@")
	if !found || local == "" {
		return "My Inventory"
	}
	return fmt.Sprintf("%s's Inventory", local)
}

// ResolveActive picks the active household: the saved id when it is still in
// the user's list, otherwise the first household (the list arrives ordered
// by name). Returns nil when the user has no households.
func ResolveActive(savedID uint, households []models.Household) *models.Household {
	if len(households) == 0 {
		return nil
	}
	if savedID != 0 {
		for i := range households {
			if households[i].ID == savedID {
				return &households[i]
			}
		}
	}
	return &households[0]
}
