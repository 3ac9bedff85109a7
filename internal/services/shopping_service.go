package services

import (
	"Stocked/internal/models"
	"Stocked/internal/realtime"
	"Stocked/internal/repository"
	"errors"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ErrEntryNotFound is returned when a shopping-list operation names an entry
// that no longer exists.
var ErrEntryNotFound = errors.New("shopping entry not found")

// CompletionOverride carries the user-edited fields of the completion form.
// A nil ExpirationDate leaves any stored date untouched.
type CompletionOverride struct {
	Quantity       int
	ExpirationDate *time.Time
	Tags           []string
}

type ShoppingService interface {
	GetEntries(householdID uint) ([]models.ShoppingEntry, error)
	GetEntryByID(id uint) (*models.ShoppingEntry, error)
	AddEntry(householdID uint, itemName string, quantity int) (*models.ShoppingEntry, error)
	SetChecked(id uint, checked bool) (*models.ShoppingEntry, error)
	DeleteEntry(id uint) error
	Complete(id uint, override CompletionOverride) (*models.Item, error)
}

type shoppingServiceImpl struct {
	db           *gorm.DB
	shoppingRepo repository.ShoppingRepository
	broadcaster  Broadcaster
	logService   LogService
}

func NewShoppingService(
	db *gorm.DB,
	shoppingRepo repository.ShoppingRepository,
	broadcaster Broadcaster,
	logService LogService,
) ShoppingService {
	return &shoppingServiceImpl{
		db:           db,
		shoppingRepo: shoppingRepo,
		broadcaster:  broadcaster,
		logService:   logService,
	}
}

func (s *shoppingServiceImpl) GetEntries(householdID uint) ([]models.ShoppingEntry, error) {
	return s.shoppingRepo.FindByHouseholdID(householdID)
}

func (s *shoppingServiceImpl) GetEntryByID(id uint) (*models.ShoppingEntry, error) {
	return s.shoppingRepo.FindByID(id)
}

func (s *shoppingServiceImpl) AddEntry(householdID uint, itemName string, quantity int) (*models.ShoppingEntry, error) {
	if quantity < 1 {
		quantity = 1
	}
	entry := &models.ShoppingEntry{
		HouseholdID: householdID,
		ItemName:    itemName,
		Quantity:    quantity,
	}
	if err := s.shoppingRepo.Create(entry); err != nil {
		return nil, err
	}
	s.broadcaster.Broadcast(realtime.NewEvent("shopping_list", "insert", householdID, entry.ID))
	return entry, nil
}

// SetChecked toggles the checked flag. Checking off an entry has no other
// effect; completion is a separate action.
func (s *shoppingServiceImpl) SetChecked(id uint, checked bool) (*models.ShoppingEntry, error) {
	entry, err := s.shoppingRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ErrEntryNotFound
	}
	entry.Checked = checked
	if err := s.shoppingRepo.Update(entry); err != nil {
		return nil, err
	}
	s.broadcaster.Broadcast(realtime.NewEvent("shopping_list", "update", entry.HouseholdID, entry.ID))
	return entry, nil
}

func (s *shoppingServiceImpl) DeleteEntry(id uint) error {
	entry, err := s.shoppingRepo.FindByID(id)
	if err != nil {
		return err
	}
	if entry == nil {
		return nil
	}
	if err := s.shoppingRepo.Delete(id); err != nil {
		return err
	}
	s.broadcaster.Broadcast(realtime.NewEvent("shopping_list", "delete", entry.HouseholdID, entry.ID))
	return nil
}

// Complete converts a shopping entry into inventory state without creating a
// duplicate item. An item in the same household whose name matches the entry
// case-insensitively absorbs the entry: quantities add up and tag sets merge,
// and the stored expiration date survives unless the override replaces it.
// With no match a fresh item is created from the override fields. The item
// write and the entry delete run in one transaction, so a failed completion
// leaves the entry on the list and is safe to retry.
func (s *shoppingServiceImpl) Complete(id uint, override CompletionOverride) (*models.Item, error) {
	var result *models.Item
	var householdID uint

	err := s.db.Transaction(func(tx *gorm.DB) error {
		shoppingRepo := repository.NewShoppingRepository(tx)
		itemRepo := repository.NewItemRepository(tx)

		entry, err := shoppingRepo.FindByID(id)
		if err != nil {
			return err
		}
		if entry == nil {
			return ErrEntryNotFound
		}
		householdID = entry.HouseholdID

		quantity := override.Quantity
		if quantity < 1 {
			quantity = entry.Quantity
			if quantity < 1 {
				quantity = 1
			}
		}

		existing, err := itemRepo.FindFirstByNameFold(entry.HouseholdID, entry.ItemName)
		if err != nil {
			return err
		}

		if existing != nil {
			current := 0
			if existing.Quantity != nil {
				current = *existing.Quantity
			}
			fields := map[string]interface{}{
				"quantity": current + quantity,
				"tags":     datatypes.NewJSONSlice(MergeTags(existing.Tags, override.Tags)),
			}
			if override.ExpirationDate != nil {
				fields["expiration_date"] = override.ExpirationDate
			}
			if err := itemRepo.UpdateFields(existing.ID, fields); err != nil {
				return err
			}
			result, err = itemRepo.FindByID(existing.ID)
			if err != nil {
				return err
			}
		} else {
			item := &models.Item{
				HouseholdID:    entry.HouseholdID,
				Name:           entry.ItemName,
				Quantity:       &quantity,
				Tags:           datatypes.NewJSONSlice(dedupeTags(override.Tags)),
				ExpirationDate: override.ExpirationDate,
			}
			if err := itemRepo.Create(item); err != nil {
				return err
			}
			result = item
		}

		return shoppingRepo.Delete(entry.ID)
	})
	if err != nil {
		return nil, err
	}

	s.broadcaster.Broadcast(realtime.NewEvent("items", "update", householdID, result.ID))
	s.broadcaster.Broadcast(realtime.NewEvent("shopping_list", "delete", householdID, id))
	return result, nil
}

// MergeTags unions two tag lists, keeping existing order and collapsing
// duplicates.
func MergeTags(existing, extra []string) []string {
	seen := make(map[string]struct{}, len(existing)+len(extra))
	merged := make([]string, 0, len(existing)+len(extra))
	for _, tag := range existing {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		merged = append(merged, tag)
	}
	for _, tag := range extra {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		merged = append(merged, tag)
	}
	return merged
}

// ParseTags splits a comma-separated tag string, trimming whitespace and
// dropping blanks.
func ParseTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		tag := strings.TrimSpace(part)
		if tag == "" {
			continue
		}
		tags = append(tags, tag)
	}
	return tags
}
