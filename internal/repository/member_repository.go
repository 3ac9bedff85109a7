package repository

import (
	"Stocked/internal/models"

	"gorm.io/gorm"
)

type MemberRepository interface {
	GenericRepository[models.HouseholdMember]
	FindByUserID(userID string) ([]models.HouseholdMember, error)
	CountByUserID(userID string) (int64, error)
	IsMember(userID string, householdID uint) (bool, error)
	DeleteByHouseholdID(householdID uint) error
}

type MemberRepositoryImpl[T models.HouseholdMember] struct {
	GenericRepository[models.HouseholdMember]
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &MemberRepositoryImpl[models.HouseholdMember]{
		GenericRepository: NewGenericRepository[models.HouseholdMember](db),
		db:                db,
	}
}

func (r *MemberRepositoryImpl[T]) FindByUserID(userID string) ([]models.HouseholdMember, error) {
	var members []models.HouseholdMember
	err := r.db.Where("user_id = ?", userID).Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (r *MemberRepositoryImpl[T]) CountByUserID(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.HouseholdMember{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *MemberRepositoryImpl[T]) IsMember(userID string, householdID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.HouseholdMember{}).
		Where("user_id = ? AND household_id = ?", userID, householdID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *MemberRepositoryImpl[T]) DeleteByHouseholdID(householdID uint) error {
	return r.db.Where("household_id = ?", householdID).Delete(&models.HouseholdMember{}).Error
}
