package repository

import (
	"errors"

	"github.com/Baaaki/brew-book/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUserWithEquipment inserts the user and their initial equipment
// selection in a single transaction.
func (r *UserRepository) CreateUserWithEquipment(user *models.User, equipment []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		for _, kind := range equipment {
			row := models.UserEquipment{UserID: user.ID, Equipment: kind}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *UserRepository) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Where("username = ?", username).First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) GetUserByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.Where("id = ?", id).First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

// GetEquipment returns the user's current equipment selection.
func (r *UserRepository) GetEquipment(userID uuid.UUID) ([]string, error) {
	var rows []models.UserEquipment
	err := r.db.Where("user_id = ?", userID).Order("id").Find(&rows).Error
	if err != nil {
		return nil, err
	}

	equipment := make([]string, 0, len(rows))
	for _, row := range rows {
		equipment = append(equipment, row.Equipment)
	}
	return equipment, nil
}

// ReplaceEquipment swaps the user's entire selection: delete all existing
// rows, then insert the new set, in one transaction.
func (r *UserRepository) ReplaceEquipment(userID uuid.UUID, equipment []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.UserEquipment{}).Error; err != nil {
			return err
		}
		for _, kind := range equipment {
			row := models.UserEquipment{UserID: userID, Equipment: kind}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
