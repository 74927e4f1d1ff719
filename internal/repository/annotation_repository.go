package repository

import (
	"errors"

	"github.com/Baaaki/brew-book/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AnnotationRepository struct {
	db *gorm.DB
}

func NewAnnotationRepository(db *gorm.DB) *AnnotationRepository {
	return &AnnotationRepository{db: db}
}

// UpsertRating replaces any prior rating by this user for this recipe with
// the new score. Delete-then-insert inside one transaction, so readers see
// either the old row or the new one committed together.
func (r *AnnotationRepository) UpsertRating(recipeID uint, userID uuid.UUID, score int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("recipe_id = ? AND user_id = ?", recipeID, userID).
			Delete(&models.Rating{}).Error
		if err != nil {
			return err
		}
		rating := models.Rating{RecipeID: recipeID, UserID: userID, Score: score}
		return tx.Create(&rating).Error
	})
}

// GetUserRating returns the caller's score for a recipe, or 0 when unrated.
// 0 is the "unrated" sentinel, not a valid score.
func (r *AnnotationRepository) GetUserRating(recipeID uint, userID uuid.UUID) (int, error) {
	var rating models.Rating
	err := r.db.Where("recipe_id = ? AND user_id = ?", recipeID, userID).
		First(&rating).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}

	return rating.Score, nil
}

func (r *AnnotationRepository) AddNote(recipeID uint, content string) error {
	note := models.Note{RecipeID: recipeID, Content: content}
	return r.db.Create(&note).Error
}

// ListNotes returns a recipe's notes in primary key order, which is the
// iteration order positional deletion indexes into.
func (r *AnnotationRepository) ListNotes(recipeID uint) ([]models.Note, error) {
	var notes []models.Note
	err := r.db.Where("recipe_id = ?", recipeID).Order("id").Find(&notes).Error
	return notes, err
}

func (r *AnnotationRepository) DeleteNoteByID(id uint) error {
	return r.db.Delete(&models.Note{}, id).Error
}
