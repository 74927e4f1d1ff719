package repository

import (
	"errors"

	"github.com/Baaaki/brew-book/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RecipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

// childOrder keeps instruction (and note) iteration in insertion order.
func childOrder(tx *gorm.DB) *gorm.DB {
	return tx.Order("id")
}

func (r *RecipeRepository) preloadChildren(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Equipment", childOrder).
		Preload("Instructions", childOrder).
		Preload("Ingredients", childOrder).
		Preload("Ratings", childOrder).
		Preload("Notes", childOrder)
}

// CreateRecipe inserts the recipe and all of its child rows in one
// transaction. The recipe's ID is populated on return.
func (r *RecipeRepository) CreateRecipe(recipe *models.Recipe, equipment, steps, ingredients []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(recipe).Error; err != nil {
			return err
		}
		return createChildren(tx, recipe.ID, equipment, steps, ingredients)
	})
}

func (r *RecipeRepository) GetRecipeByID(id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := r.preloadChildren(r.db).First(&recipe, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &recipe, nil
}

// ListMasterRecipes returns every master recipe with children preloaded.
func (r *RecipeRepository) ListMasterRecipes() ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := r.preloadChildren(r.db).
		Where("is_master = ?", true).
		Order("id").
		Find(&recipes).Error
	return recipes, err
}

// ListPersonalRecipes returns the owner's personal (non-master) recipes.
func (r *RecipeRepository) ListPersonalRecipes(ownerID uuid.UUID) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := r.preloadChildren(r.db).
		Where("is_master = ? AND user_id = ?", false, ownerID).
		Order("id").
		Find(&recipes).Error
	return recipes, err
}

// ReplaceRecipe updates title/description in place and swaps every child
// collection (delete all, reinsert) in a single transaction. When
// stampMaster is set the recipe is forced to master tier regardless of its
// previous tier; this is the admin promote path.
func (r *RecipeRepository) ReplaceRecipe(id uint, title, description string, stampMaster bool, equipment, steps, ingredients []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"title":       title,
			"description": description,
		}
		if stampMaster {
			updates["is_master"] = true
		}
		if err := tx.Model(&models.Recipe{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return err
		}

		for _, model := range []interface{}{
			&models.RecipeEquipment{},
			&models.RecipeInstruction{},
			&models.RecipeIngredient{},
		} {
			if err := tx.Where("recipe_id = ?", id).Delete(model).Error; err != nil {
				return err
			}
		}
		return createChildren(tx, id, equipment, steps, ingredients)
	})
}

// DeleteRecipeCascade removes the recipe and every dependent row
// (equipment, instructions, ingredients, ratings, notes) in one transaction.
func (r *RecipeRepository) DeleteRecipeCascade(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{
			&models.RecipeEquipment{},
			&models.RecipeInstruction{},
			&models.RecipeIngredient{},
			&models.Rating{},
			&models.Note{},
		} {
			if err := tx.Where("recipe_id = ?", id).Delete(model).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.Recipe{}, id).Error
	})
}

func createChildren(tx *gorm.DB, recipeID uint, equipment, steps, ingredients []string) error {
	for _, kind := range equipment {
		row := models.RecipeEquipment{RecipeID: recipeID, Equipment: kind}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}
	// Steps go in one at a time so primary key order preserves step order.
	for _, step := range steps {
		row := models.RecipeInstruction{RecipeID: recipeID, Step: step}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}
	for _, text := range ingredients {
		row := models.RecipeIngredient{RecipeID: recipeID, Text: text}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}
