package models

import (
	"time"

	"github.com/google/uuid"
)

// Recipe is either a master recipe (admin-curated, visible to everyone) or a
// personal recipe (visible to its owner only). Master recipes keep the admin
// who created them as owner.
type Recipe struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(200);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	IsMaster    bool      `gorm:"not null;default:false;index" json:"is_master"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Equipment    []RecipeEquipment   `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
	Instructions []RecipeInstruction `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
	Ingredients  []RecipeIngredient  `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
	Ratings      []Rating            `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
	Notes        []Note              `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
}

// RecipeEquipment links a recipe to one required equipment kind.
// Semantically a set; the row order carries no meaning.
type RecipeEquipment struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	RecipeID  uint   `gorm:"not null;index" json:"recipe_id"`
	Equipment string `gorm:"type:varchar(100);not null" json:"equipment"`
}

// RecipeInstruction is one step of a recipe. Steps are ordered by primary
// key, i.e. insertion order, and are stored verbatim (blank steps included).
type RecipeInstruction struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	RecipeID uint   `gorm:"not null;index" json:"recipe_id"`
	Step     string `gorm:"type:text;not null" json:"step"`
}

type RecipeIngredient struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	RecipeID uint   `gorm:"not null;index" json:"recipe_id"`
	Text     string `gorm:"type:varchar(255);not null" json:"text"`
}
