package models

import "github.com/google/uuid"

// Rating is one user's score for one recipe. At most one row exists per
// (recipe, user) pair; saving a new score replaces the old row.
type Rating struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	RecipeID uint      `gorm:"not null;index" json:"recipe_id"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Score    int       `gorm:"not null" json:"score"`
}

// Note is free text attached to a recipe. Notes are shared per recipe, not
// scoped to the author: anyone who can view the recipe sees all of them.
type Note struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	RecipeID uint   `gorm:"not null;index" json:"recipe_id"`
	Content  string `gorm:"type:text;not null" json:"content"`
}
