package models

import (
	"time"

	"github.com/google/uuid"
)

// Recipe belongs to exactly one owner; the owner never changes after
// creation and is the only user allowed to mutate or delete the row.
type Recipe struct {
	RecipeID    uuid.UUID `gorm:"type:uuid;primaryKey;column:recipe_id" json:"recipe_id"`
	Name        string    `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Category    string    `gorm:"size:50" json:"category"`
	CookTime    string    `gorm:"size:50" json:"cook_time"`
	ImageURL    string    `gorm:"size:255" json:"image_url"`
	Ingredients string    `gorm:"type:text" json:"ingredients"`
	Directions  string    `gorm:"type:text" json:"directions"`
	Portion     string    `gorm:"size:50" json:"portion"`
	Owner       uuid.UUID `gorm:"type:uuid;not null;index" json:"owner"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Like marks a recipe as a favorite of a user. The composite primary key
// keeps the pair unique.
type Like struct {
	FavRecipeID uuid.UUID `gorm:"type:uuid;primaryKey;column:fav_recipe_id" json:"fav_recipe_id"`
	FavUserID   uuid.UUID `gorm:"type:uuid;primaryKey;column:fav_user_id" json:"fav_user_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// Review is a comment left on a recipe. Reviews are append-only; no edit or
// delete is exposed.
type Review struct {
	ReviewID  uuid.UUID `gorm:"type:uuid;primaryKey;column:review_id" json:"review_id"`
	RecipeID  uuid.UUID `gorm:"type:uuid;not null;index" json:"recipe_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
