package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Billmike/MR-API/internal/models"
)

// EngagementService handles likes, reviews and the listings derived from
// them.
type EngagementService struct {
	db *gorm.DB
}

func NewEngagementService(db *gorm.DB) *EngagementService {
	return &EngagementService{db: db}
}

// ToggleLike flips the like state for (recipe, user). It reports added=true
// when a like was created and added=false when an existing like was removed.
// Owners can never like their own recipes.
func (s *EngagementService) ToggleLike(recipeID, userID uuid.UUID) (added bool, err error) {
	var recipe models.Recipe
	if err := s.db.Where("recipe_id = ?", recipeID).First(&recipe).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, NotFound(fmt.Sprintf("Recipe with ID: %s not found", recipeID))
		}
		return false, err
	}

	if recipe.Owner == userID {
		return false, Forbidden("You cannot perform this action on your own recipe")
	}

	var like models.Like
	err = s.db.Where("fav_recipe_id = ? AND fav_user_id = ?", recipeID, userID).First(&like).Error
	if err == nil {
		if err := s.db.Delete(&like).Error; err != nil {
			return false, err
		}
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	like = models.Like{FavRecipeID: recipeID, FavUserID: userID}
	if err := s.db.Create(&like).Error; err != nil {
		return false, err
	}
	return true, nil
}

// Review records a comment on a recipe. Any authenticated user may review,
// including the owner.
func (s *EngagementService) Review(recipeID, userID uuid.UUID, text string) (*models.Review, error) {
	var recipe models.Recipe
	if err := s.db.Where("recipe_id = ?", recipeID).First(&recipe).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound(fmt.Sprintf("Recipe with ID: %s not found", recipeID))
		}
		return nil, err
	}

	review := models.Review{
		ReviewID: uuid.New(),
		RecipeID: recipeID,
		UserID:   userID,
		Text:     text,
	}
	if err := s.db.Create(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

// Favorites lists the recipes the user has liked.
func (s *EngagementService) Favorites(userID uuid.UUID) ([]models.Recipe, error) {
	var recipes []models.Recipe
	if err := s.db.
		Joins("JOIN likes ON likes.fav_recipe_id = recipes.recipe_id").
		Where("likes.fav_user_id = ?", userID).
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// Comments lists all reviews for a recipe. A nonexistent recipe id yields an
// empty list, not an error; the leniency is intentional.
func (s *EngagementService) Comments(recipeID uuid.UUID) ([]models.Review, error) {
	var reviews []models.Review
	if err := s.db.Where("recipe_id = ?", recipeID).Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}
