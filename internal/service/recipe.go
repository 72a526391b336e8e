package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Billmike/MR-API/internal/models"
)

// RecipeDetail is a recipe joined with the identifiers of the users who
// liked it.
type RecipeDetail struct {
	models.Recipe
	Favorites []uuid.UUID `json:"favorites"`
}

// RecipePatch carries a partial recipe update; nil fields keep their stored
// value.
type RecipePatch struct {
	Name        *string
	Description *string
	Category    *string
	CookTime    *string
	ImageURL    *string
	Ingredients *string
	Directions  *string
	Portion     *string
}

// RecipeService handles recipe CRUD and search.
type RecipeService struct {
	db *gorm.DB
}

func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// Create inserts a new recipe after checking the global name invariant.
func (s *RecipeService) Create(recipe *models.Recipe) (*models.Recipe, error) {
	var existing models.Recipe
	err := s.db.Where("name = ?", recipe.Name).First(&existing).Error
	if err == nil {
		return nil, Conflict("A recipe with this name has been created. We encourage our users to be unique in naming their recipes!")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	recipe.RecipeID = uuid.New()
	if err := s.db.Create(recipe).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, Conflict("A recipe with this name has been created. We encourage our users to be unique in naming their recipes!")
		}
		return nil, err
	}
	return recipe, nil
}

// Get returns a recipe with its likers aggregated into Favorites. Recipes
// without likes return an empty list rather than disappearing.
func (s *RecipeService) Get(recipeID uuid.UUID) (*RecipeDetail, error) {
	var recipe models.Recipe
	if err := s.db.Where("recipe_id = ?", recipeID).First(&recipe).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound(fmt.Sprintf("Recipe with ID: %s not found", recipeID))
		}
		return nil, err
	}

	favorites := make([]uuid.UUID, 0)
	if err := s.db.Model(&models.Like{}).
		Where("fav_recipe_id = ?", recipeID).
		Pluck("fav_user_id", &favorites).Error; err != nil {
		return nil, err
	}

	return &RecipeDetail{Recipe: recipe, Favorites: favorites}, nil
}

// Update applies a partial merge to a recipe owned by userID. Name
// uniqueness is deliberately not re-checked here; the unique index still
// turns a collision into a conflict.
func (s *RecipeService) Update(recipeID, userID uuid.UUID, patch RecipePatch) error {
	recipe, err := s.ownedRecipe(recipeID, userID)
	if err != nil {
		return err
	}

	if patch.Name != nil {
		recipe.Name = *patch.Name
	}
	if patch.Description != nil {
		recipe.Description = *patch.Description
	}
	if patch.Category != nil {
		recipe.Category = *patch.Category
	}
	if patch.CookTime != nil {
		recipe.CookTime = *patch.CookTime
	}
	if patch.ImageURL != nil {
		recipe.ImageURL = *patch.ImageURL
	}
	if patch.Ingredients != nil {
		recipe.Ingredients = *patch.Ingredients
	}
	if patch.Directions != nil {
		recipe.Directions = *patch.Directions
	}
	if patch.Portion != nil {
		recipe.Portion = *patch.Portion
	}

	if err := s.db.Save(recipe).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return Conflict("A recipe with this name has been created. We encourage our users to be unique in naming their recipes!")
		}
		return err
	}
	return nil
}

// Delete removes a recipe owned by userID.
func (s *RecipeService) Delete(recipeID, userID uuid.UUID) error {
	recipe, err := s.ownedRecipe(recipeID, userID)
	if err != nil {
		return err
	}
	return s.db.Delete(recipe).Error
}

// Search matches a term case-insensitively against recipe names and
// ingredients.
func (s *RecipeService) Search(term string) ([]models.Recipe, error) {
	like := "%" + strings.ToLower(term) + "%"
	var recipes []models.Recipe
	if err := s.db.
		Where("LOWER(name) LIKE ? OR LOWER(ingredients) LIKE ?", like, like).
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// ownedRecipe loads a recipe and enforces the ownership gate.
func (s *RecipeService) ownedRecipe(recipeID, userID uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.Where("recipe_id = ?", recipeID).First(&recipe).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound(fmt.Sprintf("Recipe with ID: %s not found", recipeID))
		}
		return nil, err
	}
	if recipe.Owner != userID {
		return nil, Forbidden("You cannot perform this action as you do not own this recipe")
	}
	return &recipe, nil
}
