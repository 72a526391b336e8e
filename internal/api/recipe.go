package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Billmike/MR-API/internal/middleware"
	"github.com/Billmike/MR-API/internal/models"
	"github.com/Billmike/MR-API/internal/service"
)

// RecipeHandler serves recipe CRUD and search.
type RecipeHandler struct {
	recipeService *service.RecipeService
}

func NewRecipeHandler(recipeService *service.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService}
}

func (h *RecipeHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}

	var req CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c)
		return
	}

	recipe := models.Recipe{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		CookTime:    req.CookTime,
		ImageURL:    req.ImageURL,
		Ingredients: req.Ingredients,
		Directions:  req.Directions,
		Portion:     req.Portion,
		Owner:       user.UserID,
	}

	created, err := h.recipeService.Create(&recipe)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Recipe created successfully",
		"recipe":  created,
	})
}

func (h *RecipeHandler) Update(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}

	recipeID, err := uuid.Parse(c.Param("recipeId"))
	if err != nil {
		respondInvalidID(c, "Invalid recipe ID supplied")
		return
	}

	var req UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c)
		return
	}

	patch := service.RecipePatch{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		CookTime:    req.CookTime,
		ImageURL:    req.ImageURL,
		Ingredients: req.Ingredients,
		Directions:  req.Directions,
		Portion:     req.Portion,
	}
	if err := h.recipeService.Update(recipeID, user.UserID, patch); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *RecipeHandler) Delete(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}

	recipeID, err := uuid.Parse(c.Param("recipeId"))
	if err != nil {
		respondInvalidID(c, "Invalid recipe ID supplied")
		return
	}

	if err := h.recipeService.Delete(recipeID, user.UserID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *RecipeHandler) Get(c *gin.Context) {
	recipeID, err := uuid.Parse(c.Param("recipeId"))
	if err != nil {
		respondInvalidID(c, "Invalid recipe ID supplied")
		return
	}

	detail, err := h.recipeService.Get(recipeID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Recipe retrieved successfully",
		"recipe":  detail,
	})
}

func (h *RecipeHandler) Search(c *gin.Context) {
	term := c.Query("searchTerm")

	recipes, err := h.recipeService.Search(term)
	if err != nil {
		respondError(c, err)
		return
	}

	if len(recipes) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "No recipe matched your search. Try searching with different keywords",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Recipes retrieved successfully",
		"recipes": recipes,
	})
}
