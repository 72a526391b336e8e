package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Billmike/MR-API/internal/middleware"
	"github.com/Billmike/MR-API/internal/service"
)

// EngagementHandler serves likes, reviews and their listings.
type EngagementHandler struct {
	engagementService *service.EngagementService
}

func NewEngagementHandler(engagementService *service.EngagementService) *EngagementHandler {
	return &EngagementHandler{engagementService: engagementService}
}

// ToggleLike adds or removes a like depending on current state: a single
// endpoint, not separate like/unlike verbs.
func (h *EngagementHandler) ToggleLike(c *gin.Context) {
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

	added, err := h.engagementService.ToggleLike(recipeID, user.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	if added {
		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Recipe added to your list of likes",
		})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *EngagementHandler) Review(c *gin.Context) {
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

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c)
		return
	}

	review, err := h.engagementService.Review(recipeID, user.UserID, req.Text)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Review added successfully",
		"review":  review,
	})
}

func (h *EngagementHandler) Favorites(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}

	recipes, err := h.engagementService.Favorites(user.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	if len(recipes) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "You have not added any recipe to your favorites",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Favorites retrieved successfully",
		"recipes": recipes,
	})
}

// Comments lists all reviews for a recipe. No existence check on the recipe
// itself; an unknown id gets the empty-listing message.
func (h *EngagementHandler) Comments(c *gin.Context) {
	recipeID, err := uuid.Parse(c.Param("recipeId"))
	if err != nil {
		respondInvalidID(c, "Invalid recipe ID supplied")
		return
	}

	comments, err := h.engagementService.Comments(recipeID)
	if err != nil {
		respondError(c, err)
		return
	}

	if len(comments) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "There are no reviews for this recipe yet",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Reviews retrieved successfully",
		"comments": comments,
	})
}
