package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Billmike/MR-API/internal/middleware"
	"github.com/Billmike/MR-API/internal/service"
)

// UserHandler serves profile, password and social-graph routes.
type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) GetUser(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}

	profile, err := h.userService.GetProfile(user.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User retrieved successfully",
		"user":    profile,
	})
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c)
		return
	}

	patch := service.ProfilePatch{
		Username: req.Username,
		Bio:      req.Bio,
		Hobbies:  req.Hobbies,
		ImageURL: req.ImageURL,
	}
	if err := h.userService.UpdateProfile(user.UserID, patch); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *UserHandler) UpdatePassword(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}

	var req UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c)
		return
	}

	if req.NewPassword != req.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Your new password and confirmation do not match",
		})
		return
	}

	if err := h.userService.UpdatePassword(user.UserID, req.OldPassword, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *UserHandler) Follow(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}

	targetID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		respondInvalidID(c, "Invalid user ID supplied")
		return
	}

	if err := h.userService.Follow(targetID, user.UserID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "You are now following this user",
	})
}

func (h *UserHandler) Block(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondUnauthenticated(c)
		return
	}

	targetID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		respondInvalidID(c, "Invalid user ID supplied")
		return
	}

	if err := h.userService.Block(user.UserID, targetID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User blocked successfully",
	})
}

func respondUnauthenticated(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": "You need to be logged in to perform this action",
	})
}

func respondInvalidID(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"message": message,
	})
}
