package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Billmike/MR-API/internal/service"
	"github.com/Billmike/MR-API/internal/validation"
)

// AuthHandler serves signup and login.
type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c)
		return
	}

	if result := validation.ValidateCredentials(req.Username, req.Password); !result.Valid {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid input supplied",
			"errors":  result.Errors,
		})
		return
	}

	user, token, err := h.authService.Signup(req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"message":  "Signup successful",
		"username": user.Username,
		"token":    token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c)
		return
	}

	if result := validation.ValidateCredentials(req.Username, req.Password); !result.Valid {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid input supplied",
			"errors":  result.Errors,
		})
		return
	}

	user, token, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	// 201 on login is part of the observed contract.
	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"message":  "Login successful",
		"username": user.Username,
		"token":    token,
	})
}
