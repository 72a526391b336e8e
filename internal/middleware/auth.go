package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Billmike/MR-API/internal/models"
	"github.com/Billmike/MR-API/internal/service"
)

const currentUserKey = "current_user"

// SessionStore verifies bearer tokens and loads the user they identify.
type SessionStore interface {
	ValidateToken(token string) (*service.TokenClaims, error)
	GetUserByID(userID uuid.UUID) (*models.User, error)
}

// Auth resolves the session for protected routes. The token is accepted from
// the x-access-token header, the token header, or the token query parameter;
// the first non-empty location wins. The resolved user is attached to the
// request context as the authenticated principal.
func Auth(store SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "You need to be logged in to perform this action",
			})
			return
		}

		claims, err := store.ValidateToken(token)
		if err != nil {
			abortUnauthorized(c, err)
			return
		}

		user, err := store.GetUserByID(claims.UserID)
		if err != nil {
			abortUnauthorized(c, err)
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the principal attached by Auth.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}

func extractToken(c *gin.Context) string {
	if token := c.GetHeader("x-access-token"); token != "" {
		return token
	}
	if token := c.GetHeader("token"); token != "" {
		return token
	}
	return c.Query("token")
}

func abortUnauthorized(c *gin.Context, err error) {
	message := "You need to be logged in to perform this action"
	var svcErr *service.Error
	if errors.As(err, &svcErr) {
		message = svcErr.Message
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": message,
	})
}
