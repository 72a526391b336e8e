package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/Billmike/MR-API/internal/api"
	"github.com/Billmike/MR-API/internal/middleware"
)

// Handlers bundles everything the route table needs.
type Handlers struct {
	Auth       *api.AuthHandler
	User       *api.UserHandler
	Recipe     *api.RecipeHandler
	Engagement *api.EngagementHandler
	Image      *api.ImageHandler // nil when no image store is configured
	Sessions   middleware.SessionStore
	DB         *gorm.DB
	Redis      *redis.Client
}

// SetupRouter configures the application routes
func SetupRouter(h Handlers) *gin.Engine {
	router := gin.Default()
	router.Use(middleware.CORS())

	router.GET("/health", api.Health(h.DB, h.Redis))

	auth := middleware.Auth(h.Sessions)

	v1 := router.Group("/api/v1")
	v1.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to the MR API!"})
	})

	user := v1.Group("/user")
	{
		user.POST("/signup", h.Auth.Signup)
		user.POST("/login", h.Auth.Login)
		user.GET("/", auth, h.User.GetUser)
		user.PATCH("/", auth, h.User.UpdateProfile)
		user.PATCH("/password", auth, h.User.UpdatePassword)
		user.POST("/follow/:userId", auth, h.User.Follow)
		user.POST("/:userId", auth, h.User.Block)
	}

	recipe := v1.Group("/recipe")
	{
		recipe.POST("/", auth, h.Recipe.Create)
		recipe.GET("/favorites", auth, h.Engagement.Favorites)
		recipe.GET("/recipes/search", h.Recipe.Search)
		recipe.GET("/comments/:recipeId", h.Engagement.Comments)
		recipe.POST("/review/:recipeId", auth, h.Engagement.Review)
		recipe.GET("/:recipeId", h.Recipe.Get)
		recipe.PATCH("/:recipeId", auth, h.Recipe.Update)
		recipe.DELETE("/:recipeId", auth, h.Recipe.Delete)
		recipe.POST("/:recipeId", auth, h.Engagement.ToggleLike)
	}

	if h.Image != nil {
		v1.POST("/uploads", auth, h.Image.Upload)
	}

	return router
}
