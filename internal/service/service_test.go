package service

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Billmike/MR-API/internal/database"
	"github.com/Billmike/MR-API/internal/models"
)

// setupTestDB opens an isolated in-memory database with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, database.RunMigrations(db))
	return db
}

// createTestUser inserts a user with a bcrypt-hashed password.
func createTestUser(t *testing.T, db *gorm.DB, username, password string) *models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := models.User{
		UserID:   uuid.New(),
		Username: username,
		Password: string(hashed),
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

// createTestRecipe inserts a recipe owned by the given user.
func createTestRecipe(t *testing.T, db *gorm.DB, owner uuid.UUID, name string) *models.Recipe {
	t.Helper()

	recipe := models.Recipe{
		RecipeID:    uuid.New(),
		Name:        name,
		Description: "Test Description",
		Category:    "Main",
		CookTime:    "45 minutes",
		Ingredients: "rice, tomatoes, pepper",
		Directions:  "Cook it",
		Portion:     "4",
		Owner:       owner,
	}
	require.NoError(t, db.Create(&recipe).Error)
	return &recipe
}

func kindOf(t *testing.T, err error) Kind {
	t.Helper()

	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	return svcErr.Kind
}
