package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Billmike/MR-API/internal/models"
)

func TestToggleLike(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEngagementService(db)
	alice := createTestUser(t, db, "alice", "password123")
	bob := createTestUser(t, db, "bob", "password123")
	recipe := createTestRecipe(t, db, alice.UserID, "Jollof Rice")

	t.Run("toggle is idempotent over two calls", func(t *testing.T) {
		added, err := svc.ToggleLike(recipe.RecipeID, bob.UserID)
		require.NoError(t, err)
		assert.True(t, added)

		added, err = svc.ToggleLike(recipe.RecipeID, bob.UserID)
		require.NoError(t, err)
		assert.False(t, added)

		var count int64
		require.NoError(t, db.Model(&models.Like{}).Where("fav_recipe_id = ?", recipe.RecipeID).Count(&count).Error)
		assert.Zero(t, count)
	})

	t.Run("self-like is always forbidden", func(t *testing.T) {
		_, err := svc.ToggleLike(recipe.RecipeID, alice.UserID)
		require.Error(t, err)
		assert.Equal(t, KindForbidden, kindOf(t, err))

		// State does not change the answer.
		_, err = svc.ToggleLike(recipe.RecipeID, alice.UserID)
		require.Error(t, err)
		assert.Equal(t, KindForbidden, kindOf(t, err))
	})

	t.Run("unknown recipe", func(t *testing.T) {
		_, err := svc.ToggleLike(uuid.New(), bob.UserID)
		require.Error(t, err)
		assert.Equal(t, KindNotFound, kindOf(t, err))
	})
}

func TestReview(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEngagementService(db)
	alice := createTestUser(t, db, "alice", "password123")
	bob := createTestUser(t, db, "bob", "password123")
	recipe := createTestRecipe(t, db, alice.UserID, "Jollof Rice")

	t.Run("any authenticated user may review, including the owner", func(t *testing.T) {
		review, err := svc.Review(recipe.RecipeID, bob.UserID, "Delicious")
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, review.ReviewID)
		assert.Equal(t, "Delicious", review.Text)

		_, err = svc.Review(recipe.RecipeID, alice.UserID, "My own masterpiece")
		require.NoError(t, err)
	})

	t.Run("unknown recipe", func(t *testing.T) {
		_, err := svc.Review(uuid.New(), bob.UserID, "Delicious")
		require.Error(t, err)
		assert.Equal(t, KindNotFound, kindOf(t, err))
	})
}

func TestFavorites(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEngagementService(db)
	alice := createTestUser(t, db, "alice", "password123")
	bob := createTestUser(t, db, "bob", "password123")
	recipe := createTestRecipe(t, db, alice.UserID, "Jollof Rice")

	recipes, err := svc.Favorites(bob.UserID)
	require.NoError(t, err)
	assert.Empty(t, recipes)

	_, err = svc.ToggleLike(recipe.RecipeID, bob.UserID)
	require.NoError(t, err)

	recipes, err = svc.Favorites(bob.UserID)
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Jollof Rice", recipes[0].Name)
}

func TestComments(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEngagementService(db)
	alice := createTestUser(t, db, "alice", "password123")
	bob := createTestUser(t, db, "bob", "password123")
	recipe := createTestRecipe(t, db, alice.UserID, "Jollof Rice")

	t.Run("nonexistent recipe yields empty list, not an error", func(t *testing.T) {
		comments, err := svc.Comments(uuid.New())
		require.NoError(t, err)
		assert.Empty(t, comments)
	})

	t.Run("lists reviews for a recipe", func(t *testing.T) {
		_, err := svc.Review(recipe.RecipeID, bob.UserID, "Delicious")
		require.NoError(t, err)

		comments, err := svc.Comments(recipe.RecipeID)
		require.NoError(t, err)
		require.Len(t, comments, 1)
		assert.Equal(t, "Delicious", comments[0].Text)
	})
}
