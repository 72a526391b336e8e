package api

// CredentialsRequest is the body of signup and login.
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpdateProfileRequest is a partial profile update; absent fields keep their
// stored value.
type UpdateProfileRequest struct {
	Username *string `json:"username"`
	Bio      *string `json:"bio"`
	Hobbies  *string `json:"hobbies"`
	ImageURL *string `json:"image_url"`
}

// UpdatePasswordRequest changes the account password.
type UpdatePasswordRequest struct {
	OldPassword     string `json:"old_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// CreateRecipeRequest is the body of recipe creation.
type CreateRecipeRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
	CookTime    string `json:"cook_time"`
	ImageURL    string `json:"image_url"`
	Ingredients string `json:"ingredients"`
	Directions  string `json:"directions"`
	Portion     string `json:"portion"`
}

// UpdateRecipeRequest is a partial recipe update; absent fields keep their
// stored value.
type UpdateRecipeRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	CookTime    *string `json:"cook_time"`
	ImageURL    *string `json:"image_url"`
	Ingredients *string `json:"ingredients"`
	Directions  *string `json:"directions"`
	Portion     *string `json:"portion"`
}

// ReviewRequest is the body of a recipe review.
type ReviewRequest struct {
	Text string `json:"text" binding:"required"`
}
