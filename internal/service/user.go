package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Billmike/MR-API/internal/models"
)

// UserProfile is a user's own view of their account: profile fields plus the
// set of users they have blocked.
type UserProfile struct {
	models.User
	Blocked []uuid.UUID `json:"blocked"`
}

// ProfilePatch carries a partial profile update. Nil fields are left
// untouched, so an intentionally empty bio still clears the stored value.
type ProfilePatch struct {
	Username *string
	Bio      *string
	Hobbies  *string
	ImageURL *string
}

// UserService handles profile edits, password changes and the social graph.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// GetProfile returns the user's profile with the aggregated list of blocked
// user identifiers. The list is an empty slice, never nil, when no one is
// blocked.
func (s *UserService) GetProfile(userID uuid.UUID) (*UserProfile, error) {
	var user models.User
	if err := s.db.Where("user_id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("User not found")
		}
		return nil, err
	}

	blocked := make([]uuid.UUID, 0)
	if err := s.db.Model(&models.BlockedUser{}).
		Where("blocker_id = ?", userID).
		Pluck("blocked_id", &blocked).Error; err != nil {
		return nil, err
	}

	return &UserProfile{User: user, Blocked: blocked}, nil
}

// UpdateProfile applies a partial merge onto the stored profile. A username
// change re-checks global uniqueness.
func (s *UserService) UpdateProfile(userID uuid.UUID, patch ProfilePatch) error {
	var user models.User
	if err := s.db.Where("user_id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFound("User not found")
		}
		return err
	}

	if patch.Username != nil && *patch.Username != user.Username {
		var existing models.User
		err := s.db.Where("username = ?", *patch.Username).First(&existing).Error
		if err == nil {
			return Conflict("This username is already taken")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		user.Username = *patch.Username
	}
	if patch.Bio != nil {
		user.Bio = *patch.Bio
	}
	if patch.Hobbies != nil {
		user.Hobbies = *patch.Hobbies
	}
	if patch.ImageURL != nil {
		user.ImageURL = *patch.ImageURL
	}

	if err := s.db.Save(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return Conflict("This username is already taken")
		}
		return err
	}
	return nil
}

// UpdatePassword verifies the old password before storing a hash of the new
// one. The new/confirm equality check happens at the handler, which sees
// both raw inputs.
func (s *UserService) UpdatePassword(userID uuid.UUID, oldPassword, newPassword string) error {
	var user models.User
	if err := s.db.Where("user_id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFound("User not found")
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return Invalid("Your old password is incorrect")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.db.Model(&user).Update("password", string(hashed)).Error
}

// Follow adds the caller to the target user's followers.
func (s *UserService) Follow(targetID, followerID uuid.UUID) error {
	if targetID == followerID {
		return Invalid("You cannot follow yourself")
	}

	var target models.User
	if err := s.db.Where("user_id = ?", targetID).First(&target).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFound(fmt.Sprintf("User with ID: %s not found", targetID))
		}
		return err
	}

	var existing models.Follow
	err := s.db.Where("user_id = ? AND follower_id = ?", targetID, followerID).First(&existing).Error
	if err == nil {
		return Conflict("You are already following this user")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	follow := models.Follow{UserID: targetID, FollowerID: followerID}
	if err := s.db.Create(&follow).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return Conflict("You are already following this user")
		}
		return err
	}
	return nil
}

// Block adds the target to the caller's blocked list. Duplicate blocks
// respond 400, not 409; the asymmetry with Follow is preserved from the
// observed contract.
func (s *UserService) Block(blockerID, blockedID uuid.UUID) error {
	var existing models.BlockedUser
	err := s.db.Where("blocker_id = ? AND blocked_id = ?", blockerID, blockedID).First(&existing).Error
	if err == nil {
		return Invalid("You have already blocked this user")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	block := models.BlockedUser{BlockerID: blockerID, BlockedID: blockedID}
	if err := s.db.Create(&block).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return Invalid("You have already blocked this user")
		}
		return err
	}
	return nil
}
