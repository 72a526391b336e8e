package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Billmike/MR-API/internal/models"
)

// TokenClaims is the decoded payload of a bearer token.
type TokenClaims struct {
	UserID uuid.UUID
}

// AuthService handles signup, login and bearer token issuance.
type AuthService struct {
	db        *gorm.DB
	jwtSecret string
}

func NewAuthService(db *gorm.DB, jwtSecret string) *AuthService {
	return &AuthService{
		db:        db,
		jwtSecret: jwtSecret,
	}
}

// Signup creates a new account and returns it with a freshly issued token.
// Credential shape validation happens at the handler; this only guards the
// username invariant.
func (s *AuthService) Signup(username, password string) (*models.User, string, error) {
	var existing models.User
	err := s.db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil, "", Conflict("This username is already taken")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := models.User{
		UserID:   uuid.New(),
		Username: username,
		Password: string(hashed),
	}
	if err := s.db.Create(&user).Error; err != nil {
		// A concurrent signup can slip past the check above; the unique
		// index is the real guard.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", Conflict("This username is already taken")
		}
		return nil, "", err
	}

	token, err := s.GenerateToken(user.UserID)
	if err != nil {
		return nil, "", err
	}

	return &user, token, nil
}

// Login verifies a username/password pair and issues a token.
func (s *AuthService) Login(username, password string) (*models.User, string, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", NotFound("No user found with this username")
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", Invalid("Username or password incorrect")
	}

	token, err := s.GenerateToken(user.UserID)
	if err != nil {
		return nil, "", err
	}

	return &user, token, nil
}

// GenerateToken issues a signed bearer token embedding the user identifier.
func (s *AuthService) GenerateToken(userID uuid.UUID) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"exp":     time.Now().Add(time.Hour * 24).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ValidateToken verifies a bearer token and decodes its claims.
func (s *AuthService) ValidateToken(tokenString string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, Unauthenticated("Session has expired. Please log in again")
		}
		return nil, Unauthenticated("Invalid authentication token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, Unauthenticated("Invalid authentication token")
	}

	userIDStr, ok := claims["user_id"].(string)
	if !ok || userIDStr == "" {
		return nil, Unauthenticated("Session has expired. Please log in again")
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, Unauthenticated("Session has expired. Please log in again")
	}

	return &TokenClaims{UserID: userID}, nil
}

// GetUserByID loads the user row backing a validated token.
func (s *AuthService) GetUserByID(userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.Where("user_id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, Unauthenticated("Session has expired. Please log in again")
		}
		return nil, err
	}
	return &user, nil
}
