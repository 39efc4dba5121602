package services

import (
	"errors"
	"time"

	"github.com/brewlog-app/brewlog/internal/models"
	"github.com/brewlog-app/brewlog/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrNotLoggedIn        = errors.New("you must be logged in")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrProfileNotFound    = errors.New("profile not found")
)

const sessionTokenTTL = 7 * 24 * time.Hour

type TokenClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// AuthService implements the credential side of the auth surface: email and
// password sign-up/sign-in issuing signed session tokens. The OAuth redirect
// flow lives in the auth package.
type AuthService struct {
	profileRepo *repository.ProfileRepository
	jwtSecret   string
}

func NewAuthService(profileRepo *repository.ProfileRepository, jwtSecret string) *AuthService {
	return &AuthService{
		profileRepo: profileRepo,
		jwtSecret:   jwtSecret,
	}
}

func (s *AuthService) SignUp(email, password, username string) (*models.Profile, string, error) {
	existing, err := s.profileRepo.FindByEmail(email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	profile := &models.Profile{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.profileRepo.Create(profile); err != nil {
		return nil, "", err
	}

	token, err := s.issueToken(profile.ID)
	if err != nil {
		return nil, "", err
	}
	return profile, token, nil
}

func (s *AuthService) SignIn(email, password string) (*models.Profile, string, error) {
	profile, err := s.profileRepo.FindByEmail(email)
	if err != nil {
		return nil, "", err
	}
	if profile == nil || profile.PasswordHash == "" {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(profile.ID)
	if err != nil {
		return nil, "", err
	}
	return profile, token, nil
}

func (s *AuthService) ValidateToken(tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (s *AuthService) GetProfile(userID string) (*models.Profile, error) {
	if userID == "" {
		return nil, ErrNotLoggedIn
	}
	profile, err := s.profileRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

func (s *AuthService) issueToken(userID string) (string, error) {
	claims := TokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "brewlog",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}
