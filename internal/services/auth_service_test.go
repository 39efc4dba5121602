package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brewlog-app/brewlog/internal/database"
	"github.com/brewlog-app/brewlog/internal/repository"
)

func setupAuthTestDB(t *testing.T) *AuthService {
	db, err := database.Connect(":memory:")
	assert.NoError(t, err)

	err = database.Migrate(db)
	assert.NoError(t, err)

	return NewAuthService(repository.NewProfileRepository(db), "test-secret")
}

func TestAuthService_SignUp(t *testing.T) {
	authService := setupAuthTestDB(t)

	profile, token, err := authService.SignUp("alice@example.com", "correct-horse", "alice")
	assert.NoError(t, err)
	assert.NotEmpty(t, profile.ID)
	assert.Equal(t, "alice@example.com", profile.Email)
	assert.Equal(t, "alice", profile.Username)
	assert.NotEmpty(t, token)
	assert.NotEqual(t, "correct-horse", profile.PasswordHash)
}

func TestAuthService_SignUp_DuplicateEmail(t *testing.T) {
	authService := setupAuthTestDB(t)

	_, _, err := authService.SignUp("alice@example.com", "correct-horse", "alice")
	assert.NoError(t, err)

	_, _, err = authService.SignUp("alice@example.com", "other-password", "alice2")
	assert.Equal(t, ErrEmailTaken, err)
}

func TestAuthService_SignIn(t *testing.T) {
	authService := setupAuthTestDB(t)

	created, _, err := authService.SignUp("alice@example.com", "correct-horse", "alice")
	assert.NoError(t, err)

	profile, token, err := authService.SignIn("alice@example.com", "correct-horse")
	assert.NoError(t, err)
	assert.Equal(t, created.ID, profile.ID)
	assert.NotEmpty(t, token)
}

func TestAuthService_SignIn_WrongPassword(t *testing.T) {
	authService := setupAuthTestDB(t)

	_, _, err := authService.SignUp("alice@example.com", "correct-horse", "alice")
	assert.NoError(t, err)

	_, _, err = authService.SignIn("alice@example.com", "wrong-horse")
	assert.Equal(t, ErrInvalidCredentials, err)
}

func TestAuthService_SignIn_UnknownEmail(t *testing.T) {
	authService := setupAuthTestDB(t)

	_, _, err := authService.SignIn("nobody@example.com", "whatever")
	assert.Equal(t, ErrInvalidCredentials, err)
}

func TestAuthService_ValidateToken(t *testing.T) {
	authService := setupAuthTestDB(t)

	profile, token, err := authService.SignUp("alice@example.com", "correct-horse", "alice")
	assert.NoError(t, err)

	claims, err := authService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, profile.ID, claims.UserID)
}

func TestAuthService_ValidateToken_Garbage(t *testing.T) {
	authService := setupAuthTestDB(t)

	_, err := authService.ValidateToken("not-a-token")
	assert.Equal(t, ErrInvalidToken, err)
}

func TestAuthService_ValidateToken_WrongSecret(t *testing.T) {
	authService := setupAuthTestDB(t)

	_, token, err := authService.SignUp("alice@example.com", "correct-horse", "alice")
	assert.NoError(t, err)

	other := NewAuthService(nil, "different-secret")
	_, err = other.ValidateToken(token)
	assert.Equal(t, ErrInvalidToken, err)
}

func TestAuthService_GetProfile(t *testing.T) {
	authService := setupAuthTestDB(t)

	created, _, err := authService.SignUp("alice@example.com", "correct-horse", "alice")
	assert.NoError(t, err)

	profile, err := authService.GetProfile(created.ID)
	assert.NoError(t, err)
	assert.Equal(t, "alice", profile.Username)

	_, err = authService.GetProfile("")
	assert.Equal(t, ErrNotLoggedIn, err)

	_, err = authService.GetProfile("missing")
	assert.Equal(t, ErrProfileNotFound, err)
}
