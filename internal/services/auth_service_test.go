package services_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"homefit/internal/models"
	"homefit/internal/repositories"
	"homefit/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testJWTSecret = "test_jwt_secret"

// TestMain is used to setup test environment
func TestMain(m *testing.M) {
	log.SetOutput(os.Stdout)
	os.Exit(m.Run())
}

func notFound(key string) error {
	return fmt.Errorf("user %s: %w", key, repositories.ErrNotFound)
}

func TestAuthService_RegisterUser(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret, time.Hour)

	user := &models.User{Username: "testuser", Email: "test@example.com", Password: "password123"}

	mockRepo.On("GetByUsername", ctx, user.Username).Return(nil, notFound(user.Username)).Once()
	mockRepo.On("GetByEmail", ctx, user.Email).Return(nil, notFound(user.Email)).Once()
	mockRepo.On("Create", ctx, mock.AnythingOfType("*models.User")).Return(nil).Once()

	err := authService.RegisterUser(ctx, user)
	assert.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")), "password is stored hashed")
	mockRepo.AssertExpectations(t)

	// Username already taken
	mockRepo.On("GetByUsername", ctx, "testuser").Return(&models.User{ID: "1"}, nil).Once()
	err = authService.RegisterUser(ctx, &models.User{Username: "testuser", Email: "other@example.com", Password: "x"})
	assert.ErrorIs(t, err, services.ErrUsernameTaken)
	assert.EqualError(t, err, "username already taken: testuser")
	mockRepo.AssertExpectations(t)

	// Email already registered
	mockRepo.On("GetByUsername", ctx, "second").Return(nil, notFound("second")).Once()
	mockRepo.On("GetByEmail", ctx, "test@example.com").Return(&models.User{ID: "1"}, nil).Once()
	err = authService.RegisterUser(ctx, &models.User{Username: "second", Email: "test@example.com", Password: "x"})
	assert.ErrorIs(t, err, services.ErrEmailTaken)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_LoginUser(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret, time.Hour)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{ID: "user-123", Username: "testuser", Password: string(hashedPassword)}

	mockRepo.On("GetByUsername", ctx, user.Username).Return(user, nil).Once()
	token, err := authService.LoginUser(ctx, "testuser", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	require.NoError(t, err)
	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, user.ID, claims["user_id"])
	assert.Equal(t, user.Username, claims["username"])

	// Wrong password
	mockRepo.On("GetByUsername", ctx, user.Username).Return(user, nil).Once()
	_, err = authService.LoginUser(ctx, "testuser", "wrongpassword")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	// Unknown user gets the same error
	mockRepo.On("GetByUsername", ctx, "nobody").Return(nil, notFound("nobody")).Once()
	_, err = authService.LoginUser(ctx, "nobody", "password123")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ValidateToken(t *testing.T) {
	authService := services.NewAuthService(new(MockUserRepository), testJWTSecret, time.Hour)

	valid, err := authService.IssueToken(&models.User{ID: "user-123", Username: "testuser"})
	require.NoError(t, err)

	current, err := authService.ValidateToken(valid)
	require.NoError(t, err)
	assert.Equal(t, models.CurrentUser{ID: "user-123", Username: "testuser"}, current)

	_, err = authService.ValidateToken("invalid.token.string")
	assert.ErrorIs(t, err, services.ErrInvalidToken)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  "user-123",
		"username": "testuser",
		"exp":      time.Now().Add(-time.Hour).Unix(),
	})
	expiredString, _ := expired.SignedString([]byte(testJWTSecret))
	_, err = authService.ValidateToken(expiredString)
	assert.ErrorIs(t, err, services.ErrInvalidToken)

	otherSecret := services.NewAuthService(new(MockUserRepository), "another_secret", time.Hour)
	_, err = otherSecret.ValidateToken(valid)
	assert.ErrorIs(t, err, services.ErrInvalidToken)
}

func TestAuthService_EnsureAdmin(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret, time.Hour)

	mockRepo.On("Count", ctx).Return(int64(2), nil).Once()
	require.NoError(t, authService.EnsureAdmin(ctx))
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)

	mockRepo.On("Count", ctx).Return(int64(0), nil).Once()
	mockRepo.On("GetByUsername", ctx, "admin").Return(nil, notFound("admin")).Once()
	mockRepo.On("GetByEmail", ctx, "admin@localhost").Return(nil, notFound("admin@localhost")).Once()
	mockRepo.On("Create", ctx, mock.MatchedBy(func(u *models.User) bool { return u.Username == "admin" })).Return(nil).Once()
	require.NoError(t, authService.EnsureAdmin(ctx))
	mockRepo.AssertExpectations(t)
}
