package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"labelcheck/internal/config"
	"labelcheck/internal/domain"
	"labelcheck/internal/service"
	"labelcheck/mocks"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:             "test-secret-key-for-unit-tests",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 168 * time.Hour,
		Issuer:             "labelcheck-test",
	}
}

func hashPassword(password string) string {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), 12)
	return string(hash)
}

func TestAuthService_Login_Success(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	cfg := testJWTConfig()
	svc := service.NewAuthService(userRepo, cfg)

	user := &domain.User{
		ID:           uuid.New(),
		Username:     "consumer1",
		PasswordHash: hashPassword("password123"),
		FullName:     "Test Consumer",
		Role:         domain.RoleUser,
		IsActive:     true,
	}

	userRepo.On("GetByUsername", mock.Anything, "consumer1").Return(user, nil)

	result, err := svc.Login(context.Background(), service.LoginInput{
		Username: "consumer1",
		Password: "password123",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	assert.True(t, result.ExpiresAt.After(time.Now()))

	userRepo.AssertExpectations(t)
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	cfg := testJWTConfig()
	svc := service.NewAuthService(userRepo, cfg)

	user := &domain.User{
		ID:           uuid.New(),
		Username:     "consumer1",
		PasswordHash: hashPassword("correct-password"),
		IsActive:     true,
	}

	userRepo.On("GetByUsername", mock.Anything, "consumer1").Return(user, nil)

	result, err := svc.Login(context.Background(), service.LoginInput{
		Username: "consumer1",
		Password: "wrong-password",
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	cfg := testJWTConfig()
	svc := service.NewAuthService(userRepo, cfg)

	userRepo.On("GetByUsername", mock.Anything, "ghost").Return(nil, domain.ErrNotFound)

	result, err := svc.Login(context.Background(), service.LoginInput{
		Username: "ghost",
		Password: "password123",
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_InactiveUser(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	cfg := testJWTConfig()
	svc := service.NewAuthService(userRepo, cfg)

	user := &domain.User{
		ID:           uuid.New(),
		Username:     "disabled",
		PasswordHash: hashPassword("password123"),
		IsActive:     false,
	}

	userRepo.On("GetByUsername", mock.Anything, "disabled").Return(user, nil)

	result, err := svc.Login(context.Background(), service.LoginInput{
		Username: "disabled",
		Password: "password123",
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrUserInactive)
}

func TestAuthService_Register_Success(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	cfg := testJWTConfig()
	svc := service.NewAuthService(userRepo, cfg)

	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Username == "newuser" &&
			u.Role == domain.RoleUser &&
			u.IsActive &&
			bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("password123")) == nil
	})).Return(nil)

	user, err := svc.Register(context.Background(), service.RegisterInput{
		Username: "newuser",
		Password: "password123",
		FullName: "New User",
	})

	assert.NoError(t, err)
	assert.Equal(t, "newuser", user.Username)
	assert.Equal(t, domain.RoleUser, user.Role)
	userRepo.AssertExpectations(t)
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	cfg := testJWTConfig()
	svc := service.NewAuthService(userRepo, cfg)

	userRepo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicateUsername)

	user, err := svc.Register(context.Background(), service.RegisterInput{
		Username: "taken",
		Password: "password123",
		FullName: "Someone",
	})

	assert.Nil(t, user)
	assert.ErrorIs(t, err, domain.ErrDuplicateUsername)
}

func TestAuthService_ValidateToken_RoundTrip(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	cfg := testJWTConfig()
	svc := service.NewAuthService(userRepo, cfg)

	user := &domain.User{
		ID:           uuid.New(),
		Username:     "officer1",
		PasswordHash: hashPassword("password123"),
		Role:         domain.RoleOfficer,
		IsActive:     true,
	}
	userRepo.On("GetByUsername", mock.Anything, "officer1").Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		Username: "officer1",
		Password: "password123",
	})
	assert.NoError(t, err)

	claims, err := svc.ValidateToken(pair.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "officer1", claims.Username)
	assert.Equal(t, domain.RoleOfficer, claims.Role)
}

func TestAuthService_ValidateToken_RejectsRefreshToken(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	cfg := testJWTConfig()
	svc := service.NewAuthService(userRepo, cfg)

	user := &domain.User{
		ID:           uuid.New(),
		Username:     "consumer1",
		PasswordHash: hashPassword("password123"),
		Role:         domain.RoleUser,
		IsActive:     true,
	}
	userRepo.On("GetByUsername", mock.Anything, "consumer1").Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		Username: "consumer1",
		Password: "password123",
	})
	assert.NoError(t, err)

	// A refresh token must not be accepted where an access token is expected.
	claims, err := svc.ValidateToken(pair.RefreshToken)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestAuthService_RefreshToken_Success(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	cfg := testJWTConfig()
	svc := service.NewAuthService(userRepo, cfg)

	user := &domain.User{
		ID:           uuid.New(),
		Username:     "consumer1",
		PasswordHash: hashPassword("password123"),
		Role:         domain.RoleUser,
		IsActive:     true,
	}
	userRepo.On("GetByUsername", mock.Anything, "consumer1").Return(user, nil)
	userRepo.On("GetByID", mock.Anything, user.ID).Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		Username: "consumer1",
		Password: "password123",
	})
	assert.NoError(t, err)

	refreshed, err := svc.RefreshToken(context.Background(), pair.RefreshToken)
	assert.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.NotEmpty(t, refreshed.RefreshToken)
}

func TestAuthService_RefreshToken_RejectsAccessToken(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	cfg := testJWTConfig()
	svc := service.NewAuthService(userRepo, cfg)

	user := &domain.User{
		ID:           uuid.New(),
		Username:     "consumer1",
		PasswordHash: hashPassword("password123"),
		Role:         domain.RoleUser,
		IsActive:     true,
	}
	userRepo.On("GetByUsername", mock.Anything, "consumer1").Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		Username: "consumer1",
		Password: "password123",
	})
	assert.NoError(t, err)

	refreshed, err := svc.RefreshToken(context.Background(), pair.AccessToken)
	assert.Nil(t, refreshed)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthService_RefreshToken_Garbage(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	cfg := testJWTConfig()
	svc := service.NewAuthService(userRepo, cfg)

	refreshed, err := svc.RefreshToken(context.Background(), "not-a-token")
	assert.Nil(t, refreshed)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
