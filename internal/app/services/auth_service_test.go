package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/motorlab/apexhub/internal/app/models"
	"github.com/motorlab/apexhub/internal/app/models/dto"
	"github.com/motorlab/apexhub/internal/pkg/apperrors"
	"github.com/motorlab/apexhub/internal/pkg/auth"
)

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "apexhub.test",
	})
}

func TestRegisterValidation(t *testing.T) {
	svc := NewAuthService(new(mockUserRepo), newTestJWTService())

	tests := []struct {
		name string
		req  dto.RegisterRequest
	}{
		{"short username", dto.RegisterRequest{Username: "ab", Email: "a@b.com", Password: "longenough"}},
		{"bad email", dto.RegisterRequest{Username: "racer", Email: "not-an-email", Password: "longenough"}},
		{"short password", dto.RegisterRequest{Username: "racer", Email: "a@b.com", Password: "short"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), &tt.req)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		})
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(int64(0), apperrors.ErrUsernameAlreadyUsed)

	svc := NewAuthService(repo, newTestJWTService())

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "racer",
		Email:    "racer@example.com",
		Password: "longenough",
	})
	assert.ErrorIs(t, err, apperrors.ErrUsernameAlreadyUsed)
	repo.AssertExpectations(t)
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	repo := new(mockUserRepo)
	created := &models.User{ID: 1, Username: "racer", Role: models.RoleUser}
	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.Role == models.RoleUser &&
			u.PasswordHash != "" &&
			u.PasswordHash != "longenough" &&
			u.Email == "racer@example.com"
	})).Return(int64(1), nil)
	repo.On("GetByID", mock.Anything, int64(1)).Return(created, nil)

	svc := NewAuthService(repo, newTestJWTService())

	user, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "racer",
		Email:    "Racer@Example.com",
		Password: "longenough",
	})
	require.NoError(t, err)
	assert.Equal(t, created, user)
	repo.AssertExpectations(t)
}

func TestLoginUnknownIdentifier(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("GetByIdentifier", mock.Anything, "ghost").Return(nil, apperrors.ErrUserNotFound)

	svc := NewAuthService(repo, newTestJWTService())

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Identifier: "ghost", Password: "whatever"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginWrongPassword(t *testing.T) {
	hash, err := auth.HashPassword("correct-pass")
	require.NoError(t, err)

	repo := new(mockUserRepo)
	repo.On("GetByIdentifier", mock.Anything, "racer").
		Return(&models.User{ID: 1, Username: "racer", PasswordHash: hash, IsActive: true}, nil)

	svc := NewAuthService(repo, newTestJWTService())

	_, err = svc.Login(context.Background(), &dto.LoginRequest{Identifier: "racer", Password: "wrong-pass"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginInactiveAccount(t *testing.T) {
	hash, err := auth.HashPassword("correct-pass")
	require.NoError(t, err)

	repo := new(mockUserRepo)
	repo.On("GetByIdentifier", mock.Anything, "racer").
		Return(&models.User{ID: 1, Username: "racer", PasswordHash: hash, IsActive: false}, nil)

	svc := NewAuthService(repo, newTestJWTService())

	_, err = svc.Login(context.Background(), &dto.LoginRequest{Identifier: "racer", Password: "correct-pass"})
	assert.ErrorIs(t, err, apperrors.ErrAccountDisabled)
}

func TestLoginSuccess(t *testing.T) {
	hash, err := auth.HashPassword("correct-pass")
	require.NoError(t, err)

	user := &models.User{ID: 7, Username: "racer", PasswordHash: hash, Role: models.RoleResearcher, IsActive: true}

	repo := new(mockUserRepo)
	repo.On("GetByIdentifier", mock.Anything, "racer").Return(user, nil)
	repo.On("UpdateLastLogin", mock.Anything, int64(7)).Return(nil)

	svc := NewAuthService(repo, newTestJWTService())

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Identifier: "racer", Password: "correct-pass"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, 3600, resp.ExpiresIn)
	assert.Equal(t, user, resp.User)
	repo.AssertExpectations(t)
}
