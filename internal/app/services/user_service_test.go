package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/motorlab/apexhub/internal/app/models"
	"github.com/motorlab/apexhub/internal/app/models/dto"
	"github.com/motorlab/apexhub/internal/pkg/apperrors"
)

func TestSearchRequiresTwoCharacters(t *testing.T) {
	svc := NewUserService(new(mockUserRepo))

	_, _, err := svc.Search(context.Background(), " a ", 10, 0)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestGetPublicHidesInactiveUsers(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("GetByID", mock.Anything, int64(5)).
		Return(&models.User{ID: 5, Username: "gone", IsActive: false}, nil)

	svc := NewUserService(repo)

	_, err := svc.GetPublic(context.Background(), 5)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUpdateProfileUsernameConflict(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("GetByID", mock.Anything, int64(1)).
		Return(&models.User{ID: 1, Username: "original", IsActive: true}, nil)
	repo.On("GetByUsername", mock.Anything, "taken").
		Return(&models.User{ID: 2, Username: "taken"}, nil)

	svc := NewUserService(repo)

	taken := "taken"
	_, err := svc.UpdateProfile(context.Background(), 1, &dto.UpdateProfileRequest{Username: &taken})
	assert.ErrorIs(t, err, apperrors.ErrUsernameAlreadyUsed)
}

func TestUpdateProfileKeepingOwnUsername(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("GetByID", mock.Anything, int64(1)).
		Return(&models.User{ID: 1, Username: "original", IsActive: true}, nil)
	repo.On("UpdateProfile", mock.Anything, mock.Anything).Return(nil)

	svc := NewUserService(repo)

	same := "original"
	bio := "Pit wall veteran"
	user, err := svc.UpdateProfile(context.Background(), 1, &dto.UpdateProfileRequest{Username: &same, Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, "original", user.Username)
	require.NotNil(t, user.Bio)
	assert.Equal(t, "Pit wall veteran", *user.Bio)
	repo.AssertExpectations(t)
}

func TestUpdateRoleRejectsOwnAdminRole(t *testing.T) {
	svc := NewUserService(new(mockUserRepo))

	_, err := svc.UpdateRole(context.Background(), 1, 1, "admin")
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestUpdateRoleInvalidRole(t *testing.T) {
	svc := NewUserService(new(mockUserRepo))

	_, err := svc.UpdateRole(context.Background(), 1, 2, "superuser")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUpdateRoleSuccess(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("GetByID", mock.Anything, int64(2)).
		Return(&models.User{ID: 2, Username: "promoted", Role: models.RoleUser}, nil).Once()
	repo.On("UpdateRole", mock.Anything, int64(2), models.RoleModerator).Return(nil)
	repo.On("GetByID", mock.Anything, int64(2)).
		Return(&models.User{ID: 2, Username: "promoted", Role: models.RoleModerator}, nil)

	svc := NewUserService(repo)

	user, err := svc.UpdateRole(context.Background(), 1, 2, "moderator")
	require.NoError(t, err)
	assert.Equal(t, models.RoleModerator, user.Role)
	repo.AssertExpectations(t)
}

func TestDeactivateSelfForbidden(t *testing.T) {
	svc := NewUserService(new(mockUserRepo))

	err := svc.Deactivate(context.Background(), 3, models.RoleAdmin, 3)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestModeratorCannotDeactivateAdmin(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("GetByID", mock.Anything, int64(9)).
		Return(&models.User{ID: 9, Role: models.RoleAdmin, IsActive: true}, nil)

	svc := NewUserService(repo)

	err := svc.Deactivate(context.Background(), 2, models.RoleModerator, 9)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestAdminCanDeactivateAdmin(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("GetByID", mock.Anything, int64(9)).
		Return(&models.User{ID: 9, Role: models.RoleAdmin, IsActive: true}, nil)
	repo.On("SetActive", mock.Anything, int64(9), false).Return(nil)

	svc := NewUserService(repo)

	err := svc.Deactivate(context.Background(), 1, models.RoleAdmin, 9)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUserStatsRoleBreakdown(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("CountByRole", mock.Anything).Return(map[models.Role]int64{
		models.RoleUser:      40,
		models.RoleModerator: 2,
		models.RoleAdmin:     1,
	}, nil)

	svc := NewUserService(repo)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(43), stats.TotalUsers)
	assert.Equal(t, []dto.RoleCount{
		{Role: "user", Count: 40},
		{Role: "researcher", Count: 0},
		{Role: "moderator", Count: 2},
		{Role: "admin", Count: 1},
	}, stats.RoleBreakdown)
}
