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

func TestCreateGroupValidation(t *testing.T) {
	svc := NewGroupService(new(mockGroupRepo))

	_, err := svc.Create(context.Background(), 7, &dto.CreateGroupRequest{Name: " hi "})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCreateGroupDefaultsToPublic(t *testing.T) {
	repo := new(mockGroupRepo)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(g *models.InterestGroup) bool {
		return g.IsPublic && g.CreatorID == 7 && g.Name == "Historic Rally Fans"
	})).Return(int64(4), nil)
	repo.On("GetByID", mock.Anything, int64(4)).
		Return(&models.InterestGroup{ID: 4, Name: "Historic Rally Fans", MemberCount: 1}, nil)

	svc := NewGroupService(repo)

	group, err := svc.Create(context.Background(), 7, &dto.CreateGroupRequest{
		Name: "  Historic Rally Fans  ",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, group.MemberCount)
	repo.AssertExpectations(t)
}

func TestCreateGroupHonorsPrivateFlag(t *testing.T) {
	repo := new(mockGroupRepo)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(g *models.InterestGroup) bool {
		return !g.IsPublic
	})).Return(int64(5), nil)
	repo.On("GetByID", mock.Anything, int64(5)).
		Return(&models.InterestGroup{ID: 5, IsPublic: false}, nil)

	svc := NewGroupService(repo)

	private := false
	_, err := svc.Create(context.Background(), 7, &dto.CreateGroupRequest{
		Name:     "Wind Tunnel Crew",
		IsPublic: &private,
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestJoinUnknownGroup(t *testing.T) {
	repo := new(mockGroupRepo)
	repo.On("GetByID", mock.Anything, int64(99)).Return(nil, apperrors.ErrGroupNotFound)

	svc := NewGroupService(repo)

	err := svc.Join(context.Background(), 99, 7)
	assert.ErrorIs(t, err, apperrors.ErrGroupNotFound)
	repo.AssertNotCalled(t, "AddMember", mock.Anything, mock.Anything, mock.Anything)
}

func TestJoinAddsMember(t *testing.T) {
	repo := new(mockGroupRepo)
	repo.On("GetByID", mock.Anything, int64(4)).
		Return(&models.InterestGroup{ID: 4}, nil)
	repo.On("IsMember", mock.Anything, int64(4), int64(7)).Return(false, nil)
	repo.On("AddMember", mock.Anything, int64(4), int64(7)).Return(nil)

	svc := NewGroupService(repo)

	err := svc.Join(context.Background(), 4, 7)
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestJoinTwiceConflicts(t *testing.T) {
	repo := new(mockGroupRepo)
	repo.On("GetByID", mock.Anything, int64(4)).
		Return(&models.InterestGroup{ID: 4}, nil)
	repo.On("IsMember", mock.Anything, int64(4), int64(7)).Return(true, nil)

	svc := NewGroupService(repo)

	err := svc.Join(context.Background(), 4, 7)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyMember)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	repo.AssertNotCalled(t, "AddMember", mock.Anything, mock.Anything, mock.Anything)
}
