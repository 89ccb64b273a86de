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

func TestCreateCategoryValidation(t *testing.T) {
	svc := NewForumService(new(mockForumRepo))

	_, err := svc.CreateCategory(context.Background(), &dto.CreateForumCategoryRequest{Name: "  ab  "})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCreateTopicValidation(t *testing.T) {
	svc := NewForumService(new(mockForumRepo))

	tests := []struct {
		name string
		req  dto.CreateForumTopicRequest
	}{
		{"short title", dto.CreateForumTopicRequest{Title: "Hey", Content: "why does the diffuser stall?", CategoryID: 1}},
		{"short content", dto.CreateForumTopicRequest{Title: "Diffuser stall", Content: "why?", CategoryID: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateTopic(context.Background(), 7, &tt.req)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		})
	}
}

func TestCreateTopicUnknownCategory(t *testing.T) {
	repo := new(mockForumRepo)
	repo.On("GetCategoryByID", mock.Anything, int64(42)).Return(nil, apperrors.ErrCategoryNotFound)

	svc := NewForumService(repo)

	_, err := svc.CreateTopic(context.Background(), 7, &dto.CreateForumTopicRequest{
		Title:      "Diffuser stall at low speed",
		Content:    "Seeing separation below 120 kph, anyone else?",
		CategoryID: 42,
	})
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestCreateTopicTrimsAndReloads(t *testing.T) {
	repo := new(mockForumRepo)
	repo.On("GetCategoryByID", mock.Anything, int64(1)).
		Return(&models.ForumCategory{ID: 1, Name: "Aerodynamics"}, nil)
	repo.On("CreateTopic", mock.Anything, mock.MatchedBy(func(topic *models.ForumTopic) bool {
		return topic.Title == "Diffuser stall at low speed" && topic.AuthorID == 7
	})).Return(int64(9), nil)
	repo.On("GetTopicByID", mock.Anything, int64(9)).
		Return(&models.ForumTopic{ID: 9, Title: "Diffuser stall at low speed"}, nil)

	svc := NewForumService(repo)

	topic, err := svc.CreateTopic(context.Background(), 7, &dto.CreateForumTopicRequest{
		Title:      "  Diffuser stall at low speed  ",
		Content:    "Seeing separation below 120 kph, anyone else?",
		CategoryID: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(9), topic.ID)
	repo.AssertExpectations(t)
}

func TestGetTopicCountsView(t *testing.T) {
	repo := new(mockForumRepo)
	repo.On("GetTopicByID", mock.Anything, int64(9)).
		Return(&models.ForumTopic{ID: 9, Views: 4}, nil)
	repo.On("IncrementTopicViews", mock.Anything, int64(9)).Return(nil)
	repo.On("ListPosts", mock.Anything, int64(9), 20, 0).
		Return([]models.ForumPost{{ID: 1, TopicID: 9}}, int64(1), nil)

	svc := NewForumService(repo)

	topic, posts, total, err := svc.GetTopic(context.Background(), 9, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, 5, topic.Views)
	assert.Len(t, posts, 1)
	assert.Equal(t, int64(1), total)
}

func TestCreatePostLockedTopic(t *testing.T) {
	repo := new(mockForumRepo)
	repo.On("GetTopicByID", mock.Anything, int64(9)).
		Return(&models.ForumTopic{ID: 9, CategoryID: 1, IsLocked: true}, nil)

	svc := NewForumService(repo)

	_, err := svc.CreatePost(context.Background(), 7, 9, &dto.CreateForumPostRequest{
		Content: "One more data point from Spa.",
	})
	assert.ErrorIs(t, err, apperrors.ErrTopicLocked)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	repo.AssertNotCalled(t, "CreatePost", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreatePostPassesCategoryID(t *testing.T) {
	repo := new(mockForumRepo)
	repo.On("GetTopicByID", mock.Anything, int64(9)).
		Return(&models.ForumTopic{ID: 9, CategoryID: 3}, nil)
	repo.On("CreatePost", mock.Anything, mock.MatchedBy(func(post *models.ForumPost) bool {
		return post.TopicID == 9 && post.AuthorID == 7
	}), int64(3)).Return(int64(15), nil)

	svc := NewForumService(repo)

	post, err := svc.CreatePost(context.Background(), 7, 9, &dto.CreateForumPostRequest{
		Content: "One more data point from Spa.",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(15), post.ID)
	repo.AssertExpectations(t)
}

func TestListTopicsUnknownCategory(t *testing.T) {
	repo := new(mockForumRepo)
	repo.On("GetCategoryByID", mock.Anything, int64(42)).Return(nil, apperrors.ErrCategoryNotFound)

	svc := NewForumService(repo)

	categoryID := int64(42)
	_, _, err := svc.ListTopics(context.Background(), &categoryID, "", 20, 0)
	assert.ErrorIs(t, err, apperrors.ErrCategoryNotFound)
}
