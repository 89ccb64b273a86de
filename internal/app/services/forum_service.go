package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/motorlab/apexhub/internal/app/models"
	"github.com/motorlab/apexhub/internal/app/models/dto"
	"github.com/motorlab/apexhub/internal/pkg/apperrors"
	"github.com/motorlab/apexhub/internal/pkg/logger"
)

// ForumService handles categories, topics and replies
type ForumService struct {
	forumRepo IForumRepository
}

// NewForumService creates a new ForumService
func NewForumService(forumRepo IForumRepository) *ForumService {
	return &ForumService{forumRepo: forumRepo}
}

// ListCategories returns every forum category
func (s *ForumService) ListCategories(ctx context.Context) ([]models.ForumCategory, error) {
	return s.forumRepo.ListCategories(ctx)
}

// CreateCategory adds a forum category. Names are unique.
func (s *ForumService) CreateCategory(ctx context.Context, req *dto.CreateForumCategoryRequest) (*models.ForumCategory, error) {
	name := strings.TrimSpace(req.Name)
	if len(name) < 3 {
		return nil, apperrors.NewValidationError("category name must be at least 3 characters long")
	}

	category := &models.ForumCategory{
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		Icon:        strings.TrimSpace(req.Icon),
	}

	id, err := s.forumRepo.CreateCategory(ctx, category)
	if err != nil {
		return nil, err
	}

	return s.forumRepo.GetCategoryByID(ctx, id)
}

// ListTopics returns topics, optionally narrowed to a category or a title
// search, pinned topics first.
func (s *ForumService) ListTopics(ctx context.Context, categoryID *int64, search string, limit, offset int) ([]models.ForumTopic, int64, error) {
	if categoryID != nil {
		if _, err := s.forumRepo.GetCategoryByID(ctx, *categoryID); err != nil {
			return nil, 0, err
		}
	}
	return s.forumRepo.ListTopics(ctx, categoryID, search, limit, offset)
}

// CreateTopic opens a topic. The category counters and the author's post
// counter move with the insert.
func (s *ForumService) CreateTopic(ctx context.Context, authorID int64, req *dto.CreateForumTopicRequest) (*models.ForumTopic, error) {
	title := strings.TrimSpace(req.Title)
	content := strings.TrimSpace(req.Content)

	if len(title) < 5 {
		return nil, apperrors.NewValidationError("title must be at least 5 characters long")
	}
	if len(content) < 10 {
		return nil, apperrors.NewValidationError("content must be at least 10 characters long")
	}

	if _, err := s.forumRepo.GetCategoryByID(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	topic := &models.ForumTopic{
		Title:      title,
		Content:    content,
		CategoryID: req.CategoryID,
		AuthorID:   authorID,
	}

	id, err := s.forumRepo.CreateTopic(ctx, topic)
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("topic_id", id).Int64("author_id", authorID).Msg("Forum topic created")

	return s.forumRepo.GetTopicByID(ctx, id)
}

// GetTopic returns a topic with one page of its posts, oldest first, and
// counts the view.
func (s *ForumService) GetTopic(ctx context.Context, id int64, limit, offset int) (*models.ForumTopic, []models.ForumPost, int64, error) {
	topic, err := s.forumRepo.GetTopicByID(ctx, id)
	if err != nil {
		return nil, nil, 0, err
	}

	if err := s.forumRepo.IncrementTopicViews(ctx, id); err != nil {
		logger.Warn().Err(err).Int64("topic_id", id).Msg("Failed to count view")
	} else {
		topic.Views++
	}

	posts, total, err := s.forumRepo.ListPosts(ctx, id, limit, offset)
	if err != nil {
		return nil, nil, 0, err
	}

	return topic, posts, total, nil
}

// CreatePost replies within a topic. Locked topics reject replies. Every
// dependent counter moves in the same transaction as the insert.
func (s *ForumService) CreatePost(ctx context.Context, authorID, topicID int64, req *dto.CreateForumPostRequest) (*models.ForumPost, error) {
	content := strings.TrimSpace(req.Content)
	if len(content) < 5 {
		return nil, apperrors.NewValidationError("content must be at least 5 characters long")
	}

	topic, err := s.forumRepo.GetTopicByID(ctx, topicID)
	if err != nil {
		return nil, err
	}
	if topic.IsLocked {
		return nil, apperrors.ErrTopicLocked
	}

	post := &models.ForumPost{
		Content:  content,
		TopicID:  topicID,
		AuthorID: authorID,
	}

	id, err := s.forumRepo.CreatePost(ctx, post, topic.CategoryID)
	if err != nil {
		return nil, err
	}
	post.ID = id

	return post, nil
}

// SetTopicPinned pins or unpins a topic
func (s *ForumService) SetTopicPinned(ctx context.Context, topicID int64, pinned bool) error {
	return s.forumRepo.SetTopicPinned(ctx, topicID, pinned)
}

// SetTopicLocked locks or unlocks a topic
func (s *ForumService) SetTopicLocked(ctx context.Context, topicID int64, locked bool) error {
	if err := s.forumRepo.SetTopicLocked(ctx, topicID, locked); err != nil {
		return fmt.Errorf("error updating topic lock: %w", err)
	}
	return nil
}
