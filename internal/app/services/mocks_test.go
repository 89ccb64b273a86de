package services

import (
	"context"
	"mime/multipart"

	"github.com/stretchr/testify/mock"

	"github.com/motorlab/apexhub/internal/app/models"
	"github.com/motorlab/apexhub/internal/app/repositories"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) (int64, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepo) GetByIdentifier(ctx context.Context, identifier string) (*models.User, error) {
	args := m.Called(ctx, identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepo) List(ctx context.Context, search string, activeOnly bool, limit, offset int) ([]models.User, int64, error) {
	args := m.Called(ctx, search, activeOnly, limit, offset)
	return args.Get(0).([]models.User), args.Get(1).(int64), args.Error(2)
}

func (m *mockUserRepo) UpdateProfile(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) UpdateRole(ctx context.Context, id int64, role models.Role) error {
	return m.Called(ctx, id, role).Error(0)
}

func (m *mockUserRepo) SetActive(ctx context.Context, id int64, active bool) error {
	return m.Called(ctx, id, active).Error(0)
}

func (m *mockUserRepo) UpdateLastLogin(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockUserRepo) CountByRole(ctx context.Context) (map[models.Role]int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[models.Role]int64), args.Error(1)
}

type mockResearchRepo struct {
	mock.Mock
}

func (m *mockResearchRepo) Create(ctx context.Context, paper *models.ResearchPaper) (int64, error) {
	args := m.Called(ctx, paper)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockResearchRepo) GetByID(ctx context.Context, id int64) (*models.ResearchPaper, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ResearchPaper), args.Error(1)
}

func (m *mockResearchRepo) List(ctx context.Context, filter repositories.ResearchFilter, limit, offset int) ([]models.ResearchPaper, int64, error) {
	args := m.Called(ctx, filter, limit, offset)
	return args.Get(0).([]models.ResearchPaper), args.Get(1).(int64), args.Error(2)
}

func (m *mockResearchRepo) UpdateReview(ctx context.Context, paper *models.ResearchPaper) error {
	return m.Called(ctx, paper).Error(0)
}

func (m *mockResearchRepo) IncrementViews(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockResearchRepo) IncrementDownloads(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockResearchRepo) IncrementLikes(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockResearchRepo) Stats(ctx context.Context) (*repositories.ResearchAggregates, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repositories.ResearchAggregates), args.Error(1)
}

type mockNewsRepo struct {
	mock.Mock
}

func (m *mockNewsRepo) Create(ctx context.Context, article *models.NewsArticle) (int64, error) {
	args := m.Called(ctx, article)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockNewsRepo) GetByID(ctx context.Context, id int64) (*models.NewsArticle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.NewsArticle), args.Error(1)
}

func (m *mockNewsRepo) GetBySlug(ctx context.Context, slug string) (*models.NewsArticle, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.NewsArticle), args.Error(1)
}

func (m *mockNewsRepo) SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error) {
	args := m.Called(ctx, slug, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *mockNewsRepo) List(ctx context.Context, filter repositories.NewsFilter, limit, offset int) ([]models.NewsArticle, int64, error) {
	args := m.Called(ctx, filter, limit, offset)
	return args.Get(0).([]models.NewsArticle), args.Get(1).(int64), args.Error(2)
}

func (m *mockNewsRepo) Latest(ctx context.Context, limit int) ([]models.NewsArticle, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]models.NewsArticle), args.Error(1)
}

func (m *mockNewsRepo) Update(ctx context.Context, article *models.NewsArticle) error {
	return m.Called(ctx, article).Error(0)
}

func (m *mockNewsRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockNewsRepo) IncrementViews(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockNewsRepo) Stats(ctx context.Context) (map[models.NewsStatus]int64, map[models.NewsCategory]int64, int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[models.NewsStatus]int64),
		args.Get(1).(map[models.NewsCategory]int64),
		args.Get(2).(int64),
		args.Error(3)
}

type mockForumRepo struct {
	mock.Mock
}

func (m *mockForumRepo) CreateCategory(ctx context.Context, category *models.ForumCategory) (int64, error) {
	args := m.Called(ctx, category)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockForumRepo) ListCategories(ctx context.Context) ([]models.ForumCategory, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.ForumCategory), args.Error(1)
}

func (m *mockForumRepo) GetCategoryByID(ctx context.Context, id int64) (*models.ForumCategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ForumCategory), args.Error(1)
}

func (m *mockForumRepo) CreateTopic(ctx context.Context, topic *models.ForumTopic) (int64, error) {
	args := m.Called(ctx, topic)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockForumRepo) GetTopicByID(ctx context.Context, id int64) (*models.ForumTopic, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ForumTopic), args.Error(1)
}

func (m *mockForumRepo) ListTopics(ctx context.Context, categoryID *int64, search string, limit, offset int) ([]models.ForumTopic, int64, error) {
	args := m.Called(ctx, categoryID, search, limit, offset)
	return args.Get(0).([]models.ForumTopic), args.Get(1).(int64), args.Error(2)
}

func (m *mockForumRepo) IncrementTopicViews(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockForumRepo) SetTopicPinned(ctx context.Context, id int64, pinned bool) error {
	return m.Called(ctx, id, pinned).Error(0)
}

func (m *mockForumRepo) SetTopicLocked(ctx context.Context, id int64, locked bool) error {
	return m.Called(ctx, id, locked).Error(0)
}

func (m *mockForumRepo) ListPosts(ctx context.Context, topicID int64, limit, offset int) ([]models.ForumPost, int64, error) {
	args := m.Called(ctx, topicID, limit, offset)
	return args.Get(0).([]models.ForumPost), args.Get(1).(int64), args.Error(2)
}

func (m *mockForumRepo) CreatePost(ctx context.Context, post *models.ForumPost, categoryID int64) (int64, error) {
	args := m.Called(ctx, post, categoryID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockForumRepo) CountTopics(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockForumRepo) CountPosts(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockGroupRepo struct {
	mock.Mock
}

func (m *mockGroupRepo) Create(ctx context.Context, group *models.InterestGroup) (int64, error) {
	args := m.Called(ctx, group)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockGroupRepo) GetByID(ctx context.Context, id int64) (*models.InterestGroup, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InterestGroup), args.Error(1)
}

func (m *mockGroupRepo) List(ctx context.Context, search string, limit, offset int) ([]models.InterestGroup, int64, error) {
	args := m.Called(ctx, search, limit, offset)
	return args.Get(0).([]models.InterestGroup), args.Get(1).(int64), args.Error(2)
}

func (m *mockGroupRepo) IsMember(ctx context.Context, groupID, userID int64) (bool, error) {
	args := m.Called(ctx, groupID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *mockGroupRepo) AddMember(ctx context.Context, groupID, userID int64) error {
	return m.Called(ctx, groupID, userID).Error(0)
}

func (m *mockGroupRepo) CountGroups(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockEventRepo struct {
	mock.Mock
}

func (m *mockEventRepo) Create(ctx context.Context, event *models.CommunityEvent) (int64, error) {
	args := m.Called(ctx, event)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockEventRepo) GetByID(ctx context.Context, id int64) (*models.CommunityEvent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CommunityEvent), args.Error(1)
}

func (m *mockEventRepo) List(ctx context.Context, upcomingOnly bool, eventType *models.EventType, limit, offset int) ([]models.CommunityEvent, int64, error) {
	args := m.Called(ctx, upcomingOnly, eventType, limit, offset)
	return args.Get(0).([]models.CommunityEvent), args.Get(1).(int64), args.Error(2)
}

func (m *mockEventRepo) AddAttendee(ctx context.Context, eventID, userID int64) error {
	return m.Called(ctx, eventID, userID).Error(0)
}

func (m *mockEventRepo) IsAttending(ctx context.Context, eventID, userID int64) (bool, error) {
	args := m.Called(ctx, eventID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *mockEventRepo) CountUpcoming(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockFileStorage struct {
	mock.Mock
}

func (m *mockFileStorage) Save(fileHeader *multipart.FileHeader) (string, int64, error) {
	args := m.Called(fileHeader)
	return args.String(0), args.Get(1).(int64), args.Error(2)
}

func (m *mockFileStorage) FullPath(storedName string) string {
	args := m.Called(storedName)
	return args.String(0)
}

func (m *mockFileStorage) Delete(storedName string) error {
	args := m.Called(storedName)
	return args.Error(0)
}
