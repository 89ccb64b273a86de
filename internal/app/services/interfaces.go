package services

import (
	"context"

	"github.com/motorlab/apexhub/internal/app/models"
	"github.com/motorlab/apexhub/internal/app/repositories"
)

// Repository interfaces consumed by the services. The concrete
// implementations live in the repositories package; tests substitute mocks.

// IUserRepository is the user store contract
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByIdentifier(ctx context.Context, identifier string) (*models.User, error)
	List(ctx context.Context, search string, activeOnly bool, limit, offset int) ([]models.User, int64, error)
	UpdateProfile(ctx context.Context, user *models.User) error
	UpdateRole(ctx context.Context, id int64, role models.Role) error
	SetActive(ctx context.Context, id int64, active bool) error
	UpdateLastLogin(ctx context.Context, id int64) error
	CountByRole(ctx context.Context) (map[models.Role]int64, error)
}

// IResearchRepository is the research paper store contract
type IResearchRepository interface {
	Create(ctx context.Context, paper *models.ResearchPaper) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.ResearchPaper, error)
	List(ctx context.Context, filter repositories.ResearchFilter, limit, offset int) ([]models.ResearchPaper, int64, error)
	UpdateReview(ctx context.Context, paper *models.ResearchPaper) error
	IncrementViews(ctx context.Context, id int64) error
	IncrementDownloads(ctx context.Context, id int64) error
	IncrementLikes(ctx context.Context, id int64) error
	Stats(ctx context.Context) (*repositories.ResearchAggregates, error)
}

// INewsRepository is the news article store contract
type INewsRepository interface {
	Create(ctx context.Context, article *models.NewsArticle) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.NewsArticle, error)
	GetBySlug(ctx context.Context, slug string) (*models.NewsArticle, error)
	SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error)
	List(ctx context.Context, filter repositories.NewsFilter, limit, offset int) ([]models.NewsArticle, int64, error)
	Latest(ctx context.Context, limit int) ([]models.NewsArticle, error)
	Update(ctx context.Context, article *models.NewsArticle) error
	Delete(ctx context.Context, id int64) error
	IncrementViews(ctx context.Context, id int64) error
	Stats(ctx context.Context) (map[models.NewsStatus]int64, map[models.NewsCategory]int64, int64, error)
}

// IForumRepository is the forum store contract
type IForumRepository interface {
	CreateCategory(ctx context.Context, category *models.ForumCategory) (int64, error)
	ListCategories(ctx context.Context) ([]models.ForumCategory, error)
	GetCategoryByID(ctx context.Context, id int64) (*models.ForumCategory, error)
	CreateTopic(ctx context.Context, topic *models.ForumTopic) (int64, error)
	GetTopicByID(ctx context.Context, id int64) (*models.ForumTopic, error)
	ListTopics(ctx context.Context, categoryID *int64, search string, limit, offset int) ([]models.ForumTopic, int64, error)
	IncrementTopicViews(ctx context.Context, id int64) error
	SetTopicPinned(ctx context.Context, id int64, pinned bool) error
	SetTopicLocked(ctx context.Context, id int64, locked bool) error
	ListPosts(ctx context.Context, topicID int64, limit, offset int) ([]models.ForumPost, int64, error)
	CreatePost(ctx context.Context, post *models.ForumPost, categoryID int64) (int64, error)
	CountTopics(ctx context.Context) (int64, error)
	CountPosts(ctx context.Context) (int64, error)
}

// IGroupRepository is the interest group store contract
type IGroupRepository interface {
	Create(ctx context.Context, group *models.InterestGroup) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.InterestGroup, error)
	List(ctx context.Context, search string, limit, offset int) ([]models.InterestGroup, int64, error)
	IsMember(ctx context.Context, groupID, userID int64) (bool, error)
	AddMember(ctx context.Context, groupID, userID int64) error
	CountGroups(ctx context.Context) (int64, error)
}

// IEventRepository is the community event store contract
type IEventRepository interface {
	Create(ctx context.Context, event *models.CommunityEvent) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.CommunityEvent, error)
	List(ctx context.Context, upcomingOnly bool, eventType *models.EventType, limit, offset int) ([]models.CommunityEvent, int64, error)
	AddAttendee(ctx context.Context, eventID, userID int64) error
	IsAttending(ctx context.Context, eventID, userID int64) (bool, error)
	CountUpcoming(ctx context.Context) (int64, error)
}
