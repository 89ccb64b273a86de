package dto

import (
	"github.com/motorlab/apexhub/internal/app/models"
)

// CreateForumCategoryRequest is the moderator payload for a new category.
type CreateForumCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// CreateForumTopicRequest is the payload for a new topic.
type CreateForumTopicRequest struct {
	Title      string `json:"title" binding:"required"`
	Content    string `json:"content" binding:"required"`
	CategoryID int64  `json:"category_id" binding:"required"`
}

// CreateForumPostRequest is the payload for a reply within a topic.
type CreateForumPostRequest struct {
	Content string `json:"content" binding:"required"`
}

// TopicWithPosts bundles a topic and one page of its posts.
type TopicWithPosts struct {
	Topic      *models.ForumTopic `json:"forum_topic"`
	Posts      []models.ForumPost `json:"posts"`
	Pagination Pagination         `json:"pagination"`
}

// CreateGroupRequest is the payload for a new interest group.
type CreateGroupRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Avatar      string `json:"avatar"`
	IsPublic    *bool  `json:"is_public,omitempty"`
}

// CreateEventRequest is the payload for a new community event. Times are
// RFC 3339 strings validated by the service.
type CreateEventRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description" binding:"required"`
	EventType    string `json:"event_type" binding:"required"`
	StartTime    string `json:"start_time" binding:"required"`
	EndTime      string `json:"end_time"`
	Timezone     string `json:"timezone"`
	Location     string `json:"location"`
	MaxAttendees *int   `json:"max_attendees,omitempty"`
}

// PinTopicRequest is the moderation payload for pinning or unpinning.
type PinTopicRequest struct {
	Pinned *bool `json:"pinned" binding:"required"`
}

// LockTopicRequest is the moderation payload for locking or unlocking.
type LockTopicRequest struct {
	Locked *bool `json:"locked" binding:"required"`
}

// CommunityStats aggregates forum, group and event statistics.
type CommunityStats struct {
	TotalTopics    int64 `json:"total_topics"`
	TotalPosts     int64 `json:"total_posts"`
	TotalGroups    int64 `json:"total_groups"`
	UpcomingEvents int64 `json:"upcoming_events"`
}
