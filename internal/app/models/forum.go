package models

import "time"

// ForumCategory defines a forum category based on the 'forum_categories'
// table. TopicCount and PostCount are denormalized and maintained in the
// same transaction as the child inserts.
type ForumCategory struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description,omitempty" db:"description"`
	Icon        string    `json:"icon,omitempty" db:"icon"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`

	TopicCount int `json:"topicCount" db:"topic_count"`
	PostCount  int `json:"postCount" db:"post_count"`
}

// ForumTopic defines a forum topic based on the 'forum_topics' table
type ForumTopic struct {
	ID       int64  `json:"id" db:"id"`
	Title    string `json:"title" db:"title"`
	Content  string `json:"content" db:"content"`
	IsPinned bool   `json:"isPinned" db:"is_pinned"`
	IsLocked bool   `json:"isLocked" db:"is_locked"`

	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
	LastPostAt time.Time `json:"lastPostAt" db:"last_post_at"`

	CategoryID int64          `json:"categoryId" db:"category_id"`
	Category   *ForumCategory `json:"category,omitempty"`
	AuthorID   int64          `json:"authorId" db:"author_id"`
	Author     *User          `json:"author,omitempty"`

	Views      int `json:"views" db:"views"`
	ReplyCount int `json:"replyCount" db:"reply_count"`
}

// ForumPost defines a reply in a topic based on the 'forum_posts' table
type ForumPost struct {
	ID      int64  `json:"id" db:"id"`
	Content string `json:"content" db:"content"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	TopicID  int64 `json:"topicId" db:"topic_id"`
	AuthorID int64 `json:"authorId" db:"author_id"`
	Author   *User `json:"author,omitempty"`
}
