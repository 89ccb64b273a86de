package models

import "time"

// InterestGroup defines an interest group based on the 'interest_groups'
// table. MemberCount is denormalized against the 'group_memberships' join
// table.
type InterestGroup struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description,omitempty" db:"description"`
	Avatar      string `json:"avatar,omitempty" db:"avatar"`
	IsPublic    bool   `json:"isPublic" db:"is_public"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	CreatorID int64 `json:"creatorId" db:"creator_id"`
	Creator   *User `json:"creator,omitempty"`

	MemberCount     int `json:"memberCount" db:"member_count"`
	DiscussionCount int `json:"discussionCount" db:"discussion_count"`
}

// GroupMembership is a row in the 'group_memberships' join table.
type GroupMembership struct {
	UserID   int64     `json:"userId" db:"user_id"`
	GroupID  int64     `json:"groupId" db:"group_id"`
	JoinedAt time.Time `json:"joinedAt" db:"joined_at"`
}
