package dto

import (
	"time"

	"github.com/motorlab/apexhub/internal/app/models"
)

// PublicUser is the projection of a user safe for unauthenticated callers.
type PublicUser struct {
	ID              int64       `json:"id"`
	Username        string      `json:"username"`
	FirstName       *string     `json:"firstName,omitempty"`
	LastName        *string     `json:"lastName,omitempty"`
	Bio             *string     `json:"bio,omitempty"`
	ProfilePicture  *string     `json:"profilePicture,omitempty"`
	Role            models.Role `json:"role"`
	CreatedAt       time.Time   `json:"createdAt"`
	ResearchCount   int         `json:"researchCount"`
	ForumPostsCount int         `json:"forumPostsCount"`
}

// NewPublicUser strips private fields from a user model.
func NewPublicUser(u *models.User) PublicUser {
	return PublicUser{
		ID:              u.ID,
		Username:        u.Username,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		Bio:             u.Bio,
		ProfilePicture:  u.ProfilePicture,
		Role:            u.Role,
		CreatedAt:       u.CreatedAt,
		ResearchCount:   u.ResearchCount,
		ForumPostsCount: u.ForumPostsCount,
	}
}

// NewPublicUsers converts a slice of user models.
func NewPublicUsers(users []models.User) []PublicUser {
	out := make([]PublicUser, 0, len(users))
	for i := range users {
		out = append(out, NewPublicUser(&users[i]))
	}
	return out
}

// UpdateProfileRequest is the payload for profile self-updates. Pointer
// fields distinguish "leave unchanged" from "set empty".
type UpdateProfileRequest struct {
	Username       *string `json:"username,omitempty"`
	FirstName      *string `json:"first_name,omitempty"`
	LastName       *string `json:"last_name,omitempty"`
	Bio            *string `json:"bio,omitempty"`
	ProfilePicture *string `json:"profile_picture,omitempty"`
}

// UpdateRoleRequest is the admin payload for role changes.
type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required" example:"moderator"`
}

// UserStats aggregates account statistics.
type UserStats struct {
	TotalUsers    int64       `json:"total_users"`
	RoleBreakdown []RoleCount `json:"role_breakdown"`
}

// RoleCount is one row of a per-role breakdown.
type RoleCount struct {
	Role  string `json:"role"`
	Count int64  `json:"count"`
}
