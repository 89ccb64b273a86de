package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID           int64  `json:"id" db:"id" example:"1"`
	Username     string `json:"username" db:"username" example:"apexfan42"`
	Email        string `json:"email" db:"email" example:"user@example.com"`
	PasswordHash string `json:"-" db:"password_hash"`

	// Profile information
	FirstName      *string `json:"firstName,omitempty" db:"first_name"`
	LastName       *string `json:"lastName,omitempty" db:"last_name"`
	Bio            *string `json:"bio,omitempty" db:"bio"`
	ProfilePicture *string `json:"profilePicture,omitempty" db:"profile_picture"`

	// Role and account status
	Role       Role `json:"role" db:"role" example:"researcher"`
	IsActive   bool `json:"isActive" db:"is_active" example:"true"`
	IsVerified bool `json:"isVerified" db:"is_verified" example:"false"`

	// Timestamps
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time  `json:"updatedAt" db:"updated_at"`
	LastLogin *time.Time `json:"lastLogin,omitempty" db:"last_login"`

	// Denormalized statistics
	ResearchCount   int `json:"researchCount" db:"research_count"`
	ForumPostsCount int `json:"forumPostsCount" db:"forum_posts_count"`
}
