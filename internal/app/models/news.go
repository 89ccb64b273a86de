package models

import "time"

// NewsStatus is the publishing state of a news article.
type NewsStatus string

const (
	NewsStatusDraft     NewsStatus = "draft"
	NewsStatusPublished NewsStatus = "published"
	NewsStatusArchived  NewsStatus = "archived"
)

// NewsCategory classifies a news article.
type NewsCategory string

const (
	NewsCategoryRacePreview NewsCategory = "race_preview"
	NewsCategoryTechnical   NewsCategory = "technical"
	NewsCategoryInterview   NewsCategory = "interview"
	NewsCategoryAnalysis    NewsCategory = "analysis"
	NewsCategoryCommunity   NewsCategory = "community"
	NewsCategoryTeamNews    NewsCategory = "team_news"
	NewsCategoryGeneral     NewsCategory = "general"
)

// NewsCategories lists every valid category in a stable order.
var NewsCategories = []NewsCategory{
	NewsCategoryRacePreview,
	NewsCategoryTechnical,
	NewsCategoryInterview,
	NewsCategoryAnalysis,
	NewsCategoryCommunity,
	NewsCategoryTeamNews,
	NewsCategoryGeneral,
}

// ParseNewsCategory converts a string to a NewsCategory, reporting whether
// it is one of the known categories.
func ParseNewsCategory(s string) (NewsCategory, bool) {
	for _, c := range NewsCategories {
		if NewsCategory(s) == c {
			return c, true
		}
	}
	return "", false
}

// NewsArticle defines the news article model based on the 'news_articles'
// table
type NewsArticle struct {
	ID       int64        `json:"id" db:"id"`
	Title    string       `json:"title" db:"title"`
	Content  string       `json:"content" db:"content"`
	Excerpt  string       `json:"excerpt" db:"excerpt"`
	Category NewsCategory `json:"category" db:"category"`
	Status   NewsStatus   `json:"status" db:"status"`

	// SEO and metadata. Slug is unique and regenerated only when the title
	// actually changes.
	Slug            string `json:"slug" db:"slug"`
	MetaDescription string `json:"metaDescription,omitempty" db:"meta_description"`

	FeaturedImage    string `json:"featuredImage,omitempty" db:"featured_image"`
	FeaturedImageAlt string `json:"featuredImageAlt,omitempty" db:"featured_image_alt"`

	// Timestamps. PublishedAt is stamped on publish and retained across
	// unpublish.
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
	PublishedAt *time.Time `json:"publishedAt,omitempty" db:"published_at"`

	AuthorID int64 `json:"authorId" db:"author_id"`
	Author   *User `json:"author,omitempty"`

	Views int `json:"views" db:"views"`

	// Comma separated tag list
	Tags string `json:"tags,omitempty" db:"tags"`
}
