package dto

// CreateNewsRequest is the payload for article creation. Articles always
// start as drafts.
type CreateNewsRequest struct {
	Title            string `json:"title" binding:"required"`
	Content          string `json:"content" binding:"required"`
	Excerpt          string `json:"excerpt"`
	Category         string `json:"category" binding:"required"`
	MetaDescription  string `json:"meta_description"`
	FeaturedImage    string `json:"featured_image"`
	FeaturedImageAlt string `json:"featured_image_alt"`
	Tags             string `json:"tags"`
}

// UpdateNewsRequest is the payload for article updates. Pointer fields
// distinguish "leave unchanged" from "set empty". A title change triggers
// slug regeneration.
type UpdateNewsRequest struct {
	Title            *string `json:"title,omitempty"`
	Content          *string `json:"content,omitempty"`
	Excerpt          *string `json:"excerpt,omitempty"`
	Category         *string `json:"category,omitempty"`
	MetaDescription  *string `json:"meta_description,omitempty"`
	FeaturedImage    *string `json:"featured_image,omitempty"`
	FeaturedImageAlt *string `json:"featured_image_alt,omitempty"`
	Tags             *string `json:"tags,omitempty"`
}

// NewsListQuery collects the list endpoint parameters after parsing.
type NewsListQuery struct {
	Page     int
	PerPage  int
	Category string
	Search   string
	SortBy   string
}

// NewsStats aggregates news statistics.
type NewsStats struct {
	TotalArticles     int64           `json:"total_articles"`
	DraftArticles     int64           `json:"draft_articles"`
	TotalViews        int64           `json:"total_views"`
	CategoryBreakdown []CategoryCount `json:"category_breakdown"`
}
