package dto

// SubmitResearchRequest is the multipart form payload for paper submission.
// The file part is handled separately by the controller.
type SubmitResearchRequest struct {
	Title    string `form:"title" binding:"required"`
	Abstract string `form:"abstract" binding:"required"`
	Keywords string `form:"keywords"`
	Category string `form:"category" binding:"required"`
}

// ReviewResearchRequest is the moderator payload for a review decision.
type ReviewResearchRequest struct {
	Action   string `json:"action" binding:"required" example:"approve"`
	Comments string `json:"comments"`
}

// ResearchListQuery collects the list endpoint parameters after parsing.
type ResearchListQuery struct {
	Page     int
	PerPage  int
	Category string
	Search   string
	SortBy   string
}

// ResearchStats aggregates research paper statistics.
type ResearchStats struct {
	TotalPapers       int64           `json:"total_papers"`
	PendingPapers     int64           `json:"pending_papers"`
	TotalDownloads    int64           `json:"total_downloads"`
	TotalViews        int64           `json:"total_views"`
	CategoryBreakdown []CategoryCount `json:"category_breakdown"`
}

// CategoryCount is one row of a per-category breakdown.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}
