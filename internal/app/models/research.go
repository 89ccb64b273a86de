package models

import "time"

// ResearchStatus is the moderation state of a research paper.
type ResearchStatus string

const (
	ResearchStatusPending           ResearchStatus = "pending"
	ResearchStatusUnderReview       ResearchStatus = "under_review"
	ResearchStatusApproved          ResearchStatus = "approved"
	ResearchStatusRejected          ResearchStatus = "rejected"
	ResearchStatusRevisionsRequired ResearchStatus = "revisions_required"
)

// ResearchCategory classifies a research paper.
type ResearchCategory string

const (
	ResearchCategoryTechnical    ResearchCategory = "technical"
	ResearchCategoryStrategy     ResearchCategory = "strategy"
	ResearchCategoryHistorical   ResearchCategory = "historical"
	ResearchCategoryAerodynamics ResearchCategory = "aerodynamics"
	ResearchCategoryDataAnalysis ResearchCategory = "data_analysis"
	ResearchCategoryPerformance  ResearchCategory = "performance"
)

// ResearchCategories lists every valid category in a stable order.
var ResearchCategories = []ResearchCategory{
	ResearchCategoryTechnical,
	ResearchCategoryStrategy,
	ResearchCategoryHistorical,
	ResearchCategoryAerodynamics,
	ResearchCategoryDataAnalysis,
	ResearchCategoryPerformance,
}

// ParseResearchCategory converts a string to a ResearchCategory, reporting
// whether it is one of the known categories.
func ParseResearchCategory(s string) (ResearchCategory, bool) {
	for _, c := range ResearchCategories {
		if ResearchCategory(s) == c {
			return c, true
		}
	}
	return "", false
}

// ReviewAction is a moderator decision on a submitted paper.
type ReviewAction string

const (
	ReviewActionApprove          ReviewAction = "approve"
	ReviewActionReject           ReviewAction = "reject"
	ReviewActionRequestRevisions ReviewAction = "request_revisions"
)

// ParseReviewAction converts a string to a ReviewAction, reporting whether
// it is one of the three supported actions.
func ParseReviewAction(s string) (ReviewAction, bool) {
	switch ReviewAction(s) {
	case ReviewActionApprove, ReviewActionReject, ReviewActionRequestRevisions:
		return ReviewAction(s), true
	}
	return "", false
}

// ResearchPaper defines the research paper model based on the
// 'research_papers' table
type ResearchPaper struct {
	ID       int64            `json:"id" db:"id"`
	Title    string           `json:"title" db:"title"`
	Abstract string           `json:"abstract" db:"abstract"`
	Keywords string           `json:"keywords" db:"keywords"`
	Category ResearchCategory `json:"category" db:"category"`
	Status   ResearchStatus   `json:"status" db:"status"`

	// File information. Filename is the original upload name kept for
	// display and download; FilePath points at the server-generated name.
	Filename string `json:"filename" db:"filename"`
	FilePath string `json:"-" db:"file_path"`
	FileSize int64  `json:"fileSize" db:"file_size"`

	// Timestamps. PublishedAt is set iff the paper reaches approved.
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
	PublishedAt *time.Time `json:"publishedAt,omitempty" db:"published_at"`

	AuthorID int64 `json:"authorId" db:"author_id"`
	Author   *User `json:"author,omitempty"`

	// Denormalized statistics
	Views     int `json:"views" db:"views"`
	Downloads int `json:"downloads" db:"downloads"`
	Likes     int `json:"likes" db:"likes"`

	// Review information
	ReviewerComments *string    `json:"reviewerComments,omitempty" db:"reviewer_comments"`
	ReviewedBy       *int64     `json:"reviewedBy,omitempty" db:"reviewed_by"`
	ReviewedAt       *time.Time `json:"reviewedAt,omitempty" db:"reviewed_at"`
}
