package services

import (
	"context"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/motorlab/apexhub/internal/app/models"
	"github.com/motorlab/apexhub/internal/app/models/dto"
	"github.com/motorlab/apexhub/internal/app/repositories"
	"github.com/motorlab/apexhub/internal/pkg/apperrors"
)

func TestSubmitValidation(t *testing.T) {
	svc := NewResearchService(new(mockResearchRepo), nil)

	longAbstract := strings.Repeat("tyre degradation analysis ", 4)

	tests := []struct {
		name string
		req  dto.SubmitResearchRequest
	}{
		{"short title", dto.SubmitResearchRequest{Title: "Too short", Abstract: longAbstract, Category: "technical"}},
		{"short abstract", dto.SubmitResearchRequest{Title: "A sufficiently long title", Abstract: "brief", Category: "technical"}},
		{"bad category", dto.SubmitResearchRequest{Title: "A sufficiently long title", Abstract: longAbstract, Category: "gossip"}},
		{"missing file", dto.SubmitResearchRequest{Title: "A sufficiently long title", Abstract: longAbstract, Category: "technical"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Submit(context.Background(), 1, &tt.req, nil)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		})
	}
}

func TestSubmitAcceptsPDFUpload(t *testing.T) {
	repo := new(mockResearchRepo)
	storage := new(mockFileStorage)

	file := &multipart.FileHeader{Filename: "tyre-wear-model.pdf", Size: 2048}
	storage.On("Save", file).Return("ab12cd34.pdf", int64(2048), nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(p *models.ResearchPaper) bool {
		return p.Status == models.ResearchStatusPending &&
			p.Filename == "tyre-wear-model.pdf" &&
			p.FilePath == "ab12cd34.pdf" &&
			p.FileSize == int64(2048)
	})).Return(int64(6), nil)
	repo.On("GetByID", mock.Anything, int64(6)).
		Return(&models.ResearchPaper{ID: 6, Status: models.ResearchStatusPending}, nil)

	svc := NewResearchService(repo, storage)

	paper, err := svc.Submit(context.Background(), 1, &dto.SubmitResearchRequest{
		Title:    "Tyre Wear Modelling Across Stint Lengths",
		Abstract: strings.Repeat("tyre degradation analysis ", 4),
		Category: "technical",
	}, file)
	require.NoError(t, err)
	assert.Equal(t, models.ResearchStatusPending, paper.Status)
	repo.AssertExpectations(t)
	storage.AssertExpectations(t)
}

func TestSubmitRejectsNonPDF(t *testing.T) {
	storage := new(mockFileStorage)
	svc := NewResearchService(new(mockResearchRepo), storage)

	_, err := svc.Submit(context.Background(), 1, &dto.SubmitResearchRequest{
		Title:    "Tyre Wear Modelling Across Stint Lengths",
		Abstract: strings.Repeat("tyre degradation analysis ", 4),
		Category: "technical",
	}, &multipart.FileHeader{Filename: "slides.pptx"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	storage.AssertNotCalled(t, "Save", mock.Anything)
}

func TestReviewApproveStampsPublishedAt(t *testing.T) {
	repo := new(mockResearchRepo)
	paper := &models.ResearchPaper{ID: 4, Status: models.ResearchStatusPending}
	repo.On("GetByID", mock.Anything, int64(4)).Return(paper, nil)
	repo.On("UpdateReview", mock.Anything, mock.MatchedBy(func(p *models.ResearchPaper) bool {
		return p.Status == models.ResearchStatusApproved &&
			p.PublishedAt != nil &&
			p.ReviewedBy != nil && *p.ReviewedBy == 9 &&
			p.ReviewedAt != nil
	})).Return(nil)

	svc := NewResearchService(repo, nil)

	reviewed, err := svc.Review(context.Background(), 9, 4, &dto.ReviewResearchRequest{Action: "approve", Comments: "solid work"})
	require.NoError(t, err)
	assert.Equal(t, models.ResearchStatusApproved, reviewed.Status)
	require.NotNil(t, reviewed.ReviewerComments)
	assert.Equal(t, "solid work", *reviewed.ReviewerComments)
	repo.AssertExpectations(t)
}

func TestReviewRejectLeavesPublishedAtEmpty(t *testing.T) {
	repo := new(mockResearchRepo)
	paper := &models.ResearchPaper{ID: 4, Status: models.ResearchStatusPending}
	repo.On("GetByID", mock.Anything, int64(4)).Return(paper, nil)
	repo.On("UpdateReview", mock.Anything, mock.MatchedBy(func(p *models.ResearchPaper) bool {
		return p.Status == models.ResearchStatusRejected && p.PublishedAt == nil
	})).Return(nil)

	svc := NewResearchService(repo, nil)

	reviewed, err := svc.Review(context.Background(), 9, 4, &dto.ReviewResearchRequest{Action: "reject"})
	require.NoError(t, err)
	assert.Equal(t, models.ResearchStatusRejected, reviewed.Status)
	assert.Nil(t, reviewed.ReviewerComments)
}

func TestReviewRequestRevisions(t *testing.T) {
	repo := new(mockResearchRepo)
	paper := &models.ResearchPaper{ID: 4, Status: models.ResearchStatusPending}
	repo.On("GetByID", mock.Anything, int64(4)).Return(paper, nil)
	repo.On("UpdateReview", mock.Anything, mock.Anything).Return(nil)

	svc := NewResearchService(repo, nil)

	reviewed, err := svc.Review(context.Background(), 9, 4, &dto.ReviewResearchRequest{Action: "request_revisions", Comments: "needs data"})
	require.NoError(t, err)
	assert.Equal(t, models.ResearchStatusRevisionsRequired, reviewed.Status)
}

func TestReviewAlreadyReviewedPaperOverwrites(t *testing.T) {
	previousReviewer := int64(3)
	repo := new(mockResearchRepo)
	paper := &models.ResearchPaper{
		ID:         4,
		Status:     models.ResearchStatusRejected,
		ReviewedBy: &previousReviewer,
	}
	repo.On("GetByID", mock.Anything, int64(4)).Return(paper, nil)
	repo.On("UpdateReview", mock.Anything, mock.Anything).Return(nil)

	svc := NewResearchService(repo, nil)

	reviewed, err := svc.Review(context.Background(), 9, 4, &dto.ReviewResearchRequest{Action: "approve"})
	require.NoError(t, err)
	assert.Equal(t, models.ResearchStatusApproved, reviewed.Status)
	assert.Equal(t, int64(9), *reviewed.ReviewedBy)
}

func TestReviewInvalidAction(t *testing.T) {
	svc := NewResearchService(new(mockResearchRepo), nil)

	_, err := svc.Review(context.Background(), 9, 4, &dto.ReviewResearchRequest{Action: "start_review"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestGetHidesPendingPaperFromStrangers(t *testing.T) {
	repo := new(mockResearchRepo)
	repo.On("GetByID", mock.Anything, int64(4)).
		Return(&models.ResearchPaper{ID: 4, Status: models.ResearchStatusPending, AuthorID: 1}, nil)

	svc := NewResearchService(repo, nil)

	_, err := svc.Get(context.Background(), 4, 2, models.RoleUser)
	assert.ErrorIs(t, err, apperrors.ErrPaperNotFound)
}

func TestGetShowsPendingPaperToAuthor(t *testing.T) {
	repo := new(mockResearchRepo)
	repo.On("GetByID", mock.Anything, int64(4)).
		Return(&models.ResearchPaper{ID: 4, Status: models.ResearchStatusPending, AuthorID: 1}, nil)
	repo.On("IncrementViews", mock.Anything, int64(4)).Return(nil)

	svc := NewResearchService(repo, nil)

	paper, err := svc.Get(context.Background(), 4, 1, models.RoleResearcher)
	require.NoError(t, err)
	assert.Equal(t, 1, paper.Views)
}

func TestLikeRequiresApprovedPaper(t *testing.T) {
	repo := new(mockResearchRepo)
	repo.On("GetByID", mock.Anything, int64(4)).
		Return(&models.ResearchPaper{ID: 4, Status: models.ResearchStatusPending}, nil)

	svc := NewResearchService(repo, nil)

	err := svc.Like(context.Background(), 4)
	assert.ErrorIs(t, err, apperrors.ErrPaperNotFound)
}

func TestListRejectsUnknownCategory(t *testing.T) {
	svc := NewResearchService(new(mockResearchRepo), nil)

	_, _, err := svc.List(context.Background(), "gossip", "", "", 20, 0)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestListFiltersToApproved(t *testing.T) {
	repo := new(mockResearchRepo)
	repo.On("List", mock.Anything, mock.MatchedBy(func(f repositories.ResearchFilter) bool {
		return f.Status != nil && *f.Status == models.ResearchStatusApproved
	}), 20, 0).Return([]models.ResearchPaper{}, int64(0), nil)

	svc := NewResearchService(repo, nil)

	_, _, err := svc.List(context.Background(), "", "", "newest", 20, 0)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestStatsBreakdownFollowsCategoryOrder(t *testing.T) {
	repo := new(mockResearchRepo)
	repo.On("Stats", mock.Anything).Return(&repositories.ResearchAggregates{
		ByStatus: map[models.ResearchStatus]int64{
			models.ResearchStatusApproved: 12,
			models.ResearchStatusPending:  3,
		},
		ByCategory: map[models.ResearchCategory]int64{
			models.ResearchCategoryAerodynamics: 5,
			models.ResearchCategoryTechnical:    7,
		},
		TotalDownloads: 40,
		TotalViews:     200,
	}, nil)

	svc := NewResearchService(repo, nil)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 12, stats.TotalPapers)
	assert.EqualValues(t, 3, stats.PendingPapers)
	require.Len(t, stats.CategoryBreakdown, 2)
	assert.Equal(t, "technical", stats.CategoryBreakdown[0].Category)
	assert.Equal(t, "aerodynamics", stats.CategoryBreakdown[1].Category)
}
