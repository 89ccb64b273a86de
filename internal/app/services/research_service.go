package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"github.com/motorlab/apexhub/internal/app/models"
	"github.com/motorlab/apexhub/internal/app/models/dto"
	"github.com/motorlab/apexhub/internal/app/repositories"
	"github.com/motorlab/apexhub/internal/pkg/apperrors"
	"github.com/motorlab/apexhub/internal/pkg/filestorage"
	"github.com/motorlab/apexhub/internal/pkg/logger"
)

// ResearchService handles paper submission, review and discovery
type ResearchService struct {
	researchRepo IResearchRepository
	storage      filestorage.FileStorage
}

// NewResearchService creates a new ResearchService
func NewResearchService(researchRepo IResearchRepository, storage filestorage.FileStorage) *ResearchService {
	return &ResearchService{
		researchRepo: researchRepo,
		storage:      storage,
	}
}

// List returns approved papers with the public filters applied
func (s *ResearchService) List(ctx context.Context, category, search, sort string, limit, offset int) ([]models.ResearchPaper, int64, error) {
	filter := repositories.ResearchFilter{Search: search, Sort: sort}

	status := models.ResearchStatusApproved
	filter.Status = &status

	if category != "" {
		parsed, ok := models.ParseResearchCategory(category)
		if !ok {
			return nil, 0, apperrors.NewValidationError("invalid category")
		}
		filter.Category = &parsed
	}

	return s.researchRepo.List(ctx, filter, limit, offset)
}

// Get returns a single paper and counts the view. Papers that are not
// approved are only visible to their author and to moderators.
func (s *ResearchService) Get(ctx context.Context, id int64, viewerID int64, viewerRole models.Role) (*models.ResearchPaper, error) {
	paper, err := s.researchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if paper.Status != models.ResearchStatusApproved {
		if paper.AuthorID != viewerID && !viewerRole.AtLeast(models.RoleModerator) {
			return nil, apperrors.ErrPaperNotFound
		}
	}

	if err := s.researchRepo.IncrementViews(ctx, id); err != nil {
		logger.Warn().Err(err).Int64("paper_id", id).Msg("Failed to count view")
	} else {
		paper.Views++
	}

	return paper, nil
}

// Download returns the stored file location for an approved paper and
// counts the download.
func (s *ResearchService) Download(ctx context.Context, id int64) (path string, filename string, err error) {
	paper, err := s.researchRepo.GetByID(ctx, id)
	if err != nil {
		return "", "", err
	}

	if paper.Status != models.ResearchStatusApproved {
		return "", "", apperrors.ErrPaperNotFound
	}

	if err := s.researchRepo.IncrementDownloads(ctx, id); err != nil {
		return "", "", err
	}

	return s.storage.FullPath(paper.FilePath), paper.Filename, nil
}

// Submit stores the uploaded PDF and creates the paper in pending state.
// The author's research_count moves with the insert.
func (s *ResearchService) Submit(ctx context.Context, authorID int64, req *dto.SubmitResearchRequest, file *multipart.FileHeader) (*models.ResearchPaper, error) {
	title := strings.TrimSpace(req.Title)
	abstract := strings.TrimSpace(req.Abstract)

	if len(title) < 10 {
		return nil, apperrors.NewValidationError("title must be at least 10 characters long")
	}
	if len(abstract) < 50 {
		return nil, apperrors.NewValidationError("abstract must be at least 50 characters long")
	}

	category, ok := models.ParseResearchCategory(req.Category)
	if !ok {
		return nil, apperrors.NewValidationError("invalid category")
	}

	if file == nil {
		return nil, apperrors.NewValidationError("file is required")
	}
	if !filestorage.HasAllowedExtension(file.Filename, "pdf") {
		return nil, apperrors.NewValidationError("only PDF files are accepted")
	}

	// The file lands on disk before the insert; a failed insert leaves an
	// orphan file rather than a paper without content.
	storedName, size, err := s.storage.Save(file)
	if err != nil {
		return nil, fmt.Errorf("error saving file: %w", err)
	}

	paper := &models.ResearchPaper{
		Title:    title,
		Abstract: abstract,
		Keywords: strings.TrimSpace(req.Keywords),
		Category: category,
		Status:   models.ResearchStatusPending,
		Filename: file.Filename,
		FilePath: storedName,
		FileSize: size,
		AuthorID: authorID,
	}

	id, err := s.researchRepo.Create(ctx, paper)
	if err != nil {
		if removeErr := s.storage.Delete(storedName); removeErr != nil {
			logger.Warn().Err(removeErr).Str("file", storedName).Msg("Failed to remove orphan upload")
		}
		return nil, err
	}

	created, err := s.researchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error loading created paper: %w", err)
	}

	logger.Info().Int64("paper_id", id).Int64("author_id", authorID).Msg("Research paper submitted")

	return created, nil
}

// Like counts a like. The increment is unconditional; repeat likes from the
// same user are not deduplicated.
func (s *ResearchService) Like(ctx context.Context, id int64) error {
	paper, err := s.researchRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if paper.Status != models.ResearchStatusApproved {
		return apperrors.ErrPaperNotFound
	}
	return s.researchRepo.IncrementLikes(ctx, id)
}

// ListPending returns papers awaiting review, oldest first
func (s *ResearchService) ListPending(ctx context.Context, limit, offset int) ([]models.ResearchPaper, int64, error) {
	status := models.ResearchStatusPending
	filter := repositories.ResearchFilter{Status: &status, Sort: "oldest"}
	return s.researchRepo.List(ctx, filter, limit, offset)
}

// ListByAuthor returns every paper the author submitted, any status
func (s *ResearchService) ListByAuthor(ctx context.Context, authorID int64, limit, offset int) ([]models.ResearchPaper, int64, error) {
	filter := repositories.ResearchFilter{AuthorID: &authorID}
	return s.researchRepo.List(ctx, filter, limit, offset)
}

// Review applies a moderation decision. Re-reviewing an already reviewed
// paper is allowed and simply overwrites the previous decision. Approving
// stamps published_at.
func (s *ResearchService) Review(ctx context.Context, reviewerID, paperID int64, req *dto.ReviewResearchRequest) (*models.ResearchPaper, error) {
	action, ok := models.ParseReviewAction(req.Action)
	if !ok {
		return nil, apperrors.NewValidationError("action must be approve, reject or request_revisions")
	}

	paper, err := s.researchRepo.GetByID(ctx, paperID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	switch action {
	case models.ReviewActionApprove:
		paper.Status = models.ResearchStatusApproved
		paper.PublishedAt = &now
	case models.ReviewActionReject:
		paper.Status = models.ResearchStatusRejected
	case models.ReviewActionRequestRevisions:
		paper.Status = models.ResearchStatusRevisionsRequired
	}

	comments := strings.TrimSpace(req.Comments)
	if comments != "" {
		paper.ReviewerComments = &comments
	} else {
		paper.ReviewerComments = nil
	}
	paper.ReviewedBy = &reviewerID
	paper.ReviewedAt = &now

	if err := s.researchRepo.UpdateReview(ctx, paper); err != nil {
		return nil, err
	}

	logger.Info().
		Int64("paper_id", paperID).
		Int64("reviewer_id", reviewerID).
		Str("action", string(action)).
		Msg("Research paper reviewed")

	return paper, nil
}

// Categories lists the valid research categories as value/label pairs
func (s *ResearchService) Categories() []dto.CategoryOption {
	options := make([]dto.CategoryOption, 0, len(models.ResearchCategories))
	for _, c := range models.ResearchCategories {
		options = append(options, dto.CategoryOption{
			Value: string(c),
			Label: enumLabel(string(c)),
		})
	}
	return options
}

// Stats assembles the public research statistics
func (s *ResearchService) Stats(ctx context.Context) (*dto.ResearchStats, error) {
	agg, err := s.researchRepo.Stats(ctx)
	if err != nil {
		return nil, err
	}

	stats := &dto.ResearchStats{
		TotalPapers:    agg.ByStatus[models.ResearchStatusApproved],
		PendingPapers:  agg.ByStatus[models.ResearchStatusPending],
		TotalDownloads: agg.TotalDownloads,
		TotalViews:     agg.TotalViews,
	}
	for _, c := range models.ResearchCategories {
		if count, ok := agg.ByCategory[c]; ok {
			stats.CategoryBreakdown = append(stats.CategoryBreakdown, dto.CategoryCount{
				Category: string(c),
				Count:    count,
			})
		}
	}

	return stats, nil
}
