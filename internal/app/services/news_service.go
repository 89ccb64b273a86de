package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/motorlab/apexhub/internal/app/models"
	"github.com/motorlab/apexhub/internal/app/models/dto"
	"github.com/motorlab/apexhub/internal/app/repositories"
	"github.com/motorlab/apexhub/internal/pkg/apperrors"
	"github.com/motorlab/apexhub/internal/pkg/logger"
	"github.com/motorlab/apexhub/internal/pkg/slug"
)

const featuredArticleCount = 5

// NewsService handles the article lifecycle: draft, publish, unpublish,
// archive.
type NewsService struct {
	newsRepo INewsRepository
}

// NewNewsService creates a new NewsService
func NewNewsService(newsRepo INewsRepository) *NewsService {
	return &NewsService{newsRepo: newsRepo}
}

// List returns published articles with the public filters applied
func (s *NewsService) List(ctx context.Context, category, search, sort string, limit, offset int) ([]models.NewsArticle, int64, error) {
	filter := repositories.NewsFilter{Search: search, Sort: sort}

	status := models.NewsStatusPublished
	filter.Status = &status

	if category != "" {
		parsed, ok := models.ParseNewsCategory(category)
		if !ok {
			return nil, 0, apperrors.NewValidationError("invalid category")
		}
		filter.Category = &parsed
	}

	return s.newsRepo.List(ctx, filter, limit, offset)
}

// Get returns one article by ID and counts the view. Unpublished articles
// are only visible to moderators.
func (s *NewsService) Get(ctx context.Context, id int64, viewerRole models.Role) (*models.NewsArticle, error) {
	article, err := s.newsRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.finishRead(ctx, article, viewerRole)
}

// GetBySlug returns one article by slug and counts the view
func (s *NewsService) GetBySlug(ctx context.Context, slugValue string, viewerRole models.Role) (*models.NewsArticle, error) {
	article, err := s.newsRepo.GetBySlug(ctx, slugValue)
	if err != nil {
		return nil, err
	}
	return s.finishRead(ctx, article, viewerRole)
}

func (s *NewsService) finishRead(ctx context.Context, article *models.NewsArticle, viewerRole models.Role) (*models.NewsArticle, error) {
	if article.Status != models.NewsStatusPublished && !viewerRole.AtLeast(models.RoleModerator) {
		return nil, apperrors.ErrArticleNotFound
	}

	if err := s.newsRepo.IncrementViews(ctx, article.ID); err != nil {
		logger.Warn().Err(err).Int64("article_id", article.ID).Msg("Failed to count view")
	} else {
		article.Views++
	}

	return article, nil
}

// Featured returns the latest published articles
func (s *NewsService) Featured(ctx context.Context) ([]models.NewsArticle, error) {
	return s.newsRepo.Latest(ctx, featuredArticleCount)
}

// Create makes a new draft article with a unique slug derived from the
// title.
func (s *NewsService) Create(ctx context.Context, authorID int64, req *dto.CreateNewsRequest) (*models.NewsArticle, error) {
	title := strings.TrimSpace(req.Title)
	content := strings.TrimSpace(req.Content)

	if len(title) < 5 {
		return nil, apperrors.NewValidationError("title must be at least 5 characters long")
	}
	if len(content) < 50 {
		return nil, apperrors.NewValidationError("content must be at least 50 characters long")
	}

	category, ok := models.ParseNewsCategory(req.Category)
	if !ok {
		return nil, apperrors.NewValidationError("invalid category")
	}

	uniqueSlug, err := s.uniqueSlug(ctx, title, 0)
	if err != nil {
		return nil, err
	}

	article := &models.NewsArticle{
		Title:            title,
		Content:          content,
		Excerpt:          strings.TrimSpace(req.Excerpt),
		Category:         category,
		Status:           models.NewsStatusDraft,
		Slug:             uniqueSlug,
		MetaDescription:  req.MetaDescription,
		FeaturedImage:    req.FeaturedImage,
		FeaturedImageAlt: req.FeaturedImageAlt,
		Tags:             req.Tags,
		AuthorID:         authorID,
	}

	id, err := s.newsRepo.Create(ctx, article)
	if err != nil {
		return nil, err
	}

	created, err := s.newsRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error loading created article: %w", err)
	}

	logger.Info().Int64("article_id", id).Str("slug", uniqueSlug).Msg("News article created")

	return created, nil
}

// uniqueSlug derives a slug from the title and suffixes -1, -2, ... until
// it is free. excludeID exempts the article being retitled so mapping back
// to its own slug is not treated as a collision.
func (s *NewsService) uniqueSlug(ctx context.Context, title string, excludeID int64) (string, error) {
	base := slug.Make(title)
	if base == "" {
		return "", apperrors.NewValidationError("title does not produce a usable slug")
	}

	candidate := base
	for n := 1; ; n++ {
		exists, err := s.newsRepo.SlugExists(ctx, candidate, excludeID)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = slug.WithSuffix(base, n)
	}
}

// Update edits an article. The slug is regenerated only when the title
// actually changes.
func (s *NewsService) Update(ctx context.Context, id int64, req *dto.UpdateNewsRequest) (*models.NewsArticle, error) {
	article, err := s.newsRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if len(title) < 5 {
			return nil, apperrors.NewValidationError("title must be at least 5 characters long")
		}
		if title != article.Title {
			newSlug, err := s.uniqueSlug(ctx, title, article.ID)
			if err != nil {
				return nil, err
			}
			article.Title = title
			article.Slug = newSlug
		}
	}
	if req.Content != nil {
		content := strings.TrimSpace(*req.Content)
		if len(content) < 50 {
			return nil, apperrors.NewValidationError("content must be at least 50 characters long")
		}
		article.Content = content
	}
	if req.Excerpt != nil {
		article.Excerpt = strings.TrimSpace(*req.Excerpt)
	}
	if req.Category != nil {
		category, ok := models.ParseNewsCategory(*req.Category)
		if !ok {
			return nil, apperrors.NewValidationError("invalid category")
		}
		article.Category = category
	}
	if req.MetaDescription != nil {
		article.MetaDescription = *req.MetaDescription
	}
	if req.FeaturedImage != nil {
		article.FeaturedImage = *req.FeaturedImage
	}
	if req.FeaturedImageAlt != nil {
		article.FeaturedImageAlt = *req.FeaturedImageAlt
	}
	if req.Tags != nil {
		article.Tags = *req.Tags
	}

	if err := s.newsRepo.Update(ctx, article); err != nil {
		return nil, err
	}

	return article, nil
}

// Publish moves a draft or archived article to published and stamps
// published_at. Publishing an already published article is a conflict.
func (s *NewsService) Publish(ctx context.Context, id int64) (*models.NewsArticle, error) {
	article, err := s.newsRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if article.Status == models.NewsStatusPublished {
		return nil, apperrors.ErrAlreadyPublished
	}

	now := time.Now()
	article.Status = models.NewsStatusPublished
	article.PublishedAt = &now

	if err := s.newsRepo.Update(ctx, article); err != nil {
		return nil, err
	}

	logger.Info().Int64("article_id", id).Msg("News article published")

	return article, nil
}

// Unpublish moves an article back to draft. published_at is retained as a
// record of the first publication.
func (s *NewsService) Unpublish(ctx context.Context, id int64) (*models.NewsArticle, error) {
	article, err := s.newsRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	article.Status = models.NewsStatusDraft

	if err := s.newsRepo.Update(ctx, article); err != nil {
		return nil, err
	}

	return article, nil
}

// Archive retires an article. Archived articles disappear from public
// listings but stay addressable for moderators.
func (s *NewsService) Archive(ctx context.Context, id int64) (*models.NewsArticle, error) {
	article, err := s.newsRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	article.Status = models.NewsStatusArchived

	if err := s.newsRepo.Update(ctx, article); err != nil {
		return nil, err
	}

	logger.Info().Int64("article_id", id).Msg("News article archived")

	return article, nil
}

// Drafts lists unpublished articles for the newsroom
func (s *NewsService) Drafts(ctx context.Context, limit, offset int) ([]models.NewsArticle, int64, error) {
	status := models.NewsStatusDraft
	filter := repositories.NewsFilter{Status: &status}
	return s.newsRepo.List(ctx, filter, limit, offset)
}

// Delete removes an article entirely
func (s *NewsService) Delete(ctx context.Context, id int64) error {
	return s.newsRepo.Delete(ctx, id)
}

// Categories lists the valid news categories as value/label pairs
func (s *NewsService) Categories() []dto.CategoryOption {
	options := make([]dto.CategoryOption, 0, len(models.NewsCategories))
	for _, c := range models.NewsCategories {
		options = append(options, dto.CategoryOption{
			Value: string(c),
			Label: enumLabel(string(c)),
		})
	}
	return options
}

// Stats assembles the news statistics
func (s *NewsService) Stats(ctx context.Context) (*dto.NewsStats, error) {
	byStatus, byCategory, totalViews, err := s.newsRepo.Stats(ctx)
	if err != nil {
		return nil, err
	}

	stats := &dto.NewsStats{
		TotalArticles: byStatus[models.NewsStatusPublished],
		DraftArticles: byStatus[models.NewsStatusDraft],
		TotalViews:    totalViews,
	}
	for _, c := range models.NewsCategories {
		if count, ok := byCategory[c]; ok {
			stats.CategoryBreakdown = append(stats.CategoryBreakdown, dto.CategoryCount{
				Category: string(c),
				Count:    count,
			})
		}
	}

	return stats, nil
}
