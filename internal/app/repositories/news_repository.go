package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/motorlab/apexhub/internal/app/models"
	"github.com/motorlab/apexhub/internal/db"
	"github.com/motorlab/apexhub/internal/pkg/apperrors"
	"github.com/motorlab/apexhub/internal/pkg/dberrors"
)

var newsColumns = []string{
	"id", "title", "content", "excerpt", "category", "status",
	"slug", "meta_description", "featured_image", "featured_image_alt",
	"created_at", "updated_at", "published_at",
	"author_id", "views", "tags",
}

// NewsFilter narrows article listings. Sort accepts newest, oldest or
// most_viewed; anything else falls back to newest.
type NewsFilter struct {
	Status   *models.NewsStatus
	Category *models.NewsCategory
	AuthorID *int64
	Search   string
	Sort     string
}

// NewsRepository handles database operations for news articles
type NewsRepository struct {
	db *db.PostgresDB
}

// NewNewsRepository creates a new NewsRepository
func NewNewsRepository(db *db.PostgresDB) *NewsRepository {
	return &NewsRepository{db: db}
}

func scanNewsArticle(row pgx.Row) (*models.NewsArticle, error) {
	var article models.NewsArticle
	err := row.Scan(
		&article.ID,
		&article.Title,
		&article.Content,
		&article.Excerpt,
		&article.Category,
		&article.Status,
		&article.Slug,
		&article.MetaDescription,
		&article.FeaturedImage,
		&article.FeaturedImageAlt,
		&article.CreatedAt,
		&article.UpdatedAt,
		&article.PublishedAt,
		&article.AuthorID,
		&article.Views,
		&article.Tags,
	)
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// Create inserts a new article and returns its ID
func (r *NewsRepository) Create(ctx context.Context, article *models.NewsArticle) (int64, error) {
	query := squirrel.Insert("news_articles").
		Columns("title", "content", "excerpt", "category", "status", "slug",
			"meta_description", "featured_image", "featured_image_alt", "author_id", "tags").
		Values(article.Title, article.Content, article.Excerpt, article.Category, article.Status,
			article.Slug, article.MetaDescription, article.FeaturedImage, article.FeaturedImageAlt,
			article.AuthorID, article.Tags).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var id int64
	if err := r.db.Pool.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "news_articles_slug_key") {
			return 0, apperrors.NewConflictError("slug already in use")
		}
		return 0, fmt.Errorf("error executing query: %w", err)
	}

	return id, nil
}

// GetByID retrieves an article by ID
func (r *NewsRepository) GetByID(ctx context.Context, id int64) (*models.NewsArticle, error) {
	return r.getWhere(ctx, squirrel.Eq{"id": id})
}

// GetBySlug retrieves an article by its slug
func (r *NewsRepository) GetBySlug(ctx context.Context, slug string) (*models.NewsArticle, error) {
	return r.getWhere(ctx, squirrel.Eq{"slug": slug})
}

func (r *NewsRepository) getWhere(ctx context.Context, pred interface{}) (*models.NewsArticle, error) {
	query := squirrel.Select(newsColumns...).
		From("news_articles").
		Where(pred).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	article, err := scanNewsArticle(r.db.Pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrArticleNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return article, nil
}

// SlugExists reports whether another article already uses the slug.
// excludeID leaves one article out of the check so a retitle can keep its
// own slug; pass 0 to check against every row.
func (r *NewsRepository) SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.Pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM news_articles WHERE slug = $1 AND id != $2)`,
		slug, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error executing query: %w", err)
	}
	return exists, nil
}

// List retrieves articles matching the filter. Published listings order by
// published_at, everything else by created_at.
func (r *NewsRepository) List(ctx context.Context, filter NewsFilter, limit, offset int) ([]models.NewsArticle, int64, error) {
	base := squirrel.Select().From("news_articles").PlaceholderFormat(squirrel.Dollar)

	timeColumn := "created_at"
	if filter.Status != nil {
		base = base.Where(squirrel.Eq{"status": *filter.Status})
		if *filter.Status == models.NewsStatusPublished {
			timeColumn = "published_at"
		}
	}

	orderBy := timeColumn + " DESC"
	switch filter.Sort {
	case "oldest":
		orderBy = timeColumn + " ASC"
	case "most_viewed":
		orderBy = "views DESC"
	}
	if filter.Category != nil {
		base = base.Where(squirrel.Eq{"category": *filter.Category})
	}
	if filter.AuthorID != nil {
		base = base.Where(squirrel.Eq{"author_id": *filter.AuthorID})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		base = base.Where(squirrel.Or{
			squirrel.ILike{"title": pattern},
			squirrel.ILike{"excerpt": pattern},
			squirrel.ILike{"tags": pattern},
		})
	}

	total, err := r.count(ctx, base)
	if err != nil {
		return nil, 0, err
	}

	sql, args, err := base.Columns(newsColumns...).
		OrderBy(orderBy).
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	articles := []models.NewsArticle{}
	for rows.Next() {
		article, err := scanNewsArticle(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		articles = append(articles, *article)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating rows: %w", err)
	}

	return articles, total, nil
}

func (r *NewsRepository) count(ctx context.Context, base squirrel.SelectBuilder) (int64, error) {
	sql, args, err := base.Columns("COUNT(*)").ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var total int64
	if err := r.db.Pool.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}
	return total, nil
}

// Latest returns the newest published articles
func (r *NewsRepository) Latest(ctx context.Context, limit int) ([]models.NewsArticle, error) {
	status := models.NewsStatusPublished
	articles, _, err := r.List(ctx, NewsFilter{Status: &status}, limit, 0)
	return articles, err
}

// Update rewrites an article's editable fields, slug and status included
func (r *NewsRepository) Update(ctx context.Context, article *models.NewsArticle) error {
	query := squirrel.Update("news_articles").
		Set("title", article.Title).
		Set("content", article.Content).
		Set("excerpt", article.Excerpt).
		Set("category", article.Category).
		Set("status", article.Status).
		Set("slug", article.Slug).
		Set("meta_description", article.MetaDescription).
		Set("featured_image", article.FeaturedImage).
		Set("featured_image_alt", article.FeaturedImageAlt).
		Set("tags", article.Tags).
		Set("published_at", article.PublishedAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": article.ID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	result, err := r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "news_articles_slug_key") {
			return apperrors.NewConflictError("slug already in use")
		}
		return fmt.Errorf("error executing query: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrArticleNotFound
	}

	return nil
}

// Delete removes an article
func (r *NewsRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Pool.Exec(ctx, `DELETE FROM news_articles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrArticleNotFound
	}
	return nil
}

// IncrementViews bumps the view counter
func (r *NewsRepository) IncrementViews(ctx context.Context, id int64) error {
	result, err := r.db.Pool.Exec(ctx,
		`UPDATE news_articles SET views = views + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrArticleNotFound
	}
	return nil
}

// Stats aggregates article counts by status, published articles by category,
// and the total view count.
func (r *NewsRepository) Stats(ctx context.Context) (map[models.NewsStatus]int64, map[models.NewsCategory]int64, int64, error) {
	byStatus := map[models.NewsStatus]int64{}

	rows, err := r.db.Pool.Query(ctx, `SELECT status, COUNT(*) FROM news_articles GROUP BY status`)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var status models.NewsStatus
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		byStatus[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, nil, 0, fmt.Errorf("error iterating rows: %w", err)
	}

	catRows, err := r.db.Pool.Query(ctx,
		`SELECT category, COUNT(*) FROM news_articles WHERE status = $1 GROUP BY category`,
		models.NewsStatusPublished)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("error executing query: %w", err)
	}
	defer catRows.Close()

	byCategory := map[models.NewsCategory]int64{}
	for catRows.Next() {
		var category models.NewsCategory
		var count int64
		if err := catRows.Scan(&category, &count); err != nil {
			return nil, nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		byCategory[category] = count
	}
	if err := catRows.Err(); err != nil {
		return nil, nil, 0, fmt.Errorf("error iterating rows: %w", err)
	}

	var totalViews int64
	if err := r.db.Pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(views), 0) FROM news_articles`).Scan(&totalViews); err != nil {
		return nil, nil, 0, fmt.Errorf("error executing query: %w", err)
	}

	return byStatus, byCategory, totalViews, nil
}
