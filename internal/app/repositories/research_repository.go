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
)

var researchColumns = []string{
	"id", "title", "abstract", "keywords", "category", "status",
	"filename", "file_path", "file_size",
	"created_at", "updated_at", "published_at",
	"author_id", "views", "downloads", "likes",
	"reviewer_comments", "reviewed_by", "reviewed_at",
}

// ResearchFilter narrows paper listings. Sort accepts newest, oldest,
// most_viewed or most_liked; anything else falls back to newest.
type ResearchFilter struct {
	Status   *models.ResearchStatus
	Category *models.ResearchCategory
	AuthorID *int64
	Search   string
	Sort     string
}

func researchOrderBy(sort string) string {
	switch sort {
	case "oldest":
		return "created_at ASC"
	case "most_viewed":
		return "views DESC"
	case "most_liked":
		return "likes DESC"
	default:
		return "created_at DESC"
	}
}

// ResearchRepository handles database operations for research papers
type ResearchRepository struct {
	db *db.PostgresDB
}

// NewResearchRepository creates a new ResearchRepository
func NewResearchRepository(db *db.PostgresDB) *ResearchRepository {
	return &ResearchRepository{db: db}
}

func scanResearchPaper(row pgx.Row) (*models.ResearchPaper, error) {
	var paper models.ResearchPaper
	err := row.Scan(
		&paper.ID,
		&paper.Title,
		&paper.Abstract,
		&paper.Keywords,
		&paper.Category,
		&paper.Status,
		&paper.Filename,
		&paper.FilePath,
		&paper.FileSize,
		&paper.CreatedAt,
		&paper.UpdatedAt,
		&paper.PublishedAt,
		&paper.AuthorID,
		&paper.Views,
		&paper.Downloads,
		&paper.Likes,
		&paper.ReviewerComments,
		&paper.ReviewedBy,
		&paper.ReviewedAt,
	)
	if err != nil {
		return nil, err
	}
	return &paper, nil
}

// Create inserts a paper and bumps the author's research_count in the same
// transaction.
func (r *ResearchRepository) Create(ctx context.Context, paper *models.ResearchPaper) (int64, error) {
	var id int64

	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		insert := squirrel.Insert("research_papers").
			Columns("title", "abstract", "keywords", "category", "status",
				"filename", "file_path", "file_size", "author_id").
			Values(paper.Title, paper.Abstract, paper.Keywords, paper.Category, paper.Status,
				paper.Filename, paper.FilePath, paper.FileSize, paper.AuthorID).
			Suffix("RETURNING id").
			PlaceholderFormat(squirrel.Dollar)

		sql, args, err := insert.ToSql()
		if err != nil {
			return fmt.Errorf("error building SQL: %w", err)
		}
		if err := tx.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
			return fmt.Errorf("error executing query: %w", err)
		}

		result, err := tx.Exec(ctx,
			`UPDATE users SET research_count = research_count + 1 WHERE id = $1`,
			paper.AuthorID)
		if err != nil {
			return fmt.Errorf("error updating author counter: %w", err)
		}
		if result.RowsAffected() == 0 {
			return apperrors.ErrUserNotFound
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

// GetByID retrieves a paper by ID
func (r *ResearchRepository) GetByID(ctx context.Context, id int64) (*models.ResearchPaper, error) {
	query := squirrel.Select(researchColumns...).
		From("research_papers").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	paper, err := scanResearchPaper(r.db.Pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPaperNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return paper, nil
}

// List retrieves papers matching the filter, newest first
func (r *ResearchRepository) List(ctx context.Context, filter ResearchFilter, limit, offset int) ([]models.ResearchPaper, int64, error) {
	base := squirrel.Select().From("research_papers").PlaceholderFormat(squirrel.Dollar)

	if filter.Status != nil {
		base = base.Where(squirrel.Eq{"status": *filter.Status})
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
			squirrel.ILike{"abstract": pattern},
			squirrel.ILike{"keywords": pattern},
		})
	}

	total, err := r.count(ctx, base)
	if err != nil {
		return nil, 0, err
	}

	sql, args, err := base.Columns(researchColumns...).
		OrderBy(researchOrderBy(filter.Sort)).
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

	papers := []models.ResearchPaper{}
	for rows.Next() {
		paper, err := scanResearchPaper(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		papers = append(papers, *paper)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating rows: %w", err)
	}

	return papers, total, nil
}

func (r *ResearchRepository) count(ctx context.Context, base squirrel.SelectBuilder) (int64, error) {
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

// UpdateReview applies a moderation decision. PublishedAt is set only when
// the paper reaches approved.
func (r *ResearchRepository) UpdateReview(ctx context.Context, paper *models.ResearchPaper) error {
	query := squirrel.Update("research_papers").
		Set("status", paper.Status).
		Set("reviewer_comments", paper.ReviewerComments).
		Set("reviewed_by", paper.ReviewedBy).
		Set("reviewed_at", paper.ReviewedAt).
		Set("published_at", paper.PublishedAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": paper.ID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	result, err := r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrPaperNotFound
	}

	return nil
}

// IncrementViews bumps the view counter
func (r *ResearchRepository) IncrementViews(ctx context.Context, id int64) error {
	return r.increment(ctx, id, "views")
}

// IncrementDownloads bumps the download counter
func (r *ResearchRepository) IncrementDownloads(ctx context.Context, id int64) error {
	return r.increment(ctx, id, "downloads")
}

// IncrementLikes bumps the like counter
func (r *ResearchRepository) IncrementLikes(ctx context.Context, id int64) error {
	return r.increment(ctx, id, "likes")
}

func (r *ResearchRepository) increment(ctx context.Context, id int64, column string) error {
	sql := fmt.Sprintf(`UPDATE research_papers SET %s = %s + 1 WHERE id = $1`, column, column)

	result, err := r.db.Pool.Exec(ctx, sql, id)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrPaperNotFound
	}
	return nil
}

// ResearchAggregates carries the raw numbers behind the research stats
// endpoint.
type ResearchAggregates struct {
	ByStatus       map[models.ResearchStatus]int64
	ByCategory     map[models.ResearchCategory]int64
	TotalDownloads int64
	TotalViews     int64
}

// Stats aggregates paper counts by status, approved papers by category and
// the overall download and view totals.
func (r *ResearchRepository) Stats(ctx context.Context) (*ResearchAggregates, error) {
	agg := &ResearchAggregates{
		ByStatus:   map[models.ResearchStatus]int64{},
		ByCategory: map[models.ResearchCategory]int64{},
	}

	rows, err := r.db.Pool.Query(ctx, `SELECT status, COUNT(*) FROM research_papers GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var status models.ResearchStatus
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		agg.ByStatus[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	catRows, err := r.db.Pool.Query(ctx,
		`SELECT category, COUNT(*) FROM research_papers WHERE status = $1 GROUP BY category`,
		models.ResearchStatusApproved)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer catRows.Close()

	for catRows.Next() {
		var category models.ResearchCategory
		var count int64
		if err := catRows.Scan(&category, &count); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		agg.ByCategory[category] = count
	}
	if err := catRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	if err := r.db.Pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(downloads), 0), COALESCE(SUM(views), 0) FROM research_papers`).
		Scan(&agg.TotalDownloads, &agg.TotalViews); err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return agg, nil
}
