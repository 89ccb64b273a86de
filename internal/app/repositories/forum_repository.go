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

var forumTopicColumns = []string{
	"id", "title", "content", "is_pinned", "is_locked",
	"created_at", "updated_at", "last_post_at",
	"category_id", "author_id", "views", "reply_count",
}

// ForumRepository handles database operations for forum categories, topics
// and posts.
type ForumRepository struct {
	db *db.PostgresDB
}

// NewForumRepository creates a new ForumRepository
func NewForumRepository(db *db.PostgresDB) *ForumRepository {
	return &ForumRepository{db: db}
}

// CreateCategory inserts a new forum category
func (r *ForumRepository) CreateCategory(ctx context.Context, category *models.ForumCategory) (int64, error) {
	query := squirrel.Insert("forum_categories").
		Columns("name", "description", "icon").
		Values(category.Name, category.Description, category.Icon).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var id int64
	if err := r.db.Pool.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "forum_categories_name_key") {
			return 0, apperrors.NewConflictError("category name already in use")
		}
		return 0, fmt.Errorf("error executing query: %w", err)
	}

	return id, nil
}

// ListCategories returns every category ordered by name
func (r *ForumRepository) ListCategories(ctx context.Context) ([]models.ForumCategory, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT id, name, description, icon, created_at, topic_count, post_count
		FROM forum_categories
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	categories := []models.ForumCategory{}
	for rows.Next() {
		var category models.ForumCategory
		err := rows.Scan(
			&category.ID,
			&category.Name,
			&category.Description,
			&category.Icon,
			&category.CreatedAt,
			&category.TopicCount,
			&category.PostCount,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return categories, nil
}

// GetCategoryByID retrieves a single category
func (r *ForumRepository) GetCategoryByID(ctx context.Context, id int64) (*models.ForumCategory, error) {
	var category models.ForumCategory
	err := r.db.Pool.QueryRow(ctx, `
		SELECT id, name, description, icon, created_at, topic_count, post_count
		FROM forum_categories
		WHERE id = $1
	`, id).Scan(
		&category.ID,
		&category.Name,
		&category.Description,
		&category.Icon,
		&category.CreatedAt,
		&category.TopicCount,
		&category.PostCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &category, nil
}

func scanForumTopic(row pgx.Row) (*models.ForumTopic, error) {
	var topic models.ForumTopic
	err := row.Scan(
		&topic.ID,
		&topic.Title,
		&topic.Content,
		&topic.IsPinned,
		&topic.IsLocked,
		&topic.CreatedAt,
		&topic.UpdatedAt,
		&topic.LastPostAt,
		&topic.CategoryID,
		&topic.AuthorID,
		&topic.Views,
		&topic.ReplyCount,
	)
	if err != nil {
		return nil, err
	}
	return &topic, nil
}

// CreateTopic inserts a topic and maintains the dependent counters in the
// same transaction: the category's topic_count and post_count (the opening
// message counts as a post) and the author's forum_posts_count.
func (r *ForumRepository) CreateTopic(ctx context.Context, topic *models.ForumTopic) (int64, error) {
	var id int64

	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		insert := squirrel.Insert("forum_topics").
			Columns("title", "content", "category_id", "author_id", "last_post_at").
			Values(topic.Title, topic.Content, topic.CategoryID, topic.AuthorID, squirrel.Expr("NOW()")).
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
			`UPDATE forum_categories SET topic_count = topic_count + 1, post_count = post_count + 1 WHERE id = $1`,
			topic.CategoryID)
		if err != nil {
			return fmt.Errorf("error updating category counter: %w", err)
		}
		if result.RowsAffected() == 0 {
			return apperrors.ErrCategoryNotFound
		}

		if _, err := tx.Exec(ctx,
			`UPDATE users SET forum_posts_count = forum_posts_count + 1 WHERE id = $1`,
			topic.AuthorID); err != nil {
			return fmt.Errorf("error updating author counter: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

// GetTopicByID retrieves a topic
func (r *ForumRepository) GetTopicByID(ctx context.Context, id int64) (*models.ForumTopic, error) {
	query := squirrel.Select(forumTopicColumns...).
		From("forum_topics").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	topic, err := scanForumTopic(r.db.Pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTopicNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return topic, nil
}

// ListTopics retrieves topics, pinned first then most recent activity.
// Category and title search filters are optional.
func (r *ForumRepository) ListTopics(ctx context.Context, categoryID *int64, search string, limit, offset int) ([]models.ForumTopic, int64, error) {
	base := squirrel.Select().
		From("forum_topics").
		PlaceholderFormat(squirrel.Dollar)

	if categoryID != nil {
		base = base.Where(squirrel.Eq{"category_id": *categoryID})
	}
	if search != "" {
		base = base.Where(squirrel.ILike{"title": "%" + search + "%"})
	}

	countSQL, countArgs, err := base.Columns("COUNT(*)").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	var total int64
	if err := r.db.Pool.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error executing query: %w", err)
	}

	sql, args, err := base.Columns(forumTopicColumns...).
		OrderBy("is_pinned DESC", "last_post_at DESC").
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

	topics := []models.ForumTopic{}
	for rows.Next() {
		topic, err := scanForumTopic(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		topics = append(topics, *topic)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating rows: %w", err)
	}

	return topics, total, nil
}

// IncrementTopicViews bumps a topic's view counter
func (r *ForumRepository) IncrementTopicViews(ctx context.Context, id int64) error {
	result, err := r.db.Pool.Exec(ctx,
		`UPDATE forum_topics SET views = views + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrTopicNotFound
	}
	return nil
}

// SetTopicPinned pins or unpins a topic
func (r *ForumRepository) SetTopicPinned(ctx context.Context, id int64, pinned bool) error {
	return r.setTopicFlag(ctx, id, "is_pinned", pinned)
}

// SetTopicLocked locks or unlocks a topic
func (r *ForumRepository) SetTopicLocked(ctx context.Context, id int64, locked bool) error {
	return r.setTopicFlag(ctx, id, "is_locked", locked)
}

func (r *ForumRepository) setTopicFlag(ctx context.Context, id int64, column string, value bool) error {
	sql := fmt.Sprintf(`UPDATE forum_topics SET %s = $1, updated_at = NOW() WHERE id = $2`, column)

	result, err := r.db.Pool.Exec(ctx, sql, value, id)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrTopicNotFound
	}
	return nil
}

// ListPosts retrieves a topic's posts oldest first
func (r *ForumRepository) ListPosts(ctx context.Context, topicID int64, limit, offset int) ([]models.ForumPost, int64, error) {
	var total int64
	if err := r.db.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM forum_posts WHERE topic_id = $1`, topicID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error executing query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, `
		SELECT id, content, created_at, updated_at, topic_id, author_id
		FROM forum_posts
		WHERE topic_id = $1
		ORDER BY created_at
		LIMIT $2 OFFSET $3
	`, topicID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	posts := []models.ForumPost{}
	for rows.Next() {
		var post models.ForumPost
		err := rows.Scan(
			&post.ID,
			&post.Content,
			&post.CreatedAt,
			&post.UpdatedAt,
			&post.TopicID,
			&post.AuthorID,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating rows: %w", err)
	}

	return posts, total, nil
}

// CreatePost inserts a reply and maintains every denormalized counter that
// depends on it: the topic's reply_count and last_post_at, the category's
// post_count and the author's forum_posts_count, all in one transaction.
func (r *ForumRepository) CreatePost(ctx context.Context, post *models.ForumPost, categoryID int64) (int64, error) {
	var id int64

	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		insert := squirrel.Insert("forum_posts").
			Columns("content", "topic_id", "author_id").
			Values(post.Content, post.TopicID, post.AuthorID).
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
			`UPDATE forum_topics SET reply_count = reply_count + 1, last_post_at = NOW() WHERE id = $1`,
			post.TopicID)
		if err != nil {
			return fmt.Errorf("error updating topic counter: %w", err)
		}
		if result.RowsAffected() == 0 {
			return apperrors.ErrTopicNotFound
		}

		if _, err := tx.Exec(ctx,
			`UPDATE forum_categories SET post_count = post_count + 1 WHERE id = $1`,
			categoryID); err != nil {
			return fmt.Errorf("error updating category counter: %w", err)
		}

		if _, err := tx.Exec(ctx,
			`UPDATE users SET forum_posts_count = forum_posts_count + 1 WHERE id = $1`,
			post.AuthorID); err != nil {
			return fmt.Errorf("error updating author counter: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

// CountTopics returns the total number of topics
func (r *ForumRepository) CountTopics(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM forum_topics`).Scan(&total); err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}
	return total, nil
}

// CountPosts returns the total number of posts
func (r *ForumRepository) CountPosts(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM forum_posts`).Scan(&total); err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}
	return total, nil
}
