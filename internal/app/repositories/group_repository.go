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

var groupColumns = []string{
	"id", "name", "description", "avatar", "is_public",
	"created_at", "creator_id", "member_count", "discussion_count",
}

// GroupRepository handles database operations for interest groups
type GroupRepository struct {
	db *db.PostgresDB
}

// NewGroupRepository creates a new GroupRepository
func NewGroupRepository(db *db.PostgresDB) *GroupRepository {
	return &GroupRepository{db: db}
}

func scanGroup(row pgx.Row) (*models.InterestGroup, error) {
	var group models.InterestGroup
	err := row.Scan(
		&group.ID,
		&group.Name,
		&group.Description,
		&group.Avatar,
		&group.IsPublic,
		&group.CreatedAt,
		&group.CreatorID,
		&group.MemberCount,
		&group.DiscussionCount,
	)
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// Create inserts a group with the creator as its first member. member_count
// starts at 1 in the same transaction.
func (r *GroupRepository) Create(ctx context.Context, group *models.InterestGroup) (int64, error) {
	var id int64

	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		insert := squirrel.Insert("interest_groups").
			Columns("name", "description", "avatar", "is_public", "creator_id", "member_count").
			Values(group.Name, group.Description, group.Avatar, group.IsPublic, group.CreatorID, 1).
			Suffix("RETURNING id").
			PlaceholderFormat(squirrel.Dollar)

		sql, args, err := insert.ToSql()
		if err != nil {
			return fmt.Errorf("error building SQL: %w", err)
		}
		if err := tx.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
			if dberrors.IsDuplicateConstraintError(err, "interest_groups_name_key") {
				return apperrors.NewConflictError("group name already in use")
			}
			return fmt.Errorf("error executing query: %w", err)
		}

		if _, err := tx.Exec(ctx,
			`INSERT INTO group_memberships (user_id, group_id) VALUES ($1, $2)`,
			group.CreatorID, id); err != nil {
			return fmt.Errorf("error inserting creator membership: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

// GetByID retrieves a group by ID
func (r *GroupRepository) GetByID(ctx context.Context, id int64) (*models.InterestGroup, error) {
	query := squirrel.Select(groupColumns...).
		From("interest_groups").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	group, err := scanGroup(r.db.Pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return group, nil
}

// List retrieves public groups with optional name search, most members
// first.
func (r *GroupRepository) List(ctx context.Context, search string, limit, offset int) ([]models.InterestGroup, int64, error) {
	base := squirrel.Select().
		From("interest_groups").
		Where(squirrel.Eq{"is_public": true}).
		PlaceholderFormat(squirrel.Dollar)

	if search != "" {
		pattern := "%" + search + "%"
		base = base.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"description": pattern},
		})
	}

	countSQL, countArgs, err := base.Columns("COUNT(*)").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	var total int64
	if err := r.db.Pool.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error executing query: %w", err)
	}

	sql, args, err := base.Columns(groupColumns...).
		OrderBy("member_count DESC", "created_at DESC").
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

	groups := []models.InterestGroup{}
	for rows.Next() {
		group, err := scanGroup(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		groups = append(groups, *group)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating rows: %w", err)
	}

	return groups, total, nil
}

// IsMember reports whether the user already belongs to the group
func (r *GroupRepository) IsMember(ctx context.Context, groupID, userID int64) (bool, error) {
	var exists bool
	err := r.db.Pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM group_memberships WHERE group_id = $1 AND user_id = $2)`,
		groupID, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error executing query: %w", err)
	}
	return exists, nil
}

// AddMember inserts a membership and bumps member_count in the same
// transaction. A duplicate membership maps to the dedicated conflict error.
func (r *GroupRepository) AddMember(ctx context.Context, groupID, userID int64) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`INSERT INTO group_memberships (user_id, group_id) VALUES ($1, $2)`,
			userID, groupID); err != nil {
			if dberrors.IsUniqueViolation(err) {
				return apperrors.ErrAlreadyMember
			}
			return fmt.Errorf("error inserting membership: %w", err)
		}

		result, err := tx.Exec(ctx,
			`UPDATE interest_groups SET member_count = member_count + 1 WHERE id = $1`,
			groupID)
		if err != nil {
			return fmt.Errorf("error updating member counter: %w", err)
		}
		if result.RowsAffected() == 0 {
			return apperrors.ErrGroupNotFound
		}

		return nil
	})
}

// CountGroups returns the total number of groups
func (r *GroupRepository) CountGroups(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM interest_groups`).Scan(&total); err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}
	return total, nil
}
