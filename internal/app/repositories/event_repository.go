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

var eventColumns = []string{
	"id", "title", "description", "event_type",
	"start_time", "end_time", "timezone", "location", "max_attendees",
	"created_at", "updated_at", "organizer_id", "attendee_count",
}

// EventRepository handles database operations for community events
type EventRepository struct {
	db *db.PostgresDB
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *db.PostgresDB) *EventRepository {
	return &EventRepository{db: db}
}

func scanEvent(row pgx.Row) (*models.CommunityEvent, error) {
	var event models.CommunityEvent
	err := row.Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.EventType,
		&event.StartTime,
		&event.EndTime,
		&event.Timezone,
		&event.Location,
		&event.MaxAttendees,
		&event.CreatedAt,
		&event.UpdatedAt,
		&event.OrganizerID,
		&event.AttendeeCount,
	)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// Create inserts a new event and returns its ID
func (r *EventRepository) Create(ctx context.Context, event *models.CommunityEvent) (int64, error) {
	query := squirrel.Insert("community_events").
		Columns("title", "description", "event_type", "start_time", "end_time",
			"timezone", "location", "max_attendees", "organizer_id").
		Values(event.Title, event.Description, event.EventType, event.StartTime, event.EndTime,
			event.Timezone, event.Location, event.MaxAttendees, event.OrganizerID).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var id int64
	if err := r.db.Pool.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}

	return id, nil
}

// GetByID retrieves an event by ID
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*models.CommunityEvent, error) {
	query := squirrel.Select(eventColumns...).
		From("community_events").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	event, err := scanEvent(r.db.Pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return event, nil
}

// List retrieves events. With upcomingOnly set, past events are skipped and
// ordering flips to soonest first.
func (r *EventRepository) List(ctx context.Context, upcomingOnly bool, eventType *models.EventType, limit, offset int) ([]models.CommunityEvent, int64, error) {
	base := squirrel.Select().From("community_events").PlaceholderFormat(squirrel.Dollar)

	orderBy := "start_time DESC"
	if upcomingOnly {
		base = base.Where(squirrel.Expr("start_time >= NOW()"))
		orderBy = "start_time ASC"
	}
	if eventType != nil {
		base = base.Where(squirrel.Eq{"event_type": *eventType})
	}

	countSQL, countArgs, err := base.Columns("COUNT(*)").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	var total int64
	if err := r.db.Pool.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error executing query: %w", err)
	}

	sql, args, err := base.Columns(eventColumns...).
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

	events := []models.CommunityEvent{}
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		events = append(events, *event)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating rows: %w", err)
	}

	return events, total, nil
}

// AddAttendee registers a user for an event and bumps attendee_count in the
// same transaction. The capacity check runs against a locked event row so
// concurrent registrations cannot overshoot max_attendees.
func (r *EventRepository) AddAttendee(ctx context.Context, eventID, userID int64) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var attendeeCount int
		var maxAttendees *int
		err := tx.QueryRow(ctx,
			`SELECT attendee_count, max_attendees FROM community_events WHERE id = $1 FOR UPDATE`,
			eventID).Scan(&attendeeCount, &maxAttendees)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrEventNotFound
			}
			return fmt.Errorf("error executing query: %w", err)
		}

		if maxAttendees != nil && attendeeCount >= *maxAttendees {
			return apperrors.ErrEventFull
		}

		if _, err := tx.Exec(ctx,
			`INSERT INTO event_attendees (user_id, event_id) VALUES ($1, $2)`,
			userID, eventID); err != nil {
			if dberrors.IsUniqueViolation(err) {
				return apperrors.ErrAlreadyAttending
			}
			return fmt.Errorf("error inserting attendance: %w", err)
		}

		if _, err := tx.Exec(ctx,
			`UPDATE community_events SET attendee_count = attendee_count + 1 WHERE id = $1`,
			eventID); err != nil {
			return fmt.Errorf("error updating attendee counter: %w", err)
		}

		return nil
	})
}

// IsAttending reports whether the user is already registered
func (r *EventRepository) IsAttending(ctx context.Context, eventID, userID int64) (bool, error) {
	var exists bool
	err := r.db.Pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM event_attendees WHERE event_id = $1 AND user_id = $2)`,
		eventID, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error executing query: %w", err)
	}
	return exists, nil
}

// CountUpcoming returns the number of events that have not started yet
func (r *EventRepository) CountUpcoming(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM community_events WHERE start_time >= NOW()`).Scan(&total); err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}
	return total, nil
}
