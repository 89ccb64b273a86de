package services

import (
	"context"
	"strings"
	"time"

	"github.com/motorlab/apexhub/internal/app/models"
	"github.com/motorlab/apexhub/internal/app/models/dto"
	"github.com/motorlab/apexhub/internal/pkg/apperrors"
	"github.com/motorlab/apexhub/internal/pkg/logger"
)

// EventService handles community events and attendance
type EventService struct {
	eventRepo IEventRepository
}

// NewEventService creates a new EventService
func NewEventService(eventRepo IEventRepository) *EventService {
	return &EventService{eventRepo: eventRepo}
}

// List returns upcoming events soonest first, optionally filtered by type
func (s *EventService) List(ctx context.Context, eventTypeName string, limit, offset int) ([]models.CommunityEvent, int64, error) {
	var eventType *models.EventType
	if eventTypeName != "" {
		parsed, ok := models.ParseEventType(eventTypeName)
		if !ok {
			return nil, 0, apperrors.NewValidationError("invalid event type")
		}
		eventType = &parsed
	}

	return s.eventRepo.List(ctx, true, eventType, limit, offset)
}

// Get returns one event
func (s *EventService) Get(ctx context.Context, id int64) (*models.CommunityEvent, error) {
	return s.eventRepo.GetByID(ctx, id)
}

// Create schedules an event. Times are RFC 3339 and the start must be in
// the future.
func (s *EventService) Create(ctx context.Context, organizerID int64, req *dto.CreateEventRequest) (*models.CommunityEvent, error) {
	title := strings.TrimSpace(req.Title)
	if len(title) < 5 {
		return nil, apperrors.NewValidationError("title must be at least 5 characters long")
	}

	eventType, ok := models.ParseEventType(req.EventType)
	if !ok {
		return nil, apperrors.NewValidationError("invalid event type")
	}

	startTime, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		return nil, apperrors.NewValidationError("start_time must be an RFC 3339 timestamp")
	}
	if !startTime.After(time.Now()) {
		return nil, apperrors.NewValidationError("start_time must be in the future")
	}

	var endTime *time.Time
	if req.EndTime != "" {
		parsed, err := time.Parse(time.RFC3339, req.EndTime)
		if err != nil {
			return nil, apperrors.NewValidationError("end_time must be an RFC 3339 timestamp")
		}
		if parsed.Before(startTime) {
			return nil, apperrors.NewValidationError("end_time must not precede start_time")
		}
		endTime = &parsed
	}

	if req.MaxAttendees != nil && *req.MaxAttendees <= 0 {
		return nil, apperrors.NewValidationError("max_attendees must be positive")
	}

	timezone := strings.TrimSpace(req.Timezone)
	if timezone == "" {
		timezone = "UTC"
	}

	event := &models.CommunityEvent{
		Title:        title,
		Description:  strings.TrimSpace(req.Description),
		EventType:    eventType,
		StartTime:    startTime,
		EndTime:      endTime,
		Timezone:     timezone,
		Location:     strings.TrimSpace(req.Location),
		MaxAttendees: req.MaxAttendees,
		OrganizerID:  organizerID,
	}

	id, err := s.eventRepo.Create(ctx, event)
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("event_id", id).Int64("organizer_id", organizerID).Msg("Community event created")

	return s.eventRepo.GetByID(ctx, id)
}

// Attend registers the caller for an event. The registration check here
// is a fast path; capacity and racing duplicates are still enforced
// inside the store transaction.
func (s *EventService) Attend(ctx context.Context, eventID, userID int64) error {
	attending, err := s.eventRepo.IsAttending(ctx, eventID, userID)
	if err != nil {
		return err
	}
	if attending {
		return apperrors.ErrAlreadyAttending
	}
	return s.eventRepo.AddAttendee(ctx, eventID, userID)
}
