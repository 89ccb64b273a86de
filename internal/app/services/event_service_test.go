package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/motorlab/apexhub/internal/app/models"
	"github.com/motorlab/apexhub/internal/app/models/dto"
	"github.com/motorlab/apexhub/internal/pkg/apperrors"
)

func validEventRequest() dto.CreateEventRequest {
	return dto.CreateEventRequest{
		Title:       "Silverstone Watch Party",
		Description: "Big screen, timing feeds, pizza.",
		EventType:   "watch_party",
		StartTime:   time.Now().Add(48 * time.Hour).Format(time.RFC3339),
	}
}

func TestCreateEventValidation(t *testing.T) {
	svc := NewEventService(new(mockEventRepo))

	negative := -1
	tests := []struct {
		name   string
		mutate func(*dto.CreateEventRequest)
	}{
		{"short title", func(r *dto.CreateEventRequest) { r.Title = "Sil" }},
		{"bad type", func(r *dto.CreateEventRequest) { r.EventType = "karaoke" }},
		{"bad start time", func(r *dto.CreateEventRequest) { r.StartTime = "next tuesday" }},
		{"past start time", func(r *dto.CreateEventRequest) {
			r.StartTime = time.Now().Add(-time.Hour).Format(time.RFC3339)
		}},
		{"end before start", func(r *dto.CreateEventRequest) {
			r.EndTime = time.Now().Add(24 * time.Hour).Format(time.RFC3339)
		}},
		{"bad capacity", func(r *dto.CreateEventRequest) { r.MaxAttendees = &negative }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validEventRequest()
			tt.mutate(&req)
			_, err := svc.Create(context.Background(), 7, &req)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		})
	}
}

func TestCreateEventDefaultsTimezone(t *testing.T) {
	repo := new(mockEventRepo)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(e *models.CommunityEvent) bool {
		return e.Timezone == "UTC" && e.OrganizerID == 7 && e.EventType == models.EventTypeWatchParty
	})).Return(int64(6), nil)
	repo.On("GetByID", mock.Anything, int64(6)).
		Return(&models.CommunityEvent{ID: 6, Timezone: "UTC"}, nil)

	svc := NewEventService(repo)

	req := validEventRequest()
	event, err := svc.Create(context.Background(), 7, &req)
	require.NoError(t, err)
	assert.Equal(t, int64(6), event.ID)
	repo.AssertExpectations(t)
}

func TestListRejectsUnknownEventType(t *testing.T) {
	svc := NewEventService(new(mockEventRepo))

	_, _, err := svc.List(context.Background(), "karaoke", 20, 0)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestAttendFullEventIsValidationError(t *testing.T) {
	repo := new(mockEventRepo)
	repo.On("IsAttending", mock.Anything, int64(6), int64(7)).Return(false, nil)
	repo.On("AddAttendee", mock.Anything, int64(6), int64(7)).Return(apperrors.ErrEventFull)

	svc := NewEventService(repo)

	err := svc.Attend(context.Background(), 6, 7)
	assert.ErrorIs(t, err, apperrors.ErrEventFull)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestAttendTwiceConflicts(t *testing.T) {
	repo := new(mockEventRepo)
	repo.On("IsAttending", mock.Anything, int64(6), int64(7)).Return(true, nil)

	svc := NewEventService(repo)

	err := svc.Attend(context.Background(), 6, 7)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyAttending)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	repo.AssertNotCalled(t, "AddAttendee", mock.Anything, mock.Anything, mock.Anything)
}
