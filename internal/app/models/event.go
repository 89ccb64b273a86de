package models

import "time"

// EventType classifies a community event.
type EventType string

const (
	EventTypeWatchParty   EventType = "watch_party"
	EventTypePresentation EventType = "presentation"
	EventTypeQASession    EventType = "qa_session"
	EventTypeDiscussion   EventType = "discussion"
	EventTypeMeetup       EventType = "meetup"
)

// EventTypes lists every valid event type in a stable order.
var EventTypes = []EventType{
	EventTypeWatchParty,
	EventTypePresentation,
	EventTypeQASession,
	EventTypeDiscussion,
	EventTypeMeetup,
}

// ParseEventType converts a string to an EventType, reporting whether it
// is one of the known types.
func ParseEventType(s string) (EventType, bool) {
	for _, t := range EventTypes {
		if EventType(s) == t {
			return t, true
		}
	}
	return "", false
}

// CommunityEvent defines a community event based on the 'community_events'
// table. AttendeeCount is denormalized against the 'event_attendees' join
// table and capped by MaxAttendees when set.
type CommunityEvent struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	EventType   EventType `json:"eventType" db:"event_type"`

	StartTime    time.Time  `json:"startTime" db:"start_time"`
	EndTime      *time.Time `json:"endTime,omitempty" db:"end_time"`
	Timezone     string     `json:"timezone" db:"timezone"`
	Location     string     `json:"location,omitempty" db:"location"`
	MaxAttendees *int       `json:"maxAttendees,omitempty" db:"max_attendees"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	OrganizerID int64 `json:"organizerId" db:"organizer_id"`
	Organizer   *User `json:"organizer,omitempty"`

	AttendeeCount int `json:"attendeeCount" db:"attendee_count"`
}

// EventAttendance is a row in the 'event_attendees' join table.
type EventAttendance struct {
	UserID       int64     `json:"userId" db:"user_id"`
	EventID      int64     `json:"eventId" db:"event_id"`
	RegisteredAt time.Time `json:"registeredAt" db:"registered_at"`
}
