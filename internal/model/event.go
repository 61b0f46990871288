package model

import (
	"fmt"
	"time"
)

// EventID uniquely identifies a calendar event
type EventID string

// DateLayout is the calendar-date format used across the document
const DateLayout = "2006-01-02"

// TimeLayout is the wall-clock format for event start/end times
const TimeLayout = "15:04"

// EventParticipant is one row of an event's polymorphic participant list.
// Exactly one of PlayerID or StaffID is set.
type EventParticipant struct {
	PlayerID PlayerID `json:"playerId,omitempty"`
	StaffID  StaffID  `json:"staffId,omitempty"`
}

// Event is a calendar entry (training, match, meeting, ...)
type Event struct {
	ID           EventID            `json:"id"`
	Title        string             `json:"title"`
	Type         string             `json:"type"` // human-readable label, e.g. "Training"
	Date         string             `json:"date"` // YYYY-MM-DD
	StartTime    string             `json:"startTime"`
	EndTime      string             `json:"endTime"`
	Participants []EventParticipant `json:"participants"`
	CreatedAt    time.Time          `json:"createdAt"`
}

// DurationMinutes computes the event length in whole minutes from its start
// and end times. Events with unparseable or inverted times contribute zero.
func (e *Event) DurationMinutes() int {
	start, err := time.Parse(TimeLayout, e.StartTime)
	if err != nil {
		return 0
	}
	end, err := time.Parse(TimeLayout, e.EndTime)
	if err != nil {
		return 0
	}
	minutes := int(end.Sub(start).Minutes())
	if minutes < 0 {
		return 0
	}
	return minutes
}

// FindEvent returns the event with the given id, or nil
func (s *State) FindEvent(id EventID) *Event {
	for i := range s.Events {
		if s.Events[i].ID == id {
			return &s.Events[i]
		}
	}
	return nil
}

// ValidateDate reports whether the given string is a well-formed
// calendar date in the document's date format.
func ValidateDate(date string) error {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}
	return nil
}
