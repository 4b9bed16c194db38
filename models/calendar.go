package models

import "time"

// CalendarEvent is the event description emitted to the external calendar
// collaborator. Persisting it to a third-party calendar is not this engine's
// job.
type CalendarEvent struct {
	Title         string    `json:"title"`
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`
	Attendees     []string  `json:"attendees"`
	Description   string    `json:"description,omitempty"`
	IsPrivate     bool      `json:"isPrivate"`
	BookingID     string    `json:"bookingId"`
	StaffMemberID string    `json:"staffMemberId"`
}
