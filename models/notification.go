package models

import "time"

// ReminderIntent is an outbound reminder the engine wants sent. Delivery is
// the dispatcher's problem; the engine only records that the intent was
// emitted.
type ReminderIntent struct {
	ReminderID string    `json:"reminderId"`
	BookingID  string    `json:"bookingId"`
	FireAt     time.Time `json:"fireAt"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
}
