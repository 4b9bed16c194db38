package models

import "time"

// TimeSlot is a candidate appointment interval on a given date. Slots are
// query-scoped values: recomputed on every availability check, never cached.
type TimeSlot struct {
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	Available   bool      `json:"available"`
	IsEmergency bool      `json:"isEmergency"`

	// FreeStaff lists staff with no conflicting booking for this interval.
	// Internal to the engine; not exposed on the wire.
	FreeStaff []string `json:"-"`
}

// Overlaps applies half-open interval semantics: [a1, a2) intersects [b1, b2)
// iff a1 < b2 && a2 > b1. Touching endpoints do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// AvailabilityQuery asks for bookable slots for one service on one date.
type AvailabilityQuery struct {
	ServiceID       string `json:"serviceId"`
	Date            string `json:"date"` // YYYY-MM-DD
	IsEmergency     bool   `json:"isEmergency"`
	DurationMinutes int    `json:"durationMinutes,omitempty"` // 0 = service default
}

// NextAvailable points at the first free slot after a fully booked or
// non-working date.
type NextAvailable struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// AvailabilityResponse echoes the queried date with the computed slot grid.
type AvailabilityResponse struct {
	Date            string         `json:"date"`
	Slots           []TimeSlot     `json:"slots"`
	StaffConsidered []string       `json:"staffConsidered"`
	NextAvailable   *NextAvailable `json:"nextAvailable,omitempty"`
}
