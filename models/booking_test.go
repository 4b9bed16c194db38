package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ts(hour, minute int) time.Time {
	return time.Date(2026, time.September, 9, hour, minute, 0, 0, time.Local)
}

func TestOverlapsHalfOpen(t *testing.T) {
	// Touching endpoints do not overlap.
	assert.False(t, Overlaps(ts(9, 0), ts(10, 0), ts(10, 0), ts(11, 0)))
	assert.False(t, Overlaps(ts(10, 0), ts(11, 0), ts(9, 0), ts(10, 0)))

	assert.True(t, Overlaps(ts(9, 0), ts(10, 1), ts(10, 0), ts(11, 0)))
	assert.True(t, Overlaps(ts(9, 0), ts(12, 0), ts(10, 0), ts(11, 0)))
	assert.True(t, Overlaps(ts(10, 15), ts(10, 30), ts(10, 0), ts(11, 0)))
	assert.False(t, Overlaps(ts(8, 0), ts(9, 0), ts(10, 0), ts(11, 0)))
}

func TestBookingBlocks(t *testing.T) {
	for status, want := range map[BookingStatus]bool{
		StatusPending:   true,
		StatusConfirmed: true,
		StatusCompleted: false,
		StatusCancelled: false,
	} {
		assert.Equal(t, want, Booking{Status: status}.Blocks(), "status %s", status)
	}
}

func TestBookingBlockedUntil(t *testing.T) {
	b := Booking{EndTime: ts(10, 30), BufferMinutes: 10}
	assert.Equal(t, ts(10, 40), b.BlockedUntil())

	noBuffer := Booking{EndTime: ts(10, 30)}
	assert.Equal(t, ts(10, 30), noBuffer.BlockedUntil())
}

func TestBookingStatusValidAndTerminal(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.False(t, BookingStatus("archived").Valid())

	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusCancelled.Terminal())
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusConfirmed.Terminal())
}

func TestStaffWorksDuring(t *testing.T) {
	m := StaffMember{
		WorkingHours: map[time.Weekday]DayHours{
			time.Wednesday: {Start: 9 * 60, End: 17 * 60, Working: true},
		},
	}

	assert.True(t, m.WorksDuring(ts(9, 0), ts(10, 0)))
	assert.True(t, m.WorksDuring(ts(16, 0), ts(17, 0)))
	assert.False(t, m.WorksDuring(ts(8, 30), ts(9, 30)))
	assert.False(t, m.WorksDuring(ts(16, 30), ts(17, 30)))

	// No record for Thursday means off duty.
	thursday := ts(9, 0).AddDate(0, 0, 1)
	assert.False(t, m.WorksDuring(thursday, thursday.Add(time.Hour)))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-09-09")
	assert.NoError(t, err)
	assert.Equal(t, time.Wednesday, d.Weekday())
	assert.Equal(t, time.Local, d.Location())

	_, err = ParseDate("09/09/2026")
	assert.Error(t, err)
}
