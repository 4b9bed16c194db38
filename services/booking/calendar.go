package booking

import (
	"time"

	"lexbook/models"
)

// BusinessCalendar turns a calendar date into a working/non-working
// determination and its open/close window. Weekday resolution goes through
// time.Weekday, so it cannot shift with runtime locale settings.
type BusinessCalendar struct {
	hours models.BusinessHours
}

func NewBusinessCalendar(hours models.BusinessHours) *BusinessCalendar {
	if hours == nil {
		hours = models.DefaultBusinessHours()
	}
	return &BusinessCalendar{hours: hours}
}

func (c *BusinessCalendar) IsWorkingDay(date time.Time) bool {
	day, ok := c.hours[date.Weekday()]
	return ok && day.Working
}

// WorkingWindow returns the open/close instants for the date. A non-working
// date yields ok == false, which callers must treat as an empty candidate
// grid rather than an error.
func (c *BusinessCalendar) WorkingWindow(date time.Time) (start, end time.Time, ok bool) {
	day, found := c.hours[date.Weekday()]
	if !found || !day.Working {
		return time.Time{}, time.Time{}, false
	}
	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	start = midnight.Add(time.Duration(day.Start) * time.Minute)
	end = midnight.Add(time.Duration(day.End) * time.Minute)
	return start, end, true
}
