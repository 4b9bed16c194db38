package models

import "time"

// DayHours records open/close times for one weekday as minutes from midnight
// (e.g. 540 for 9:00 AM). Start and End are ignored when Working is false.
type DayHours struct {
	Start   int  `json:"start" mapstructure:"start"`
	End     int  `json:"end" mapstructure:"end"`
	Working bool `json:"working" mapstructure:"working"`
}

// BusinessHours maps each weekday to its opening record. Weekday keys come
// from time.Weekday, so the mapping is independent of runtime locale.
type BusinessHours map[time.Weekday]DayHours

// DefaultBusinessHours is Mon-Fri 09:00-17:30.
func DefaultBusinessHours() BusinessHours {
	open := DayHours{Start: 9 * 60, End: 17*60 + 30, Working: true}
	return BusinessHours{
		time.Monday:    open,
		time.Tuesday:   open,
		time.Wednesday: open,
		time.Thursday:  open,
		time.Friday:    open,
		time.Saturday:  {},
		time.Sunday:    {},
	}
}

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// TimeLayout is the wire format for clock times.
const TimeLayout = "15:04"

// ParseDate parses an ISO calendar date in the local location.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.Local)
}
