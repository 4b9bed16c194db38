package models

import "time"

// StaffMember is a solicitor or adviser who can be booked. Records are owned
// by the catalog and read-only to the engine; administrative updates happen
// out of band.
type StaffMember struct {
	ID               string                    `json:"id" mapstructure:"id"`
	Name             string                    `json:"name" mapstructure:"name"`
	Email            string                    `json:"email" mapstructure:"email"`
	Specializations  []ServiceCategory         `json:"specializations" mapstructure:"specializations"`
	Available        bool                      `json:"available" mapstructure:"available"`
	WorkingHours     map[time.Weekday]DayHours `json:"workingHours" mapstructure:"-"`
	EmergencyContact bool                      `json:"emergencyContact" mapstructure:"emergency_contact"`
}

// SpecializesIn reports whether the member covers the given category.
func (s StaffMember) SpecializesIn(cat ServiceCategory) bool {
	for _, spec := range s.Specializations {
		if spec == cat {
			return true
		}
	}
	return false
}

// WorksDuring reports whether the interval [start, end) falls entirely inside
// the member's working hours for that day.
func (s StaffMember) WorksDuring(start, end time.Time) bool {
	hours, ok := s.WorkingHours[start.Weekday()]
	if !ok || !hours.Working {
		return false
	}
	dayStart := startOfDay(start).Add(time.Duration(hours.Start) * time.Minute)
	dayEnd := startOfDay(start).Add(time.Duration(hours.End) * time.Minute)
	return !start.Before(dayStart) && !end.After(dayEnd)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
