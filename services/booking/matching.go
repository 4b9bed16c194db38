package booking

import (
	"time"

	"lexbook/models"
)

// EmergencyStaff narrows an eligible set to members explicitly flagged as
// emergency contacts. Only flagged staff take crisis work.
func EmergencyStaff(eligible []models.StaffMember) []models.StaffMember {
	var out []models.StaffMember
	for _, m := range eligible {
		if m.EmergencyContact {
			out = append(out, m)
		}
	}
	return out
}

// StaffWorkingDuring filters the eligible set to members rostered for the
// whole interval.
func StaffWorkingDuring(eligible []models.StaffMember, start, end time.Time) []models.StaffMember {
	var out []models.StaffMember
	for _, m := range eligible {
		if m.WorksDuring(start, end) {
			out = append(out, m)
		}
	}
	return out
}

// StaffIDs projects members to their ids, preserving catalog order.
func StaffIDs(members []models.StaffMember) []string {
	ids := make([]string, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.ID)
	}
	return ids
}
