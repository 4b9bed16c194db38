package booking

import (
	"time"

	"lexbook/ledger"
	"lexbook/models"
)

// ConflictResolver marks candidate slots available when at least one
// eligible staff member has no overlapping active booking. It only reads
// the ledger; conflict lookups are scoped by (staffID, date) so each slot is
// compared against one day's bookings.
type ConflictResolver struct {
	Ledger ledger.BookingLedger
	// BufferMinutes extends each candidate's blocked interval by the
	// service's inter-appointment buffer.
	BufferMinutes int
}

// Resolve annotates each slot with its free staff and availability. The
// eligible set should already be filtered to the service's category and, for
// emergencies, to emergency contacts.
func (r *ConflictResolver) Resolve(slots []models.TimeSlot, date string, eligible []models.StaffMember) []models.TimeSlot {
	dayBookings := make(map[string][]models.Booking, len(eligible))
	for _, m := range eligible {
		dayBookings[m.ID] = r.Ledger.ForStaffDate(m.ID, date)
	}

	for i := range slots {
		slot := &slots[i]
		slot.FreeStaff = slot.FreeStaff[:0]
		for _, m := range eligible {
			if !m.WorksDuring(slot.StartTime, slot.EndTime) {
				continue
			}
			if staffFree(dayBookings[m.ID], slot, r.BufferMinutes) {
				slot.FreeStaff = append(slot.FreeStaff, m.ID)
			}
		}
		slot.Available = len(slot.FreeStaff) > 0
	}
	return slots
}

func staffFree(existing []models.Booking, slot *models.TimeSlot, bufferMinutes int) bool {
	blockedEnd := slot.EndTime.Add(time.Duration(bufferMinutes) * time.Minute)
	for _, b := range existing {
		if !b.Blocks() {
			continue
		}
		if models.Overlaps(b.StartTime, b.BlockedUntil(), slot.StartTime, blockedEnd) {
			return false
		}
	}
	return true
}
