// Package ledger owns every Booking record for its full lifecycle. It is an
// in-process store guarded by a single RWMutex: reads run concurrently,
// writes are serialized, and the availability re-check at creation time
// happens under the write lock so two concurrent creations can never both
// win the same staff slot. Collaborator calls must never run while a ledger
// lock is held.
package ledger

import (
	"errors"
	"sync"
	"time"

	"lexbook/models"
)

var (
	// ErrNotFound means the booking id is unknown to the ledger.
	ErrNotFound = errors.New("ledger: booking not found")
	// ErrSlotTaken means no candidate staff member was free for the
	// requested interval at insert time.
	ErrSlotTaken = errors.New("ledger: no staff member free for requested slot")
)

// BookingLedger is the authoritative booking store.
type BookingLedger interface {
	// InsertIfFree atomically re-verifies availability and inserts. It
	// assigns the first candidate staff member with no overlapping active
	// booking for the interval, or fails with ErrSlotTaken.
	InsertIfFree(b *models.Booking, candidateStaff []string) error
	GetByID(id string) (*models.Booking, error)
	// ForStaffDate returns the bookings indexed under (staffID, date).
	ForStaffDate(staffID, date string) []models.Booking
	// Mutate applies fn to the booking under the write lock. The update is
	// all-or-nothing: if fn returns an error the record is untouched.
	Mutate(id string, fn func(*models.Booking) error) (*models.Booking, error)
	// CreatedBetween returns bookings with start <= CreatedAt < end.
	CreatedBetween(start, end time.Time) []models.Booking
	Snapshot() []models.Booking
}

// InMemoryLedger implements BookingLedger with a (staffID, date) index so
// conflict checks compare against one day's bookings, not the whole ledger.
type InMemoryLedger struct {
	mu          sync.RWMutex
	byID        map[string]*models.Booking
	byStaffDate map[string][]string
}

func NewInMemoryLedger() *InMemoryLedger {
	return &InMemoryLedger{
		byID:        make(map[string]*models.Booking),
		byStaffDate: make(map[string][]string),
	}
}

func bucketKey(staffID, date string) string {
	return staffID + "|" + date
}

func clone(b *models.Booking) *models.Booking {
	cp := *b
	if len(b.RemindersSent) > 0 {
		cp.RemindersSent = append([]models.ReminderRecord(nil), b.RemindersSent...)
	}
	return &cp
}

func (l *InMemoryLedger) InsertIfFree(b *models.Booking, candidateStaff []string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, staffID := range candidateStaff {
		if l.staffFreeLocked(staffID, b.Date, b.StartTime, b.BlockedUntil()) {
			stored := clone(b)
			stored.StaffID = staffID
			l.byID[stored.ID] = stored
			key := bucketKey(staffID, b.Date)
			l.byStaffDate[key] = append(l.byStaffDate[key], stored.ID)
			b.StaffID = staffID
			return nil
		}
	}
	return ErrSlotTaken
}

func (l *InMemoryLedger) staffFreeLocked(staffID, date string, start, end time.Time) bool {
	for _, id := range l.byStaffDate[bucketKey(staffID, date)] {
		existing := l.byID[id]
		if !existing.Blocks() {
			continue
		}
		if models.Overlaps(existing.StartTime, existing.BlockedUntil(), start, end) {
			return false
		}
	}
	return true
}

func (l *InMemoryLedger) GetByID(id string) (*models.Booking, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	b, ok := l.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return clone(b), nil
}

func (l *InMemoryLedger) ForStaffDate(staffID, date string) []models.Booking {
	l.mu.RLock()
	defer l.mu.RUnlock()

	ids := l.byStaffDate[bucketKey(staffID, date)]
	out := make([]models.Booking, 0, len(ids))
	for _, id := range ids {
		out = append(out, *clone(l.byID[id]))
	}
	return out
}

func (l *InMemoryLedger) Mutate(id string, fn func(*models.Booking) error) (*models.Booking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	updated := clone(b)
	if err := fn(updated); err != nil {
		return nil, err
	}
	l.byID[id] = updated
	return clone(updated), nil
}

func (l *InMemoryLedger) CreatedBetween(start, end time.Time) []models.Booking {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var out []models.Booking
	for _, b := range l.byID {
		if !b.CreatedAt.Before(start) && b.CreatedAt.Before(end) {
			out = append(out, *clone(b))
		}
	}
	return out
}

func (l *InMemoryLedger) Snapshot() []models.Booking {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]models.Booking, 0, len(l.byID))
	for _, b := range l.byID {
		out = append(out, *clone(b))
	}
	return out
}
