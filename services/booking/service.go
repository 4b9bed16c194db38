package booking

import (
	"context"
	"time"

	"lexbook/models"
)

// CheckAvailability computes the bookable slot grid for one service on one
// date. It never mutates state; slots are recomputed on every call because
// staff availability can change between queries.
func (e *DefaultBookingEngine) CheckAvailability(ctx context.Context, q models.AvailabilityQuery) (*models.AvailabilityResponse, error) {
	svc, err := e.Catalog.GetService(q.ServiceID)
	if err != nil {
		return nil, newEngineError(CodeUnknownService, "unknown service %q", q.ServiceID)
	}
	if q.IsEmergency {
		if err := e.Policy.CheckServiceEligible(svc); err != nil {
			return nil, err
		}
	}
	date, err := models.ParseDate(q.Date)
	if err != nil {
		return nil, &ValidationError{Fields: []FieldError{{Field: "date", Message: "must be a date in YYYY-MM-DD form"}}}
	}

	eligible, err := e.Catalog.GetAvailableStaff(q.ServiceID)
	if err != nil {
		return nil, newEngineError(CodeUnknownService, "unknown service %q", q.ServiceID)
	}
	if q.IsEmergency {
		eligible = EmergencyStaff(eligible)
	}

	duration := EffectiveDuration(svc, q.DurationMinutes)
	now := e.now()

	resp := &models.AvailabilityResponse{
		Date:            q.Date,
		Slots:           e.daySlots(date, duration, svc.BufferMinutes, q.IsEmergency, eligible, now),
		StaffConsidered: StaffIDs(eligible),
	}
	if resp.Slots == nil {
		resp.Slots = []models.TimeSlot{}
	}
	if !hasFreeSlot(resp.Slots) {
		resp.NextAvailable = e.nextAvailable(date, duration, svc.BufferMinutes, q.IsEmergency, eligible, now)
	}
	return resp, nil
}

// daySlots runs the full pipeline for one date: working window, candidate
// grid, emergency partition, conflict resolution.
func (e *DefaultBookingEngine) daySlots(date time.Time, durationMinutes, bufferMinutes int, isEmergency bool, eligible []models.StaffMember, now time.Time) []models.TimeSlot {
	winStart, winEnd, ok := e.Calendar.WorkingWindow(date)
	if !ok {
		return nil
	}
	earliest := e.Policy.EarliestStart(now, isEmergency)
	grid := BuildCandidateSlots(winStart, winEnd, durationMinutes, e.stride(), earliest)
	grid = e.Policy.Partition(grid, isEmergency)

	resolver := &ConflictResolver{Ledger: e.Ledger, BufferMinutes: bufferMinutes}
	return resolver.Resolve(grid, date.Format(models.DateLayout), eligible)
}

// nextAvailable scans forward from the day after the queried date for the
// first free slot, bounded by the configured horizon.
func (e *DefaultBookingEngine) nextAvailable(date time.Time, durationMinutes, bufferMinutes int, isEmergency bool, eligible []models.StaffMember, now time.Time) *models.NextAvailable {
	for offset := 1; offset <= e.horizonDays(); offset++ {
		day := date.AddDate(0, 0, offset)
		slots := e.daySlots(day, durationMinutes, bufferMinutes, isEmergency, eligible, now)
		for _, slot := range slots {
			if slot.Available {
				return &models.NextAvailable{
					Date: day.Format(models.DateLayout),
					Time: slot.StartTime.Format(models.TimeLayout),
				}
			}
		}
	}
	return nil
}

func hasFreeSlot(slots []models.TimeSlot) bool {
	for _, s := range slots {
		if s.Available {
			return true
		}
	}
	return false
}

// GetBooking returns the ledger record for the id.
func (e *DefaultBookingEngine) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	b, err := e.Ledger.GetByID(id)
	if err != nil {
		return nil, newEngineError(CodeUnknownBooking, "unknown booking %q", id)
	}
	return b, nil
}
