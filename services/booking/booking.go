package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"lexbook/ledger"
	"lexbook/models"
	"lexbook/utils"
)

// CreateBooking validates the request, re-verifies the slot against the
// ledger atomically and writes a pending booking. The availability re-check
// happens inside the ledger's write lock so the check-then-act race between
// two clients is decided there, not here.
func (e *DefaultBookingEngine) CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	if err := ValidateRequest(req); err != nil {
		return nil, err
	}
	return e.create(ctx, req, false, "")
}

// CreateEmergencyBooking admits a crisis case: the minimum-notice rule does
// not apply, only emergency-contact staff are considered, and the booking is
// confirmed immediately instead of awaiting review. A phone number is
// required on every request, which also guarantees a callback number when
// ImmediateCallback is set.
func (e *DefaultBookingEngine) CreateEmergencyBooking(ctx context.Context, req models.EmergencyBookingRequest) (*models.Booking, error) {
	if err := ValidateRequest(req); err != nil {
		return nil, err
	}
	return e.create(ctx, req.BookingRequest, true, req.CrisisLevel)
}

func (e *DefaultBookingEngine) create(ctx context.Context, req models.BookingRequest, isEmergency bool, crisisLevel string) (*models.Booking, error) {
	logger := utils.GetLogger()

	svc, err := e.Catalog.GetService(req.ServiceID)
	if err != nil {
		return nil, newEngineError(CodeUnknownService, "unknown service %q", req.ServiceID)
	}
	if isEmergency {
		if err := e.Policy.CheckServiceEligible(svc); err != nil {
			return nil, err
		}
	}

	start, err := parseRequestedStart(req.PreferredDate, req.PreferredTime)
	if err != nil {
		return nil, err
	}
	now := e.now()
	end := start.Add(time.Duration(svc.DurationMinutes) * time.Minute)
	if err := e.admissibleStart(start, svc.DurationMinutes, isEmergency, now); err != nil {
		return nil, err
	}

	eligible, err := e.Catalog.GetAvailableStaff(req.ServiceID)
	if err != nil {
		return nil, newEngineError(CodeUnknownService, "unknown service %q", req.ServiceID)
	}
	if isEmergency {
		eligible = EmergencyStaff(eligible)
	}
	candidates := StaffWorkingDuring(eligible, start, end)
	if len(candidates) == 0 {
		return nil, newEngineError(CodeSlotNoLongerAvailable,
			"no staff available for %s at %s", req.PreferredDate, req.PreferredTime)
	}

	payment := req.Payment
	if payment.AmountPence == 0 {
		payment.AmountPence = svc.PricePence
	}
	if payment.Currency == "" {
		payment.Currency = "GBP"
	}

	b := &models.Booking{
		ID:            uuid.New().String(),
		ServiceID:     svc.ID,
		Date:          start.Format(models.DateLayout),
		StartTime:     start,
		EndTime:       end,
		BufferMinutes: svc.BufferMinutes,
		IsEmergency:   isEmergency,
		CrisisLevel:   crisisLevel,
		Client:        req.Client,
		Payment:       payment,
		PaymentStatus: models.PaymentUnpaid,
		Status:        models.StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if isEmergency {
		// Emergency bookings skip manual review.
		b.Status = models.StatusConfirmed
		confirmed := now
		b.ConfirmedAt = &confirmed
	}

	if err := e.Ledger.InsertIfFree(b, StaffIDs(candidates)); err != nil {
		if err == ledger.ErrSlotTaken {
			return nil, newEngineError(CodeSlotNoLongerAvailable,
				"slot %s %s was booked by another client", req.PreferredDate, req.PreferredTime)
		}
		return nil, err
	}

	logger.Info("booking created",
		zap.String("bookingID", b.ID),
		zap.String("serviceID", b.ServiceID),
		zap.String("staffID", b.StaffID),
		zap.String("date", b.Date),
		zap.Bool("emergency", b.IsEmergency))

	// Reminder intents are emitted after the ledger write; dispatch failures
	// never unwind the booking.
	e.scheduleReminders(ctx, b)

	return b, nil
}

// admissibleStart re-derives the candidate grid for the requested date and
// verifies the requested start is one of its bookable starts. This folds the
// business-hours, past-time, minimum-notice and emergency-reservation rules
// into a single check shared with availability queries.
func (e *DefaultBookingEngine) admissibleStart(start time.Time, durationMinutes int, isEmergency bool, now time.Time) error {
	winStart, winEnd, ok := e.Calendar.WorkingWindow(start)
	if !ok {
		return newEngineError(CodeSlotNoLongerAvailable,
			"%s is not a working day", start.Format(models.DateLayout))
	}
	earliest := e.Policy.EarliestStart(now, isEmergency)
	grid := BuildCandidateSlots(winStart, winEnd, durationMinutes, e.stride(), earliest)
	grid = e.Policy.Partition(grid, isEmergency)
	for _, slot := range grid {
		if slot.StartTime.Equal(start) {
			return nil
		}
	}
	return newEngineError(CodeSlotNoLongerAvailable,
		"%s %s is not a bookable slot", start.Format(models.DateLayout), start.Format(models.TimeLayout))
}

func parseRequestedStart(date, clock string) (time.Time, error) {
	day, err := models.ParseDate(date)
	if err != nil {
		return time.Time{}, &ValidationError{Fields: []FieldError{
			{Field: "preferredDate", Message: "must be a date in YYYY-MM-DD form"},
		}}
	}
	at, err := time.Parse(models.TimeLayout, clock)
	if err != nil {
		return time.Time{}, &ValidationError{Fields: []FieldError{
			{Field: "preferredTime", Message: "must be a time in HH:MM form"},
		}}
	}
	return time.Date(day.Year(), day.Month(), day.Day(), at.Hour(), at.Minute(), 0, 0, day.Location()), nil
}
