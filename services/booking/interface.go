package booking

import (
	"context"
	"time"

	"lexbook/catalog"
	"lexbook/ledger"
	"lexbook/models"
)

// BookingEngine is the public surface of the booking and availability
// engine.
type BookingEngine interface {
	CheckAvailability(ctx context.Context, q models.AvailabilityQuery) (*models.AvailabilityResponse, error)
	CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error)
	CreateEmergencyBooking(ctx context.Context, req models.EmergencyBookingRequest) (*models.Booking, error)
	UpdateBookingStatus(ctx context.Context, id string, status models.BookingStatus, reason string) (*models.Booking, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	ProcessPayment(ctx context.Context, bookingID string) (*models.PaymentSession, error)
	SyncToCalendar(ctx context.Context, bookingID string) (*models.CalendarEvent, error)
	GetBookingStats(ctx context.Context, start, end time.Time) (*models.BookingStats, error)
}

// DefaultBookingEngine implements BookingEngine.
type DefaultBookingEngine struct {
	Catalog   catalog.Repository
	Ledger    ledger.BookingLedger
	Calendar  *BusinessCalendar
	Policy    EmergencyPolicy
	Payments  PaymentHandler
	CalSync   CalendarSync
	Reminders ReminderDispatcher
	Clock     Clock

	StrideMinutes            int
	NextAvailableHorizonDays int
}

func (e *DefaultBookingEngine) now() time.Time {
	if e.Clock == nil {
		return time.Now()
	}
	return e.Clock.Now()
}

func (e *DefaultBookingEngine) stride() int {
	if e.StrideMinutes > 0 {
		return e.StrideMinutes
	}
	return DefaultStrideMinutes
}

func (e *DefaultBookingEngine) horizonDays() int {
	if e.NextAvailableHorizonDays > 0 {
		return e.NextAvailableHorizonDays
	}
	return 14
}
