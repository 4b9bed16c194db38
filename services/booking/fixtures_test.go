package booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"lexbook/catalog"
	"lexbook/ledger"
	"lexbook/models"
)

// fixedClock pins the engine to a known instant so notice-window and
// reminder arithmetic is deterministic.
type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time { return c.t }

// testNow is a Monday morning before office hours.
var testNow = time.Date(2026, time.September, 7, 8, 0, 0, 0, time.Local)

// capturingDispatcher records reminder intents instead of enqueueing them.
type capturingDispatcher struct {
	mu      sync.Mutex
	intents []models.ReminderIntent
}

func (d *capturingDispatcher) Dispatch(ctx context.Context, intent models.ReminderIntent) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.intents = append(d.intents, intent)
	return nil
}

func (d *capturingDispatcher) all() []models.ReminderIntent {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]models.ReminderIntent(nil), d.intents...)
}

// failingPaymentHandler simulates a gateway decline.
type failingPaymentHandler struct{}

func (failingPaymentHandler) ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.PaymentSession, error) {
	return nil, errors.New("card declined")
}

func newTestEngine(t *testing.T) (*DefaultBookingEngine, *capturingDispatcher) {
	t.Helper()
	repo, err := catalog.Load("")
	if err != nil {
		t.Fatalf("loading default catalog: %v", err)
	}
	reminders := &capturingDispatcher{}
	engine := &DefaultBookingEngine{
		Catalog:   repo,
		Ledger:    ledger.NewInMemoryLedger(),
		Calendar:  NewBusinessCalendar(nil),
		Policy:    EmergencyPolicy{MinNoticeMinutes: 24 * 60},
		Payments:  &SimulatedPaymentHandler{},
		CalSync:   &LoggingCalendarSync{},
		Reminders: reminders,
		Clock:     fixedClock{t: testNow},
	}
	return engine, reminders
}

func validRequest(serviceID, date, at string) models.BookingRequest {
	return models.BookingRequest{
		ServiceID:     serviceID,
		PreferredDate: date,
		PreferredTime: at,
		Client: models.ClientInfo{
			FirstName: "Alice",
			LastName:  "Hargreaves",
			Email:     "alice@example.co.uk",
			Phone:     "+44 20 7946 0123",
		},
		Payment: models.PaymentInfo{
			Currency: "GBP",
			Method:   "card",
		},
	}
}

func validEmergencyRequest(serviceID, date, at, level string) models.EmergencyBookingRequest {
	return models.EmergencyBookingRequest{
		BookingRequest: validRequest(serviceID, date, at),
		CrisisLevel:    level,
	}
}

func localTime(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.Local)
}
