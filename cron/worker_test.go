package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexbook/catalog"
	"lexbook/config"
	"lexbook/ledger"
	"lexbook/models"
	"lexbook/services/booking"
)

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time { return c.t }

var testNow = time.Date(2026, time.September, 7, 8, 0, 0, 0, time.Local)

type decliningGateway struct{}

func (decliningGateway) ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.PaymentSession, error) {
	return nil, errors.New("card declined")
}

func newSweepFixture(t *testing.T) (*booking.DefaultBookingEngine, *ledger.InMemoryLedger) {
	t.Helper()
	repo, err := catalog.Load("")
	require.NoError(t, err)

	led := ledger.NewInMemoryLedger()
	engine := &booking.DefaultBookingEngine{
		Catalog:  repo,
		Ledger:   led,
		Calendar: booking.NewBusinessCalendar(nil),
		Policy:   booking.EmergencyPolicy{MinNoticeMinutes: 24 * 60},
		Payments: &booking.SimulatedPaymentHandler{},
		Clock:    fixedClock{t: testNow},
	}
	return engine, led
}

func validRequest() models.BookingRequest {
	return models.BookingRequest{
		ServiceID:     "consultation-30",
		PreferredDate: "2026-09-09",
		PreferredTime: "10:00",
		Client: models.ClientInfo{
			FirstName: "Alice",
			LastName:  "Hargreaves",
			Email:     "alice@example.co.uk",
			Phone:     "+44 20 7946 0123",
		},
		Payment: models.PaymentInfo{Currency: "GBP", Method: "card"},
	}
}

func TestSweepCompletesElapsedConfirmedBookings(t *testing.T) {
	engine, led := newSweepFixture(t)
	ctx := context.Background()

	b, err := engine.CreateBooking(ctx, validRequest())
	require.NoError(t, err)
	_, err = engine.UpdateBookingStatus(ctx, b.ID, models.StatusConfirmed, "")
	require.NoError(t, err)

	// Before the appointment ends, nothing changes.
	RunLifecycleSweep(engine, led, b.EndTime.Add(-time.Minute))
	stored, err := engine.GetBooking(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, stored.Status)

	RunLifecycleSweep(engine, led, b.EndTime.Add(time.Minute))
	stored, err = engine.GetBooking(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, stored.Status)
}

func TestSweepCancelsFailedPaymentsAfterGrace(t *testing.T) {
	engine, led := newSweepFixture(t)
	engine.Payments = decliningGateway{}
	config.AppConfig.PaymentGraceMinutes = 60
	ctx := context.Background()

	b, err := engine.CreateBooking(ctx, validRequest())
	require.NoError(t, err)
	_, err = engine.ProcessPayment(ctx, b.ID)
	require.Error(t, err)

	// Within the grace period the hold stays.
	RunLifecycleSweep(engine, led, testNow.Add(30*time.Minute))
	stored, err := engine.GetBooking(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, stored.Status)

	RunLifecycleSweep(engine, led, testNow.Add(2*time.Hour))
	stored, err = engine.GetBooking(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, stored.Status)
	assert.Equal(t, "payment not completed within grace period", stored.CancellationReason)
}

func TestSweepLeavesPendingUnpaidBookingsAlone(t *testing.T) {
	engine, led := newSweepFixture(t)
	ctx := context.Background()

	b, err := engine.CreateBooking(ctx, validRequest())
	require.NoError(t, err)

	RunLifecycleSweep(engine, led, testNow.Add(24*time.Hour))
	stored, err := engine.GetBooking(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, stored.Status)
}
