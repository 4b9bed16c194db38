package ledger

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexbook/models"
)

func newBooking(id string, start time.Time, durationMinutes, bufferMinutes int) *models.Booking {
	return &models.Booking{
		ID:            id,
		ServiceID:     "svc",
		Date:          start.Format(models.DateLayout),
		StartTime:     start,
		EndTime:       start.Add(time.Duration(durationMinutes) * time.Minute),
		BufferMinutes: bufferMinutes,
		Status:        models.StatusPending,
		CreatedAt:     start.Add(-48 * time.Hour),
		UpdatedAt:     start.Add(-48 * time.Hour),
	}
}

func at(hour, minute int) time.Time {
	return time.Date(2026, time.September, 9, hour, minute, 0, 0, time.Local)
}

func TestInsertIfFreeAssignsFirstFreeCandidate(t *testing.T) {
	led := NewInMemoryLedger()

	b := newBooking("b1", at(10, 0), 30, 0)
	require.NoError(t, led.InsertIfFree(b, []string{"anna", "ben"}))
	assert.Equal(t, "anna", b.StaffID)

	b2 := newBooking("b2", at(10, 0), 30, 0)
	require.NoError(t, led.InsertIfFree(b2, []string{"anna", "ben"}))
	assert.Equal(t, "ben", b2.StaffID)

	b3 := newBooking("b3", at(10, 0), 30, 0)
	err := led.InsertIfFree(b3, []string{"anna", "ben"})
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestInsertIfFreeRespectsBuffer(t *testing.T) {
	led := NewInMemoryLedger()

	require.NoError(t, led.InsertIfFree(newBooking("b1", at(10, 0), 30, 15), []string{"anna"}))

	// Blocked until 10:45, so the 10:30 start conflicts.
	err := led.InsertIfFree(newBooking("b2", at(10, 30), 30, 0), []string{"anna"})
	assert.ErrorIs(t, err, ErrSlotTaken)

	require.NoError(t, led.InsertIfFree(newBooking("b3", at(11, 0), 30, 0), []string{"anna"}))
}

func TestInsertIfFreeIgnoresNonBlockingBookings(t *testing.T) {
	led := NewInMemoryLedger()

	b := newBooking("b1", at(10, 0), 30, 0)
	require.NoError(t, led.InsertIfFree(b, []string{"anna"}))
	_, err := led.Mutate("b1", func(rec *models.Booking) error {
		rec.Status = models.StatusCancelled
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, led.InsertIfFree(newBooking("b2", at(10, 0), 30, 0), []string{"anna"}))
}

func TestInsertIfFreeScopesConflictsToDate(t *testing.T) {
	led := NewInMemoryLedger()

	require.NoError(t, led.InsertIfFree(newBooking("b1", at(10, 0), 30, 0), []string{"anna"}))

	nextDay := at(10, 0).AddDate(0, 0, 1)
	require.NoError(t, led.InsertIfFree(newBooking("b2", nextDay, 30, 0), []string{"anna"}))
}

func TestGetByIDReturnsIsolatedCopy(t *testing.T) {
	led := NewInMemoryLedger()
	require.NoError(t, led.InsertIfFree(newBooking("b1", at(10, 0), 30, 0), []string{"anna"}))

	got, err := led.GetByID("b1")
	require.NoError(t, err)
	got.Status = models.StatusCompleted

	again, err := led.GetByID("b1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, again.Status)
}

func TestGetByIDUnknown(t *testing.T) {
	led := NewInMemoryLedger()

	_, err := led.GetByID("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestForStaffDate(t *testing.T) {
	led := NewInMemoryLedger()
	require.NoError(t, led.InsertIfFree(newBooking("b1", at(10, 0), 30, 0), []string{"anna"}))
	require.NoError(t, led.InsertIfFree(newBooking("b2", at(11, 0), 30, 0), []string{"anna"}))
	require.NoError(t, led.InsertIfFree(newBooking("b3", at(10, 0), 30, 0), []string{"ben"}))

	bookings := led.ForStaffDate("anna", "2026-09-09")
	require.Len(t, bookings, 2)
	for _, b := range bookings {
		assert.Equal(t, "anna", b.StaffID)
	}

	assert.Empty(t, led.ForStaffDate("anna", "2026-09-10"))
}

func TestMutateIsAllOrNothing(t *testing.T) {
	led := NewInMemoryLedger()
	require.NoError(t, led.InsertIfFree(newBooking("b1", at(10, 0), 30, 0), []string{"anna"}))

	boom := errors.New("boom")
	_, err := led.Mutate("b1", func(rec *models.Booking) error {
		rec.Status = models.StatusCancelled
		return boom
	})
	assert.ErrorIs(t, err, boom)

	stored, err := led.GetByID("b1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, stored.Status)
}

func TestMutateUnknown(t *testing.T) {
	led := NewInMemoryLedger()

	_, err := led.Mutate("nope", func(rec *models.Booking) error { return nil })
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreatedBetweenIsHalfOpen(t *testing.T) {
	led := NewInMemoryLedger()
	b := newBooking("b1", at(10, 0), 30, 0)
	require.NoError(t, led.InsertIfFree(b, []string{"anna"}))

	assert.Len(t, led.CreatedBetween(b.CreatedAt, b.CreatedAt.Add(time.Minute)), 1)
	assert.Empty(t, led.CreatedBetween(b.CreatedAt.Add(time.Minute), b.CreatedAt.Add(time.Hour)))
	assert.Empty(t, led.CreatedBetween(b.CreatedAt.Add(-time.Hour), b.CreatedAt))
}

func TestConcurrentInsertSingleWinner(t *testing.T) {
	led := NewInMemoryLedger()

	const workers = 16
	var wg sync.WaitGroup
	results := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			b := newBooking(fmt.Sprintf("b%d", n), at(10, 0), 30, 0)
			results <- led.InsertIfFree(b, []string{"anna"})
		}(i)
	}
	wg.Wait()
	close(results)

	var wins int
	for err := range results {
		if err == nil {
			wins++
		} else {
			assert.ErrorIs(t, err, ErrSlotTaken)
		}
	}
	assert.Equal(t, 1, wins)
	assert.Len(t, led.Snapshot(), 1)
}
