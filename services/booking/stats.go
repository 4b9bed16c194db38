package booking

import (
	"context"
	"time"

	"lexbook/models"
)

// GetBookingStats aggregates ledger records created in [start, end).
// Revenue counts only bookings whose payment has actually been captured.
func (e *DefaultBookingEngine) GetBookingStats(ctx context.Context, start, end time.Time) (*models.BookingStats, error) {
	if end.Before(start) {
		return nil, &ValidationError{Fields: []FieldError{
			{Field: "endDate", Message: "must not precede startDate"},
		}}
	}

	stats := &models.BookingStats{}
	for _, b := range e.Ledger.CreatedBetween(start, end) {
		stats.TotalBookings++
		if b.Status == models.StatusConfirmed || b.Status == models.StatusCompleted {
			stats.ConfirmedBookings++
		}
		if b.IsEmergency {
			stats.EmergencyBookings++
		}
		if b.PaymentStatus == models.PaymentPaid {
			stats.RevenuePence += b.Payment.AmountPence
		}
	}
	return stats, nil
}
