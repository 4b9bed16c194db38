package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"lexbook/models"
	"lexbook/utils"
)

// ReminderDispatcher hands reminder intents to the external delivery
// pipeline.
type ReminderDispatcher interface {
	Dispatch(ctx context.Context, intent models.ReminderIntent) error
}

// Reminders fire a day and two hours before the appointment. Intents whose
// fire time is already past are skipped rather than sent late.
var reminderOffsets = []time.Duration{24 * time.Hour, 2 * time.Hour}

func (e *DefaultBookingEngine) scheduleReminders(ctx context.Context, b *models.Booking) {
	if e.Reminders == nil {
		return
	}
	logger := utils.GetLogger()
	now := e.now()

	for _, offset := range reminderOffsets {
		fireAt := b.StartTime.Add(-offset)
		if fireAt.Before(now) {
			continue
		}
		intent := models.ReminderIntent{
			ReminderID: uuid.New().String(),
			BookingID:  b.ID,
			FireAt:     fireAt,
			Title:      "Appointment reminder",
			Body: fmt.Sprintf("Your appointment is on %s at %s.",
				b.StartTime.Format(models.DateLayout), b.StartTime.Format(models.TimeLayout)),
		}
		if err := e.Reminders.Dispatch(ctx, intent); err != nil {
			logger.Warn("reminder dispatch failed",
				zap.String("bookingID", b.ID),
				zap.Time("fireAt", fireAt),
				zap.Error(err))
			continue
		}
		record := models.ReminderRecord{
			ReminderID:  intent.ReminderID,
			FireAt:      fireAt,
			ScheduledAt: now,
		}
		if _, err := e.Ledger.Mutate(b.ID, func(rec *models.Booking) error {
			rec.RemindersSent = append(rec.RemindersSent, record)
			return nil
		}); err != nil {
			logger.Warn("recording reminder dispatch failed",
				zap.String("bookingID", b.ID), zap.Error(err))
		}
		b.RemindersSent = append(b.RemindersSent, record)
	}
}
