package booking

import (
	"context"
	"strings"

	"lexbook/ledger"
	"lexbook/models"
)

// allowedTransitions is the closed lifecycle table:
// pending -> confirmed -> completed, with cancellation legal from pending
// and confirmed. Terminal states admit nothing.
var allowedTransitions = map[models.BookingStatus]map[models.BookingStatus]bool{
	models.StatusPending: {
		models.StatusConfirmed: true,
		models.StatusCancelled: true,
	},
	models.StatusConfirmed: {
		models.StatusCompleted: true,
		models.StatusCancelled: true,
	},
}

// CanTransition reports whether from -> to is legal.
func CanTransition(from, to models.BookingStatus) bool {
	return allowedTransitions[from][to]
}

// UpdateBookingStatus enforces the lifecycle state machine. Illegal
// transitions fail with InvalidTransition and are never silently coerced.
func (e *DefaultBookingEngine) UpdateBookingStatus(ctx context.Context, id string, newStatus models.BookingStatus, reason string) (*models.Booking, error) {
	if !newStatus.Valid() {
		return nil, newEngineError(CodeInvalidTransition, "unknown status %q", newStatus)
	}
	if newStatus == models.StatusCancelled && strings.TrimSpace(reason) == "" {
		return nil, &ValidationError{Fields: []FieldError{
			{Field: "reason", Message: "is required when cancelling"},
		}}
	}

	updated, err := e.Ledger.Mutate(id, func(b *models.Booking) error {
		if !CanTransition(b.Status, newStatus) {
			return newEngineError(CodeInvalidTransition,
				"cannot move booking %s from %s to %s", id, b.Status, newStatus)
		}
		now := e.now()
		b.Status = newStatus
		b.UpdatedAt = now
		switch newStatus {
		case models.StatusConfirmed:
			b.ConfirmedAt = &now
		case models.StatusCancelled:
			b.CancelledAt = &now
			b.CancellationReason = reason
		}
		return nil
	})
	if err != nil {
		if err == ledger.ErrNotFound {
			return nil, newEngineError(CodeUnknownBooking, "unknown booking %q", id)
		}
		return nil, err
	}
	return updated, nil
}
