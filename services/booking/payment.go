package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"lexbook/models"
)

// PaymentHandler is the payment collaborator boundary. The engine emits a
// request and expects back a session descriptor; it never holds the ledger
// lock while the handler runs.
type PaymentHandler interface {
	ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.PaymentSession, error)
}

// SimulatedPaymentHandler stands in for a real gateway. It always succeeds.
// A real deployment must replace it with a client that can fail and be
// retried/reconciled.
type SimulatedPaymentHandler struct {
	Logger *zap.Logger
}

func (h *SimulatedPaymentHandler) ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.PaymentSession, error) {
	now := time.Now()
	completed := now
	session := &models.PaymentSession{
		SessionID:   uuid.New().String(),
		BookingID:   req.BookingID,
		AmountPence: req.AmountPence,
		Currency:    req.Currency,
		Method:      req.Method,
		Status:      models.PaymentPaid,
		CreatedAt:   now,
		CompletedAt: &completed,
	}
	if h.Logger != nil {
		h.Logger.Info("simulated payment captured",
			zap.String("sessionID", session.SessionID),
			zap.String("bookingID", req.BookingID),
			zap.Int64("amountPence", req.AmountPence))
	}
	return session, nil
}

// ProcessPayment computes the amount owed from the service price and runs
// the payment collaborator. A failed payment leaves the booking in place
// with an explicit payment-failed marker; the slot hold persists for the
// grace period while payment is retried, and the cron sweep cancels it
// afterwards.
func (e *DefaultBookingEngine) ProcessPayment(ctx context.Context, bookingID string) (*models.PaymentSession, error) {
	b, err := e.Ledger.GetByID(bookingID)
	if err != nil {
		return nil, newEngineError(CodeUnknownBooking, "unknown booking %q", bookingID)
	}
	svc, err := e.Catalog.GetService(b.ServiceID)
	if err != nil {
		return nil, newEngineError(CodeUnknownService, "unknown service %q", b.ServiceID)
	}

	req := models.PaymentRequest{
		BookingID:   b.ID,
		AmountPence: svc.PricePence,
		Currency:    b.Payment.Currency,
		Method:      b.Payment.Method,
	}

	if _, err := e.Ledger.Mutate(b.ID, func(rec *models.Booking) error {
		rec.PaymentStatus = models.PaymentPending
		rec.UpdatedAt = e.now()
		return nil
	}); err != nil {
		return nil, err
	}

	// Bounded collaborator call, outside any ledger lock.
	callCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	session, payErr := e.Payments.ProcessPayment(callCtx, req)

	marker := models.PaymentPaid
	if payErr != nil || session == nil || session.Status != models.PaymentPaid {
		marker = models.PaymentFailed
	}
	if _, err := e.Ledger.Mutate(b.ID, func(rec *models.Booking) error {
		rec.PaymentStatus = marker
		rec.UpdatedAt = e.now()
		return nil
	}); err != nil {
		return nil, err
	}

	if payErr != nil {
		return nil, fmt.Errorf("payment processing for booking %s: %w", b.ID, payErr)
	}
	return session, nil
}
