package models

import "time"

// PaymentRequest is what the engine emits to the payment collaborator.
type PaymentRequest struct {
	BookingID   string `json:"bookingId"`
	AmountPence int64  `json:"amount"`
	Currency    string `json:"currency"`
	Method      string `json:"method"`
}

// PaymentSession is the collaborator's answer: a session descriptor moving
// pending -> paid (or failed). The engine never talks to a real gateway.
type PaymentSession struct {
	SessionID   string     `json:"sessionId"`
	BookingID   string     `json:"bookingId"`
	AmountPence int64      `json:"amount"`
	Currency    string     `json:"currency"`
	Method      string     `json:"method"`
	Status      string     `json:"status"` // pending | paid | failed
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}
