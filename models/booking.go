package models

import "time"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transition is permitted.
func (s BookingStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Payment lifecycle markers on the booking itself. A failed payment leaves
// the booking pending with PaymentFailed set; the slot hold survives for a
// grace period while payment is retried.
const (
	PaymentUnpaid  = "unpaid"
	PaymentPending = "pending"
	PaymentPaid    = "paid"
	PaymentFailed  = "failed"
)

// ReminderRecord notes a reminder intent already handed to the dispatcher.
type ReminderRecord struct {
	ReminderID  string    `json:"reminderId"`
	FireAt      time.Time `json:"fireAt"`
	ScheduledAt time.Time `json:"scheduledAt"`
}

// Booking is the authoritative appointment record, owned by the ledger for
// its full lifecycle.
type Booking struct {
	ID            string        `json:"id"`
	ServiceID     string        `json:"serviceId"`
	StaffID       string        `json:"staffId,omitempty"` // empty until assigned
	Date          string        `json:"date"`              // YYYY-MM-DD
	StartTime     time.Time     `json:"startTime"`
	EndTime       time.Time     `json:"endTime"`
	IsEmergency   bool          `json:"isEmergency"`
	CrisisLevel   string        `json:"crisisLevel,omitempty"`
	BufferMinutes int           `json:"bufferMinutes,omitempty"`
	Client        ClientInfo    `json:"client"`
	Payment       PaymentInfo   `json:"payment"`
	PaymentStatus string        `json:"paymentStatus"`
	Status        BookingStatus `json:"status"`

	CreatedAt          time.Time        `json:"createdAt"`
	UpdatedAt          time.Time        `json:"updatedAt"`
	ConfirmedAt        *time.Time       `json:"confirmedAt,omitempty"`
	CancelledAt        *time.Time       `json:"cancelledAt,omitempty"`
	CancellationReason string           `json:"cancellationReason,omitempty"`
	RemindersSent      []ReminderRecord `json:"remindersSent,omitempty"`
}

// Blocks reports whether this booking holds its staff/time against new
// bookings. Cancelled and completed bookings release the slot.
func (b Booking) Blocks() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// BlockedUntil is the appointment end extended by the service's
// inter-appointment buffer. Conflict checks compare against this instant,
// not the bare end time.
func (b Booking) BlockedUntil() time.Time {
	return b.EndTime.Add(time.Duration(b.BufferMinutes) * time.Minute)
}

// BookingStats aggregates ledger records by creation date.
type BookingStats struct {
	TotalBookings     int   `json:"totalBookings"`
	ConfirmedBookings int   `json:"confirmedBookings"`
	EmergencyBookings int   `json:"emergencyBookings"`
	RevenuePence      int64 `json:"revenue"`
}
