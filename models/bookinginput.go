package models

// ClientInfo holds the contact details supplied with a booking request.
// Phone numbers are validated against UK national formats.
type ClientInfo struct {
	FirstName           string `json:"firstName" validate:"required"`
	LastName            string `json:"lastName" validate:"required"`
	Email               string `json:"email" validate:"required,email"`
	Phone               string `json:"phone" validate:"required,ukphone"`
	IsAnonymous         bool   `json:"isAnonymous"`
	EmergencyContact    string `json:"emergencyContact,omitempty" validate:"omitempty,ukphone"`
	SpecialRequirements string `json:"specialRequirements,omitempty"`
}

// PaymentInfo is the payment snapshot captured with the request.
type PaymentInfo struct {
	AmountPence int64  `json:"amount" validate:"gte=0"`
	Currency    string `json:"currency" validate:"required,len=3"`
	Method      string `json:"method" validate:"required,oneof=card cash invoice"`
}

// BookingRequest creates a normal booking. Emergency bookings use the
// EmergencyBookingRequest variant so that crisis fields are required at the
// type level rather than checked ad hoc.
type BookingRequest struct {
	ServiceID     string      `json:"serviceId" validate:"required"`
	PreferredDate string      `json:"preferredDate" validate:"required"` // YYYY-MM-DD
	PreferredTime string      `json:"preferredTime" validate:"required"` // HH:MM
	Client        ClientInfo  `json:"clientInfo" validate:"required"`
	Payment       PaymentInfo `json:"paymentInfo" validate:"required"`
}

// Crisis levels recognized on the emergency path.
const (
	CrisisUrgent   = "urgent"
	CrisisHigh     = "high"
	CrisisCritical = "critical"
)

// EmergencyBookingRequest creates an auto-confirmed emergency booking.
type EmergencyBookingRequest struct {
	BookingRequest
	CrisisLevel       string `json:"crisisLevel" validate:"required,oneof=urgent high critical"`
	ImmediateCallback bool   `json:"immediateCallback"`
}
