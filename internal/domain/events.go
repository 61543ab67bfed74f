package domain

import "time"

// Event bus topics published by the store after a mutation commits.
const (
	EventCustomerCreated = "customer.created"
	EventBookingCreated  = "booking.created"
	EventBookingStatus   = "booking.status"
	EventRequestCreated  = "request.created"
	EventPaymentCreated  = "payment.created"
	EventPaymentRecorded = "payment.recorded"
	EventUserLogin       = "user.login"
	EventContactMessage  = "contact.message"
)

// Event is the payload carried on every topic.
type Event struct {
	Topic    string    `json:"topic"`
	Actor    string    `json:"actor"`
	RefID    int64     `json:"ref_id,string"`
	Summary  string    `json:"summary"`
	SourceIP string    `json:"source_ip,omitempty"`
	At       time.Time `json:"at"`
}
