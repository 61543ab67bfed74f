package domain

import "time"

const (
	NotifyBooking = "booking"
	NotifyPayment = "payment"
	NotifyLead    = "lead"
	NotifyAlert   = "alert"
)

// Notification is an in-app activity item appended by store mutations.
type Notification struct {
	ID        int64     `json:"id,string"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}
