package domain

import "time"

const (
	CustomerActive   = "active"
	CustomerInactive = "inactive"
)

// Customer represents an agency client record. TotalBookings and TotalSpent
// are running counters maintained at booking creation time.
type Customer struct {
	ID            int64     `json:"id,string"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	Status        string    `json:"status"`
	Tags          []string  `json:"tags"`
	TotalBookings int       `json:"total_bookings"`
	TotalSpent    float64   `json:"total_spent"`
	Remark        string    `json:"remark"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
