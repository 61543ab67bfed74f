package domain

import "time"

const (
	BookingTypeFlight  = "flight"
	BookingTypeHotel   = "hotel"
	BookingTypePackage = "package"
)

const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingTicketed  = "ticketed"
	BookingCancelled = "cancelled"
)

const (
	PayStatusPaid    = "paid"
	PayStatusPartial = "partial"
	PayStatusUnpaid  = "unpaid"
)

// Booking represents a flight, hotel or package sale. CustomerID is zero for
// walk-in bookings; the denormalized name/email keep the record renderable
// even if the customer is later deleted.
type Booking struct {
	ID            int64     `json:"id,string"`
	Ref           string    `json:"ref"`
	Type          string    `json:"type"`
	CustomerID    int64     `json:"customer_id,string"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	PackageID     int64     `json:"package_id,string"`
	Destination   string    `json:"destination"`
	TravelDate    string    `json:"travel_date"`
	Amount        float64   `json:"amount"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	Remark        string    `json:"remark"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// bookingTransitions is the allowed status graph. Ticketed and cancelled are
// terminal.
var bookingTransitions = map[string][]string{
	BookingPending:   {BookingConfirmed, BookingCancelled},
	BookingConfirmed: {BookingTicketed, BookingCancelled},
}

// CanTransitBooking reports whether a booking may move from one status to
// another.
func CanTransitBooking(from, to string) bool {
	for _, next := range bookingTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func ValidBookingStatus(s string) bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingTicketed, BookingCancelled:
		return true
	}
	return false
}

func ValidBookingType(s string) bool {
	switch s {
	case BookingTypeFlight, BookingTypeHotel, BookingTypePackage:
		return true
	}
	return false
}
