package domain

import "time"

const (
	PaymentPending   = "pending"
	PaymentPartial   = "partial"
	PaymentCompleted = "completed"
)

// Payment is the invoice record against a booking. The arithmetic invariant
// is balance == max(0, amount - paid_amount); paid_amount may exceed amount
// when a client overpays (the surplus is carried as credit).
type Payment struct {
	ID           int64     `json:"id,string"`
	InvoiceNo    string    `json:"invoice_no"`
	BookingID    int64     `json:"booking_id,string"`
	CustomerName string    `json:"customer_name"`
	Method       string    `json:"method"`
	Reference    string    `json:"reference"`
	Amount       float64   `json:"amount"`
	PaidAmount   float64   `json:"paid_amount"`
	Balance      float64   `json:"balance"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
